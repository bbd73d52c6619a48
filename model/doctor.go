package model

// Doctor represents a consulting doctor attached to a department and shift.
// @Description Doctor information
type Doctor struct {
	DoctorID      uint    `json:"DoctorID" gorm:"column:doctor_id;primaryKey" example:"1"`
	FirstName     string  `json:"FirstName" gorm:"column:first_name;not null" example:"Meera"`
	LastName      *string `json:"LastName" gorm:"column:last_name" example:"Sharma"`
	DepartmentID  *uint   `json:"DepartmentID" gorm:"column:department_id" example:"1"`
	Qualification *string `json:"Qualification" gorm:"column:qualification" example:"MBBS, MD"`
	Specialty     *string `json:"Specialty" gorm:"column:specialty" example:"Cardiology"`
	MobileNo      *string `json:"MobileNo" gorm:"column:mobile_no" example:"9876543210"`
	Email         *string `json:"Email" gorm:"column:email" example:"meera@example.com"`
	ShiftID       *uint   `json:"ShiftID" gorm:"column:shift_id" example:"1"`
	ShiftDate     *string `json:"ShiftDate" gorm:"column:shift_date" example:"2025-02-10"`
	RoomAssigned  *string `json:"RoomAssigned" gorm:"column:room_assigned" example:"204"`
}

func (Doctor) TableName() string { return "doctors" }

// CreateDoctorRequest represents a doctor creation payload
type CreateDoctorRequest struct {
	FirstName     string  `json:"FirstName" example:"Meera"`
	LastName      *string `json:"LastName,omitempty"`
	DepartmentID  *uint   `json:"DepartmentID,omitempty"`
	Qualification *string `json:"Qualification,omitempty"`
	Specialty     *string `json:"Specialty,omitempty"`
	MobileNo      *string `json:"MobileNo,omitempty"`
	Email         *string `json:"Email,omitempty"`
	ShiftID       *uint   `json:"ShiftID,omitempty"`
	ShiftDate     *string `json:"ShiftDate,omitempty"`
	RoomAssigned  *string `json:"RoomAssigned,omitempty"`
}

// UpdateDoctorRequest is a partial update; nil fields keep stored values.
type UpdateDoctorRequest struct {
	FirstName     *string `json:"FirstName,omitempty"`
	LastName      *string `json:"LastName,omitempty"`
	DepartmentID  *uint   `json:"DepartmentID,omitempty"`
	Qualification *string `json:"Qualification,omitempty"`
	Specialty     *string `json:"Specialty,omitempty"`
	MobileNo      *string `json:"MobileNo,omitempty"`
	Email         *string `json:"Email,omitempty"`
	ShiftID       *uint   `json:"ShiftID,omitempty"`
	ShiftDate     *string `json:"ShiftDate,omitempty"`
	RoomAssigned  *string `json:"RoomAssigned,omitempty"`
}

func (r UpdateDoctorRequest) Updates() map[string]interface{} {
	u := map[string]interface{}{}
	if r.FirstName != nil {
		u["first_name"] = *r.FirstName
	}
	if r.LastName != nil {
		u["last_name"] = *r.LastName
	}
	if r.DepartmentID != nil {
		u["department_id"] = *r.DepartmentID
	}
	if r.Qualification != nil {
		u["qualification"] = *r.Qualification
	}
	if r.Specialty != nil {
		u["specialty"] = *r.Specialty
	}
	if r.MobileNo != nil {
		u["mobile_no"] = *r.MobileNo
	}
	if r.Email != nil {
		u["email"] = *r.Email
	}
	if r.ShiftID != nil {
		u["shift_id"] = *r.ShiftID
	}
	if r.ShiftDate != nil {
		u["shift_date"] = *r.ShiftDate
	}
	if r.RoomAssigned != nil {
		u["room_assigned"] = *r.RoomAssigned
	}
	return u
}

// DoctorSummary is the doctor list read model: department and shift display
// fields plus distinct appointment/visit counts.
type DoctorSummary struct {
	DoctorID         uint    `json:"DoctorID" gorm:"column:doctor_id"`
	FirstName        string  `json:"FirstName" gorm:"column:first_name"`
	LastName         *string `json:"LastName" gorm:"column:last_name"`
	Qualification    *string `json:"Qualification" gorm:"column:qualification"`
	Specialty        *string `json:"Specialty" gorm:"column:specialty"`
	MobileNo         *string `json:"MobileNo" gorm:"column:mobile_no"`
	Email            *string `json:"Email" gorm:"column:email"`
	RoomAssigned     *string `json:"RoomAssigned" gorm:"column:room_assigned"`
	DeptName         *string `json:"DeptName" gorm:"column:dept_name"`
	ShiftName        *string `json:"ShiftName" gorm:"column:shift_name"`
	StartTime        *string `json:"StartTime" gorm:"column:start_time"`
	EndTime          *string `json:"EndTime" gorm:"column:end_time"`
	AppointmentCount int64   `json:"AppointmentCount" gorm:"column:appointment_count"`
	VisitCount       int64   `json:"VisitCount" gorm:"column:visit_count"`
}

// DoctorWithDept is the admin roster read model with the department name joined in.
type DoctorWithDept struct {
	Doctor
	DeptName *string `json:"DeptName" gorm:"column:dept_name"`
}

// DoctorDetail is a doctor row joined with department and shift display fields.
type DoctorDetail struct {
	Doctor
	DeptName  *string `json:"DeptName" gorm:"column:dept_name"`
	ShiftName *string `json:"ShiftName" gorm:"column:shift_name"`
	StartTime *string `json:"StartTime" gorm:"column:start_time"`
	EndTime   *string `json:"EndTime" gorm:"column:end_time"`
}
