package model

// Staff represents non-doctor personnel (nurses, receptionists, technicians).
type Staff struct {
	StaffID      uint    `json:"StaffID" gorm:"column:staff_id;primaryKey" example:"1"`
	FirstName    string  `json:"FirstName" gorm:"column:first_name;not null" example:"Ravi"`
	LastName     *string `json:"LastName" gorm:"column:last_name"`
	Role         *string `json:"Role" gorm:"column:role" example:"Nurse"`
	DepartmentID *uint   `json:"DepartmentID" gorm:"column:department_id"`
	MobileNo     *string `json:"MobileNo" gorm:"column:mobile_no"`
	Email        *string `json:"Email" gorm:"column:email"`
	ShiftID      *uint   `json:"ShiftID" gorm:"column:shift_id"`
	ShiftDate    *string `json:"ShiftDate" gorm:"column:shift_date"`
	AssignedRoom *string `json:"AssignedRoom" gorm:"column:assigned_room"`
}

func (Staff) TableName() string { return "staff" }

// CreateStaffRequest represents a staff creation payload
type CreateStaffRequest struct {
	FirstName    string  `json:"FirstName" example:"Ravi"`
	LastName     *string `json:"LastName,omitempty"`
	Role         *string `json:"Role,omitempty"`
	DepartmentID *uint   `json:"DepartmentID,omitempty"`
	MobileNo     *string `json:"MobileNo,omitempty"`
	Email        *string `json:"Email,omitempty"`
	ShiftID      *uint   `json:"ShiftID,omitempty"`
	ShiftDate    *string `json:"ShiftDate,omitempty"`
	AssignedRoom *string `json:"AssignedRoom,omitempty"`
}

// UpdateStaffRequest is a partial update; nil fields keep stored values.
type UpdateStaffRequest struct {
	FirstName    *string `json:"FirstName,omitempty"`
	LastName     *string `json:"LastName,omitempty"`
	Role         *string `json:"Role,omitempty"`
	DepartmentID *uint   `json:"DepartmentID,omitempty"`
	MobileNo     *string `json:"MobileNo,omitempty"`
	Email        *string `json:"Email,omitempty"`
	ShiftID      *uint   `json:"ShiftID,omitempty"`
	ShiftDate    *string `json:"ShiftDate,omitempty"`
	AssignedRoom *string `json:"AssignedRoom,omitempty"`
}

func (r UpdateStaffRequest) Updates() map[string]interface{} {
	u := map[string]interface{}{}
	if r.FirstName != nil {
		u["first_name"] = *r.FirstName
	}
	if r.LastName != nil {
		u["last_name"] = *r.LastName
	}
	if r.Role != nil {
		u["role"] = *r.Role
	}
	if r.DepartmentID != nil {
		u["department_id"] = *r.DepartmentID
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
	if r.AssignedRoom != nil {
		u["assigned_room"] = *r.AssignedRoom
	}
	return u
}

// StaffWithDept is the staff list read model with the department name joined in.
type StaffWithDept struct {
	Staff
	DeptName *string `json:"DeptName" gorm:"column:dept_name"`
}
