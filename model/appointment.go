package model

// Appointment statuses used by convention; no transition rules are enforced.
const (
	AppointmentScheduled = "scheduled"
	AppointmentPending   = "pending"
	AppointmentCompleted = "completed"
)

// Appointment links a patient to a doctor at a scheduled datetime.
// @Description Appointment information
type Appointment struct {
	AppointmentID     uint    `json:"AppointmentID" gorm:"column:appointment_id;primaryKey" example:"1"`
	PatientID         uint    `json:"PatientID" gorm:"column:patient_id;not null" example:"1"`
	DoctorID          uint    `json:"DoctorID" gorm:"column:doctor_id;not null" example:"1"`
	DeptID            *uint   `json:"DeptID" gorm:"column:dept_id"`
	AppointmentDate   string  `json:"AppointmentDate" gorm:"column:appointment_date;not null" example:"2025-02-10 10:30:00"`
	VisitType         *string `json:"VisitType" gorm:"column:visit_type" example:"Consultation"`
	AppointmentStatus string  `json:"AppointmentStatus" gorm:"column:appointment_status;default:scheduled" example:"scheduled"`
}

func (Appointment) TableName() string { return "appointments" }

// CreateAppointmentRequest represents an appointment scheduling payload
type CreateAppointmentRequest struct {
	PatientID         uint    `json:"PatientID" example:"1"`
	DoctorID          uint    `json:"DoctorID" example:"1"`
	DeptID            *uint   `json:"DeptID,omitempty"`
	AppointmentDate   string  `json:"AppointmentDate" example:"2025-02-10 10:30:00"`
	VisitType         *string `json:"VisitType,omitempty"`
	AppointmentStatus *string `json:"AppointmentStatus,omitempty"`
}

// UpdateAppointmentRequest updates status and/or scheduled datetime.
type UpdateAppointmentRequest struct {
	AppointmentStatus *string `json:"AppointmentStatus,omitempty"`
	AppointmentDate   *string `json:"AppointmentDate,omitempty"`
}

func (r UpdateAppointmentRequest) Updates() map[string]interface{} {
	u := map[string]interface{}{}
	if r.AppointmentStatus != nil {
		u["appointment_status"] = *r.AppointmentStatus
	}
	if r.AppointmentDate != nil {
		u["appointment_date"] = *r.AppointmentDate
	}
	return u
}

// AppointmentWithDoctor is an appointment row annotated with doctor and
// department display names for patient history views.
type AppointmentWithDoctor struct {
	Appointment
	DoctorFirstName *string `json:"DoctorFirstName" gorm:"column:doctor_first_name"`
	DoctorLastName  *string `json:"DoctorLastName" gorm:"column:doctor_last_name"`
	DeptName        *string `json:"DeptName" gorm:"column:dept_name"`
}

// AppointmentDetail is the appointment detail read model with patient, doctor
// and department display fields joined in.
type AppointmentDetail struct {
	Appointment
	PatientFirstName *string `json:"PatientFirstName" gorm:"column:patient_first_name"`
	PatientLastName  *string `json:"PatientLastName" gorm:"column:patient_last_name"`
	PatientMobileNo  *string `json:"PatientMobileNo" gorm:"column:patient_mobile_no"`
	ABHAID           *string `json:"ABHA_ID" gorm:"column:abha_id"`
	PatientCity      *string `json:"PatientCity" gorm:"column:patient_city"`
	PatientState     *string `json:"PatientState" gorm:"column:patient_state"`
	DoctorFirstName  *string `json:"DoctorFirstName" gorm:"column:doctor_first_name"`
	DoctorLastName   *string `json:"DoctorLastName" gorm:"column:doctor_last_name"`
	DeptName         *string `json:"DeptName" gorm:"column:dept_name"`
}

// PendingAppointment is one row of a doctor's scheduled queue. MinutesUntil is
// computed from AppointmentDate at read time, never stored.
type PendingAppointment struct {
	AppointmentID     uint    `json:"AppointmentID" gorm:"column:appointment_id"`
	PatientID         uint    `json:"PatientID" gorm:"column:patient_id"`
	AppointmentDate   string  `json:"AppointmentDate" gorm:"column:appointment_date"`
	VisitType         *string `json:"VisitType" gorm:"column:visit_type"`
	AppointmentStatus string  `json:"AppointmentStatus" gorm:"column:appointment_status"`
	MinutesUntil      int64   `json:"MinutesUntil" gorm:"-"`
	PatientFirstName  *string `json:"PatientFirstName" gorm:"column:patient_first_name"`
	PatientLastName   *string `json:"PatientLastName" gorm:"column:patient_last_name"`
	PatientMobileNo   *string `json:"PatientMobileNo" gorm:"column:patient_mobile_no"`
	ABHAID            *string `json:"ABHA_ID" gorm:"column:abha_id"`
	LastVisitDate     *string `json:"LastVisitDate" gorm:"column:last_visit_date"`
}
