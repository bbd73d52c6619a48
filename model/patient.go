package model

// Patient represents a registered OPD patient. ABHA_ID is the external
// Ayushman Bharat Health Account reference.
// @Description Patient information
type Patient struct {
	PatientID uint    `json:"PatientID" gorm:"column:patient_id;primaryKey" example:"1"`
	ABHAID    *string `json:"ABHA_ID" gorm:"column:abha_id" example:"12-3456-7890-1234"`
	FirstName string  `json:"FirstName" gorm:"column:first_name;not null" example:"Asha"`
	LastName  *string `json:"LastName" gorm:"column:last_name" example:"Patil"`
	DOB       *string `json:"DOB" gorm:"column:dob" example:"1990-04-21"`
	Gender    *string `json:"Gender" gorm:"column:gender" example:"Female"`
	MobileNo  *string `json:"MobileNo" gorm:"column:mobile_no" example:"9876543210"`
	Address   *string `json:"Address" gorm:"column:address"`
	City      *string `json:"City" gorm:"column:city" example:"Pune"`
	State     *string `json:"State" gorm:"column:state" example:"Maharashtra"`
}

func (Patient) TableName() string { return "patients" }

// CreatePatientRequest represents a patient registration payload
type CreatePatientRequest struct {
	ABHAID    *string `json:"ABHA_ID,omitempty"`
	FirstName string  `json:"FirstName" example:"Asha"`
	LastName  *string `json:"LastName,omitempty"`
	DOB       *string `json:"DOB,omitempty"`
	Gender    *string `json:"Gender,omitempty"`
	MobileNo  *string `json:"MobileNo,omitempty"`
	Address   *string `json:"Address,omitempty"`
	City      *string `json:"City,omitempty"`
	State     *string `json:"State,omitempty"`
}

// PatientSummary is the patient list read model: latest activity timestamps
// plus distinct appointment/visit counts.
type PatientSummary struct {
	PatientID        uint    `json:"PatientID" gorm:"column:patient_id"`
	FirstName        string  `json:"FirstName" gorm:"column:first_name"`
	LastName         *string `json:"LastName" gorm:"column:last_name"`
	ABHAID           *string `json:"ABHA_ID" gorm:"column:abha_id"`
	MobileNo         *string `json:"MobileNo" gorm:"column:mobile_no"`
	City             *string `json:"City" gorm:"column:city"`
	State            *string `json:"State" gorm:"column:state"`
	LastAppointment  *string `json:"LastAppointment" gorm:"column:last_appointment"`
	LastVisit        *string `json:"LastVisit" gorm:"column:last_visit"`
	AppointmentCount int64   `json:"AppointmentCount" gorm:"column:appointment_count"`
	VisitCount       int64   `json:"VisitCount" gorm:"column:visit_count"`
}
