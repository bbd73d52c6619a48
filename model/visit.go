package model

// OPDVisit records a consultation, optionally originating from an appointment.
// @Description OPD visit information
type OPDVisit struct {
	VisitID              uint    `json:"VisitID" gorm:"column:visit_id;primaryKey" example:"1"`
	AppointmentID        *uint   `json:"AppointmentID" gorm:"column:appointment_id"`
	PatientID            uint    `json:"PatientID" gorm:"column:patient_id;not null" example:"1"`
	DoctorID             uint    `json:"DoctorID" gorm:"column:doctor_id;not null" example:"1"`
	VisitDateTime        string  `json:"VisitDateTime" gorm:"column:visit_date_time;not null" example:"2025-02-10 10:45:00"`
	Diagnosis            *string `json:"Diagnosis" gorm:"column:diagnosis" example:"Viral fever"`
	PrescribedMedication *string `json:"PrescribedMedication" gorm:"column:prescribed_medication" example:"Paracetamol 500mg"`
	NextVisitDate        *string `json:"NextVisitDate" gorm:"column:next_visit_date" example:"2025-02-17"`
	Remarks              *string `json:"Remarks" gorm:"column:remarks"`
}

func (OPDVisit) TableName() string { return "opd_visits" }

// CreateVisitRequest represents an OPD visit creation payload
type CreateVisitRequest struct {
	AppointmentID        *uint   `json:"AppointmentID,omitempty"`
	PatientID            uint    `json:"PatientID" example:"1"`
	DoctorID             uint    `json:"DoctorID" example:"1"`
	VisitDateTime        *string `json:"VisitDateTime,omitempty"`
	Diagnosis            *string `json:"Diagnosis,omitempty"`
	PrescribedMedication *string `json:"PrescribedMedication,omitempty"`
	NextVisitDate        *string `json:"NextVisitDate,omitempty"`
	Remarks              *string `json:"Remarks,omitempty"`
}

// UpdateVisitRequest is a partial update of the clinical fields; nil fields
// keep stored values.
type UpdateVisitRequest struct {
	Diagnosis            *string `json:"Diagnosis,omitempty"`
	PrescribedMedication *string `json:"PrescribedMedication,omitempty"`
	NextVisitDate        *string `json:"NextVisitDate,omitempty"`
	Remarks              *string `json:"Remarks,omitempty"`
}

func (r UpdateVisitRequest) Updates() map[string]interface{} {
	u := map[string]interface{}{}
	if r.Diagnosis != nil {
		u["diagnosis"] = *r.Diagnosis
	}
	if r.PrescribedMedication != nil {
		u["prescribed_medication"] = *r.PrescribedMedication
	}
	if r.NextVisitDate != nil {
		u["next_visit_date"] = *r.NextVisitDate
	}
	if r.Remarks != nil {
		u["remarks"] = *r.Remarks
	}
	return u
}

// VisitWithPatient annotates a visit with the patient's name for doctor views.
type VisitWithPatient struct {
	OPDVisit
	PatientFirstName *string `json:"PatientFirstName" gorm:"column:patient_first_name"`
	PatientLastName  *string `json:"PatientLastName" gorm:"column:patient_last_name"`
}

// VisitWithDoctor annotates a visit with the doctor's name for patient views.
type VisitWithDoctor struct {
	OPDVisit
	DoctorFirstName *string `json:"DoctorFirstName" gorm:"column:doctor_first_name"`
	DoctorLastName  *string `json:"DoctorLastName" gorm:"column:doctor_last_name"`
}

// VisitDetail is the pathology read model: a visit joined with patient,
// doctor and department display fields.
type VisitDetail struct {
	OPDVisit
	PatientFirstName *string `json:"PatientFirstName" gorm:"column:patient_first_name"`
	PatientLastName  *string `json:"PatientLastName" gorm:"column:patient_last_name"`
	ABHAID           *string `json:"ABHA_ID" gorm:"column:abha_id"`
	PatientMobileNo  *string `json:"PatientMobileNo" gorm:"column:patient_mobile_no"`
	DoctorFirstName  *string `json:"DoctorFirstName" gorm:"column:doctor_first_name"`
	DoctorLastName   *string `json:"DoctorLastName" gorm:"column:doctor_last_name"`
	DeptName         *string `json:"DeptName" gorm:"column:dept_name"`
}
