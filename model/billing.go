package model

// Billing statuses used by convention.
const (
	BillUnpaid  = "unpaid"
	BillPartial = "partial"
	BillPaid    = "paid"
)

// Billing tracks amount owed/paid for a visit or appointment.
// @Description Billing information
type Billing struct {
	BillID        uint    `json:"BillID" gorm:"column:bill_id;primaryKey" example:"1"`
	VisitID       *uint   `json:"VisitID" gorm:"column:visit_id"`
	AppointmentID *uint   `json:"AppointmentID" gorm:"column:appointment_id"`
	PatientID     uint    `json:"PatientID" gorm:"column:patient_id;not null" example:"1"`
	Amount        float64 `json:"Amount" gorm:"column:amount;not null" example:"200"`
	PaidAmount    float64 `json:"PaidAmount" gorm:"column:paid_amount;default:0" example:"0"`
	PaymentMethod *string `json:"PaymentMethod" gorm:"column:payment_method" example:"cash"`
	Status        string  `json:"Status" gorm:"column:status;default:unpaid" example:"unpaid"`
	BillDate      string  `json:"BillDate" gorm:"column:bill_date" example:"2025-02-10 11:00:00"`
}

func (Billing) TableName() string { return "billings" }

// CreateBillRequest represents a bill creation payload; Amount is a pointer so
// an explicit zero bill is accepted while an absent amount is rejected.
type CreateBillRequest struct {
	VisitID       *uint    `json:"VisitID,omitempty"`
	AppointmentID *uint    `json:"AppointmentID,omitempty"`
	PatientID     uint     `json:"PatientID" example:"5"`
	Amount        *float64 `json:"Amount" example:"200"`
	PaidAmount    *float64 `json:"PaidAmount,omitempty"`
	PaymentMethod *string  `json:"PaymentMethod,omitempty"`
	Status        *string  `json:"Status,omitempty"`
}

// UpdateBillRequest is a partial update; nil fields keep stored values.
type UpdateBillRequest struct {
	Amount        *float64 `json:"Amount,omitempty"`
	PaidAmount    *float64 `json:"PaidAmount,omitempty"`
	PaymentMethod *string  `json:"PaymentMethod,omitempty"`
	Status        *string  `json:"Status,omitempty"`
}

func (r UpdateBillRequest) Updates() map[string]interface{} {
	u := map[string]interface{}{}
	if r.Amount != nil {
		u["amount"] = *r.Amount
	}
	if r.PaidAmount != nil {
		u["paid_amount"] = *r.PaidAmount
	}
	if r.PaymentMethod != nil {
		u["payment_method"] = *r.PaymentMethod
	}
	if r.Status != nil {
		u["status"] = *r.Status
	}
	return u
}
