package model

// InvestigationOrder is a lab/diagnostic test ordered against a visit, with an
// eventual result.
type InvestigationOrder struct {
	OrderID     uint    `json:"OrderID" gorm:"column:order_id;primaryKey" example:"1"`
	VisitID     uint    `json:"VisitID" gorm:"column:visit_id;not null" example:"1"`
	TestCode    *string `json:"TestCode" gorm:"column:test_code" example:"CBC"`
	TestName    *string `json:"TestName" gorm:"column:test_name" example:"Complete Blood Count"`
	OrderedDate string  `json:"OrderedDate" gorm:"column:ordered_date" example:"2025-02-10"`
	ResultDate  *string `json:"ResultDate" gorm:"column:result_date" example:"2025-02-11"`
	ResultValue *string `json:"ResultValue" gorm:"column:result_value"`
	Comments    *string `json:"Comments" gorm:"column:comments"`
}

func (InvestigationOrder) TableName() string { return "investigation_orders" }

// CreateInvestigationRequest represents an investigation order payload; the
// visit comes from the URL, and at least one of TestCode/TestName is required.
type CreateInvestigationRequest struct {
	TestCode    *string `json:"TestCode,omitempty" example:"CBC"`
	TestName    *string `json:"TestName,omitempty" example:"Complete Blood Count"`
	OrderedDate *string `json:"OrderedDate,omitempty"`
	ResultDate  *string `json:"ResultDate,omitempty"`
	ResultValue *string `json:"ResultValue,omitempty"`
	Comments    *string `json:"Comments,omitempty"`
}

// UpdateInvestigationRequest updates the result fields; nil fields keep
// stored values.
type UpdateInvestigationRequest struct {
	ResultDate  *string `json:"ResultDate,omitempty"`
	ResultValue *string `json:"ResultValue,omitempty"`
	Comments    *string `json:"Comments,omitempty"`
}

func (r UpdateInvestigationRequest) Updates() map[string]interface{} {
	u := map[string]interface{}{}
	if r.ResultDate != nil {
		u["result_date"] = *r.ResultDate
	}
	if r.ResultValue != nil {
		u["result_value"] = *r.ResultValue
	}
	if r.Comments != nil {
		u["comments"] = *r.Comments
	}
	return u
}

// InvestigationWithVisit annotates an order with its visit's datetime and
// doctor for appointment-centric views.
type InvestigationWithVisit struct {
	InvestigationOrder
	VisitDateTime *string `json:"VisitDateTime" gorm:"column:visit_date_time"`
	DoctorID      *uint   `json:"DoctorID" gorm:"column:doctor_id"`
}
