package model

// Shift is a named working window assigned to doctors and staff.
type Shift struct {
	ShiftID     uint    `json:"ShiftID" gorm:"column:shift_id;primaryKey" example:"1"`
	ShiftName   string  `json:"ShiftName" gorm:"column:shift_name;not null" example:"Morning"`
	StartTime   string  `json:"StartTime" gorm:"column:start_time;not null" example:"08:00"`
	EndTime     string  `json:"EndTime" gorm:"column:end_time;not null" example:"14:00"`
	Description *string `json:"Description" gorm:"column:description"`
}

func (Shift) TableName() string { return "shifts" }

// CreateShiftRequest represents a shift creation payload
type CreateShiftRequest struct {
	ShiftName   string  `json:"ShiftName" example:"Morning"`
	StartTime   string  `json:"StartTime" example:"08:00"`
	EndTime     string  `json:"EndTime" example:"14:00"`
	Description *string `json:"Description,omitempty"`
}

// UpdateShiftRequest is a partial update; nil fields keep stored values.
type UpdateShiftRequest struct {
	ShiftName   *string `json:"ShiftName,omitempty"`
	StartTime   *string `json:"StartTime,omitempty"`
	EndTime     *string `json:"EndTime,omitempty"`
	Description *string `json:"Description,omitempty"`
}

func (r UpdateShiftRequest) Updates() map[string]interface{} {
	u := map[string]interface{}{}
	if r.ShiftName != nil {
		u["shift_name"] = *r.ShiftName
	}
	if r.StartTime != nil {
		u["start_time"] = *r.StartTime
	}
	if r.EndTime != nil {
		u["end_time"] = *r.EndTime
	}
	if r.Description != nil {
		u["description"] = *r.Description
	}
	return u
}
