package model

// Department represents an OPD unit that doctors, staff and rooms belong to.
// @Description Department information
type Department struct {
	DepartmentID uint    `json:"DepartmentID" gorm:"column:department_id;primaryKey" example:"1"`
	DeptName     string  `json:"DeptName" gorm:"column:dept_name;not null" example:"Cardiology"`
	FloorNo      *int    `json:"FloorNo" gorm:"column:floor_no" example:"2"`
	Description  *string `json:"Description" gorm:"column:description" example:"Heart and vascular care"`
}

func (Department) TableName() string { return "departments" }

// CreateDepartmentRequest represents a department creation payload
type CreateDepartmentRequest struct {
	DeptName    string  `json:"DeptName" example:"Cardiology"`
	FloorNo     *int    `json:"FloorNo,omitempty" example:"2"`
	Description *string `json:"Description,omitempty" example:"Heart and vascular care"`
}

// UpdateDepartmentRequest is a partial update; nil fields keep stored values.
type UpdateDepartmentRequest struct {
	DeptName    *string `json:"DeptName,omitempty"`
	FloorNo     *int    `json:"FloorNo,omitempty"`
	Description *string `json:"Description,omitempty"`
}

// Updates builds the column map applied to the stored row.
func (r UpdateDepartmentRequest) Updates() map[string]interface{} {
	u := map[string]interface{}{}
	if r.DeptName != nil {
		u["dept_name"] = *r.DeptName
	}
	if r.FloorNo != nil {
		u["floor_no"] = *r.FloorNo
	}
	if r.Description != nil {
		u["description"] = *r.Description
	}
	return u
}
