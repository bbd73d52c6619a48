package model

// Room is a consultation room belonging to a department.
type Room struct {
	RoomID  uint    `json:"RoomID" gorm:"column:room_id;primaryKey" example:"1"`
	DeptID  *uint   `json:"DeptID" gorm:"column:dept_id"`
	RoomNo  *string `json:"RoomNo" gorm:"column:room_no" example:"204"`
	FloorNo *int    `json:"FloorNo" gorm:"column:floor_no" example:"2"`
}

func (Room) TableName() string { return "rooms" }

// CreateRoomRequest represents a room creation payload; every field is optional.
type CreateRoomRequest struct {
	DeptID  *uint   `json:"DeptID,omitempty"`
	RoomNo  *string `json:"RoomNo,omitempty"`
	FloorNo *int    `json:"FloorNo,omitempty"`
}

// UpdateRoomRequest is a partial update; nil fields keep stored values.
type UpdateRoomRequest struct {
	DeptID  *uint   `json:"DeptID,omitempty"`
	RoomNo  *string `json:"RoomNo,omitempty"`
	FloorNo *int    `json:"FloorNo,omitempty"`
}

func (r UpdateRoomRequest) Updates() map[string]interface{} {
	u := map[string]interface{}{}
	if r.DeptID != nil {
		u["dept_id"] = *r.DeptID
	}
	if r.RoomNo != nil {
		u["room_no"] = *r.RoomNo
	}
	if r.FloorNo != nil {
		u["floor_no"] = *r.FloorNo
	}
	return u
}

// RoomWithDept is the room list read model with the department name joined in.
type RoomWithDept struct {
	Room
	DeptName *string `json:"DeptName" gorm:"column:dept_name"`
}
