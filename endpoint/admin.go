package endpoint

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/arogyaventures/opd-server/model"
	"github.com/arogyaventures/opd-server/util"
)

// The admin surface is plain master-data CRUD: list, create, partial update.
// Nothing is ever deleted.

// ListDepartments godoc
// @Summary      List departments
// @Tags         Admin
// @Produce      json
// @Success      200 {array} model.Department
// @Failure      500 {object} map[string]string
// @Router       /api/admin/departments [get]
func ListDepartments(c *gin.Context) {
	db, ok := getDBOrAbort(c)
	if !ok {
		return
	}

	departments := []model.Department{}
	if err := db.Order("dept_name").Find(&departments).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to list departments", Err: err})
		return
	}
	util.CallSuccessOK(c, departments)
}

// ListShifts godoc
// @Summary      List shifts ordered by start time
// @Tags         Admin
// @Produce      json
// @Success      200 {array} model.Shift
// @Failure      500 {object} map[string]string
// @Router       /api/admin/shifts [get]
func ListShifts(c *gin.Context) {
	db, ok := getDBOrAbort(c)
	if !ok {
		return
	}

	shifts := []model.Shift{}
	if err := db.Order("start_time").Find(&shifts).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to list shifts", Err: err})
		return
	}
	util.CallSuccessOK(c, shifts)
}

// ListDoctorsWithDept godoc
// @Summary      List doctors with their department name
// @Tags         Admin
// @Produce      json
// @Success      200 {array} model.DoctorWithDept
// @Failure      500 {object} map[string]string
// @Router       /api/admin/doctors [get]
func ListDoctorsWithDept(c *gin.Context) {
	db, ok := getDBOrAbort(c)
	if !ok {
		return
	}

	doctors := []model.DoctorWithDept{}
	err := db.Table("doctors").
		Select("doctors.*, departments.dept_name AS dept_name").
		Joins("LEFT JOIN departments ON doctors.department_id = departments.department_id").
		Order("doctors.first_name, doctors.last_name").
		Scan(&doctors).Error
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to list doctors", Err: err})
		return
	}
	util.CallSuccessOK(c, doctors)
}

// ListStaff godoc
// @Summary      List staff with their department name
// @Tags         Admin
// @Produce      json
// @Success      200 {array} model.StaffWithDept
// @Failure      500 {object} map[string]string
// @Router       /api/admin/staff [get]
func ListStaff(c *gin.Context) {
	db, ok := getDBOrAbort(c)
	if !ok {
		return
	}

	staff := []model.StaffWithDept{}
	err := db.Table("staff").
		Select("staff.*, departments.dept_name AS dept_name").
		Joins("LEFT JOIN departments ON staff.department_id = departments.department_id").
		Order("staff.first_name, staff.last_name").
		Scan(&staff).Error
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to list staff", Err: err})
		return
	}
	util.CallSuccessOK(c, staff)
}

// ListRooms godoc
// @Summary      List rooms ordered by floor and room number
// @Tags         Admin
// @Produce      json
// @Success      200 {array} model.RoomWithDept
// @Failure      500 {object} map[string]string
// @Router       /api/admin/rooms [get]
func ListRooms(c *gin.Context) {
	db, ok := getDBOrAbort(c)
	if !ok {
		return
	}

	rooms := []model.RoomWithDept{}
	err := db.Table("rooms").
		Select("rooms.*, departments.dept_name AS dept_name").
		Joins("LEFT JOIN departments ON rooms.dept_id = departments.department_id").
		Order("rooms.floor_no, rooms.room_no").
		Scan(&rooms).Error
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to list rooms", Err: err})
		return
	}
	util.CallSuccessOK(c, rooms)
}

// CreateDepartment godoc
// @Summary      Create a department
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body model.CreateDepartmentRequest true "Department"
// @Success      201 {object} map[string]uint
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /api/admin/department [post]
func CreateDepartment(c *gin.Context) {
	var req model.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid request body", Err: err})
		return
	}
	if req.DeptName == "" {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "DeptName required",
			Err: fmt.Errorf("missing required field"),
		})
		return
	}

	db, ok := getDBOrAbort(c)
	if !ok {
		return
	}

	department := model.Department{
		DeptName:    req.DeptName,
		FloorNo:     req.FloorNo,
		Description: req.Description,
	}
	if err := db.Create(&department).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to create department", Err: err})
		return
	}
	util.CallCreated(c, "DepartmentID", department.DepartmentID)
}

// CreateShift godoc
// @Summary      Create a shift
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body model.CreateShiftRequest true "Shift"
// @Success      201 {object} map[string]uint
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /api/admin/shift [post]
func CreateShift(c *gin.Context) {
	var req model.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid request body", Err: err})
		return
	}
	if req.ShiftName == "" || req.StartTime == "" || req.EndTime == "" {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "ShiftName, StartTime, EndTime required",
			Err: fmt.Errorf("missing required field"),
		})
		return
	}

	db, ok := getDBOrAbort(c)
	if !ok {
		return
	}

	shift := model.Shift{
		ShiftName:   req.ShiftName,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Description: req.Description,
	}
	if err := db.Create(&shift).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to create shift", Err: err})
		return
	}
	util.CallCreated(c, "ShiftID", shift.ShiftID)
}

// CreateDoctor godoc
// @Summary      Register a doctor
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body model.CreateDoctorRequest true "Doctor"
// @Success      201 {object} map[string]uint
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /api/admin/doctor [post]
func CreateDoctor(c *gin.Context) {
	var req model.CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid request body", Err: err})
		return
	}
	if req.FirstName == "" {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "FirstName required",
			Err: fmt.Errorf("missing required field"),
		})
		return
	}

	db, ok := getDBOrAbort(c)
	if !ok {
		return
	}

	doctor := model.Doctor{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		DepartmentID:  req.DepartmentID,
		Qualification: req.Qualification,
		Specialty:     req.Specialty,
		MobileNo:      req.MobileNo,
		Email:         req.Email,
		ShiftID:       req.ShiftID,
		ShiftDate:     req.ShiftDate,
		RoomAssigned:  req.RoomAssigned,
	}
	if err := db.Create(&doctor).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to create doctor", Err: err})
		return
	}
	util.CallCreated(c, "DoctorID", doctor.DoctorID)
}

// CreateStaff godoc
// @Summary      Register a staff member
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body model.CreateStaffRequest true "Staff"
// @Success      201 {object} map[string]uint
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /api/admin/staff [post]
func CreateStaff(c *gin.Context) {
	var req model.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid request body", Err: err})
		return
	}
	if req.FirstName == "" {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "FirstName required",
			Err: fmt.Errorf("missing required field"),
		})
		return
	}

	db, ok := getDBOrAbort(c)
	if !ok {
		return
	}

	staff := model.Staff{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         req.Role,
		DepartmentID: req.DepartmentID,
		MobileNo:     req.MobileNo,
		Email:        req.Email,
		ShiftID:      req.ShiftID,
		ShiftDate:    req.ShiftDate,
		AssignedRoom: req.AssignedRoom,
	}
	if err := db.Create(&staff).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to create staff", Err: err})
		return
	}
	util.CallCreated(c, "StaffID", staff.StaffID)
}

// CreateRoom godoc
// @Summary      Create a room
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body model.CreateRoomRequest true "Room"
// @Success      201 {object} map[string]uint
// @Failure      500 {object} map[string]string
// @Router       /api/admin/room [post]
func CreateRoom(c *gin.Context) {
	var req model.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid request body", Err: err})
		return
	}

	db, ok := getDBOrAbort(c)
	if !ok {
		return
	}

	room := model.Room{
		DeptID:  req.DeptID,
		RoomNo:  req.RoomNo,
		FloorNo: req.FloorNo,
	}
	if err := db.Create(&room).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to create room", Err: err})
		return
	}
	util.CallCreated(c, "RoomID", room.RoomID)
}

// applyUpdates runs a partial update against one row. An empty patch is a
// no-op that still answers {ok:true}, mirroring an all-NULL COALESCE update.
func applyUpdates(c *gin.Context, entity interface{}, idColumn string, id uint, updates map[string]interface{}, failMsg string) {
	if len(updates) == 0 {
		util.CallUpdated(c)
		return
	}

	db, ok := getDBOrAbort(c)
	if !ok {
		return
	}

	err := db.Model(entity).Where(idColumn+" = ?", id).Updates(updates).Error
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: failMsg, Err: err})
		return
	}
	util.CallUpdated(c)
}

// UpdateDepartment godoc
// @Summary      Partially update a department
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        id path int true "Department ID"
// @Param        request body model.UpdateDepartmentRequest true "Fields to change"
// @Success      200 {object} map[string]bool
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /api/admin/department/{id} [patch]
func UpdateDepartment(c *gin.Context) {
	id, ok := parseIDParam(c, "department")
	if !ok {
		return
	}
	var req model.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid request body", Err: err})
		return
	}
	applyUpdates(c, &model.Department{}, "department_id", id, req.Updates(), "Failed to update department")
}

// UpdateShift godoc
// @Summary      Partially update a shift
// @Tags         Admin
// @Param        id path int true "Shift ID"
// @Success      200 {object} map[string]bool
// @Router       /api/admin/shift/{id} [patch]
func UpdateShift(c *gin.Context) {
	id, ok := parseIDParam(c, "shift")
	if !ok {
		return
	}
	var req model.UpdateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid request body", Err: err})
		return
	}
	applyUpdates(c, &model.Shift{}, "shift_id", id, req.Updates(), "Failed to update shift")
}

// UpdateDoctor godoc
// @Summary      Partially update a doctor
// @Tags         Admin
// @Param        id path int true "Doctor ID"
// @Success      200 {object} map[string]bool
// @Router       /api/admin/doctor/{id} [patch]
func UpdateDoctor(c *gin.Context) {
	id, ok := parseIDParam(c, "doctor")
	if !ok {
		return
	}
	var req model.UpdateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid request body", Err: err})
		return
	}
	applyUpdates(c, &model.Doctor{}, "doctor_id", id, req.Updates(), "Failed to update doctor")
}

// UpdateStaff godoc
// @Summary      Partially update a staff member
// @Tags         Admin
// @Param        id path int true "Staff ID"
// @Success      200 {object} map[string]bool
// @Router       /api/admin/staff/{id} [patch]
func UpdateStaff(c *gin.Context) {
	id, ok := parseIDParam(c, "staff")
	if !ok {
		return
	}
	var req model.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid request body", Err: err})
		return
	}
	applyUpdates(c, &model.Staff{}, "staff_id", id, req.Updates(), "Failed to update staff")
}

// UpdateRoom godoc
// @Summary      Partially update a room
// @Tags         Admin
// @Param        id path int true "Room ID"
// @Success      200 {object} map[string]bool
// @Router       /api/admin/room/{id} [patch]
func UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "room")
	if !ok {
		return
	}
	var req model.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid request body", Err: err})
		return
	}
	applyUpdates(c, &model.Room{}, "room_id", id, req.Updates(), "Failed to update room")
}
