package endpoint

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arogyaventures/opd-server/model"
	"github.com/arogyaventures/opd-server/util"
)

func fetchDoctorSummaries(db *gorm.DB) ([]model.DoctorSummary, error) {
	doctors := []model.DoctorSummary{}
	err := db.Table("doctors").
		Select("doctors.doctor_id, doctors.first_name, doctors.last_name, doctors.qualification, " +
			"doctors.specialty, doctors.mobile_no, doctors.email, doctors.room_assigned, " +
			"departments.dept_name AS dept_name, shifts.shift_name AS shift_name, " +
			"shifts.start_time AS start_time, shifts.end_time AS end_time, " +
			"COUNT(DISTINCT appointments.appointment_id) AS appointment_count, " +
			"COUNT(DISTINCT opd_visits.visit_id) AS visit_count").
		Joins("LEFT JOIN departments ON doctors.department_id = departments.department_id").
		Joins("LEFT JOIN shifts ON doctors.shift_id = shifts.shift_id").
		Joins("LEFT JOIN appointments ON appointments.doctor_id = doctors.doctor_id").
		Joins("LEFT JOIN opd_visits ON opd_visits.doctor_id = doctors.doctor_id").
		Group("doctors.doctor_id").
		Order("doctors.first_name, doctors.last_name").
		Scan(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func fetchDoctorDetail(db *gorm.DB, doctorID uint) (model.DoctorDetail, bool, error) {
	var doctor model.DoctorDetail
	result := db.Table("doctors").
		Select("doctors.*, departments.dept_name AS dept_name, shifts.shift_name AS shift_name, "+
			"shifts.start_time AS start_time, shifts.end_time AS end_time").
		Joins("LEFT JOIN departments ON doctors.department_id = departments.department_id").
		Joins("LEFT JOIN shifts ON doctors.shift_id = shifts.shift_id").
		Where("doctors.doctor_id = ?", doctorID).
		Limit(1).
		Scan(&doctor)
	if result.Error != nil {
		return doctor, false, result.Error
	}
	return doctor, result.RowsAffected > 0, nil
}

// fetchPendingAppointments returns a doctor's still-scheduled queue, soonest
// first, annotated with the patient's most recent visit date.
func fetchPendingAppointments(db *gorm.DB, doctorID uint) ([]model.PendingAppointment, error) {
	pending := []model.PendingAppointment{}
	err := db.Table("appointments").
		Select("appointments.appointment_id, appointments.patient_id, appointments.appointment_date, "+
			"appointments.visit_type, appointments.appointment_status, "+
			"patients.first_name AS patient_first_name, patients.last_name AS patient_last_name, "+
			"patients.mobile_no AS patient_mobile_no, patients.abha_id AS abha_id, "+
			"(SELECT MAX(v.visit_date_time) FROM opd_visits v WHERE v.patient_id = appointments.patient_id) AS last_visit_date").
		Joins("LEFT JOIN patients ON patients.patient_id = appointments.patient_id").
		Where("appointments.doctor_id = ? AND appointments.appointment_status = ?", doctorID, model.AppointmentScheduled).
		Order("appointments.appointment_date ASC").
		Limit(pendingLimit).
		Scan(&pending).Error
	if err != nil {
		return nil, err
	}
	for i := range pending {
		pending[i].MinutesUntil = minutesUntil(pending[i].AppointmentDate)
	}
	return pending, nil
}

func fetchDoctorVisits(db *gorm.DB, doctorID uint) ([]model.VisitWithPatient, error) {
	visits := []model.VisitWithPatient{}
	err := db.Table("opd_visits").
		Select("opd_visits.*, patients.first_name AS patient_first_name, patients.last_name AS patient_last_name").
		Joins("LEFT JOIN patients ON opd_visits.patient_id = patients.patient_id").
		Where("opd_visits.doctor_id = ?", doctorID).
		Order("opd_visits.visit_date_time DESC").
		Limit(historyLimit).
		Scan(&visits).Error
	if err != nil {
		return nil, err
	}
	return visits, nil
}

// ListDoctors godoc
// @Summary      List doctors with appointment and visit counts
// @Tags         Doctor
// @Produce      json
// @Success      200 {array} model.DoctorSummary
// @Failure      500 {object} map[string]string
// @Router       /api/doctor [get]
func ListDoctors(c *gin.Context) {
	db, ok := getDBOrAbort(c)
	if !ok {
		return
	}

	doctors, err := fetchDoctorSummaries(db)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to list doctors", Err: err})
		return
	}
	util.CallSuccessOK(c, doctors)
}

// GetDoctorInfo godoc
// @Summary      Doctor profile with pending appointments and recent visits
// @Tags         Doctor
// @Produce      json
// @Param        id path int true "Doctor ID"
// @Success      200 {object} model.DoctorDetailResponse
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /api/doctor/{id} [get]
func GetDoctorInfo(c *gin.Context) {
	doctorID, ok := parseIDParam(c, "doctor")
	if !ok {
		return
	}
	db, ok := getDBOrAbort(c)
	if !ok {
		return
	}

	doctor, found, err := fetchDoctorDetail(db, doctorID)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to fetch doctor", Err: err})
		return
	}
	if !found {
		util.CallErrorNotFound(c, util.APIErrorParams{
			Msg: "Doctor not found",
			Err: fmt.Errorf("doctor %d does not exist", doctorID),
		})
		return
	}

	pending, err := fetchPendingAppointments(db, doctorID)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to fetch pending appointments", Err: err})
		return
	}

	visits, err := fetchDoctorVisits(db, doctorID)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to fetch visits", Err: err})
		return
	}

	util.CallSuccessOK(c, model.DoctorDetailResponse{
		Doctor:              doctor,
		PendingAppointments: pending,
		Visits:              visits,
	})
}

// CreateVisit godoc
// @Summary      Record an OPD visit
// @Description  Creates a consultation record, optionally linked to the appointment it came from
// @Tags         Doctor
// @Accept       json
// @Produce      json
// @Param        request body model.CreateVisitRequest true "Visit"
// @Success      201 {object} map[string]uint
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /api/doctor/visit [post]
func CreateVisit(c *gin.Context) {
	var req model.CreateVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid request body", Err: err})
		return
	}
	if req.PatientID == 0 || req.DoctorID == 0 {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "PatientID and DoctorID are required",
			Err: fmt.Errorf("missing required field"),
		})
		return
	}

	db, ok := getDBOrAbort(c)
	if !ok {
		return
	}

	visitDateTime := nowDateTime()
	if req.VisitDateTime != nil && *req.VisitDateTime != "" {
		visitDateTime = *req.VisitDateTime
	}

	visit := model.OPDVisit{
		AppointmentID:        req.AppointmentID,
		PatientID:            req.PatientID,
		DoctorID:             req.DoctorID,
		VisitDateTime:        visitDateTime,
		Diagnosis:            req.Diagnosis,
		PrescribedMedication: req.PrescribedMedication,
		NextVisitDate:        req.NextVisitDate,
		Remarks:              req.Remarks,
	}
	if err := db.Create(&visit).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to create visit", Err: err})
		return
	}
	util.CallCreated(c, "VisitID", visit.VisitID)
}

// UpdateVisit godoc
// @Summary      Update a visit's clinical fields
// @Tags         Doctor
// @Accept       json
// @Produce      json
// @Param        id path int true "Visit ID"
// @Param        request body model.UpdateVisitRequest true "Fields to change"
// @Success      200 {object} map[string]bool
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /api/doctor/visit/{id} [patch]
func UpdateVisit(c *gin.Context) {
	visitID, ok := parseIDParam(c, "visit")
	if !ok {
		return
	}
	var req model.UpdateVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid request body", Err: err})
		return
	}

	updates := req.Updates()
	if len(updates) == 0 {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "No fields to update",
			Err: fmt.Errorf("empty update payload"),
		})
		return
	}

	db, ok := getDBOrAbort(c)
	if !ok {
		return
	}

	if err := db.Model(&model.OPDVisit{}).Where("visit_id = ?", visitID).Updates(updates).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to update visit", Err: err})
		return
	}
	util.CallUpdated(c)
}
