package endpoint

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arogyaventures/opd-server/model"
	"github.com/arogyaventures/opd-server/util"
)

func fetchAppointmentDetail(db *gorm.DB, appointmentID uint) (model.AppointmentDetail, bool, error) {
	var appointment model.AppointmentDetail
	result := db.Table("appointments").
		Select("appointments.*, "+
			"patients.first_name AS patient_first_name, patients.last_name AS patient_last_name, "+
			"patients.mobile_no AS patient_mobile_no, patients.abha_id AS abha_id, "+
			"patients.city AS patient_city, patients.state AS patient_state, "+
			"doctors.first_name AS doctor_first_name, doctors.last_name AS doctor_last_name, "+
			"departments.dept_name AS dept_name").
		Joins("LEFT JOIN patients ON patients.patient_id = appointments.patient_id").
		Joins("LEFT JOIN doctors ON doctors.doctor_id = appointments.doctor_id").
		Joins("LEFT JOIN departments ON departments.department_id = appointments.dept_id").
		Where("appointments.appointment_id = ?", appointmentID).
		Limit(1).
		Scan(&appointment)
	if result.Error != nil {
		return appointment, false, result.Error
	}
	return appointment, result.RowsAffected > 0, nil
}

func fetchAppointmentVisits(db *gorm.DB, appointmentID uint) ([]model.VisitWithDoctor, error) {
	visits := []model.VisitWithDoctor{}
	err := db.Table("opd_visits").
		Select("opd_visits.*, doctors.first_name AS doctor_first_name, doctors.last_name AS doctor_last_name").
		Joins("LEFT JOIN doctors ON doctors.doctor_id = opd_visits.doctor_id").
		Where("opd_visits.appointment_id = ?", appointmentID).
		Order("opd_visits.visit_date_time DESC").
		Scan(&visits).Error
	if err != nil {
		return nil, err
	}
	return visits, nil
}

// fetchAppointmentInvestigations reaches orders through the appointment's
// visits and annotates each with its visit's datetime and doctor.
func fetchAppointmentInvestigations(db *gorm.DB, appointmentID uint) ([]model.InvestigationWithVisit, error) {
	investigations := []model.InvestigationWithVisit{}
	err := db.Table("investigation_orders").
		Select("investigation_orders.*, opd_visits.visit_date_time AS visit_date_time, opd_visits.doctor_id AS doctor_id").
		Joins("LEFT JOIN opd_visits ON opd_visits.visit_id = investigation_orders.visit_id").
		Where("opd_visits.appointment_id = ?", appointmentID).
		Order("investigation_orders.ordered_date DESC, investigation_orders.order_id DESC").
		Scan(&investigations).Error
	if err != nil {
		return nil, err
	}
	return investigations, nil
}

func fetchAppointmentBilling(db *gorm.DB, appointmentID uint) ([]model.Billing, error) {
	billing := []model.Billing{}
	err := db.Where("appointment_id = ?", appointmentID).
		Order("bill_date DESC").
		Find(&billing).Error
	if err != nil {
		return nil, err
	}
	return billing, nil
}

// GetAppointmentInfo godoc
// @Summary      Appointment details with visits, investigations and billing
// @Tags         Appointment
// @Produce      json
// @Param        id path int true "Appointment ID"
// @Success      200 {object} model.AppointmentDetailResponse
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /api/appointment/{id} [get]
func GetAppointmentInfo(c *gin.Context) {
	appointmentID, ok := parseIDParam(c, "appointment")
	if !ok {
		return
	}
	db, ok := getDBOrAbort(c)
	if !ok {
		return
	}

	appointment, found, err := fetchAppointmentDetail(db, appointmentID)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to fetch appointment", Err: err})
		return
	}
	if !found {
		util.CallErrorNotFound(c, util.APIErrorParams{
			Msg: "Appointment not found",
			Err: fmt.Errorf("appointment %d does not exist", appointmentID),
		})
		return
	}

	visits, err := fetchAppointmentVisits(db, appointmentID)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to fetch visits", Err: err})
		return
	}
	investigations, err := fetchAppointmentInvestigations(db, appointmentID)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to fetch investigations", Err: err})
		return
	}
	billing, err := fetchAppointmentBilling(db, appointmentID)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to fetch billing", Err: err})
		return
	}

	util.CallSuccessOK(c, model.AppointmentDetailResponse{
		Appointment:    appointment,
		Visits:         visits,
		Investigations: investigations,
		Billing:        billing,
	})
}

// UpdateAppointment godoc
// @Summary      Update appointment status and/or scheduled datetime
// @Description  Any status value may be set from any other; transitions are a convention, not a constraint
// @Tags         Appointment
// @Accept       json
// @Produce      json
// @Param        id path int true "Appointment ID"
// @Param        request body model.UpdateAppointmentRequest true "Fields to change"
// @Success      200 {object} map[string]bool
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /api/appointment/{id} [patch]
func UpdateAppointment(c *gin.Context) {
	appointmentID, ok := parseIDParam(c, "appointment")
	if !ok {
		return
	}
	var req model.UpdateAppointmentRequest
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

	if err := db.Model(&model.Appointment{}).Where("appointment_id = ?", appointmentID).Updates(updates).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to update appointment", Err: err})
		return
	}
	util.CallUpdated(c)
}
