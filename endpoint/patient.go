package endpoint

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arogyaventures/opd-server/model"
	"github.com/arogyaventures/opd-server/util"
)

func fetchPatientSummaries(db *gorm.DB) ([]model.PatientSummary, error) {
	patients := []model.PatientSummary{}
	err := db.Table("patients").
		Select("patients.patient_id, patients.first_name, patients.last_name, patients.abha_id, " +
			"patients.mobile_no, patients.city, patients.state, " +
			"MAX(appointments.appointment_date) AS last_appointment, " +
			"MAX(opd_visits.visit_date_time) AS last_visit, " +
			"COUNT(DISTINCT appointments.appointment_id) AS appointment_count, " +
			"COUNT(DISTINCT opd_visits.visit_id) AS visit_count").
		Joins("LEFT JOIN appointments ON appointments.patient_id = patients.patient_id").
		Joins("LEFT JOIN opd_visits ON opd_visits.patient_id = patients.patient_id").
		Group("patients.patient_id").
		Order("patients.first_name, patients.last_name").
		Scan(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func fetchPatientAppointments(db *gorm.DB, patientID uint) ([]model.AppointmentWithDoctor, error) {
	appointments := []model.AppointmentWithDoctor{}
	err := db.Table("appointments").
		Select("appointments.*, doctors.first_name AS doctor_first_name, "+
			"doctors.last_name AS doctor_last_name, departments.dept_name AS dept_name").
		Joins("LEFT JOIN doctors ON appointments.doctor_id = doctors.doctor_id").
		Joins("LEFT JOIN departments ON appointments.dept_id = departments.department_id").
		Where("appointments.patient_id = ?", patientID).
		Order("appointments.appointment_date DESC").
		Limit(historyLimit).
		Scan(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func fetchPatientVisits(db *gorm.DB, patientID uint) ([]model.VisitWithDoctor, error) {
	visits := []model.VisitWithDoctor{}
	err := db.Table("opd_visits").
		Select("opd_visits.*, doctors.first_name AS doctor_first_name, doctors.last_name AS doctor_last_name").
		Joins("LEFT JOIN doctors ON opd_visits.doctor_id = doctors.doctor_id").
		Where("opd_visits.patient_id = ?", patientID).
		Order("opd_visits.visit_date_time DESC").
		Limit(historyLimit).
		Scan(&visits).Error
	if err != nil {
		return nil, err
	}
	return visits, nil
}

// fetchPatientInvestigations reaches investigation orders through the
// patient's visits.
func fetchPatientInvestigations(db *gorm.DB, patientID uint) ([]model.InvestigationOrder, error) {
	investigations := []model.InvestigationOrder{}
	err := db.Table("investigation_orders").
		Select("investigation_orders.*").
		Joins("INNER JOIN opd_visits ON investigation_orders.visit_id = opd_visits.visit_id").
		Where("opd_visits.patient_id = ?", patientID).
		Order("investigation_orders.ordered_date DESC").
		Limit(historyLimit).
		Scan(&investigations).Error
	if err != nil {
		return nil, err
	}
	return investigations, nil
}

func fetchPatientBilling(db *gorm.DB, patientID uint) ([]model.Billing, error) {
	billing := []model.Billing{}
	err := db.Where("patient_id = ?", patientID).
		Order("bill_date DESC").
		Limit(historyLimit).
		Find(&billing).Error
	if err != nil {
		return nil, err
	}
	return billing, nil
}

// ListPatients godoc
// @Summary      List patients with latest activity
// @Tags         Patient
// @Produce      json
// @Success      200 {array} model.PatientSummary
// @Failure      500 {object} map[string]string
// @Router       /api/patient [get]
func ListPatients(c *gin.Context) {
	db, ok := getDBOrAbort(c)
	if !ok {
		return
	}

	patients, err := fetchPatientSummaries(db)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to list patients", Err: err})
		return
	}
	util.CallSuccessOK(c, patients)
}

// GetPatientInfo godoc
// @Summary      Patient details with full history
// @Description  The patient row plus appointments, visits, investigations and billing, each capped at the most recent 50
// @Tags         Patient
// @Produce      json
// @Param        id path int true "Patient ID"
// @Success      200 {object} model.PatientDetailResponse
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /api/patient/{id} [get]
func GetPatientInfo(c *gin.Context) {
	patientID, ok := parseIDParam(c, "patient")
	if !ok {
		return
	}
	db, ok := getDBOrAbort(c)
	if !ok {
		return
	}

	var patient model.Patient
	if err := db.First(&patient, patientID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.CallErrorNotFound(c, util.APIErrorParams{
				Msg: "Patient not found",
				Err: fmt.Errorf("patient %d does not exist", patientID),
			})
			return
		}
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to fetch patient", Err: err})
		return
	}

	appointments, err := fetchPatientAppointments(db, patientID)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to fetch appointments", Err: err})
		return
	}
	visits, err := fetchPatientVisits(db, patientID)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to fetch visits", Err: err})
		return
	}
	investigations, err := fetchPatientInvestigations(db, patientID)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to fetch investigations", Err: err})
		return
	}
	billing, err := fetchPatientBilling(db, patientID)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to fetch billing", Err: err})
		return
	}

	util.CallSuccessOK(c, model.PatientDetailResponse{
		Patient:        patient,
		Appointments:   appointments,
		Visits:         visits,
		Investigations: investigations,
		Billing:        billing,
	})
}
