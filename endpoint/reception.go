package endpoint

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/arogyaventures/opd-server/model"
	"github.com/arogyaventures/opd-server/util"
)

// CreatePatient godoc
// @Summary      Register a new patient
// @Tags         Reception
// @Accept       json
// @Produce      json
// @Param        request body model.CreatePatientRequest true "Patient information"
// @Success      201 {object} map[string]uint
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /api/reception/patient [post]
func CreatePatient(c *gin.Context) {
	var req model.CreatePatientRequest
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

	patient := model.Patient{
		ABHAID:    req.ABHAID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		DOB:       req.DOB,
		Gender:    req.Gender,
		MobileNo:  req.MobileNo,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
	}
	if err := db.Create(&patient).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to create patient", Err: err})
		return
	}
	util.CallCreated(c, "PatientID", patient.PatientID)
}

// CreateAppointment godoc
// @Summary      Schedule an appointment
// @Tags         Reception
// @Accept       json
// @Produce      json
// @Param        request body model.CreateAppointmentRequest true "Appointment"
// @Success      201 {object} map[string]uint
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /api/reception/appointment [post]
func CreateAppointment(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid request body", Err: err})
		return
	}
	if req.PatientID == 0 || req.DoctorID == 0 || req.AppointmentDate == "" {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "PatientID, DoctorID and AppointmentDate are required",
			Err: fmt.Errorf("missing required field"),
		})
		return
	}

	db, ok := getDBOrAbort(c)
	if !ok {
		return
	}

	status := model.AppointmentScheduled
	if req.AppointmentStatus != nil && *req.AppointmentStatus != "" {
		status = *req.AppointmentStatus
	}

	appointment := model.Appointment{
		PatientID:         req.PatientID,
		DoctorID:          req.DoctorID,
		DeptID:            req.DeptID,
		AppointmentDate:   req.AppointmentDate,
		VisitType:         req.VisitType,
		AppointmentStatus: status,
	}
	if err := db.Create(&appointment).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to create appointment", Err: err})
		return
	}
	util.CallCreated(c, "AppointmentID", appointment.AppointmentID)
}

// CreateBill godoc
// @Summary      Raise a bill
// @Description  PaidAmount defaults to zero and Status to "unpaid"
// @Tags         Reception
// @Accept       json
// @Produce      json
// @Param        request body model.CreateBillRequest true "Bill"
// @Success      201 {object} map[string]uint
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /api/reception/billing [post]
func CreateBill(c *gin.Context) {
	var req model.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid request body", Err: err})
		return
	}
	if req.PatientID == 0 || req.Amount == nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "PatientID and Amount are required",
			Err: fmt.Errorf("missing required field"),
		})
		return
	}

	db, ok := getDBOrAbort(c)
	if !ok {
		return
	}

	paidAmount := 0.0
	if req.PaidAmount != nil {
		paidAmount = *req.PaidAmount
	}
	status := model.BillUnpaid
	if req.Status != nil && *req.Status != "" {
		status = *req.Status
	}

	bill := model.Billing{
		VisitID:       req.VisitID,
		AppointmentID: req.AppointmentID,
		PatientID:     req.PatientID,
		Amount:        *req.Amount,
		PaidAmount:    paidAmount,
		PaymentMethod: req.PaymentMethod,
		Status:        status,
		BillDate:      nowDateTime(),
	}
	if err := db.Create(&bill).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to create bill", Err: err})
		return
	}
	util.CallCreated(c, "BillID", bill.BillID)
}

// UpdateBill godoc
// @Summary      Partially update a bill
// @Tags         Reception
// @Accept       json
// @Produce      json
// @Param        id path int true "Bill ID"
// @Param        request body model.UpdateBillRequest true "Fields to change"
// @Success      200 {object} map[string]bool
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /api/reception/billing/{id} [patch]
func UpdateBill(c *gin.Context) {
	billID, ok := parseIDParam(c, "bill")
	if !ok {
		return
	}
	var req model.UpdateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid request body", Err: err})
		return
	}
	applyUpdates(c, &model.Billing{}, "bill_id", billID, req.Updates(), "Failed to update bill")
}
