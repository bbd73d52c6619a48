package endpoint

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arogyaventures/opd-server/model"
	"github.com/arogyaventures/opd-server/util"
)

func fetchVisitDetail(db *gorm.DB, visitID uint) (model.VisitDetail, bool, error) {
	var visit model.VisitDetail
	result := db.Table("opd_visits").
		Select("opd_visits.*, "+
			"patients.first_name AS patient_first_name, patients.last_name AS patient_last_name, "+
			"patients.abha_id AS abha_id, patients.mobile_no AS patient_mobile_no, "+
			"doctors.first_name AS doctor_first_name, doctors.last_name AS doctor_last_name, "+
			"departments.dept_name AS dept_name").
		Joins("LEFT JOIN patients ON patients.patient_id = opd_visits.patient_id").
		Joins("LEFT JOIN doctors ON doctors.doctor_id = opd_visits.doctor_id").
		Joins("LEFT JOIN departments ON departments.department_id = doctors.department_id").
		Where("opd_visits.visit_id = ?", visitID).
		Limit(1).
		Scan(&visit)
	if result.Error != nil {
		return visit, false, result.Error
	}
	return visit, result.RowsAffected > 0, nil
}

func fetchVisitInvestigations(db *gorm.DB, visitID uint) ([]model.InvestigationOrder, error) {
	investigations := []model.InvestigationOrder{}
	err := db.Where("visit_id = ?", visitID).
		Order("ordered_date DESC, order_id DESC").
		Find(&investigations).Error
	if err != nil {
		return nil, err
	}
	return investigations, nil
}

// GetVisitInfo godoc
// @Summary      Visit details with investigation orders
// @Tags         Pathology
// @Produce      json
// @Param        id path int true "Visit ID"
// @Success      200 {object} model.PathologyVisitResponse
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /api/pathology/visit/{id} [get]
func GetVisitInfo(c *gin.Context) {
	visitID, ok := parseIDParam(c, "visit")
	if !ok {
		return
	}
	db, ok := getDBOrAbort(c)
	if !ok {
		return
	}

	visit, found, err := fetchVisitDetail(db, visitID)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to fetch visit", Err: err})
		return
	}
	if !found {
		util.CallErrorNotFound(c, util.APIErrorParams{
			Msg: "Visit not found",
			Err: fmt.Errorf("visit %d does not exist", visitID),
		})
		return
	}

	investigations, err := fetchVisitInvestigations(db, visitID)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to fetch investigations", Err: err})
		return
	}

	util.CallSuccessOK(c, model.PathologyVisitResponse{
		Visit:          visit,
		Investigations: investigations,
	})
}

// CreateInvestigation godoc
// @Summary      Order an investigation for a visit
// @Description  Requires TestCode or TestName; OrderedDate defaults to today
// @Tags         Pathology
// @Accept       json
// @Produce      json
// @Param        id path int true "Visit ID"
// @Param        request body model.CreateInvestigationRequest true "Investigation order"
// @Success      201 {object} map[string]uint
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /api/pathology/visit/{id}/investigation [post]
func CreateInvestigation(c *gin.Context) {
	visitID, ok := parseIDParam(c, "visit")
	if !ok {
		return
	}
	var req model.CreateInvestigationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid request body", Err: err})
		return
	}
	hasCode := req.TestCode != nil && *req.TestCode != ""
	hasName := req.TestName != nil && *req.TestName != ""
	if !hasCode && !hasName {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "TestCode or TestName required",
			Err: fmt.Errorf("missing required field"),
		})
		return
	}

	db, ok := getDBOrAbort(c)
	if !ok {
		return
	}

	orderedDate := todayDate()
	if req.OrderedDate != nil && *req.OrderedDate != "" {
		orderedDate = *req.OrderedDate
	}

	investigation := model.InvestigationOrder{
		VisitID:     visitID,
		TestCode:    req.TestCode,
		TestName:    req.TestName,
		OrderedDate: orderedDate,
		ResultDate:  req.ResultDate,
		ResultValue: req.ResultValue,
		Comments:    req.Comments,
	}
	if err := db.Create(&investigation).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to create investigation", Err: err})
		return
	}
	util.CallCreated(c, "OrderID", investigation.OrderID)
}

// UpdateInvestigation godoc
// @Summary      Record an investigation result
// @Tags         Pathology
// @Accept       json
// @Produce      json
// @Param        id path int true "Order ID"
// @Param        request body model.UpdateInvestigationRequest true "Result fields"
// @Success      200 {object} map[string]bool
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /api/pathology/investigation/{id} [patch]
func UpdateInvestigation(c *gin.Context) {
	orderID, ok := parseIDParam(c, "order")
	if !ok {
		return
	}
	var req model.UpdateInvestigationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid request body", Err: err})
		return
	}
	applyUpdates(c, &model.InvestigationOrder{}, "order_id", orderID, req.Updates(), "Failed to update investigation")
}
