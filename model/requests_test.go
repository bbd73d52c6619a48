package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

// Nil request fields stay out of the column map, so gorm never touches the
// stored value.
func TestUpdateDepartmentRequest_Updates(t *testing.T) {
	assert.Empty(t, UpdateDepartmentRequest{}.Updates())

	u := UpdateDepartmentRequest{DeptName: strPtr("Cardiology"), FloorNo: intPtr(2)}.Updates()
	assert.Equal(t, map[string]interface{}{"dept_name": "Cardiology", "floor_no": 2}, u)
}

func TestUpdateVisitRequest_Updates(t *testing.T) {
	u := UpdateVisitRequest{Diagnosis: strPtr("Dengue")}.Updates()
	assert.Equal(t, map[string]interface{}{"diagnosis": "Dengue"}, u)
	assert.NotContains(t, u, "remarks")
}

// An explicit empty string is a deliberate clear, not an omission.
func TestUpdateVisitRequest_EmptyStringClears(t *testing.T) {
	u := UpdateVisitRequest{Remarks: strPtr("")}.Updates()
	assert.Equal(t, map[string]interface{}{"remarks": ""}, u)
}

func TestUpdateBillRequest_Updates(t *testing.T) {
	u := UpdateBillRequest{PaidAmount: floatPtr(0), Status: strPtr(BillPaid)}.Updates()
	assert.Equal(t, map[string]interface{}{"paid_amount": 0.0, "status": "paid"}, u)
}

func TestUpdateAppointmentRequest_Updates(t *testing.T) {
	assert.Empty(t, UpdateAppointmentRequest{}.Updates())

	u := UpdateAppointmentRequest{AppointmentStatus: strPtr(AppointmentCompleted)}.Updates()
	assert.Equal(t, map[string]interface{}{"appointment_status": "completed"}, u)
}

func TestUpdateInvestigationRequest_Updates(t *testing.T) {
	u := UpdateInvestigationRequest{ResultValue: strPtr("WBC 9.2"), ResultDate: strPtr("2025-02-11")}.Updates()
	assert.Equal(t, map[string]interface{}{"result_value": "WBC 9.2", "result_date": "2025-02-11"}, u)
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "departments", Department{}.TableName())
	assert.Equal(t, "shifts", Shift{}.TableName())
	assert.Equal(t, "doctors", Doctor{}.TableName())
	assert.Equal(t, "staff", Staff{}.TableName())
	assert.Equal(t, "rooms", Room{}.TableName())
	assert.Equal(t, "patients", Patient{}.TableName())
	assert.Equal(t, "appointments", Appointment{}.TableName())
	assert.Equal(t, "opd_visits", OPDVisit{}.TableName())
	assert.Equal(t, "investigation_orders", InvestigationOrder{}.TableName())
	assert.Equal(t, "billings", Billing{}.TableName())
}
