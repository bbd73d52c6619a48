package client_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arogyaventures/opd-server/client"
	"github.com/arogyaventures/opd-server/model"
)

func TestAdminPanel_LoadAndCreate(t *testing.T) {
	api := newTestServer(t)
	panel := client.NewAdminPanel(api)

	assert.NoError(t, panel.Load())
	assert.Empty(t, panel.Departments)

	panel.DepartmentForm = model.CreateDepartmentRequest{DeptName: "Cardiology"}
	id, err := panel.AddDepartment()
	assert.NoError(t, err)
	assert.NotZero(t, id)
	// The form resets after a successful create.
	assert.Empty(t, panel.DepartmentForm.DeptName)

	assert.NoError(t, panel.Load())
	assert.Len(t, panel.Departments, 1)
	assert.False(t, panel.Busy)
	assert.Empty(t, panel.Err)
}

func TestAdminPanel_ErrorSurfaced(t *testing.T) {
	api := newTestServer(t)
	panel := client.NewAdminPanel(api)

	_, err := panel.AddDepartment()
	assert.Error(t, err)
	assert.Contains(t, panel.Err, "DeptName required")
	assert.False(t, panel.Busy)
}

func TestReceptionPanel_RegisterAndSchedule(t *testing.T) {
	api := newTestServer(t)
	panel := client.NewReceptionPanel(api)

	panel.PatientForm = model.CreatePatientRequest{FirstName: "Asha"}
	patientID, err := panel.RegisterPatient()
	assert.NoError(t, err)

	doctorID, err := api.CreateDoctor(model.CreateDoctorRequest{FirstName: "Meera"})
	assert.NoError(t, err)

	panel.AppointmentForm = model.CreateAppointmentRequest{
		PatientID:       patientID,
		DoctorID:        doctorID,
		AppointmentDate: "2025-02-10 10:30:00",
	}
	apptID, err := panel.ScheduleAppointment()
	assert.NoError(t, err)

	assert.NoError(t, panel.Reschedule(apptID, "2025-02-12 09:00:00"))

	detail, err := api.GetAppointment(apptID)
	assert.NoError(t, err)
	assert.Equal(t, "2025-02-12 09:00:00", detail.Appointment.AppointmentDate)

	assert.NoError(t, panel.Refresh())
	assert.Len(t, panel.Patients, 1)
	assert.Len(t, panel.Doctors, 1)
}

func TestReceptionPanel_BillingFlow(t *testing.T) {
	api := newTestServer(t)
	panel := client.NewReceptionPanel(api)

	panel.PatientForm = model.CreatePatientRequest{FirstName: "Asha"}
	patientID, err := panel.RegisterPatient()
	assert.NoError(t, err)

	panel.BillForm = model.CreateBillRequest{PatientID: patientID, Amount: floatPtr(350)}
	billID, err := panel.AddBill()
	assert.NoError(t, err)

	assert.NoError(t, panel.RecordPayment(billID, 350, model.BillPaid))

	detail, err := api.GetPatient(patientID)
	assert.NoError(t, err)
	assert.Len(t, detail.Billing, 1)
	assert.Equal(t, model.BillPaid, detail.Billing[0].Status)
	assert.Equal(t, float64(350), detail.Billing[0].PaidAmount)
}

func TestDoctorPanel_VisitFlow(t *testing.T) {
	api := newTestServer(t)
	panel := client.NewDoctorPanel(api)

	doctorID, err := api.CreateDoctor(model.CreateDoctorRequest{FirstName: "Meera"})
	assert.NoError(t, err)
	patientID, err := api.CreatePatient(model.CreatePatientRequest{FirstName: "Asha"})
	assert.NoError(t, err)
	_, err = api.CreateAppointment(model.CreateAppointmentRequest{
		PatientID:       patientID,
		DoctorID:        doctorID,
		AppointmentDate: "2030-01-01 09:00:00",
	})
	assert.NoError(t, err)

	assert.NoError(t, panel.LoadDoctors())
	assert.Len(t, panel.Doctors, 1)

	assert.NoError(t, panel.SelectDoctor(doctorID))
	assert.Len(t, panel.Selected.PendingAppointments, 1)

	panel.StartVisit(panel.Selected.PendingAppointments[0])
	assert.Equal(t, patientID, panel.VisitForm.PatientID)
	assert.Equal(t, doctorID, panel.VisitForm.DoctorID)

	panel.VisitForm.Diagnosis = strPtr("Viral fever")
	visitID, err := panel.SubmitVisit()
	assert.NoError(t, err)
	assert.NotZero(t, visitID)
	// The reload pulled the new visit into the history.
	assert.Len(t, panel.Selected.Visits, 1)

	assert.NoError(t, panel.AmendVisit(visitID, model.UpdateVisitRequest{Remarks: strPtr("review in a week")}))
}

func TestPatientPanel_Filter(t *testing.T) {
	api := newTestServer(t)
	panel := client.NewPatientPanel(api)

	_, err := api.CreatePatient(model.CreatePatientRequest{FirstName: "Asha", LastName: strPtr("Patil")})
	assert.NoError(t, err)
	_, err = api.CreatePatient(model.CreatePatientRequest{FirstName: "Ravi"})
	assert.NoError(t, err)

	assert.NoError(t, panel.LoadPatients())
	assert.Len(t, panel.Visible(), 2)

	panel.Filter = "patil"
	visible := panel.Visible()
	assert.Len(t, visible, 1)
	assert.Equal(t, "Asha", visible[0].FirstName)

	panel.Filter = "nobody"
	assert.Empty(t, panel.Visible())
}

func TestPathologyPanel_OrderAndResult(t *testing.T) {
	api := newTestServer(t)
	panel := client.NewPathologyPanel(api)

	doctorID, err := api.CreateDoctor(model.CreateDoctorRequest{FirstName: "Meera"})
	assert.NoError(t, err)
	patientID, err := api.CreatePatient(model.CreatePatientRequest{FirstName: "Asha"})
	assert.NoError(t, err)
	visitID, err := api.CreateVisit(model.CreateVisitRequest{PatientID: patientID, DoctorID: doctorID})
	assert.NoError(t, err)

	assert.NoError(t, panel.LoadVisit(visitID))
	assert.Empty(t, panel.Visit.Investigations)

	panel.OrderForm = model.CreateInvestigationRequest{TestCode: strPtr("CBC")}
	orderID, err := panel.SubmitOrder()
	assert.NoError(t, err)
	assert.Len(t, panel.Visit.Investigations, 1)

	assert.NoError(t, panel.RecordResult(orderID, model.UpdateInvestigationRequest{
		ResultValue: strPtr("WBC 9.2"),
		ResultDate:  strPtr("2025-02-11"),
	}))
	assert.Equal(t, "WBC 9.2", *panel.Visit.Investigations[0].ResultValue)
}

func TestPathologyPanel_OrderWithoutVisit(t *testing.T) {
	api := newTestServer(t)
	panel := client.NewPathologyPanel(api)

	_, err := panel.SubmitOrder()
	assert.Error(t, err)
	assert.Contains(t, panel.Err, "No visit loaded")
}
