package endpoint

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arogyaventures/opd-server/model"
)

func TestCreatePatient_MissingFirstName(t *testing.T) {
	r, _ := setupEndpointTest(t)

	w := doRequest(t, r, http.MethodPost, "/api/reception/patient", map[string]interface{}{
		"LastName": "Patil",
	})
	assertErrorMessage(t, w, http.StatusBadRequest, "FirstName required")
}

func TestCreatePatient_MalformedBody(t *testing.T) {
	r, _ := setupEndpointTest(t)

	w := doRequest(t, r, http.MethodPost, "/api/reception/patient", "not an object")
	assertErrorMessage(t, w, http.StatusBadRequest, "Invalid request body")
}

func TestCreatePatient_Success(t *testing.T) {
	r, db := setupEndpointTest(t)

	w := doRequest(t, r, http.MethodPost, "/api/reception/patient", model.CreatePatientRequest{
		FirstName: "Asha",
		Gender:    strPtr("Female"),
		MobileNo:  strPtr("9876543210"),
	})
	id := createdID(t, w, "PatientID")

	var patient model.Patient
	assert.NoError(t, db.First(&patient, "patient_id = ?", id).Error)
	assert.Equal(t, "Asha", patient.FirstName)
	assert.Equal(t, "9876543210", *patient.MobileNo)
}

// Names are stored verbatim: reading back a freshly registered patient
// returns exactly the submitted fields, surrounding and internal whitespace
// included.
func TestCreatePatient_NameStoredVerbatim(t *testing.T) {
	r, db := setupEndpointTest(t)

	w := doRequest(t, r, http.MethodPost, "/api/reception/patient", model.CreatePatientRequest{
		FirstName: " Asha  Devi ",
	})
	id := createdID(t, w, "PatientID")

	var stored model.Patient
	assert.NoError(t, db.First(&stored, "patient_id = ?", id).Error)
	assert.Equal(t, " Asha  Devi ", stored.FirstName)

	w = doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/patient/%d", id), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var detail model.PatientDetailResponse
	decodeJSON(t, w, &detail)
	assert.Equal(t, " Asha  Devi ", detail.Patient.FirstName)
}

func TestCreateAppointment_MissingDate(t *testing.T) {
	r, _ := setupEndpointTest(t)

	w := doRequest(t, r, http.MethodPost, "/api/reception/appointment", map[string]interface{}{
		"PatientID": 1,
		"DoctorID":  1,
	})
	assertErrorMessage(t, w, http.StatusBadRequest, "PatientID, DoctorID and AppointmentDate are required")
}

func TestCreateAppointment_DefaultsToScheduled(t *testing.T) {
	r, db := setupEndpointTest(t)

	doctor := seedDoctor(t, db, "Meera", nil)
	patient := seedPatient(t, db, "Asha")

	w := doRequest(t, r, http.MethodPost, "/api/reception/appointment", model.CreateAppointmentRequest{
		PatientID:       patient.PatientID,
		DoctorID:        doctor.DoctorID,
		AppointmentDate: "2025-02-10 10:30:00",
		VisitType:       strPtr("Consultation"),
	})
	id := createdID(t, w, "AppointmentID")

	var appt model.Appointment
	assert.NoError(t, db.First(&appt, "appointment_id = ?", id).Error)
	assert.Equal(t, model.AppointmentScheduled, appt.AppointmentStatus)
	assert.Equal(t, "2025-02-10 10:30:00", appt.AppointmentDate)
	assert.Equal(t, "Consultation", *appt.VisitType)
}

func TestCreateAppointment_ExplicitStatusKept(t *testing.T) {
	r, db := setupEndpointTest(t)

	doctor := seedDoctor(t, db, "Meera", nil)
	patient := seedPatient(t, db, "Asha")

	w := doRequest(t, r, http.MethodPost, "/api/reception/appointment", model.CreateAppointmentRequest{
		PatientID:         patient.PatientID,
		DoctorID:          doctor.DoctorID,
		AppointmentDate:   "2025-02-10 10:30:00",
		AppointmentStatus: strPtr(model.AppointmentPending),
	})
	id := createdID(t, w, "AppointmentID")

	var appt model.Appointment
	assert.NoError(t, db.First(&appt, "appointment_id = ?", id).Error)
	assert.Equal(t, model.AppointmentPending, appt.AppointmentStatus)
}

func TestCreateBill_MissingAmount(t *testing.T) {
	r, _ := setupEndpointTest(t)

	w := doRequest(t, r, http.MethodPost, "/api/reception/billing", map[string]interface{}{
		"PatientID": 1,
	})
	assertErrorMessage(t, w, http.StatusBadRequest, "PatientID and Amount are required")
}

func TestCreateBill_ZeroAmountAccepted(t *testing.T) {
	r, db := setupEndpointTest(t)

	patient := seedPatient(t, db, "Asha")

	// An explicit zero is a valid free consultation bill.
	w := doRequest(t, r, http.MethodPost, "/api/reception/billing", model.CreateBillRequest{
		PatientID: patient.PatientID,
		Amount:    floatPtr(0),
	})
	createdID(t, w, "BillID")
}

func TestCreateBill_Defaults(t *testing.T) {
	r, db := setupEndpointTest(t)

	patient := seedPatient(t, db, "Asha")

	w := doRequest(t, r, http.MethodPost, "/api/reception/billing", model.CreateBillRequest{
		PatientID: patient.PatientID,
		Amount:    floatPtr(200),
	})
	id := createdID(t, w, "BillID")

	var bill model.Billing
	assert.NoError(t, db.First(&bill, "bill_id = ?", id).Error)
	assert.Equal(t, float64(200), bill.Amount)
	assert.Equal(t, float64(0), bill.PaidAmount)
	assert.Equal(t, model.BillUnpaid, bill.Status)

	billed, err := time.ParseInLocation(dateTimeLayout, bill.BillDate, time.Local)
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now(), billed, time.Minute)
}

func TestUpdateBill_Payment(t *testing.T) {
	r, db := setupEndpointTest(t)

	patient := seedPatient(t, db, "Asha")
	bill := seedBill(t, db, patient.PatientID, 200)

	w := doRequest(t, r, http.MethodPatch, fmt.Sprintf("/api/reception/billing/%d", bill.BillID), model.UpdateBillRequest{
		PaidAmount:    floatPtr(200),
		PaymentMethod: strPtr("cash"),
		Status:        strPtr(model.BillPaid),
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok": true}`, w.Body.String())

	var stored model.Billing
	assert.NoError(t, db.First(&stored, "bill_id = ?", bill.BillID).Error)
	assert.Equal(t, float64(200), stored.PaidAmount)
	assert.Equal(t, model.BillPaid, stored.Status)
	assert.Equal(t, "cash", *stored.PaymentMethod)
	// Amount was not in the patch and must survive.
	assert.Equal(t, float64(200), stored.Amount)
}

func TestUpdateBill_EmptyPatchIsNoOp(t *testing.T) {
	r, db := setupEndpointTest(t)

	patient := seedPatient(t, db, "Asha")
	bill := seedBill(t, db, patient.PatientID, 200)

	w := doRequest(t, r, http.MethodPatch, fmt.Sprintf("/api/reception/billing/%d", bill.BillID), map[string]interface{}{})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok": true}`, w.Body.String())
}
