package model

// Composite detail responses shared by the endpoint handlers and the API
// client so both sides agree on the envelope keys.

// DoctorDetailResponse is the doctor workbench payload: profile, scheduled
// queue and recent visit history.
type DoctorDetailResponse struct {
	Doctor              DoctorDetail         `json:"doctor"`
	PendingAppointments []PendingAppointment `json:"pendingAppointments"`
	Visits              []VisitWithPatient   `json:"visits"`
}

// PatientDetailResponse is a patient's full history, each list capped at the
// most recent 50 rows.
type PatientDetailResponse struct {
	Patient        Patient                 `json:"patient"`
	Appointments   []AppointmentWithDoctor `json:"appointments"`
	Visits         []VisitWithDoctor       `json:"visits"`
	Investigations []InvestigationOrder    `json:"investigations"`
	Billing        []Billing               `json:"billing"`
}

// AppointmentDetailResponse is an appointment with everything hanging off it.
type AppointmentDetailResponse struct {
	Appointment    AppointmentDetail        `json:"appointment"`
	Visits         []VisitWithDoctor        `json:"visits"`
	Investigations []InvestigationWithVisit `json:"investigations"`
	Billing        []Billing                `json:"billing"`
}

// PathologyVisitResponse is a visit and its investigation orders.
type PathologyVisitResponse struct {
	Visit          VisitDetail          `json:"visit"`
	Investigations []InvestigationOrder `json:"investigations"`
}

// HealthResponse reports service liveness and store reachability.
type HealthResponse struct {
	OK bool `json:"ok"`
	DB bool `json:"db"`
}

// AllModels lists every persisted entity for migration, in FK order.
var AllModels = []interface{}{
	&Department{},
	&Shift{},
	&Doctor{},
	&Staff{},
	&Room{},
	&Patient{},
	&Appointment{},
	&OPDVisit{},
	&InvestigationOrder{},
	&Billing{},
}
