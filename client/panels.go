package client

import (
	"strings"

	"github.com/arogyaventures/opd-server/model"
)

// panelState carries the busy flag and last error shared by every panel.
type panelState struct {
	Busy bool
	Err  string
}

func (s *panelState) begin() { s.Busy = true; s.Err = "" }

func (s *panelState) finish(err error) error {
	s.Busy = false
	if err != nil {
		s.Err = err.Error()
	}
	return err
}

// DoctorPanel backs the doctor console: the doctor roster, one selected
// doctor's pending queue and visit history, and the visit entry form.
type DoctorPanel struct {
	panelState
	api *Client

	Doctors   []model.DoctorSummary
	Selected  *model.DoctorDetailResponse
	VisitForm model.CreateVisitRequest
}

func NewDoctorPanel(api *Client) *DoctorPanel {
	return &DoctorPanel{api: api, Doctors: []model.DoctorSummary{}}
}

func (p *DoctorPanel) LoadDoctors() error {
	p.begin()
	doctors, err := p.api.ListDoctors()
	if err == nil {
		p.Doctors = doctors
	}
	return p.finish(err)
}

func (p *DoctorPanel) SelectDoctor(id uint) error {
	p.begin()
	detail, err := p.api.GetDoctor(id)
	if err == nil {
		p.Selected = &detail
		p.VisitForm = model.CreateVisitRequest{DoctorID: id}
	}
	return p.finish(err)
}

// StartVisit prefills the visit form from a queued appointment of the
// selected doctor.
func (p *DoctorPanel) StartVisit(appt model.PendingAppointment) {
	form := model.CreateVisitRequest{
		PatientID:     appt.PatientID,
		AppointmentID: &appt.AppointmentID,
	}
	if p.Selected != nil {
		form.DoctorID = p.Selected.Doctor.DoctorID
	}
	p.VisitForm = form
}

// SubmitVisit records the visit and reloads the selected doctor so the
// queue and history reflect it.
func (p *DoctorPanel) SubmitVisit() (uint, error) {
	p.begin()
	id, err := p.api.CreateVisit(p.VisitForm)
	if err != nil {
		return 0, p.finish(err)
	}
	if p.Selected != nil {
		detail, rerr := p.api.GetDoctor(p.Selected.Doctor.DoctorID)
		if rerr == nil {
			p.Selected = &detail
		}
		err = rerr
	}
	p.VisitForm = model.CreateVisitRequest{}
	return id, p.finish(err)
}

func (p *DoctorPanel) AmendVisit(visitID uint, patch model.UpdateVisitRequest) error {
	p.begin()
	return p.finish(p.api.UpdateVisit(visitID, patch))
}

// PatientPanel backs the patient lookup view: the full registry with a
// client-side name filter, and one expanded patient record.
type PatientPanel struct {
	panelState
	api *Client

	Patients []model.PatientSummary
	Filter   string
	Selected *model.PatientDetailResponse
}

func NewPatientPanel(api *Client) *PatientPanel {
	return &PatientPanel{api: api, Patients: []model.PatientSummary{}}
}

func (p *PatientPanel) LoadPatients() error {
	p.begin()
	patients, err := p.api.ListPatients()
	if err == nil {
		p.Patients = patients
	}
	return p.finish(err)
}

// Visible applies the name filter, case-insensitively, against the
// patient's combined first and last name.
func (p *PatientPanel) Visible() []model.PatientSummary {
	needle := strings.ToLower(strings.TrimSpace(p.Filter))
	if needle == "" {
		return p.Patients
	}
	visible := []model.PatientSummary{}
	for _, patient := range p.Patients {
		full := patient.FirstName
		if patient.LastName != nil {
			full += " " + *patient.LastName
		}
		if strings.Contains(strings.ToLower(full), needle) {
			visible = append(visible, patient)
		}
	}
	return visible
}

func (p *PatientPanel) SelectPatient(id uint) error {
	p.begin()
	detail, err := p.api.GetPatient(id)
	if err == nil {
		p.Selected = &detail
	}
	return p.finish(err)
}

// ReceptionPanel backs the front desk: patient registration, appointment
// scheduling, and billing.
type ReceptionPanel struct {
	panelState
	api *Client

	Patients []model.PatientSummary
	Doctors  []model.DoctorSummary

	PatientForm     model.CreatePatientRequest
	AppointmentForm model.CreateAppointmentRequest
	BillForm        model.CreateBillRequest
}

func NewReceptionPanel(api *Client) *ReceptionPanel {
	return &ReceptionPanel{
		api:      api,
		Patients: []model.PatientSummary{},
		Doctors:  []model.DoctorSummary{},
	}
}

// Refresh reloads the pickers the reception forms depend on.
func (p *ReceptionPanel) Refresh() error {
	p.begin()
	patients, err := p.api.ListPatients()
	if err != nil {
		return p.finish(err)
	}
	doctors, err := p.api.ListDoctors()
	if err != nil {
		return p.finish(err)
	}
	p.Patients = patients
	p.Doctors = doctors
	return p.finish(nil)
}

func (p *ReceptionPanel) RegisterPatient() (uint, error) {
	p.begin()
	id, err := p.api.CreatePatient(p.PatientForm)
	if err == nil {
		p.PatientForm = model.CreatePatientRequest{}
	}
	return id, p.finish(err)
}

func (p *ReceptionPanel) ScheduleAppointment() (uint, error) {
	p.begin()
	id, err := p.api.CreateAppointment(p.AppointmentForm)
	if err == nil {
		p.AppointmentForm = model.CreateAppointmentRequest{}
	}
	return id, p.finish(err)
}

func (p *ReceptionPanel) AddBill() (uint, error) {
	p.begin()
	id, err := p.api.CreateBill(p.BillForm)
	if err == nil {
		p.BillForm = model.CreateBillRequest{}
	}
	return id, p.finish(err)
}

// RecordPayment settles part or all of a bill.
func (p *ReceptionPanel) RecordPayment(billID uint, paid float64, status string) error {
	p.begin()
	patch := model.UpdateBillRequest{PaidAmount: &paid}
	if status != "" {
		patch.Status = &status
	}
	return p.finish(p.api.UpdateBill(billID, patch))
}

// Reschedule moves an appointment to a new date without touching its
// status or assigned doctor.
func (p *ReceptionPanel) Reschedule(appointmentID uint, date string) error {
	p.begin()
	patch := model.UpdateAppointmentRequest{AppointmentDate: &date}
	return p.finish(p.api.UpdateAppointment(appointmentID, patch))
}

// AdminPanel backs hospital setup: departments, shifts, the doctor
// roster, staff and rooms, each with a creation form.
type AdminPanel struct {
	panelState
	api *Client

	Departments []model.Department
	Shifts      []model.Shift
	Doctors     []model.DoctorWithDept
	Staff       []model.StaffWithDept
	Rooms       []model.RoomWithDept

	DepartmentForm model.CreateDepartmentRequest
	ShiftForm      model.CreateShiftRequest
	DoctorForm     model.CreateDoctorRequest
	StaffForm      model.CreateStaffRequest
	RoomForm       model.CreateRoomRequest
}

func NewAdminPanel(api *Client) *AdminPanel {
	return &AdminPanel{
		api:         api,
		Departments: []model.Department{},
		Shifts:      []model.Shift{},
		Doctors:     []model.DoctorWithDept{},
		Staff:       []model.StaffWithDept{},
		Rooms:       []model.RoomWithDept{},
	}
}

// Load pulls all five admin lists in one pass.
func (p *AdminPanel) Load() error {
	p.begin()
	departments, err := p.api.ListDepartments()
	if err != nil {
		return p.finish(err)
	}
	shifts, err := p.api.ListShifts()
	if err != nil {
		return p.finish(err)
	}
	doctors, err := p.api.ListDoctorRoster()
	if err != nil {
		return p.finish(err)
	}
	staff, err := p.api.ListStaff()
	if err != nil {
		return p.finish(err)
	}
	rooms, err := p.api.ListRooms()
	if err != nil {
		return p.finish(err)
	}
	p.Departments = departments
	p.Shifts = shifts
	p.Doctors = doctors
	p.Staff = staff
	p.Rooms = rooms
	return p.finish(nil)
}

func (p *AdminPanel) AddDepartment() (uint, error) {
	p.begin()
	id, err := p.api.CreateDepartment(p.DepartmentForm)
	if err == nil {
		p.DepartmentForm = model.CreateDepartmentRequest{}
	}
	return id, p.finish(err)
}

func (p *AdminPanel) AddShift() (uint, error) {
	p.begin()
	id, err := p.api.CreateShift(p.ShiftForm)
	if err == nil {
		p.ShiftForm = model.CreateShiftRequest{}
	}
	return id, p.finish(err)
}

func (p *AdminPanel) AddDoctor() (uint, error) {
	p.begin()
	id, err := p.api.CreateDoctor(p.DoctorForm)
	if err == nil {
		p.DoctorForm = model.CreateDoctorRequest{}
	}
	return id, p.finish(err)
}

func (p *AdminPanel) AddStaff() (uint, error) {
	p.begin()
	id, err := p.api.CreateStaff(p.StaffForm)
	if err == nil {
		p.StaffForm = model.CreateStaffRequest{}
	}
	return id, p.finish(err)
}

func (p *AdminPanel) AddRoom() (uint, error) {
	p.begin()
	id, err := p.api.CreateRoom(p.RoomForm)
	if err == nil {
		p.RoomForm = model.CreateRoomRequest{}
	}
	return id, p.finish(err)
}

// PathologyPanel backs the lab desk: one visit looked up by id, its
// investigation orders, and the order and result forms.
type PathologyPanel struct {
	panelState
	api *Client

	Visit     *model.PathologyVisitResponse
	OrderForm model.CreateInvestigationRequest
}

func NewPathologyPanel(api *Client) *PathologyPanel {
	return &PathologyPanel{api: api}
}

func (p *PathologyPanel) LoadVisit(visitID uint) error {
	p.begin()
	detail, err := p.api.GetPathologyVisit(visitID)
	if err == nil {
		p.Visit = &detail
	}
	return p.finish(err)
}

func (p *PathologyPanel) reloadVisit() error {
	if p.Visit == nil {
		return nil
	}
	detail, err := p.api.GetPathologyVisit(p.Visit.Visit.VisitID)
	if err == nil {
		p.Visit = &detail
	}
	return err
}

// SubmitOrder places the order against the loaded visit and refreshes
// the order list.
func (p *PathologyPanel) SubmitOrder() (uint, error) {
	p.begin()
	if p.Visit == nil {
		return 0, p.finish(&APIError{StatusCode: 400, Message: "No visit loaded"})
	}
	id, err := p.api.CreateInvestigation(p.Visit.Visit.VisitID, p.OrderForm)
	if err != nil {
		return 0, p.finish(err)
	}
	p.OrderForm = model.CreateInvestigationRequest{}
	return id, p.finish(p.reloadVisit())
}

// RecordResult files a result against an order and refreshes the list.
func (p *PathologyPanel) RecordResult(orderID uint, patch model.UpdateInvestigationRequest) error {
	p.begin()
	if err := p.api.UpdateInvestigation(orderID, patch); err != nil {
		return p.finish(err)
	}
	return p.finish(p.reloadVisit())
}
