// Package client is a typed Go client for the OPD management API, plus
// view-models for the five role-scoped panels the web UI renders.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/arogyaventures/opd-server/model"
)

// APIError is a non-2xx reply decoded from the {"error": ...} payload.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client calls the OPD management API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New returns a Client for the given base URL, e.g. "http://localhost:3000".
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) do(method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Error == "" {
			apiErr.Error = resp.Status
		}
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// create posts a payload and extracts the generated identifier from the 201
// reply, e.g. {"PatientID": 12}.
func (c *Client) create(path string, body interface{}, idField string) (uint, error) {
	created := map[string]uint{}
	if err := c.do(http.MethodPost, path, body, &created); err != nil {
		return 0, err
	}
	return created[idField], nil
}

// Health reports service and database liveness.
func (c *Client) Health() (model.HealthResponse, error) {
	var health model.HealthResponse
	err := c.do(http.MethodGet, "/health", nil, &health)
	return health, err
}

// --- doctor routes ---

func (c *Client) ListDoctors() ([]model.DoctorSummary, error) {
	var doctors []model.DoctorSummary
	err := c.do(http.MethodGet, "/api/doctor", nil, &doctors)
	return doctors, err
}

func (c *Client) GetDoctor(id uint) (model.DoctorDetailResponse, error) {
	var detail model.DoctorDetailResponse
	err := c.do(http.MethodGet, fmt.Sprintf("/api/doctor/%d", id), nil, &detail)
	return detail, err
}

func (c *Client) CreateVisit(req model.CreateVisitRequest) (uint, error) {
	return c.create("/api/doctor/visit", req, "VisitID")
}

func (c *Client) UpdateVisit(id uint, req model.UpdateVisitRequest) error {
	return c.do(http.MethodPatch, fmt.Sprintf("/api/doctor/visit/%d", id), req, nil)
}

// --- patient routes ---

func (c *Client) ListPatients() ([]model.PatientSummary, error) {
	var patients []model.PatientSummary
	err := c.do(http.MethodGet, "/api/patient", nil, &patients)
	return patients, err
}

func (c *Client) GetPatient(id uint) (model.PatientDetailResponse, error) {
	var detail model.PatientDetailResponse
	err := c.do(http.MethodGet, fmt.Sprintf("/api/patient/%d", id), nil, &detail)
	return detail, err
}

// --- reception routes ---

func (c *Client) CreatePatient(req model.CreatePatientRequest) (uint, error) {
	return c.create("/api/reception/patient", req, "PatientID")
}

func (c *Client) CreateAppointment(req model.CreateAppointmentRequest) (uint, error) {
	return c.create("/api/reception/appointment", req, "AppointmentID")
}

func (c *Client) CreateBill(req model.CreateBillRequest) (uint, error) {
	return c.create("/api/reception/billing", req, "BillID")
}

func (c *Client) UpdateBill(id uint, req model.UpdateBillRequest) error {
	return c.do(http.MethodPatch, fmt.Sprintf("/api/reception/billing/%d", id), req, nil)
}

// --- admin routes ---

func (c *Client) ListDepartments() ([]model.Department, error) {
	var departments []model.Department
	err := c.do(http.MethodGet, "/api/admin/departments", nil, &departments)
	return departments, err
}

func (c *Client) ListShifts() ([]model.Shift, error) {
	var shifts []model.Shift
	err := c.do(http.MethodGet, "/api/admin/shifts", nil, &shifts)
	return shifts, err
}

func (c *Client) ListDoctorRoster() ([]model.DoctorWithDept, error) {
	var doctors []model.DoctorWithDept
	err := c.do(http.MethodGet, "/api/admin/doctors", nil, &doctors)
	return doctors, err
}

func (c *Client) ListStaff() ([]model.StaffWithDept, error) {
	var staff []model.StaffWithDept
	err := c.do(http.MethodGet, "/api/admin/staff", nil, &staff)
	return staff, err
}

func (c *Client) ListRooms() ([]model.RoomWithDept, error) {
	var rooms []model.RoomWithDept
	err := c.do(http.MethodGet, "/api/admin/rooms", nil, &rooms)
	return rooms, err
}

func (c *Client) CreateDepartment(req model.CreateDepartmentRequest) (uint, error) {
	return c.create("/api/admin/department", req, "DepartmentID")
}

func (c *Client) CreateShift(req model.CreateShiftRequest) (uint, error) {
	return c.create("/api/admin/shift", req, "ShiftID")
}

func (c *Client) CreateDoctor(req model.CreateDoctorRequest) (uint, error) {
	return c.create("/api/admin/doctor", req, "DoctorID")
}

func (c *Client) CreateStaff(req model.CreateStaffRequest) (uint, error) {
	return c.create("/api/admin/staff", req, "StaffID")
}

func (c *Client) CreateRoom(req model.CreateRoomRequest) (uint, error) {
	return c.create("/api/admin/room", req, "RoomID")
}

func (c *Client) UpdateDepartment(id uint, req model.UpdateDepartmentRequest) error {
	return c.do(http.MethodPatch, fmt.Sprintf("/api/admin/department/%d", id), req, nil)
}

func (c *Client) UpdateShift(id uint, req model.UpdateShiftRequest) error {
	return c.do(http.MethodPatch, fmt.Sprintf("/api/admin/shift/%d", id), req, nil)
}

func (c *Client) UpdateDoctor(id uint, req model.UpdateDoctorRequest) error {
	return c.do(http.MethodPatch, fmt.Sprintf("/api/admin/doctor/%d", id), req, nil)
}

func (c *Client) UpdateStaff(id uint, req model.UpdateStaffRequest) error {
	return c.do(http.MethodPatch, fmt.Sprintf("/api/admin/staff/%d", id), req, nil)
}

func (c *Client) UpdateRoom(id uint, req model.UpdateRoomRequest) error {
	return c.do(http.MethodPatch, fmt.Sprintf("/api/admin/room/%d", id), req, nil)
}

// --- appointment routes ---

func (c *Client) GetAppointment(id uint) (model.AppointmentDetailResponse, error) {
	var detail model.AppointmentDetailResponse
	err := c.do(http.MethodGet, fmt.Sprintf("/api/appointment/%d", id), nil, &detail)
	return detail, err
}

func (c *Client) UpdateAppointment(id uint, req model.UpdateAppointmentRequest) error {
	return c.do(http.MethodPatch, fmt.Sprintf("/api/appointment/%d", id), req, nil)
}

// --- pathology routes ---

func (c *Client) GetPathologyVisit(id uint) (model.PathologyVisitResponse, error) {
	var detail model.PathologyVisitResponse
	err := c.do(http.MethodGet, fmt.Sprintf("/api/pathology/visit/%d", id), nil, &detail)
	return detail, err
}

func (c *Client) CreateInvestigation(visitID uint, req model.CreateInvestigationRequest) (uint, error) {
	return c.create(fmt.Sprintf("/api/pathology/visit/%d/investigation", visitID), req, "OrderID")
}

func (c *Client) UpdateInvestigation(id uint, req model.UpdateInvestigationRequest) error {
	return c.do(http.MethodPatch, fmt.Sprintf("/api/pathology/investigation/%d", id), req, nil)
}
