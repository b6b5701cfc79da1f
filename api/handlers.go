/*
handlers.go - HTTP handlers for the HR demo platform

PURPOSE:
  Exposes the application store over REST. Handles HTTP request and
  response concerns (JSON, required-field checks, date parsing) and
  delegates every mutation to the store's operation set.

REQUEST FLOW:
  1. Decode request body
  2. Validate required fields and formats (the store validates nothing)
  3. Call the store operation
  4. Serialize response

ERROR HANDLING:
  - 400: missing required fields, malformed dates, unknown enum values
  - 404: lookups for ids the store resolves to nil
  - no 5xx path for store operations: they cannot fail

SECURITY NOTE:
  The authentication flag gates nothing server-side. All endpoints are
  public; the flag only drives what the frontend shows.

SEE ALSO:
  - dto.go:    request/response data structures
  - server.go: router setup and middleware
*/
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/blackflag/hr-platform/hr"
	"github.com/blackflag/hr-platform/store"
)

const (
	serviceName    = "hr-platform"
	serviceVersion = "1.0.0"

	// Window for the dashboard's expiring-documents count.
	expiryWindow = 90 * 24 * time.Hour
)

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store *store.Store
}

// NewHandler creates a handler backed by the given store.
func NewHandler(s *store.Store) *Handler {
	return &Handler{Store: s}
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

func validDepartment(s string) (hr.Department, bool) {
	for _, d := range hr.Departments {
		if string(d) == s {
			return d, true
		}
	}
	return "", false
}

func validLeaveType(s string) (hr.LeaveType, bool) {
	for _, lt := range hr.LeaveTypes {
		if string(lt) == s {
			return lt, true
		}
	}
	return "", false
}

func validLeaveStatus(s string) (hr.LeaveStatus, bool) {
	switch hr.LeaveStatus(s) {
	case hr.LeavePending, hr.LeaveApproved, hr.LeaveDenied, hr.LeaveCancelled:
		return hr.LeaveStatus(s), true
	}
	return "", false
}

func validDocumentType(s string) (hr.DocumentType, bool) {
	switch hr.DocumentType(s) {
	case hr.DocID, hr.DocCertification, hr.DocOfferLetter, hr.DocTaxForm, hr.DocContract, hr.DocOther:
		return hr.DocumentType(s), true
	}
	return "", false
}

// =============================================================================
// AUTH HANDLERS
// =============================================================================

// Login sets the session flag. Any non-empty credential pair succeeds.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	h.Store.Login(req.Email, req.Password)
	writeJSON(w, http.StatusOK, SessionDTO{
		User:            h.Store.CurrentUser(),
		IsAuthenticated: h.Store.IsAuthenticated(),
	})
}

// Logout clears the session flag.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Store.Logout()
	writeJSON(w, http.StatusOK, SessionDTO{
		User:            h.Store.CurrentUser(),
		IsAuthenticated: h.Store.IsAuthenticated(),
	})
}

// GetSession returns the fixed user and the current flag.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, SessionDTO{
		User:            h.Store.CurrentUser(),
		IsAuthenticated: h.Store.IsAuthenticated(),
	})
}

// =============================================================================
// EMPLOYEE HANDLERS
// =============================================================================

// ListEmployees returns all employees, optionally filtered by department
// or activity.
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees := h.Store.Employees()

	if dept := r.URL.Query().Get("department"); dept != "" {
		var filtered []hr.Employee
		for _, e := range employees {
			if string(e.Department) == dept {
				filtered = append(filtered, e)
			}
		}
		employees = filtered
	}
	if r.URL.Query().Get("active") == "true" {
		var filtered []hr.Employee
		for _, e := range employees {
			if e.IsActive {
				filtered = append(filtered, e)
			}
		}
		employees = filtered
	}

	if employees == nil {
		employees = []hr.Employee{}
	}
	writeJSON(w, http.StatusOK, employees)
}

// GetEmployee returns a single employee.
func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	emp := h.Store.GetEmployee(chi.URLParam(r, "id"))
	if emp == nil {
		writeError(w, http.StatusNotFound, "Employee not found")
		return
	}
	writeJSON(w, http.StatusOK, emp)
}

// CreateEmployee adds a new active employee.
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.FirstName == "" || req.LastName == "" {
		writeError(w, http.StatusBadRequest, "email, first_name, and last_name are required")
		return
	}
	dept, ok := validDepartment(req.Department)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid department")
		return
	}
	hireDate, err := parseDate(req.HireDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid hire_date format (use YYYY-MM-DD)")
		return
	}

	emp := h.Store.AddEmployee(hr.EmployeeForm{
		Email:      req.Email,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Department: dept,
		Position:   req.Position,
		Phone:      req.Phone,
		Address:    req.Address,
		Salary:     req.Salary,
		SSN:        req.SSN,
		ManagerID:  req.ManagerID,
		HireDate:   hireDate,
	})
	writeJSON(w, http.StatusCreated, emp)
}

// UpdateEmployee merges a partial update into an employee.
func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var patch hr.EmployeePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	emp := h.Store.UpdateEmployee(chi.URLParam(r, "id"), patch)
	if emp == nil {
		writeError(w, http.StatusNotFound, "Employee not found")
		return
	}
	writeJSON(w, http.StatusOK, emp)
}

// DeleteEmployee deactivates an employee (soft delete).
func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if h.Store.GetEmployee(id) == nil {
		writeError(w, http.StatusNotFound, "Employee not found")
		return
	}
	h.Store.DeleteEmployee(id)
	w.WriteHeader(http.StatusNoContent)
}

// GetEmployeeBalances returns the employee's leave balance rows.
func (h *Handler) GetEmployeeBalances(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if h.Store.GetEmployee(id) == nil {
		writeError(w, http.StatusNotFound, "Employee not found")
		return
	}
	balances := hr.BalancesFor(h.Store.LeaveBalances(), id)
	if balances == nil {
		balances = []hr.LeaveBalance{}
	}
	writeJSON(w, http.StatusOK, balances)
}

// GetEmployeeDocuments returns the employee's documents.
func (h *Handler) GetEmployeeDocuments(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if h.Store.GetEmployee(id) == nil {
		writeError(w, http.StatusNotFound, "Employee not found")
		return
	}
	docs := hr.DocumentsFor(h.Store.Documents(), id)
	if docs == nil {
		docs = []hr.Document{}
	}
	writeJSON(w, http.StatusOK, docs)
}

// =============================================================================
// LEAVE HANDLERS
// =============================================================================

// ListLeaveRequests returns leave requests, optionally filtered.
func (h *Handler) ListLeaveRequests(w http.ResponseWriter, r *http.Request) {
	requests := h.Store.LeaveRequests()

	if empID := r.URL.Query().Get("employee_id"); empID != "" {
		var filtered []hr.LeaveRequest
		for _, lr := range requests {
			if lr.EmployeeID == empID {
				filtered = append(filtered, lr)
			}
		}
		requests = filtered
	}
	if status := r.URL.Query().Get("status"); status != "" {
		var filtered []hr.LeaveRequest
		for _, lr := range requests {
			if string(lr.Status) == status {
				filtered = append(filtered, lr)
			}
		}
		requests = filtered
	}

	if requests == nil {
		requests = []hr.LeaveRequest{}
	}
	writeJSON(w, http.StatusOK, requests)
}

// CreateLeaveRequest submits a new pending request.
func (h *Handler) CreateLeaveRequest(w http.ResponseWriter, r *http.Request) {
	var req CreateLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.EmployeeID == "" {
		writeError(w, http.StatusBadRequest, "employee_id is required")
		return
	}
	leaveType, ok := validLeaveType(req.LeaveType)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid leave_type")
		return
	}
	if req.Hours <= 0 {
		writeError(w, http.StatusBadRequest, "hours must be positive")
		return
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid start_date format (use YYYY-MM-DD)")
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid end_date format (use YYYY-MM-DD)")
		return
	}

	lr := h.Store.AddLeaveRequest(hr.LeaveRequestForm{
		EmployeeID: req.EmployeeID,
		LeaveType:  leaveType,
		StartDate:  start,
		EndDate:    end,
		Hours:      req.Hours,
		Notes:      req.Notes,
	})
	writeJSON(w, http.StatusCreated, lr)
}

// UpdateLeaveStatus transitions a pending request. Transitions out of a
// terminal status are ignored; the response reflects the stored state
// either way.
func (h *Handler) UpdateLeaveStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateLeaveStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	status, ok := validLeaveStatus(req.Status)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid status")
		return
	}
	if h.Store.GetLeaveRequest(id) == nil {
		writeError(w, http.StatusNotFound, "Leave request not found")
		return
	}

	h.Store.UpdateLeaveStatus(id, status, req.ApprovedBy)
	writeJSON(w, http.StatusOK, h.Store.GetLeaveRequest(id))
}

// CancelLeaveRequest is the cancellation shorthand.
func (h *Handler) CancelLeaveRequest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if h.Store.GetLeaveRequest(id) == nil {
		writeError(w, http.StatusNotFound, "Leave request not found")
		return
	}
	h.Store.CancelLeaveRequest(id)
	writeJSON(w, http.StatusOK, h.Store.GetLeaveRequest(id))
}

// =============================================================================
// DOCUMENT HANDLERS
// =============================================================================

// ListDocuments returns all documents, optionally for one employee.
func (h *Handler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	docs := h.Store.Documents()
	if empID := r.URL.Query().Get("employee_id"); empID != "" {
		docs = hr.DocumentsFor(docs, empID)
	}
	if docs == nil {
		docs = []hr.Document{}
	}
	writeJSON(w, http.StatusOK, docs)
}

// CreateDocument records an upload. The uploader is always the fixed
// current user.
func (h *Handler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	var req CreateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.EmployeeID == "" || req.Filename == "" {
		writeError(w, http.StatusBadRequest, "employee_id and filename are required")
		return
	}
	docType, ok := validDocumentType(req.DocumentType)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid document_type")
		return
	}

	var expiry *time.Time
	if req.ExpiryDate != "" {
		t, err := parseDate(req.ExpiryDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid expiry_date format (use YYYY-MM-DD)")
			return
		}
		expiry = &t
	}

	doc := h.Store.AddDocument(hr.DocumentForm{
		EmployeeID:   req.EmployeeID,
		DocumentType: docType,
		Filename:     req.Filename,
		FileSize:     req.FileSize,
		ExpiryDate:   expiry,
	})
	writeJSON(w, http.StatusCreated, doc)
}

// DeleteDocument hard-removes a document.
func (h *Handler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if h.Store.GetDocument(id) == nil {
		writeError(w, http.StatusNotFound, "Document not found")
		return
	}
	h.Store.DeleteDocument(id)
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// MESSAGE HANDLERS
// =============================================================================

// SendMessage sends a message from the fixed current user.
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ToID == "" || req.Content == "" {
		writeError(w, http.StatusBadRequest, "to_id and content are required")
		return
	}

	msg := h.Store.SendMessage(req.ToID, req.Content)
	writeJSON(w, http.StatusCreated, msg)
}

// MarkRead flips the read flag on a batch of message ids.
func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	var req MarkReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	h.Store.MarkAsRead(req.MessageIDs)
	writeJSON(w, http.StatusOK, UnreadCountDTO{Unread: h.Store.GetUnreadCount()})
}

// GetConversation returns the thread with one participant.
func (h *Handler) GetConversation(w http.ResponseWriter, r *http.Request) {
	msgs := h.Store.GetConversation(chi.URLParam(r, "id"))
	if msgs == nil {
		msgs = []hr.Message{}
	}
	writeJSON(w, http.StatusOK, msgs)
}

// GetUnreadCount returns the current user's unread count.
func (h *Handler) GetUnreadCount(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, UnreadCountDTO{Unread: h.Store.GetUnreadCount()})
}

// =============================================================================
// NOTIFICATION / STATS / ADMIN HANDLERS
// =============================================================================

// ListNotifications returns the live notification list.
func (h *Handler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	n := h.Store.Notifications()
	if n == nil {
		n = []hr.Notification{}
	}
	writeJSON(w, http.StatusOK, n)
}

// GetStats returns the dashboard aggregates, computed fresh per call.
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	snap := h.Store.Snapshot()
	writeJSON(w, http.StatusOK, StatsDTO{
		ActiveEmployees:     hr.ActiveCount(snap.Employees),
		DepartmentHeadcount: hr.DepartmentHeadcount(snap.Employees),
		PendingRequests:     len(hr.PendingRequests(snap.LeaveRequests)),
		UnreadMessages:      hr.UnreadCount(snap.Messages, h.Store.CurrentUser().ID),
		ExpiringDocuments:   len(hr.ExpiringDocuments(snap.Documents, time.Now().UTC(), expiryWindow)),
	})
}

// ResetData reseeds the store. Development/demo use only.
func (h *Handler) ResetData(w http.ResponseWriter, r *http.Request) {
	h.Store.Reset()
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

// =============================================================================
// HEALTH HANDLERS
// =============================================================================

// Health is the basic liveness check.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthDTO{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Service:   serviceName,
		Version:   serviceVersion,
	})
}

// Ready reports readiness. The store is in-memory, so once constructed
// it is always ready.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthDTO{
		Status:    "ready",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Service:   serviceName,
		Version:   serviceVersion,
	})
}
