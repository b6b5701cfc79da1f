/*
dto.go - Request and response shapes for the HTTP surface

PURPOSE:
  Request bodies get dedicated types here because they differ from the
  domain shapes (dates arrive as YYYY-MM-DD strings, generated fields
  are absent). Entity responses reuse the hr types directly: their JSON
  tags are the wire contract the frontend was built against, and
  duplicating them would only invite drift.

NAMING CONVENTION:
  - *Request: request body types from clients
  - *DTO:     composite response types with no domain equivalent

VALIDATION:
  Required-field checks live in the handlers (the store itself performs
  none and cannot reject a call). DTOs are pure data carriers.
*/
package api

import "github.com/blackflag/hr-platform/hr"

// =============================================================================
// REQUEST TYPES
// =============================================================================

// LoginRequest carries demo credentials. Any non-empty pair is accepted.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateEmployeeRequest is the request to add an employee. The id,
// employee code, active flag, and timestamps are generated server-side.
type CreateEmployeeRequest struct {
	Email      string  `json:"email"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Department string  `json:"department"`
	Position   string  `json:"position"`
	Phone      string  `json:"phone"`
	Address    string  `json:"address"`
	Salary     float64 `json:"salary"`
	SSN        string  `json:"ssn"`
	ManagerID  *string `json:"manager_id,omitempty"`
	HireDate   string  `json:"hire_date"` // YYYY-MM-DD
}

// CreateLeaveRequestRequest is the request to submit a leave request.
type CreateLeaveRequestRequest struct {
	EmployeeID string  `json:"employee_id"`
	LeaveType  string  `json:"leave_type"`
	StartDate  string  `json:"start_date"` // YYYY-MM-DD
	EndDate    string  `json:"end_date"`   // YYYY-MM-DD
	Hours      float64 `json:"hours"`
	Notes      string  `json:"notes"`
}

// UpdateLeaveStatusRequest moves a pending request to a new status.
type UpdateLeaveStatusRequest struct {
	Status     string  `json:"status"`
	ApprovedBy *string `json:"approved_by,omitempty"`
}

// CreateDocumentRequest is the request to record an upload.
type CreateDocumentRequest struct {
	EmployeeID   string `json:"employee_id"`
	DocumentType string `json:"document_type"`
	Filename     string `json:"filename"`
	FileSize     int64  `json:"file_size"`
	ExpiryDate   string `json:"expiry_date,omitempty"` // YYYY-MM-DD, optional
}

// SendMessageRequest sends a message from the fixed current user.
type SendMessageRequest struct {
	ToID    string `json:"to_id"`
	Content string `json:"content"`
}

// MarkReadRequest flips the read flag on a batch of messages.
type MarkReadRequest struct {
	MessageIDs []string `json:"message_ids"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// SessionDTO describes the fixed demo session.
type SessionDTO struct {
	User            hr.User `json:"user"`
	IsAuthenticated bool    `json:"is_authenticated"`
}

// UnreadCountDTO wraps the unread message count.
type UnreadCountDTO struct {
	Unread int `json:"unread"`
}

// StatsDTO is the dashboard aggregate payload. Every field is derived
// from the current snapshot on each request; nothing here is stored.
type StatsDTO struct {
	ActiveEmployees     int                   `json:"active_employees"`
	DepartmentHeadcount map[hr.Department]int `json:"department_headcount"`
	PendingRequests     int                   `json:"pending_requests"`
	UnreadMessages      int                   `json:"unread_messages"`
	ExpiringDocuments   int                   `json:"expiring_documents"`
}

// HealthDTO mirrors the platform health payload.
type HealthDTO struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
	Version   string `json:"version"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
