/*
Package hr defines the domain model for the HR demo platform.

PURPOSE:
  This package contains the entity types, fixed enumerations, and derived
  query functions shared by the application store and the HTTP surface.
  Entities are plain data; all lifecycle rules (soft delete, one-shot
  approval deduction, snapshot persistence) live in the store package.

KEY CONCEPTS IN THIS FILE (types.go):
  - Employee:     directory record, soft-deleted via IsActive
  - LeaveBalance: per employee/type/year day amounts (decimal)
  - LeaveRequest: pending -> approved | denied | cancelled
  - Document:     tracked upload metadata, hard-deleted
  - Message:      internal mail between two employees
  - Notification: ephemeral UI feedback, never persisted

DESIGN PRINCIPLES:
  1. Precision: decimal.Decimal for leave day amounts (hours/8 must not
     accumulate float error)
  2. Type safety: typed string enums for departments, leave types,
     statuses, and document types
  3. Referential stability: employees are never removed, so every
     employee_id held by a request, document, or message stays resolvable

SEE ALSO:
  - errors.go:   sentinel errors
  - queries.go:  pure derived aggregates (conversations, headcounts)
  - snapshot.go: the persisted blob shape
*/
package hr

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// DEPARTMENTS
// =============================================================================

type Department string

const (
	DeptEngineering     Department = "Engineering"
	DeptHumanResources  Department = "Human Resources"
	DeptSales           Department = "Sales"
	DeptMarketing       Department = "Marketing"
	DeptFinance         Department = "Finance"
	DeptOperations      Department = "Operations"
	DeptLegal           Department = "Legal"
	DeptCustomerSupport Department = "Customer Support"
)

// Departments lists every department in display order.
var Departments = []Department{
	DeptEngineering,
	DeptHumanResources,
	DeptSales,
	DeptMarketing,
	DeptFinance,
	DeptOperations,
	DeptLegal,
	DeptCustomerSupport,
}

// =============================================================================
// EMPLOYEE
// =============================================================================

// Employee is a directory record. Employees are soft-deleted only:
// DeleteEmployee flips IsActive and the record stays in the collection so
// that leave requests, documents, and messages referencing it remain
// resolvable.
type Employee struct {
	ID           string     `json:"id"`
	EmployeeCode string     `json:"employee_id"` // human-readable, e.g. EMP-0001
	Email        string     `json:"email"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Department   Department `json:"department"`
	Position     string     `json:"position"`
	Phone        string     `json:"phone"`
	Address      string     `json:"address"`
	Salary       float64    `json:"salary"`
	SSN          string     `json:"ssn"` // partial, last four only
	// ManagerID is a nullable self-reference. It is not validated: an
	// employee may be set as their own manager and cycles are possible.
	ManagerID *string   `json:"manager_id"`
	IsActive  bool      `json:"is_active"`
	HireDate  time.Time `json:"hire_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullName returns "First Last".
func (e Employee) FullName() string { return e.FirstName + " " + e.LastName }

// EmployeeForm carries the caller-supplied fields for AddEmployee.
// ID, employee code, activity flag, and timestamps are generated.
type EmployeeForm struct {
	Email      string     `json:"email"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Department Department `json:"department"`
	Position   string     `json:"position"`
	Phone      string     `json:"phone"`
	Address    string     `json:"address"`
	Salary     float64    `json:"salary"`
	SSN        string     `json:"ssn"`
	ManagerID  *string    `json:"manager_id"`
	HireDate   time.Time  `json:"hire_date"`
}

// EmployeePatch is a partial update: nil fields are left untouched.
type EmployeePatch struct {
	Email      *string     `json:"email,omitempty"`
	FirstName  *string     `json:"first_name,omitempty"`
	LastName   *string     `json:"last_name,omitempty"`
	Department *Department `json:"department,omitempty"`
	Position   *string     `json:"position,omitempty"`
	Phone      *string     `json:"phone,omitempty"`
	Address    *string     `json:"address,omitempty"`
	Salary     *float64    `json:"salary,omitempty"`
	ManagerID  *string     `json:"manager_id,omitempty"`
	IsActive   *bool       `json:"is_active,omitempty"`
}

// =============================================================================
// LEAVE
// =============================================================================

type LeaveType string

const (
	LeaveVacation    LeaveType = "vacation"
	LeaveSick        LeaveType = "sick"
	LeavePersonal    LeaveType = "personal"
	LeaveBereavement LeaveType = "bereavement"
	LeaveJuryDuty    LeaveType = "jury_duty"
	LeaveParental    LeaveType = "parental"
)

// LeaveTypes lists every leave type in display order.
var LeaveTypes = []LeaveType{
	LeaveVacation,
	LeaveSick,
	LeavePersonal,
	LeaveBereavement,
	LeaveJuryDuty,
	LeaveParental,
}

// LeaveBalance tracks day amounts for one employee, leave type, and
// calendar year. Balances are seeded at setup and mutated only as the
// side effect of approving a leave request; there is no operation to
// create or remove a balance row.
type LeaveBalance struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employee_id"`
	LeaveType   LeaveType       `json:"leave_type"`
	Year        int             `json:"year"`
	Accrued     decimal.Decimal `json:"accrued"`
	Used        decimal.Decimal `json:"used"`
	CarriedOver decimal.Decimal `json:"carried_over"`
}

// Available returns accrued + carried_over - used. The result is not
// clamped: an overdrawn balance is negative here and the display layer
// decides what to show.
func (b LeaveBalance) Available() decimal.Decimal {
	return b.Accrued.Add(b.CarriedOver).Sub(b.Used)
}

type LeaveStatus string

const (
	LeavePending   LeaveStatus = "pending"
	LeaveApproved  LeaveStatus = "approved"
	LeaveDenied    LeaveStatus = "denied"
	LeaveCancelled LeaveStatus = "cancelled"
)

// Terminal reports whether a status admits no further transition.
func (s LeaveStatus) Terminal() bool { return s != LeavePending }

// HoursPerDay converts request hours to balance days.
var HoursPerDay = decimal.NewFromInt(8)

// LeaveRequest is a request for time off. Created pending; moved exactly
// once to a terminal status. Cancellation is a status value, not a
// deletion.
type LeaveRequest struct {
	ID         string      `json:"id"`
	EmployeeID string      `json:"employee_id"`
	LeaveType  LeaveType   `json:"leave_type"`
	StartDate  time.Time   `json:"start_date"`
	EndDate    time.Time   `json:"end_date"`
	Hours      float64     `json:"hours"`
	Status     LeaveStatus `json:"status"`
	Notes      string      `json:"notes"`
	ApprovedBy *string     `json:"approved_by"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// Days returns the requested duration converted to days (hours/8).
func (r LeaveRequest) Days() decimal.Decimal {
	return decimal.NewFromFloat(r.Hours).Div(HoursPerDay)
}

// LeaveRequestForm carries the caller-supplied fields for AddLeaveRequest.
type LeaveRequestForm struct {
	EmployeeID string    `json:"employee_id"`
	LeaveType  LeaveType `json:"leave_type"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Hours      float64   `json:"hours"`
	Notes      string    `json:"notes"`
}

// =============================================================================
// DOCUMENTS
// =============================================================================

type DocumentType string

const (
	DocID            DocumentType = "id"
	DocCertification DocumentType = "certification"
	DocOfferLetter   DocumentType = "offer_letter"
	DocTaxForm       DocumentType = "tax_form"
	DocContract      DocumentType = "contract"
	DocOther         DocumentType = "other"
)

// Document is tracked upload metadata. Unlike employees, documents are
// hard-deleted: DeleteDocument removes the record entirely.
type Document struct {
	ID           string       `json:"id"`
	EmployeeID   string       `json:"employee_id"`
	DocumentType DocumentType `json:"document_type"`
	Filename     string       `json:"filename"`
	FileSize     int64        `json:"file_size"`
	UploadedBy   string       `json:"uploaded_by"`
	ExpiryDate   *time.Time   `json:"expiry_date"`
	CreatedAt    time.Time    `json:"created_at"`
}

// DocumentForm carries the caller-supplied fields for AddDocument.
// UploadedBy is always the fixed current user.
type DocumentForm struct {
	EmployeeID   string       `json:"employee_id"`
	DocumentType DocumentType `json:"document_type"`
	Filename     string       `json:"filename"`
	FileSize     int64        `json:"file_size"`
	ExpiryDate   *time.Time   `json:"expiry_date,omitempty"`
}

// =============================================================================
// MESSAGES
// =============================================================================

// Message is internal mail between two employees. Messages are never
// deleted; the only mutation is the batch read-flag flip.
type Message struct {
	ID        string    `json:"id"`
	FromID    string    `json:"from_id"`
	ToID      string    `json:"to_id"`
	Content   string    `json:"content"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// =============================================================================
// NOTIFICATIONS
// =============================================================================

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Notification is transient UI feedback emitted by store operations.
// Notifications self-expire after a fixed delay and are never persisted.
type Notification struct {
	ID       string   `json:"id"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// =============================================================================
// USER / SESSION
// =============================================================================

type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
	RoleHRAdmin  Role = "hr_admin"
)

// User is the fixed current-user identity. There is no multi-user
// support: the id is a constant distinct from the persisted
// authentication flag.
type User struct {
	ID           string `json:"id"`
	EmployeeCode string `json:"employee_id"`
	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Role         Role   `json:"role"`
}
