/*
Package seed provides the built-in demo data and identifier generators.

PURPOSE:
  Supplies the initial collections the store falls back to when no
  persisted snapshot exists (or the persisted blob is corrupt), the
  fixed current-user identity, and the id / employee-code generators.

HOW SEEDING WORKS:
 1. Store startup asks the sink for a snapshot
 2. Any collection absent from the blob is replaced by its seed set
 3. A corrupt blob is logged and replaced wholesale by Snapshot()

DETERMINISM:
  Seed records use fixed ids (emp-001, lr-0001, ...) so demo flows and
  tests can reference them. Ids for records created at runtime come
  from GenerateID, which is random per process.

SEE ALSO:
  - store/: consumes the seed on init and reset
*/
package seed

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/blackflag/hr-platform/hr"
)

// CurrentUserID is the fixed "logged in" employee. There is no real
// session management; this id is a constant the store stamps onto
// uploads and outgoing messages.
const CurrentUserID = "emp-001"

// =============================================================================
// GENERATORS
// =============================================================================

// GenerateID returns a type-prefixed id, e.g. "doc-3fa85f64". Randomness
// comes from a UUID; uniqueness is only needed within a session since
// there is no server coordinating multiple writers.
func GenerateID(prefix string) string {
	u := uuid.New()
	return fmt.Sprintf("%s-%x", prefix, u[:4])
}

// NextEmployeeCode returns the next sequential human-readable code
// (EMP-0001, EMP-0002, ...). Employees are never removed, so scanning
// for the highest existing code keeps the sequence gap-free.
func NextEmployeeCode(employees []hr.Employee) string {
	max := 0
	for _, e := range employees {
		var n int
		if _, err := fmt.Sscanf(e.EmployeeCode, "EMP-%04d", &n); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("EMP-%04d", max+1)
}

// =============================================================================
// FIXED CURRENT USER
// =============================================================================

// CurrentUser returns the fixed demo identity.
func CurrentUser() hr.User {
	return hr.User{
		ID:           CurrentUserID,
		EmployeeCode: "EMP-0001",
		Email:        "sarah.chen@blackflag.dev",
		FirstName:    "Sarah",
		LastName:     "Chen",
		Role:         hr.RoleHRAdmin,
	}
}

// =============================================================================
// SEED COLLECTIONS
// =============================================================================

func at(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func atHour(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func ptr(s string) *string { return &s }

// Employees returns the seed directory. emp-008 is already deactivated
// so the directory's inactive state renders out of the box.
func Employees() []hr.Employee {
	created := at(2024, time.January, 15)
	mk := func(id, code, email, first, last string, dept hr.Department, position, phone string, salary float64, ssn string, manager *string, hired time.Time, active bool) hr.Employee {
		return hr.Employee{
			ID:           id,
			EmployeeCode: code,
			Email:        email,
			FirstName:    first,
			LastName:     last,
			Department:   dept,
			Position:     position,
			Phone:        phone,
			Address:      "remote",
			Salary:       salary,
			SSN:          ssn,
			ManagerID:    manager,
			IsActive:     active,
			HireDate:     hired,
			CreatedAt:    created,
			UpdatedAt:    created,
		}
	}

	return []hr.Employee{
		mk("emp-001", "EMP-0001", "sarah.chen@blackflag.dev", "Sarah", "Chen",
			hr.DeptHumanResources, "HR Manager", "555-0101", 98000, "***-**-4821",
			nil, at(2019, time.March, 4), true),
		mk("emp-002", "EMP-0002", "marcus.webb@blackflag.dev", "Marcus", "Webb",
			hr.DeptEngineering, "Senior Engineer", "555-0102", 142000, "***-**-9034",
			ptr("emp-003"), at(2020, time.June, 15), true),
		mk("emp-003", "EMP-0003", "priya.patel@blackflag.dev", "Priya", "Patel",
			hr.DeptEngineering, "Engineering Manager", "555-0103", 158000, "***-**-2210",
			ptr("emp-001"), at(2018, time.September, 10), true),
		mk("emp-004", "EMP-0004", "diego.ramirez@blackflag.dev", "Diego", "Ramirez",
			hr.DeptSales, "Account Executive", "555-0104", 87000, "***-**-7743",
			ptr("emp-001"), at(2021, time.February, 1), true),
		mk("emp-005", "EMP-0005", "emily.hart@blackflag.dev", "Emily", "Hart",
			hr.DeptMarketing, "Content Lead", "555-0105", 91000, "***-**-1187",
			ptr("emp-001"), at(2022, time.July, 18), true),
		mk("emp-006", "EMP-0006", "tom.okafor@blackflag.dev", "Tom", "Okafor",
			hr.DeptFinance, "Financial Analyst", "555-0106", 95000, "***-**-5526",
			ptr("emp-001"), at(2023, time.January, 9), true),
		mk("emp-007", "EMP-0007", "lena.fischer@blackflag.dev", "Lena", "Fischer",
			hr.DeptOperations, "Office Manager", "555-0107", 72000, "***-**-3391",
			ptr("emp-001"), at(2021, time.November, 29), true),
		mk("emp-008", "EMP-0008", "james.whitfield@blackflag.dev", "James", "Whitfield",
			hr.DeptLegal, "Counsel", "555-0108", 135000, "***-**-6102",
			ptr("emp-001"), at(2020, time.April, 6), false),
	}
}

// defaultAccrual maps each leave type to its annual day grant.
var defaultAccrual = map[hr.LeaveType]int64{
	hr.LeaveVacation:    15,
	hr.LeaveSick:        10,
	hr.LeavePersonal:    3,
	hr.LeaveBereavement: 3,
	hr.LeaveJuryDuty:    5,
	hr.LeaveParental:    60,
}

// LeaveBalances returns one row per employee and leave type for the
// current year. Balance ids are derived from employee id + leave type so
// the seed stays deterministic.
func LeaveBalances(employees []hr.Employee) []hr.LeaveBalance {
	year := time.Now().Year()
	var out []hr.LeaveBalance
	for _, e := range employees {
		for _, lt := range hr.LeaveTypes {
			b := hr.LeaveBalance{
				ID:          fmt.Sprintf("bal-%s-%s", strings.TrimPrefix(e.ID, "emp-"), lt),
				EmployeeID:  e.ID,
				LeaveType:   lt,
				Year:        year,
				Accrued:     decimal.NewFromInt(defaultAccrual[lt]),
				Used:        decimal.Zero,
				CarriedOver: decimal.Zero,
			}
			if lt == hr.LeaveVacation && e.ID != CurrentUserID {
				b.CarriedOver = decimal.NewFromInt(2)
			}
			out = append(out, b)
		}
	}
	return out
}

// LeaveRequests returns a small mix of request states.
func LeaveRequests() []hr.LeaveRequest {
	return []hr.LeaveRequest{
		{
			ID:         "lr-0001",
			EmployeeID: "emp-002",
			LeaveType:  hr.LeaveVacation,
			StartDate:  at(2025, time.October, 6),
			EndDate:    at(2025, time.October, 10),
			Hours:      40,
			Status:     hr.LeavePending,
			Notes:      "Fall trip",
			CreatedAt:  atHour(2025, time.August, 20, 9, 15),
			UpdatedAt:  atHour(2025, time.August, 20, 9, 15),
		},
		{
			ID:         "lr-0002",
			EmployeeID: "emp-004",
			LeaveType:  hr.LeaveSick,
			StartDate:  at(2025, time.July, 14),
			EndDate:    at(2025, time.July, 15),
			Hours:      16,
			Status:     hr.LeaveApproved,
			Notes:      "",
			ApprovedBy: ptr(CurrentUserID),
			CreatedAt:  atHour(2025, time.July, 14, 8, 2),
			UpdatedAt:  atHour(2025, time.July, 14, 11, 40),
		},
		{
			ID:         "lr-0003",
			EmployeeID: "emp-005",
			LeaveType:  hr.LeavePersonal,
			StartDate:  at(2025, time.August, 29),
			EndDate:    at(2025, time.August, 29),
			Hours:      8,
			Status:     hr.LeaveDenied,
			Notes:      "Moving day",
			ApprovedBy: ptr(CurrentUserID),
			CreatedAt:  atHour(2025, time.August, 12, 16, 30),
			UpdatedAt:  atHour(2025, time.August, 13, 10, 5),
		},
	}
}

// Documents returns the seed document records. One has a near-term
// expiry so the expiring-documents view renders.
func Documents() []hr.Document {
	certExpiry := at(2026, time.February, 1)
	return []hr.Document{
		{
			ID:           "doc-0001",
			EmployeeID:   "emp-002",
			DocumentType: hr.DocContract,
			Filename:     "webb-employment-agreement.pdf",
			FileSize:     482133,
			UploadedBy:   CurrentUserID,
			CreatedAt:    atHour(2024, time.June, 15, 10, 0),
		},
		{
			ID:           "doc-0002",
			EmployeeID:   "emp-003",
			DocumentType: hr.DocCertification,
			Filename:     "patel-pmp-certification.pdf",
			FileSize:     120744,
			UploadedBy:   CurrentUserID,
			ExpiryDate:   &certExpiry,
			CreatedAt:    atHour(2025, time.January, 22, 14, 30),
		},
		{
			ID:           "doc-0003",
			EmployeeID:   "emp-006",
			DocumentType: hr.DocTaxForm,
			Filename:     "okafor-w4-2025.pdf",
			FileSize:     88201,
			UploadedBy:   CurrentUserID,
			CreatedAt:    atHour(2025, time.February, 3, 9, 12),
		},
	}
}

// Messages returns a short thread between the current user and
// engineering, with one unread message addressed to the current user.
func Messages() []hr.Message {
	return []hr.Message{
		{
			ID:        "msg-0001",
			FromID:    CurrentUserID,
			ToID:      "emp-003",
			Content:   "Priya, can you confirm headcount for Q4 planning?",
			Read:      true,
			CreatedAt: atHour(2025, time.August, 18, 9, 0),
		},
		{
			ID:        "msg-0002",
			FromID:    "emp-003",
			ToID:      CurrentUserID,
			Content:   "Confirmed - two open reqs, both backend.",
			Read:      true,
			CreatedAt: atHour(2025, time.August, 18, 9, 25),
		},
		{
			ID:        "msg-0003",
			FromID:    "emp-002",
			ToID:      CurrentUserID,
			Content:   "Submitted my October PTO request, no rush.",
			Read:      false,
			CreatedAt: atHour(2025, time.August, 20, 9, 20),
		},
	}
}

// Snapshot composes the full seed state. The authentication flag always
// starts false; signing in is part of the demo flow.
func Snapshot() hr.Snapshot {
	employees := Employees()
	return hr.Snapshot{
		Employees:       employees,
		LeaveBalances:   LeaveBalances(employees),
		LeaveRequests:   LeaveRequests(),
		Documents:       Documents(),
		Messages:        Messages(),
		IsAuthenticated: false,
	}
}
