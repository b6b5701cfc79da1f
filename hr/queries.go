package hr

import (
	"sort"
	"time"
)

// =============================================================================
// DERIVED QUERIES - Stateless aggregates computed per call, never stored
// =============================================================================

// ConversationBetween returns the messages exchanged between userID and
// participantID, sorted ascending by creation time. A conversation is a
// derived view; nothing is stored per pair.
func ConversationBetween(messages []Message, userID, participantID string) []Message {
	var out []Message
	for _, m := range messages {
		if (m.FromID == userID && m.ToID == participantID) ||
			(m.FromID == participantID && m.ToID == userID) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// UnreadCount returns the number of unread messages addressed to userID.
func UnreadCount(messages []Message, userID string) int {
	n := 0
	for _, m := range messages {
		if m.ToID == userID && !m.Read {
			n++
		}
	}
	return n
}

// DepartmentHeadcount returns the active employee count per department.
func DepartmentHeadcount(employees []Employee) map[Department]int {
	counts := make(map[Department]int)
	for _, e := range employees {
		if e.IsActive {
			counts[e.Department]++
		}
	}
	return counts
}

// ActiveCount returns the number of active employees.
func ActiveCount(employees []Employee) int {
	n := 0
	for _, e := range employees {
		if e.IsActive {
			n++
		}
	}
	return n
}

// PendingRequests returns the leave requests still awaiting a decision.
func PendingRequests(requests []LeaveRequest) []LeaveRequest {
	var out []LeaveRequest
	for _, r := range requests {
		if r.Status == LeavePending {
			out = append(out, r)
		}
	}
	return out
}

// BalancesFor returns the balance rows belonging to one employee.
func BalancesFor(balances []LeaveBalance, employeeID string) []LeaveBalance {
	var out []LeaveBalance
	for _, b := range balances {
		if b.EmployeeID == employeeID {
			out = append(out, b)
		}
	}
	return out
}

// DocumentsFor returns the documents belonging to one employee.
func DocumentsFor(documents []Document, employeeID string) []Document {
	var out []Document
	for _, d := range documents {
		if d.EmployeeID == employeeID {
			out = append(out, d)
		}
	}
	return out
}

// ExpiringDocuments returns documents whose expiry date falls within the
// given window after asOf. Documents without an expiry never match.
func ExpiringDocuments(documents []Document, asOf time.Time, within time.Duration) []Document {
	cutoff := asOf.Add(within)
	var out []Document
	for _, d := range documents {
		if d.ExpiryDate == nil {
			continue
		}
		if !d.ExpiryDate.Before(asOf) && d.ExpiryDate.Before(cutoff) {
			out = append(out, d)
		}
	}
	return out
}
