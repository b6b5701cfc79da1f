/*
leave.go - Leave request lifecycle and the approval side effect

STATE MACHINE:
  pending -> approved | denied | cancelled

  Terminal statuses admit no transition out. That guard is what makes
  the balance deduction one-shot: a request can land on approved at most
  once, so the matching balance's used amount can only be charged once
  per request id.

THE APPROVAL SIDE EFFECT:
  Exactly when a request transitions to approved, the balance row with
  the same employee and leave type (year is not part of the match) gets
  used += hours/8. Amounts are decimal so 4-hour half days do not drift.
*/
package store

import (
	"fmt"

	"github.com/blackflag/hr-platform/hr"
	"github.com/blackflag/hr-platform/seed"
)

// LeaveBalances returns a copy of every balance row.
func (s *Store) LeaveBalances() []hr.LeaveBalance {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]hr.LeaveBalance(nil), s.balances...)
}

// LeaveRequests returns a copy of every leave request.
func (s *Store) LeaveRequests() []hr.LeaveRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]hr.LeaveRequest(nil), s.requests...)
}

// GetLeaveRequest returns the request with the given id, or nil.
func (s *Store) GetLeaveRequest(id string) *hr.LeaveRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.requests {
		if s.requests[i].ID == id {
			r := s.requests[i]
			return &r
		}
	}
	return nil
}

// AddLeaveRequest appends a new pending request.
func (s *Store) AddLeaveRequest(form hr.LeaveRequestForm) hr.LeaveRequest {
	now := s.clock()

	s.mu.Lock()
	req := hr.LeaveRequest{
		ID:         seed.GenerateID("lr"),
		EmployeeID: form.EmployeeID,
		LeaveType:  form.LeaveType,
		StartDate:  form.StartDate,
		EndDate:    form.EndDate,
		Hours:      form.Hours,
		Status:     hr.LeavePending,
		Notes:      form.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.requests = append(s.requests, req)
	s.persistLocked()
	s.mu.Unlock()

	s.AddNotification("Leave request submitted.", hr.SeveritySuccess)
	return req
}

// UpdateLeaveStatus moves a pending request to the given status. A
// request already in a terminal status is left untouched. When the new
// status is approved, the matching balance is charged hours/8 days.
func (s *Store) UpdateLeaveStatus(id string, status hr.LeaveStatus, approvedBy *string) {
	transitioned := false

	s.mu.Lock()
	for i := range s.requests {
		req := &s.requests[i]
		if req.ID != id {
			continue
		}
		if req.Status.Terminal() {
			break
		}

		req.Status = status
		if approvedBy != nil {
			req.ApprovedBy = approvedBy
		}
		req.UpdatedAt = s.clock()
		transitioned = true

		if status == hr.LeaveApproved {
			s.chargeBalanceLocked(*req)
		}
		break
	}
	if transitioned {
		s.persistLocked()
	}
	s.mu.Unlock()

	if !transitioned {
		return
	}
	severity := hr.SeverityInfo
	if status == hr.LeaveApproved {
		severity = hr.SeveritySuccess
	}
	s.AddNotification(fmt.Sprintf("Leave request %s.", status), severity)
}

// chargeBalanceLocked increments used on the first balance row matching
// the request's employee and leave type.
func (s *Store) chargeBalanceLocked(req hr.LeaveRequest) {
	for i := range s.balances {
		b := &s.balances[i]
		if b.EmployeeID == req.EmployeeID && b.LeaveType == req.LeaveType {
			b.Used = b.Used.Add(req.Days())
			return
		}
	}
}

// CancelLeaveRequest is shorthand for a transition to cancelled.
// Cancellation is a status value, not a deletion.
func (s *Store) CancelLeaveRequest(id string) {
	s.UpdateLeaveStatus(id, hr.LeaveCancelled, nil)
}
