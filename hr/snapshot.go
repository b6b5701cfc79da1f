/*
snapshot.go - The persisted application state blob

PURPOSE:
  Snapshot is the complete set of domain collections plus the
  authentication flag, serialized as one unit. The store overwrites the
  whole blob on every mutation; there is no incremental diff and no
  per-collection write.

FIELD NAMES:
  JSON keys match the storage layout the frontend established
  (employees, leaveBalances, leaveRequests, documents, messages,
  isAuthenticated). Absent collections are defaulted from seed data on
  load, so an older blob missing a field still loads.

SEE ALSO:
  - persist/: sinks that read and write this blob
  - store/:   the owner that produces and consumes it
*/
package hr

// Snapshot is the unit of persistence: every collection plus the
// session flag. Notifications are deliberately excluded (ephemeral).
type Snapshot struct {
	Employees       []Employee     `json:"employees"`
	LeaveBalances   []LeaveBalance `json:"leaveBalances"`
	LeaveRequests   []LeaveRequest `json:"leaveRequests"`
	Documents       []Document     `json:"documents"`
	Messages        []Message      `json:"messages"`
	IsAuthenticated bool           `json:"isAuthenticated"`
}

// cloneSlice copies a slice, preserving nil-ness. The distinction is
// load-bearing: an emptied collection must serialize as [] so a reload
// keeps it empty, while only a truly absent key falls back to seed data.
func cloneSlice[T any](src []T) []T {
	if src == nil {
		return nil
	}
	out := make([]T, len(src))
	copy(out, src)
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Clone returns a deep copy, nullable pointer fields included, so
// callers can hold a snapshot without aliasing live store state.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Employees:       cloneSlice(s.Employees),
		LeaveBalances:   cloneSlice(s.LeaveBalances),
		LeaveRequests:   cloneSlice(s.LeaveRequests),
		Documents:       cloneSlice(s.Documents),
		Messages:        cloneSlice(s.Messages),
		IsAuthenticated: s.IsAuthenticated,
	}
	for i := range out.Employees {
		out.Employees[i].ManagerID = clonePtr(out.Employees[i].ManagerID)
	}
	for i := range out.LeaveRequests {
		out.LeaveRequests[i].ApprovedBy = clonePtr(out.LeaveRequests[i].ApprovedBy)
	}
	for i := range out.Documents {
		out.Documents[i].ExpiryDate = clonePtr(out.Documents[i].ExpiryDate)
	}
	return out
}
