package store_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/blackflag/hr-platform/hr"
	"github.com/blackflag/hr-platform/persist"
	"github.com/blackflag/hr-platform/seed"
	"github.com/blackflag/hr-platform/store"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

// newTestStore builds a store on a fresh memory sink with notification
// expiry disabled so tests control the list explicitly.
func newTestStore(t *testing.T) (*store.Store, *persist.Memory) {
	t.Helper()
	sink := persist.NewMemory()
	s := store.New(sink, store.Options{NotificationTTL: -1})
	return s, sink
}

func balanceFor(t *testing.T, s *store.Store, employeeID string, lt hr.LeaveType) hr.LeaveBalance {
	t.Helper()
	for _, b := range s.LeaveBalances() {
		if b.EmployeeID == employeeID && b.LeaveType == lt {
			return b
		}
	}
	t.Fatalf("no balance for %s/%s", employeeID, lt)
	return hr.LeaveBalance{}
}

// =============================================================================
// SESSION
// =============================================================================

func TestLogin_RequiresNonEmptyCredentials(t *testing.T) {
	s, _ := newTestStore(t)

	require.False(t, s.Login("", "secret"))
	require.False(t, s.Login("sarah.chen@blackflag.dev", ""))
	require.False(t, s.IsAuthenticated())

	require.True(t, s.Login("sarah.chen@blackflag.dev", "anything"))
	require.True(t, s.IsAuthenticated())
}

func TestLogout_ClearsFlagAndNotifies(t *testing.T) {
	s, _ := newTestStore(t)
	s.Login("a@b.c", "pw")

	s.Logout()

	require.False(t, s.IsAuthenticated())
	notifs := s.Notifications()
	require.NotEmpty(t, notifs)
	last := notifs[len(notifs)-1]
	require.Equal(t, hr.SeverityInfo, last.Severity)
}

func TestAuthenticationFlag_SurvivesRestart(t *testing.T) {
	sink := persist.NewMemory()
	s := store.New(sink, store.Options{NotificationTTL: -1})
	s.Login("a@b.c", "pw")

	reopened := store.New(sink, store.Options{NotificationTTL: -1})
	require.True(t, reopened.IsAuthenticated())
}

// =============================================================================
// EMPLOYEES
// =============================================================================

func TestAddEmployee_GeneratesIdentityAndCode(t *testing.T) {
	// GIVEN: the seed directory
	// WHEN: adding a new employee
	// THEN: active, fresh id, next sequential code, count +1
	s, _ := newTestStore(t)
	before := s.Employees()

	emp := s.AddEmployee(hr.EmployeeForm{
		Email:      "ann.lee@blackflag.dev",
		FirstName:  "Ann",
		LastName:   "Lee",
		Department: hr.DeptEngineering,
		Position:   "Engineer",
		HireDate:   time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
	})

	require.True(t, emp.IsActive)
	require.NotEmpty(t, emp.ID)
	for _, e := range before {
		require.NotEqual(t, e.ID, emp.ID)
		require.NotEqual(t, e.EmployeeCode, emp.EmployeeCode)
	}
	require.Equal(t, "EMP-0009", emp.EmployeeCode)
	require.Len(t, s.Employees(), len(before)+1)
}

func TestUpdateEmployee_MergesPartialFields(t *testing.T) {
	s, _ := newTestStore(t)
	position := "Staff Engineer"

	updated := s.UpdateEmployee("emp-002", hr.EmployeePatch{Position: &position})

	require.NotNil(t, updated)
	require.Equal(t, "Staff Engineer", updated.Position)
	require.Equal(t, "Marcus", updated.FirstName) // untouched
	require.True(t, updated.UpdatedAt.After(updated.CreatedAt))
}

func TestUpdateEmployee_UnknownIDReturnsNil(t *testing.T) {
	s, _ := newTestStore(t)
	name := "Nobody"
	require.Nil(t, s.UpdateEmployee("emp-missing", hr.EmployeePatch{FirstName: &name}))
}

func TestDeleteEmployee_SoftAndIdempotent(t *testing.T) {
	// GIVEN: an active employee
	// WHEN: deactivating twice
	// THEN: record remains, inactive both times, no error
	s, _ := newTestStore(t)
	count := len(s.Employees())

	s.DeleteEmployee("emp-004")
	emp := s.GetEmployee("emp-004")
	require.NotNil(t, emp)
	require.False(t, emp.IsActive)

	s.DeleteEmployee("emp-004")
	emp = s.GetEmployee("emp-004")
	require.NotNil(t, emp)
	require.False(t, emp.IsActive)

	require.Len(t, s.Employees(), count)
}

func TestDeleteEmployee_KeepsDependentsResolvable(t *testing.T) {
	s, _ := newTestStore(t)
	s.DeleteEmployee("emp-002")

	// The seeded pending request still points at a resolvable employee.
	req := s.GetLeaveRequest("lr-0001")
	require.NotNil(t, req)
	require.NotNil(t, s.GetEmployee(req.EmployeeID))
}

func TestGetEmployee_UnknownIDReturnsNil(t *testing.T) {
	s, _ := newTestStore(t)
	require.Nil(t, s.GetEmployee("emp-xyz"))
}

// =============================================================================
// LEAVE
// =============================================================================

func TestAddLeaveRequest_StartsPending(t *testing.T) {
	s, _ := newTestStore(t)

	req := s.AddLeaveRequest(hr.LeaveRequestForm{
		EmployeeID: "emp-003",
		LeaveType:  hr.LeaveVacation,
		StartDate:  time.Date(2025, time.November, 3, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, time.November, 7, 0, 0, 0, 0, time.UTC),
		Hours:      40,
	})

	require.Equal(t, hr.LeavePending, req.Status)
	require.Nil(t, req.ApprovedBy)
	require.NotEmpty(t, req.ID)
}

func TestApprove_ChargesMatchingBalanceOnce(t *testing.T) {
	// GIVEN: emp-002's seeded pending 40h vacation request
	// WHEN: approving it
	// THEN: the emp-002/vacation balance gains used 5 (40/8), other
	//       balances are untouched, and re-approving does not re-charge
	s, _ := newTestStore(t)
	approver := seed.CurrentUserID

	usedBefore := balanceFor(t, s, "emp-002", hr.LeaveVacation).Used
	sickBefore := balanceFor(t, s, "emp-002", hr.LeaveSick).Used
	otherBefore := balanceFor(t, s, "emp-003", hr.LeaveVacation).Used

	s.UpdateLeaveStatus("lr-0001", hr.LeaveApproved, &approver)

	req := s.GetLeaveRequest("lr-0001")
	require.Equal(t, hr.LeaveApproved, req.Status)
	require.NotNil(t, req.ApprovedBy)
	require.Equal(t, approver, *req.ApprovedBy)

	used := balanceFor(t, s, "emp-002", hr.LeaveVacation).Used
	require.True(t, used.Equal(usedBefore.Add(decimal.NewFromInt(5))),
		"expected used +5, got %s", used)
	require.True(t, balanceFor(t, s, "emp-002", hr.LeaveSick).Used.Equal(sickBefore))
	require.True(t, balanceFor(t, s, "emp-003", hr.LeaveVacation).Used.Equal(otherBefore))

	// Approving again is a no-op: the transition is one-shot per request.
	s.UpdateLeaveStatus("lr-0001", hr.LeaveApproved, &approver)
	require.True(t, balanceFor(t, s, "emp-002", hr.LeaveVacation).Used.Equal(used))
}

func TestTerminalStatus_AdmitsNoTransition(t *testing.T) {
	s, _ := newTestStore(t)

	s.UpdateLeaveStatus("lr-0001", hr.LeaveDenied, nil)
	require.Equal(t, hr.LeaveDenied, s.GetLeaveRequest("lr-0001").Status)

	// Denied is terminal: a later approval neither flips the status nor
	// charges the balance.
	usedBefore := balanceFor(t, s, "emp-002", hr.LeaveVacation).Used
	s.UpdateLeaveStatus("lr-0001", hr.LeaveApproved, nil)
	require.Equal(t, hr.LeaveDenied, s.GetLeaveRequest("lr-0001").Status)
	require.True(t, balanceFor(t, s, "emp-002", hr.LeaveVacation).Used.Equal(usedBefore))
}

func TestCancel_IsAStatusNotADeletion(t *testing.T) {
	s, _ := newTestStore(t)
	count := len(s.LeaveRequests())

	s.CancelLeaveRequest("lr-0001")

	req := s.GetLeaveRequest("lr-0001")
	require.NotNil(t, req)
	require.Equal(t, hr.LeaveCancelled, req.Status)
	require.Len(t, s.LeaveRequests(), count)
}

func TestApprove_HalfDaysStayExact(t *testing.T) {
	// 12 hours is 1.5 days; decimal math keeps it exact.
	s, _ := newTestStore(t)

	req := s.AddLeaveRequest(hr.LeaveRequestForm{
		EmployeeID: "emp-005",
		LeaveType:  hr.LeavePersonal,
		StartDate:  time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, time.October, 2, 0, 0, 0, 0, time.UTC),
		Hours:      12,
	})
	s.UpdateLeaveStatus(req.ID, hr.LeaveApproved, nil)

	used := balanceFor(t, s, "emp-005", hr.LeavePersonal).Used
	require.True(t, used.Equal(decimal.RequireFromString("1.5")), "got %s", used)
}

// =============================================================================
// DOCUMENTS
// =============================================================================

func TestAddDocument_StampsCurrentUserAsUploader(t *testing.T) {
	s, _ := newTestStore(t)

	doc := s.AddDocument(hr.DocumentForm{
		EmployeeID:   "emp-006",
		DocumentType: hr.DocOther,
		Filename:     "okafor-direct-deposit.pdf",
		FileSize:     1024,
	})

	require.Equal(t, seed.CurrentUserID, doc.UploadedBy)
	require.NotNil(t, s.GetDocument(doc.ID))
}

func TestDeleteDocument_HardRemovesExactlyOne(t *testing.T) {
	// GIVEN: the seed documents
	// WHEN: deleting one
	// THEN: its lookup returns nil, the others remain
	s, _ := newTestStore(t)
	before := s.Documents()
	require.NotEmpty(t, before)

	s.DeleteDocument("doc-0001")

	require.Nil(t, s.GetDocument("doc-0001"))
	require.Len(t, s.Documents(), len(before)-1)
	require.NotNil(t, s.GetDocument("doc-0002"))
	require.NotNil(t, s.GetDocument("doc-0003"))
}

// =============================================================================
// MESSAGES
// =============================================================================

func TestConversation_ScopedAndSorted(t *testing.T) {
	// GIVEN: messages to two different participants
	// WHEN: reading the conversation with one of them
	// THEN: exactly the messages between current user and that
	//       participant, non-decreasing by creation time
	s, _ := newTestStore(t)
	s.SendMessage("emp-003", "one more for priya")
	s.SendMessage("emp-004", "unrelated thread")

	conv := s.GetConversation("emp-003")

	require.NotEmpty(t, conv)
	for i, m := range conv {
		onThread := (m.FromID == seed.CurrentUserID && m.ToID == "emp-003") ||
			(m.FromID == "emp-003" && m.ToID == seed.CurrentUserID)
		require.True(t, onThread, "message %s is not part of the conversation", m.ID)
		if i > 0 {
			require.False(t, m.CreatedAt.Before(conv[i-1].CreatedAt))
		}
	}
}

func TestUnreadCount_TracksMarkAsRead(t *testing.T) {
	s, _ := newTestStore(t)

	// Seed has one unread message addressed to the current user.
	require.Equal(t, 1, s.GetUnreadCount())

	s.MarkAsRead([]string{"msg-0003"})
	require.Equal(t, 0, s.GetUnreadCount())

	// Marking again (and unknown ids) changes nothing.
	s.MarkAsRead([]string{"msg-0003", "msg-missing"})
	require.Equal(t, 0, s.GetUnreadCount())
}

func TestSendMessage_FromCurrentUserUnread(t *testing.T) {
	s, _ := newTestStore(t)

	msg := s.SendMessage("emp-007", "office key pickup?")

	require.Equal(t, seed.CurrentUserID, msg.FromID)
	require.Equal(t, "emp-007", msg.ToID)
	require.False(t, msg.Read)

	// Outgoing messages never count toward the current user's unread.
	require.Equal(t, 1, s.GetUnreadCount())
}

// =============================================================================
// NOTIFICATIONS
// =============================================================================

func TestNotification_AutoClearsAfterTTL(t *testing.T) {
	sink := persist.NewMemory()
	s := store.New(sink, store.Options{NotificationTTL: 25 * time.Millisecond})

	n := s.AddNotification("saved", hr.SeveritySuccess)
	require.NotEmpty(t, s.Notifications())

	require.Eventually(t, func() bool {
		for _, live := range s.Notifications() {
			if live.ID == n.ID {
				return false
			}
		}
		return true
	}, 2*time.Second, 10*time.Millisecond)
}

func TestClearNotification_Idempotent(t *testing.T) {
	s, _ := newTestStore(t)

	n := s.AddNotification("once", hr.SeverityInfo)
	s.ClearNotification(n.ID)
	s.ClearNotification(n.ID) // harmless

	for _, live := range s.Notifications() {
		require.NotEqual(t, n.ID, live.ID)
	}
}

// =============================================================================
// PERSISTENCE
// =============================================================================

func TestSnapshot_RoundTripReproducesState(t *testing.T) {
	// GIVEN: a store with mutations across every collection
	// WHEN: a fresh store initializes from the same sink
	// THEN: the observable state is identical
	sink := persist.NewMemory()
	s := store.New(sink, store.Options{NotificationTTL: -1})

	s.Login("sarah.chen@blackflag.dev", "pw")
	s.AddEmployee(hr.EmployeeForm{
		Email: "ann.lee@blackflag.dev", FirstName: "Ann", LastName: "Lee",
		Department: hr.DeptEngineering, HireDate: time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
	})
	s.UpdateLeaveStatus("lr-0001", hr.LeaveApproved, nil)
	s.SendMessage("emp-003", "ping")
	s.DeleteDocument("doc-0003")

	want, err := json.Marshal(s.Snapshot())
	require.NoError(t, err)

	reopened := store.New(sink, store.Options{NotificationTTL: -1})
	got, err := json.Marshal(reopened.Snapshot())
	require.NoError(t, err)

	require.JSONEq(t, string(want), string(got))
}

func TestSnapshot_EmptiedCollectionStaysEmptyAfterReload(t *testing.T) {
	// GIVEN: every document hard-deleted
	// WHEN: a fresh store initializes from the same sink
	// THEN: the collection is still empty; the persisted [] must not be
	// mistaken for an absent key and refilled from seed data
	sink := persist.NewMemory()
	s := store.New(sink, store.Options{NotificationTTL: -1})

	for _, d := range s.Documents() {
		s.DeleteDocument(d.ID)
	}
	require.Empty(t, s.Documents())

	reopened := store.New(sink, store.Options{NotificationTTL: -1})
	require.Empty(t, reopened.Documents())
}

func TestCorruptSnapshot_FallsBackToSeed(t *testing.T) {
	sink := persist.NewMemory()
	sink.Corrupt()

	s := store.New(sink, store.Options{NotificationTTL: -1})

	require.Len(t, s.Employees(), len(seed.Employees()))
	require.False(t, s.IsAuthenticated())
}

func TestPartialSnapshot_DefaultsMissingCollections(t *testing.T) {
	// An older blob holding only employees still loads; absent
	// collections come from seed.
	dir := t.TempDir()
	path := filepath.Join(dir, "hr-state.json")
	blob := `{"employees":[],"isAuthenticated":true}`
	require.NoError(t, os.WriteFile(path, []byte(blob), 0o644))

	s := store.New(persist.NewFile(path), store.Options{NotificationTTL: -1})

	require.Empty(t, s.Employees())
	require.True(t, s.IsAuthenticated())
	require.Len(t, s.Messages(), len(seed.Messages()))
	require.Len(t, s.Documents(), len(seed.Documents()))
}

func TestReset_RestoresSeedState(t *testing.T) {
	s, _ := newTestStore(t)
	s.DeleteDocument("doc-0001")
	s.Login("a@b.c", "pw")

	s.Reset()

	require.NotNil(t, s.GetDocument("doc-0001"))
	require.False(t, s.IsAuthenticated())
}
