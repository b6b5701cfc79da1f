package hr_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/blackflag/hr-platform/hr"
)

func ts(day, hour int) time.Time {
	return time.Date(2025, time.August, day, hour, 0, 0, 0, time.UTC)
}

func TestConversationBetween_FiltersAndSorts(t *testing.T) {
	msgs := []hr.Message{
		{ID: "m3", FromID: "u2", ToID: "u1", CreatedAt: ts(3, 9)},
		{ID: "m1", FromID: "u1", ToID: "u2", CreatedAt: ts(1, 9)},
		{ID: "mx", FromID: "u1", ToID: "u9", CreatedAt: ts(2, 9)}, // other thread
		{ID: "m2", FromID: "u2", ToID: "u1", CreatedAt: ts(2, 9)},
	}

	conv := hr.ConversationBetween(msgs, "u1", "u2")

	require.Len(t, conv, 3)
	require.Equal(t, []string{"m1", "m2", "m3"}, []string{conv[0].ID, conv[1].ID, conv[2].ID})
}

func TestConversationBetween_EqualTimestampsKeepOrder(t *testing.T) {
	same := ts(1, 9)
	msgs := []hr.Message{
		{ID: "a", FromID: "u1", ToID: "u2", CreatedAt: same},
		{ID: "b", FromID: "u2", ToID: "u1", CreatedAt: same},
	}

	conv := hr.ConversationBetween(msgs, "u1", "u2")
	require.Equal(t, "a", conv[0].ID)
	require.Equal(t, "b", conv[1].ID)
}

func TestUnreadCount_OnlyInboundUnread(t *testing.T) {
	msgs := []hr.Message{
		{FromID: "u2", ToID: "u1", Read: false},
		{FromID: "u2", ToID: "u1", Read: true},
		{FromID: "u1", ToID: "u2", Read: false}, // outbound, never counts
		{FromID: "u3", ToID: "u1", Read: false},
	}
	require.Equal(t, 2, hr.UnreadCount(msgs, "u1"))
}

func TestDepartmentHeadcount_SkipsInactive(t *testing.T) {
	emps := []hr.Employee{
		{Department: hr.DeptEngineering, IsActive: true},
		{Department: hr.DeptEngineering, IsActive: true},
		{Department: hr.DeptEngineering, IsActive: false},
		{Department: hr.DeptLegal, IsActive: true},
	}

	counts := hr.DepartmentHeadcount(emps)
	require.Equal(t, 2, counts[hr.DeptEngineering])
	require.Equal(t, 1, counts[hr.DeptLegal])
	require.Equal(t, 3, hr.ActiveCount(emps))
}

func TestExpiringDocuments_WindowBounds(t *testing.T) {
	asOf := ts(1, 0)
	soon := ts(20, 0)
	past := ts(1, 0).AddDate(0, 0, -5)
	far := ts(1, 0).AddDate(1, 0, 0)

	docs := []hr.Document{
		{ID: "d1", ExpiryDate: &soon},
		{ID: "d2", ExpiryDate: &past}, // already expired
		{ID: "d3", ExpiryDate: &far},  // beyond window
		{ID: "d4"},                    // no expiry
	}

	got := hr.ExpiringDocuments(docs, asOf, 30*24*time.Hour)
	require.Len(t, got, 1)
	require.Equal(t, "d1", got[0].ID)
}

func TestAvailable_NotClamped(t *testing.T) {
	b := hr.LeaveBalance{
		Accrued:     decimal.NewFromInt(5),
		CarriedOver: decimal.NewFromInt(1),
		Used:        decimal.NewFromInt(8),
	}
	require.True(t, b.Available().Equal(decimal.NewFromInt(-2)))
}

func TestDays_ConvertsHours(t *testing.T) {
	r := hr.LeaveRequest{Hours: 40}
	require.True(t, r.Days().Equal(decimal.NewFromInt(5)))

	half := hr.LeaveRequest{Hours: 4}
	require.True(t, half.Days().Equal(decimal.RequireFromString("0.5")))
}

func TestLeaveStatus_Terminality(t *testing.T) {
	require.False(t, hr.LeavePending.Terminal())
	require.True(t, hr.LeaveApproved.Terminal())
	require.True(t, hr.LeaveDenied.Terminal())
	require.True(t, hr.LeaveCancelled.Terminal())
}

func TestSnapshotClone_DoesNotAlias(t *testing.T) {
	snap := hr.Snapshot{Employees: []hr.Employee{{ID: "e1", FirstName: "A"}}}
	clone := snap.Clone()

	clone.Employees[0].FirstName = "B"
	require.Equal(t, "A", snap.Employees[0].FirstName)
}
