package hr_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/blackflag/hr-platform/hr"
)

func TestSnapshotClone_PreservesEmptyCollections(t *testing.T) {
	// GIVEN: an emptied collection alongside an absent one
	// WHEN: the snapshot is cloned
	// THEN: empty stays empty ([] on the wire) and absent stays absent
	snap := hr.Snapshot{
		Documents: []hr.Document{},
	}

	clone := snap.Clone()

	require.NotNil(t, clone.Documents)
	require.Empty(t, clone.Documents)
	require.Nil(t, clone.Employees)
	require.Nil(t, clone.Messages)
}

func TestSnapshotClone_DoesNotAliasPointerFields(t *testing.T) {
	manager := "emp-001"
	expiry := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	snap := hr.Snapshot{
		Employees: []hr.Employee{{ID: "emp-002", ManagerID: &manager}},
		Documents: []hr.Document{{ID: "doc-0001", ExpiryDate: &expiry}},
	}

	clone := snap.Clone()

	// snap.Documents[0].ExpiryDate aliases the local expiry variable, so
	// capture the expected value before mutating through the pointer.
	want := expiry
	*snap.Employees[0].ManagerID = "emp-999"
	*snap.Documents[0].ExpiryDate = expiry.AddDate(1, 0, 0)

	require.Equal(t, "emp-001", *clone.Employees[0].ManagerID)
	require.True(t, clone.Documents[0].ExpiryDate.Equal(want))
}
