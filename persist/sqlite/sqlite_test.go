package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blackflag/hr-platform/hr"
	"github.com/blackflag/hr-platform/persist/sqlite"
	"github.com/blackflag/hr-platform/seed"
)

func newTestSink(t *testing.T) *sqlite.Store {
	t.Helper()
	sink, err := sqlite.New(filepath.Join(t.TempDir(), "hr.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sink.Close() })
	return sink
}

func TestSQLiteSink_EmptyIsNotFound(t *testing.T) {
	sink := newTestSink(t)

	_, err := sink.Load(context.Background())
	require.ErrorIs(t, err, hr.ErrSnapshotNotFound)
}

func TestSQLiteSink_RoundTrip(t *testing.T) {
	sink := newTestSink(t)
	ctx := context.Background()

	want := seed.Snapshot()
	want.IsAuthenticated = true
	require.NoError(t, sink.Save(ctx, want))

	got, err := sink.Load(ctx)
	require.NoError(t, err)
	require.True(t, got.IsAuthenticated)
	require.Len(t, got.Employees, len(want.Employees))
	require.Len(t, got.LeaveBalances, len(want.LeaveBalances))

	// Decimal amounts survive the trip exactly.
	require.True(t, got.LeaveBalances[0].Accrued.Equal(want.LeaveBalances[0].Accrued))
}

func TestSQLiteSink_SaveIsUpsert(t *testing.T) {
	sink := newTestSink(t)
	ctx := context.Background()

	require.NoError(t, sink.Save(ctx, seed.Snapshot()))
	require.NoError(t, sink.Save(ctx, hr.Snapshot{IsAuthenticated: true}))

	got, err := sink.Load(ctx)
	require.NoError(t, err)
	require.True(t, got.IsAuthenticated)
	require.Empty(t, got.Employees) // single slot, full overwrite
}

func TestSQLiteSink_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hr.db")
	ctx := context.Background()

	first, err := sqlite.New(path)
	require.NoError(t, err)
	require.NoError(t, first.Save(ctx, seed.Snapshot()))
	require.NoError(t, first.Close())

	second, err := sqlite.New(path)
	require.NoError(t, err)
	defer second.Close()

	got, err := second.Load(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, got.Employees)
}
