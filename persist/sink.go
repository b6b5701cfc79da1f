/*
Package persist provides snapshot sink implementations.

PURPOSE:
  A Sink is the single key-value slot the application store writes its
  full state blob to after every mutation and reads once at startup.
  The slot holds one JSON object (see hr.Snapshot); every save is a full
  overwrite, never a merge. Concurrent writers to the same slot clobber
  each other silently - an accepted limitation, not a handled case.

IMPLEMENTATIONS:
  Memory:        in-process, for tests and the demo's ephemeral mode
  File:          one JSON file on disk
  sqlite.Store:  one row in a SQLite key/value table (persist/sqlite)

FAILURE CONTRACT:
  Load returns hr.ErrSnapshotNotFound when nothing was ever saved and
  wraps hr.ErrSnapshotCorrupt when the blob cannot be decoded. The store
  treats both the same way: log and fall back fully to seed data.
*/
package persist

import (
	"context"

	"github.com/blackflag/hr-platform/hr"
)

// Sink persists and restores the application snapshot.
type Sink interface {
	// Load reads the persisted snapshot. Returns hr.ErrSnapshotNotFound
	// when no snapshot exists yet.
	Load(ctx context.Context) (hr.Snapshot, error)

	// Save overwrites the persisted snapshot with the given state.
	Save(ctx context.Context, snap hr.Snapshot) error
}
