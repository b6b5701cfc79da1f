/*
errors.go - Centralized error types for the HR domain

PURPOSE:
  All sentinel errors in one place for consistency and discoverability.
  Store operations themselves never return errors (absent lookups yield
  nil results, bad persisted data degrades to seed defaults), so these
  are used by the persistence sinks and the HTTP layer.

USAGE:
  if errors.Is(err, hr.ErrSnapshotNotFound) {
      // first run: fall back to seed data
  }
*/
package hr

import "errors"

var (
	// ErrSnapshotNotFound is returned by a sink when no snapshot has been
	// persisted yet. Expected on first run; callers seed instead.
	ErrSnapshotNotFound = errors.New("no persisted snapshot")

	// ErrSnapshotCorrupt is returned by a sink when the persisted blob
	// cannot be decoded. Callers log and fall back fully to seed data.
	ErrSnapshotCorrupt = errors.New("persisted snapshot is corrupt")

	// ErrEmployeeNotFound indicates a lookup for an unknown employee id.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrRequestNotFound indicates a lookup for an unknown leave request id.
	ErrRequestNotFound = errors.New("leave request not found")

	// ErrDocumentNotFound indicates a lookup for an unknown document id.
	ErrDocumentNotFound = errors.New("document not found")
)

// IsNotFound reports whether the error indicates a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEmployeeNotFound) ||
		errors.Is(err, ErrRequestNotFound) ||
		errors.Is(err, ErrDocumentNotFound)
}
