package persist

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/blackflag/hr-platform/hr"
)

// =============================================================================
// FILE SINK - One JSON file on disk
// =============================================================================

// File persists the snapshot as a single JSON file. Writes go through a
// temp file + rename so a crash mid-write never leaves a torn blob.
type File struct {
	mu   sync.Mutex
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Load(_ context.Context) (hr.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	blob, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return hr.Snapshot{}, hr.ErrSnapshotNotFound
	}
	if err != nil {
		return hr.Snapshot{}, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	var snap hr.Snapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		return hr.Snapshot{}, fmt.Errorf("%w: %v", hr.ErrSnapshotCorrupt, err)
	}
	return snap, nil
}

func (f *File) Save(_ context.Context, snap hr.Snapshot) error {
	blob, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("failed to replace snapshot file: %w", err)
	}
	return nil
}
