package persist

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/blackflag/hr-platform/hr"
)

// =============================================================================
// MEMORY SINK - In-memory implementation (for testing/dev)
// =============================================================================

// Memory keeps the serialized blob in process memory. It round-trips
// through JSON so tests exercise the same encoding as the durable sinks.
type Memory struct {
	mu   sync.RWMutex
	blob []byte
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load(_ context.Context) (hr.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.blob == nil {
		return hr.Snapshot{}, hr.ErrSnapshotNotFound
	}
	var snap hr.Snapshot
	if err := json.Unmarshal(m.blob, &snap); err != nil {
		return hr.Snapshot{}, fmt.Errorf("%w: %v", hr.ErrSnapshotCorrupt, err)
	}
	return snap, nil
}

func (m *Memory) Save(_ context.Context, snap hr.Snapshot) error {
	blob, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.blob = blob
	return nil
}

// Corrupt overwrites the stored blob with undecodable bytes. Test hook
// for the seed-fallback path.
func (m *Memory) Corrupt() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blob = []byte("{not json")
}
