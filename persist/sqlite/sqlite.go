/*
Package sqlite provides a SQLite-backed snapshot sink.

PURPOSE:
  Persists the application blob in a single-row key/value table. The
  whole snapshot is one JSON document; SQLite is used as a durable slot,
  not as a relational schema over the collections.

WHY ONE ROW:
  The store's contract is a full-document overwrite after every
  mutation. Mapping collections to tables would invite partial writes
  and merge semantics the system explicitly does not have.

WAL MODE:
  Opened with WAL (Write-Ahead Logging) for better crash recovery and
  so a reader does not block the single writer.

USAGE:
  sink, err := sqlite.New("./data/hr.db")
  if err != nil {
      log.Fatal(err)
  }
  defer sink.Close()

SEE ALSO:
  - persist/sink.go: the Sink interface and failure contract
  - persist/file.go: the plain-file alternative
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/blackflag/hr-platform/hr"
)

const snapshotKey = "hr-state"

// Store implements persist.Sink using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a SQLite-backed sink at the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		key TEXT PRIMARY KEY,
		blob TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) Load(ctx context.Context) (hr.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var blob string
	err := s.db.QueryRowContext(ctx,
		`SELECT blob FROM snapshots WHERE key = ?`, snapshotKey).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return hr.Snapshot{}, hr.ErrSnapshotNotFound
	}
	if err != nil {
		return hr.Snapshot{}, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var snap hr.Snapshot
	if err := json.Unmarshal([]byte(blob), &snap); err != nil {
		return hr.Snapshot{}, fmt.Errorf("%w: %v", hr.ErrSnapshotCorrupt, err)
	}
	return snap, nil
}

func (s *Store) Save(ctx context.Context, snap hr.Snapshot) error {
	blob, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (key, blob, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET blob = excluded.blob, updated_at = excluded.updated_at
	`, snapshotKey, string(blob), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}
