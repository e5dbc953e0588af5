// Package sqlitestore provides a SQLite implementation of domain.SnapshotStore.
// Each goal and recurrence is a row holding its JSON encoding plus a few
// indexed columns for ad-hoc inspection with the sqlite3 shell.
package sqlitestore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/runoshun/goalkeeper/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS meta (
  key TEXT PRIMARY KEY,
  value INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS goals (
  seq INTEGER PRIMARY KEY,
  id INTEGER NOT NULL UNIQUE,
  parent_id INTEGER NOT NULL,
  recurrence_id INTEGER NOT NULL,
  kind TEXT NOT NULL,
  status TEXT NOT NULL,
  name TEXT NOT NULL,
  start_ms INTEGER NOT NULL,
  end_ms INTEGER NOT NULL,
  body TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS goals_parent ON goals(parent_id);
CREATE TABLE IF NOT EXISTS recurrences (
  seq INTEGER PRIMARY KEY,
  id INTEGER NOT NULL UNIQUE,
  kind TEXT NOT NULL,
  name TEXT NOT NULL,
  start_ms INTEGER NOT NULL,
  end_ms INTEGER NOT NULL,
  body TEXT NOT NULL
);
`

// Meta keys.
const (
	metaVersion = "version"
	metaLastID  = "last_id"
)

// Store implements domain.SnapshotStore on a SQLite database file.
type Store struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// Ensure Store implements domain.SnapshotStore.
var _ domain.SnapshotStore = (*Store)(nil)

// New creates a Store for the given database path.
// The database is opened on first use.
func New(path string) *Store {
	return &Store{path: path}
}

// open returns the database handle, opening it if needed.
func (s *Store) open(ctx context.Context) (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db, nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// SQLite allows a single writer; one connection keeps transactions simple.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure sqlite: %w", err)
	}
	s.db = db
	return db, nil
}

// Close closes the database if it was opened.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// IsInitialized reports whether the database file exists with a schema.
func (s *Store) IsInitialized() bool {
	if _, err := os.Stat(s.path); err != nil {
		return false
	}
	ctx := context.Background()
	db, err := s.open(ctx)
	if err != nil {
		return false
	}
	var name string
	err = db.QueryRowContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'meta'`).Scan(&name)
	return err == nil
}

// Initialize creates the schema if it doesn't exist.
func (s *Store) Initialize() error {
	ctx := context.Background()
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	const seed = `INSERT OR IGNORE INTO meta (key, value) VALUES (?, 0), (?, 0)`
	if _, err := db.ExecContext(ctx, seed, metaVersion, metaLastID); err != nil {
		return fmt.Errorf("seed meta: %w", err)
	}
	return nil
}

// Load reads the latest snapshot.
func (s *Store) Load() (*domain.Snapshot, error) {
	if !s.IsInitialized() {
		return nil, domain.ErrNotInitialized
	}
	ctx := context.Background()
	db, err := s.open(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	snap := domain.NewSnapshot()
	if snap.Version, snap.LastID, err = readMeta(ctx, tx); err != nil {
		return nil, err
	}
	if err := readBodies(ctx, tx, `SELECT body FROM goals ORDER BY seq`, func(body []byte) error {
		var g domain.Goal
		if err := json.Unmarshal(body, &g); err != nil {
			return fmt.Errorf("decode goal: %w", err)
		}
		snap.Goals = append(snap.Goals, g)
		return nil
	}); err != nil {
		return nil, err
	}
	if err := readBodies(ctx, tx, `SELECT body FROM recurrences ORDER BY seq`, func(body []byte) error {
		var r domain.Recurrence
		if err := json.Unmarshal(body, &r); err != nil {
			return fmt.Errorf("decode recurrence: %w", err)
		}
		snap.Recurrences = append(snap.Recurrences, r)
		return nil
	}); err != nil {
		return nil, err
	}
	return snap, nil
}

// Save replaces the stored snapshot in a single transaction.
func (s *Store) Save(snap *domain.Snapshot) error {
	if !s.IsInitialized() {
		return domain.ErrNotInitialized
	}
	ctx := context.Background()
	db, err := s.open(ctx)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range []string{`DELETE FROM goals`, `DELETE FROM recurrences`} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("clear tables: %w", err)
		}
	}

	const insertGoal = `
INSERT INTO goals (seq, id, parent_id, recurrence_id, kind, status, name, start_ms, end_ms, body)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for i, g := range snap.Goals {
		body, err := json.Marshal(g)
		if err != nil {
			return fmt.Errorf("encode goal %d: %w", g.ID, err)
		}
		if _, err := tx.ExecContext(ctx, insertGoal,
			i, g.ID, g.ParentID, g.RecurrenceID, string(g.Kind()), string(g.Status),
			g.Name, g.Start, g.End, string(body),
		); err != nil {
			return fmt.Errorf("insert goal %d: %w", g.ID, err)
		}
	}

	const insertRecurrence = `
INSERT INTO recurrences (seq, id, kind, name, start_ms, end_ms, body)
VALUES (?, ?, ?, ?, ?, ?, ?)`
	for i, r := range snap.Recurrences {
		body, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("encode recurrence %d: %w", r.ID, err)
		}
		if _, err := tx.ExecContext(ctx, insertRecurrence,
			i, r.ID, string(r.Kind()), r.Template.Name, r.Start, r.End, string(body),
		); err != nil {
			return fmt.Errorf("insert recurrence %d: %w", r.ID, err)
		}
	}

	const upsertMeta = `
INSERT INTO meta (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := tx.ExecContext(ctx, upsertMeta, metaVersion, int64(snap.Version)); err != nil { //nolint:gosec // version fits in int64
		return fmt.Errorf("write version: %w", err)
	}
	if _, err := tx.ExecContext(ctx, upsertMeta, metaLastID, snap.LastID); err != nil {
		return fmt.Errorf("write last id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func readMeta(ctx context.Context, tx *sql.Tx) (uint64, int, error) {
	var version int64
	var lastID int
	err := tx.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = ?`, metaVersion).Scan(&version)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, 0, fmt.Errorf("read version: %w", err)
	}
	err = tx.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = ?`, metaLastID).Scan(&lastID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, 0, fmt.Errorf("read last id: %w", err)
	}
	return uint64(version), lastID, nil //nolint:gosec // stored from a uint64
}

func readBodies(ctx context.Context, tx *sql.Tx, query string, fn func(body []byte) error) error {
	rows, err := tx.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return fmt.Errorf("scan: %w", err)
		}
		if err := fn([]byte(body)); err != nil {
			return err
		}
	}
	return rows.Err()
}
