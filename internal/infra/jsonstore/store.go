// Package jsonstore provides a JSON file-based implementation of domain.SnapshotStore.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/runoshun/goalkeeper/internal/domain"
)

// formatVersion is bumped when the file layout changes incompatibly.
const formatVersion = 1

// storeData represents the JSON file structure.
// Fields are ordered to minimize memory padding.
type storeData struct {
	Goals       []domain.Goal       `json:"goals"`
	Recurrences []domain.Recurrence `json:"recurrences"`
	Meta        meta                `json:"meta"`
}

// meta contains store metadata.
type meta struct {
	Version uint64 `json:"version"` // Goal store change counter
	LastID  int    `json:"lastID"`  // Last ID handed out
	Format  int    `json:"format"`  // File layout version
}

// Store implements domain.SnapshotStore using a JSON file.
type Store struct {
	path     string
	lockPath string
}

// Ensure Store implements domain.SnapshotStore.
var _ domain.SnapshotStore = (*Store)(nil)

// New creates a new Store for the given file path.
// The file does not need to exist; Initialize creates it.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Load reads the latest snapshot.
func (s *Store) Load() (*domain.Snapshot, error) {
	var snap *domain.Snapshot
	err := s.withLock(func(data *storeData) error {
		snap = &domain.Snapshot{
			Goals:       data.Goals,
			Recurrences: data.Recurrences,
			Version:     data.Meta.Version,
			LastID:      data.Meta.LastID,
		}
		return nil
	})
	return snap, err
}

// Save replaces the stored snapshot.
func (s *Store) Save(snap *domain.Snapshot) error {
	return s.withLockWrite(func(data *storeData) error {
		data.Goals = snap.Goals
		data.Recurrences = snap.Recurrences
		data.Meta.Version = snap.Version
		data.Meta.LastID = snap.LastID
		return nil
	})
}

// IsInitialized checks if the store file exists.
func (s *Store) IsInitialized() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Initialize creates an empty store file if it doesn't exist.
func (s *Store) Initialize() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return nil // Already exists
	}

	return s.write(&storeData{
		Goals:       []domain.Goal{},
		Recurrences: []domain.Recurrence{},
		Meta:        meta{Format: formatVersion},
	})
}

// withLock executes fn with a shared (read) lock.
func (s *Store) withLock(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	return fn(data)
}

// withLockWrite executes fn with an exclusive (write) lock and writes the result.
func (s *Store) withLockWrite(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	if err := fn(data); err != nil {
		return err
	}

	return s.write(data)
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

func (s *Store) read() (*storeData, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotInitialized
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var data storeData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}
	if data.Meta.Format > formatVersion {
		return nil, fmt.Errorf("store file format %d is newer than supported %d", data.Meta.Format, formatVersion)
	}
	data.Meta.Format = formatVersion

	if data.Goals == nil {
		data.Goals = []domain.Goal{}
	}
	if data.Recurrences == nil {
		data.Recurrences = []domain.Recurrence{}
	}

	return &data, nil
}

func (s *Store) write(data *storeData) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store data: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
