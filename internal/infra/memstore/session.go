package memstore

import (
	"fmt"

	"github.com/runoshun/goalkeeper/internal/domain"
)

// Ensure Session implements domain.GoalSession.
var _ domain.GoalSession = (*Session)(nil)

// Session binds an in-memory Store to a snapshot backend.
// The store is restored on first use and saved on Commit when its version moved.
type Session struct {
	snapshots     domain.SnapshotStore
	store         *Store
	loadedVersion uint64
}

// NewSession creates a Session over the given snapshot backend.
func NewSession(snapshots domain.SnapshotStore) *Session {
	return &Session{snapshots: snapshots}
}

// Store returns the goal store, loading it on first use.
func (s *Session) Store() (domain.GoalStore, error) {
	if s.store != nil {
		return s.store, nil
	}
	if !s.snapshots.IsInitialized() {
		return nil, domain.ErrNotInitialized
	}
	snap, err := s.snapshots.Load()
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	s.store = Restore(snap)
	s.loadedVersion = s.store.Version()
	return s.store, nil
}

// Commit saves the store if it changed since it was loaded or last committed.
func (s *Session) Commit() error {
	if s.store == nil {
		return nil
	}
	snap := s.store.Snapshot()
	if snap.Version == s.loadedVersion {
		return nil
	}
	if err := s.snapshots.Save(snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	s.loadedVersion = snap.Version
	return nil
}
