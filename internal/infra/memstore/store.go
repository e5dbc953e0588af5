// Package memstore provides the in-memory implementation of domain.GoalStore.
package memstore

import (
	"sync"

	"github.com/runoshun/goalkeeper/internal/domain"
)

// Store implements domain.GoalStore in memory.
// A single mutex guards the whole aggregate for the duration of every call.
// Fields are ordered to minimize memory padding.
type Store struct {
	goals           map[int]*domain.Goal
	recurrences     map[int]*domain.Recurrence
	goalOrder       []int // Goal IDs in insertion order
	recurrenceOrder []int // Recurrence IDs in insertion order
	ids             allocator
	version         uint64
	mu              sync.Mutex
}

// Ensure Store implements domain.GoalStore.
var _ domain.GoalStore = (*Store)(nil)

// New creates an empty Store.
func New() *Store {
	return &Store{
		goals:       make(map[int]*domain.Goal),
		recurrences: make(map[int]*domain.Recurrence),
	}
}

// Restore creates a Store from a snapshot.
// The allocator resumes after the largest ID seen, so IDs are never reused.
func Restore(snap *domain.Snapshot) *Store {
	s := New()
	if snap == nil {
		return s
	}
	s.version = snap.Version
	s.ids.last = snap.LastID

	for i := range snap.Goals {
		g := snap.Goals[i].Clone()
		s.goals[g.ID] = &g
		s.goalOrder = append(s.goalOrder, g.ID)
		s.ids.last = max(s.ids.last, g.ID)
	}
	for i := range snap.Recurrences {
		r := snap.Recurrences[i].Clone()
		s.recurrences[r.ID] = &r
		s.recurrenceOrder = append(s.recurrenceOrder, r.ID)
		s.ids.last = max(s.ids.last, r.ID)
	}
	return s
}

// Snapshot exports the full store state in insertion order.
func (s *Store) Snapshot() *domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := &domain.Snapshot{
		Goals:       make([]domain.Goal, 0, len(s.goalOrder)),
		Recurrences: make([]domain.Recurrence, 0, len(s.recurrenceOrder)),
		Version:     s.version,
		LastID:      s.ids.last,
	}
	for _, id := range s.goalOrder {
		snap.Goals = append(snap.Goals, s.goals[id].Clone())
	}
	for _, id := range s.recurrenceOrder {
		snap.Recurrences = append(snap.Recurrences, s.recurrences[id].Clone())
	}
	return snap
}

// Version returns the change counter.
func (s *Store) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// bump records a successful mutation. Caller must hold mu.
func (s *Store) bump() {
	s.version++
}
