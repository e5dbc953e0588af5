package memstore

import (
	"slices"

	"github.com/runoshun/goalkeeper/internal/domain"
)

// CreateOrEditRecurrence creates the recurrence when rec.ID is 0, otherwise edits it.
// Edits keep the recorded spawn progress.
func (s *Store) CreateOrEditRecurrence(rec domain.Recurrence) (int, domain.CreateRecurrenceCode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := rec.Clone()
	r.Template.ID = 0
	r.Template.RecurrenceID = 0
	r.Template.Status = domain.StatusIncomplete

	if r.ID == 0 {
		r.ID = s.ids.next()
		r.LatestSpawnedStart = r.Start
		r.Spawned = false
		s.recurrences[r.ID] = &r
		s.recurrenceOrder = append(s.recurrenceOrder, r.ID)
		s.bump()
		return r.ID, domain.RecurrenceSuccess
	}

	stored, ok := s.recurrences[r.ID]
	if !ok {
		return r.ID, domain.RecurrenceEditingDoesntExist
	}
	r.LatestSpawnedStart = stored.LatestSpawnedStart
	r.Spawned = stored.Spawned
	*stored = r
	s.bump()
	return r.ID, domain.RecurrenceSuccess
}

// DeleteRecurrence removes a recurrence. Goals it already spawned are kept.
func (s *Store) DeleteRecurrence(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.recurrences[id]; !ok {
		return false
	}
	delete(s.recurrences, id)
	s.recurrenceOrder = slices.DeleteFunc(s.recurrenceOrder, func(rid int) bool {
		return rid == id
	})
	s.bump()
	return true
}

// GetRecurrence retrieves a recurrence.
func (s *Store) GetRecurrence(id int) (domain.Recurrence, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.recurrences[id]
	if !ok {
		return domain.Recurrence{}, false
	}
	return r.Clone(), true
}

// GenerateGoalsFromRecurrence spawns every pending goal starting at or before
// curTime, plus the first one starting after it. A spawned goal keeps the
// template's parent only if that parent exists and contains its start.
// The version is bumped once per call, even when nothing was spawned.
func (s *Store) GenerateGoalsFromRecurrence(id int, curTime int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.recurrences[id]
	if !ok {
		return false
	}

	for _, start := range r.PlanSpawns(curTime) {
		g := r.Instance(start)
		if parent, ok := s.goals[g.ParentID]; !ok || !parent.Contains(g.Start, g.End) {
			g.ParentID = 0
		}
		g.ID = s.ids.next()
		s.insertGoal(&g)
		r.MarkSpawned(start)
	}
	s.bump()
	return true
}
