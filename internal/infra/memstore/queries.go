package memstore

import (
	"github.com/runoshun/goalkeeper/internal/domain"
)

// Goals lists goals of both variants matching the interval and filter.
func (s *Store) Goals(start, end int64, filter domain.StatusFilter) []domain.Goal {
	return s.listGoals("", start, end, filter)
}

// TimeGoals lists time-based goals matching the interval and filter.
func (s *Store) TimeGoals(start, end int64, filter domain.StatusFilter) []domain.Goal {
	return s.listGoals(domain.KindTime, start, end, filter)
}

// TaskGoals lists task-based goals matching the interval and filter.
func (s *Store) TaskGoals(start, end int64, filter domain.StatusFilter) []domain.Goal {
	return s.listGoals(domain.KindTask, start, end, filter)
}

func (s *Store) listGoals(kind domain.GoalKind, start, end int64, filter domain.StatusFilter) []domain.Goal {
	s.mu.Lock()
	defer s.mu.Unlock()

	var goals []domain.Goal
	for _, id := range s.goalOrder {
		g := s.goals[id]
		if kind != "" && g.Kind() != kind {
			continue
		}
		if !filter.Matches(g.Status) {
			continue
		}
		if !domain.MatchesInterval(start, end, g.Start, g.End) {
			continue
		}
		goals = append(goals, g.Clone())
	}
	return goals
}

// Recurrences lists recurrences whose bound intersects the interval.
func (s *Store) Recurrences(start, end int64) []domain.Recurrence {
	return s.listRecurrences("", start, end)
}

// TimeRecurrences lists time-based recurrences whose bound intersects the interval.
func (s *Store) TimeRecurrences(start, end int64) []domain.Recurrence {
	return s.listRecurrences(domain.KindTime, start, end)
}

// TaskRecurrences lists task-based recurrences whose bound intersects the interval.
func (s *Store) TaskRecurrences(start, end int64) []domain.Recurrence {
	return s.listRecurrences(domain.KindTask, start, end)
}

func (s *Store) listRecurrences(kind domain.GoalKind, start, end int64) []domain.Recurrence {
	s.mu.Lock()
	defer s.mu.Unlock()

	var recs []domain.Recurrence
	for _, id := range s.recurrenceOrder {
		r := s.recurrences[id]
		if kind != "" && r.Kind() != kind {
			continue
		}
		if !domain.MatchesInterval(start, end, r.Start, r.BoundEnd()) {
			continue
		}
		recs = append(recs, r.Clone())
	}
	return recs
}

// ImmediateSubgoals lists direct children of a goal.
func (s *Store) ImmediateSubgoals(id int, filter domain.StatusFilter) []domain.Goal {
	s.mu.Lock()
	defer s.mu.Unlock()

	subs := s.immediateSubgoals(id, filter)
	out := make([]domain.Goal, 0, len(subs))
	for _, g := range subs {
		out = append(out, g.Clone())
	}
	return out
}

// NumImmediateSubgoals counts direct children of a goal.
func (s *Store) NumImmediateSubgoals(id int, filter domain.StatusFilter) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.immediateSubgoals(id, filter))
}

// immediateSubgoals returns the stored children of a goal. Caller must hold mu.
func (s *Store) immediateSubgoals(id int, filter domain.StatusFilter) []*domain.Goal {
	var subs []*domain.Goal
	for _, gid := range s.goalOrder {
		g := s.goals[gid]
		if g.ParentID == id && filter.Matches(g.Status) {
			subs = append(subs, g)
		}
	}
	return subs
}

// ExpiredGoalIDs lists incomplete goals that ended before curTime.
func (s *Store) ExpiredGoalIDs(curTime int64) []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ids []int
	for _, id := range s.goalOrder {
		if s.goals[id].IsExpired(curTime) {
			ids = append(ids, id)
		}
	}
	return ids
}

// DoesGoalExist reports whether a goal with the ID exists.
func (s *Store) DoesGoalExist(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.goals[id]
	return ok
}

// DoesRecurrenceExist reports whether a recurrence with the ID exists.
func (s *Store) DoesRecurrenceExist(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.recurrences[id]
	return ok
}

// IsTimeGoal reports whether the ID belongs to a time-based goal.
func (s *Store) IsTimeGoal(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.goals[id]
	return ok && g.IsTimeBased()
}

// IsTimeRecurrence reports whether the ID belongs to a time-based recurrence.
func (s *Store) IsTimeRecurrence(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.recurrences[id]
	return ok && r.Kind() == domain.KindTime
}
