package memstore

import (
	"github.com/runoshun/goalkeeper/internal/domain"
)

// CreateOrEditGoal creates the goal when goal.ID is 0, otherwise edits it.
func (s *Store) CreateOrEditGoal(goal domain.Goal) (int, domain.CreateGoalCode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if goal.ID == 0 {
		return s.createGoal(goal)
	}
	return goal.ID, s.editGoal(goal)
}

func (s *Store) createGoal(goal domain.Goal) (int, domain.CreateGoalCode) {
	if goal.Criteria == nil {
		return 0, domain.CreateGoalMissingCriteria
	}
	if goal.ParentID != 0 {
		parent, ok := s.goals[goal.ParentID]
		if !ok {
			return 0, domain.CreateGoalParentDoesntExist
		}
		if !parent.Contains(goal.Start, goal.End) {
			return 0, domain.CreateGoalSubgoalOutsideParentTimebound
		}
	}

	g := goal.Clone()
	g.ID = s.ids.next()
	g.RecurrenceID = 0
	g.Status = domain.StatusIncomplete
	s.insertGoal(&g)
	s.bump()
	return g.ID, domain.CreateGoalSuccess
}

func (s *Store) editGoal(goal domain.Goal) domain.CreateGoalCode {
	stored, ok := s.goals[goal.ID]
	if !ok {
		return domain.CreateGoalEditingGoalDoesntExist
	}

	// The parent link is fixed at creation; containment is checked against it.
	if parent, ok := s.goals[stored.ParentID]; ok {
		if !parent.Contains(goal.Start, goal.End) {
			return domain.CreateGoalSubgoalOutsideParentTimebound
		}
	}

	for _, sub := range s.immediateSubgoals(goal.ID, domain.StatusFilter{domain.StatusIncomplete}) {
		if !domain.IsWithinBounds(goal.Start, goal.End, sub.Start, sub.End) {
			return domain.CreateGoalNewTimeboundSmallerThanSubgoals
		}
	}

	if goal.Criteria == nil || goal.Kind() != stored.Kind() {
		return domain.CreateGoalEditingGoalOfIncorrectType
	}

	edited := goal.Clone()
	if newTask, ok := edited.TaskCriteria(); ok {
		oldTask, _ := stored.TaskCriteria()
		for i := range newTask.Items {
			newTask.Items[i].Checked = i < len(oldTask.Items) && oldTask.Items[i].Checked
		}
	}

	stored.Name = edited.Name
	stored.Start = edited.Start
	stored.End = edited.End
	stored.SuccessActions = edited.SuccessActions
	stored.FailureActions = edited.FailureActions
	stored.FinallyActions = edited.FinallyActions
	stored.Criteria = edited.Criteria
	s.bump()
	return domain.CreateGoalSuccess
}

// DeleteGoal marks a goal as deleted.
func (s *Store) DeleteGoal(id int) domain.GoalDeleteCode {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.goals[id]
	if !ok {
		return domain.DeleteGoalDoesntExist
	}
	if g.Status.IsTerminal() {
		return domain.DeleteGoalAlreadyResolved
	}
	if s.hasIncompleteSubgoals(id) {
		return domain.DeleteGoalHasSubgoals
	}
	s.transition(g, domain.StatusDeleted)
	return domain.DeleteSuccess
}

// SucceedGoal marks a goal as succeeded.
func (s *Store) SucceedGoal(id int) domain.GoalDeathCode {
	return s.resolve(id, domain.StatusSucceeded)
}

// FailGoal marks a goal as failed.
func (s *Store) FailGoal(id int) domain.GoalDeathCode {
	return s.resolve(id, domain.StatusFailed)
}

func (s *Store) resolve(id int, status domain.CompletionStatus) domain.GoalDeathCode {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.goals[id]
	if !ok {
		return domain.DeathGoalDoesntExist
	}
	if g.Status.IsTerminal() {
		return domain.DeathGoalAlreadyResolved
	}
	if s.hasIncompleteSubgoals(id) {
		return domain.DeathSubgoalsNotAllDead
	}
	s.transition(g, status)
	return domain.DeathSuccess
}

// transition moves a goal to a new status. Caller must hold mu and have
// checked the preconditions; an invalid transition here is a bug.
func (s *Store) transition(g *domain.Goal, status domain.CompletionStatus) {
	if !g.Status.CanTransitionTo(status) {
		panic("memstore: invalid status transition " + string(g.Status) + " -> " + string(status))
	}
	g.Status = status
	s.bump()
}

// FeedTimeGoal adds dedicated time to a time-based goal.
func (s *Store) FeedTimeGoal(id int, durationMs int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.goals[id]
	if !ok {
		return false
	}
	tc, ok := g.TimeCriteria()
	if !ok {
		return false
	}
	tc.DedicatedMs += durationMs
	s.bump()
	return true
}

// CheckTaskCriteria checks the checklist item at index.
func (s *Store) CheckTaskCriteria(id, index int) domain.CriteriaToggleCode {
	return s.setChecked(id, index, true)
}

// UncheckTaskCriteria unchecks the checklist item at index.
func (s *Store) UncheckTaskCriteria(id, index int) domain.CriteriaToggleCode {
	return s.setChecked(id, index, false)
}

func (s *Store) setChecked(id, index int, checked bool) domain.CriteriaToggleCode {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.goals[id]
	if !ok {
		return domain.CriteriaGoalDoesntExist
	}
	tc, ok := g.TaskCriteria()
	if !ok {
		return domain.CriteriaGoalIsTimebased
	}
	if index < 0 || index >= len(tc.Items) {
		return domain.CriteriaIndexOutOfBounds
	}
	if tc.Items[index].Checked == checked {
		return domain.CriteriaAlreadyInThisState
	}
	tc.Items[index].Checked = checked
	s.bump()
	return domain.CriteriaToggled
}

// GetGoal retrieves a goal of either variant.
func (s *Store) GetGoal(id int) (domain.Goal, domain.GetGoalCode) {
	return s.getGoal(id, "")
}

// GetTimeGoal retrieves a time-based goal.
func (s *Store) GetTimeGoal(id int) (domain.Goal, domain.GetGoalCode) {
	return s.getGoal(id, domain.KindTime)
}

// GetTaskGoal retrieves a task-based goal.
func (s *Store) GetTaskGoal(id int) (domain.Goal, domain.GetGoalCode) {
	return s.getGoal(id, domain.KindTask)
}

// getGoal looks up a goal; an empty kind accepts both variants.
func (s *Store) getGoal(id int, kind domain.GoalKind) (domain.Goal, domain.GetGoalCode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.goals[id]
	if !ok {
		return domain.Goal{}, domain.GetGoalDoesntExist
	}
	if kind != "" && g.Kind() != kind {
		return domain.Goal{}, domain.GetGoalIncorrectType
	}
	return g.Clone(), domain.GetSuccess
}

// insertGoal stores a goal with an assigned ID. Caller must hold mu.
func (s *Store) insertGoal(g *domain.Goal) {
	s.goals[g.ID] = g
	s.goalOrder = append(s.goalOrder, g.ID)
}

// hasIncompleteSubgoals reports whether any direct child is incomplete. Caller must hold mu.
func (s *Store) hasIncompleteSubgoals(id int) bool {
	for _, gid := range s.goalOrder {
		g := s.goals[gid]
		if g.ParentID == id && g.Status == domain.StatusIncomplete {
			return true
		}
	}
	return false
}
