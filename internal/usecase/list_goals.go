package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/goalkeeper/internal/domain"
)

// ListGoalsInput contains the parameters for listing goals.
// Fields are ordered to minimize memory padding.
type ListGoalsInput struct {
	ParentID *int                // Only list immediate subgoals of this goal (nil = all goals)
	Kind     domain.GoalKind     // Filter by kind ("" = both)
	Statuses domain.StatusFilter // Filter by status (empty = all)
	Start    int64               // Interval start (0 with End 0 = unbounded)
	End      int64               // Interval end
}

// ListGoalsOutput contains the result of listing goals.
type ListGoalsOutput struct {
	Goals []domain.Goal // Matching goals in creation order
}

// ListGoals is the use case for listing goals.
type ListGoals struct {
	session domain.GoalSession
}

// NewListGoals creates a new ListGoals use case.
func NewListGoals(session domain.GoalSession) *ListGoals {
	return &ListGoals{session: session}
}

// Execute lists goals matching the given input criteria.
func (uc *ListGoals) Execute(_ context.Context, in ListGoalsInput) (*ListGoalsOutput, error) {
	if in.Kind != "" && !in.Kind.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidKind, in.Kind)
	}
	for _, s := range in.Statuses {
		if !s.IsValid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, s)
		}
	}

	store, err := uc.session.Store()
	if err != nil {
		return nil, err
	}

	if in.ParentID != nil {
		if !store.DoesGoalExist(*in.ParentID) {
			return nil, fmt.Errorf("goal %d: %w", *in.ParentID, domain.ErrGoalNotFound)
		}
		subgoals := store.ImmediateSubgoals(*in.ParentID, in.Statuses)
		goals := make([]domain.Goal, 0, len(subgoals))
		for _, g := range subgoals {
			if (in.Kind == "" || g.Kind() == in.Kind) && domain.MatchesInterval(in.Start, in.End, g.Start, g.End) {
				goals = append(goals, g)
			}
		}
		return &ListGoalsOutput{Goals: goals}, nil
	}

	var goals []domain.Goal
	switch in.Kind {
	case domain.KindTime:
		goals = store.TimeGoals(in.Start, in.End, in.Statuses)
	case domain.KindTask:
		goals = store.TaskGoals(in.Start, in.End, in.Statuses)
	default:
		goals = store.Goals(in.Start, in.End, in.Statuses)
	}
	return &ListGoalsOutput{Goals: goals}, nil
}
