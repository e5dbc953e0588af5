package usecase

import (
	"context"

	"github.com/runoshun/goalkeeper/internal/domain"
	"github.com/runoshun/goalkeeper/internal/usecase/shared"
)

// ShowGoalInput contains the parameters for showing a goal.
type ShowGoalInput struct {
	GoalID int // Goal ID to show
}

// ShowGoalOutput contains the result of showing a goal.
// Fields are ordered to minimize memory padding.
type ShowGoalOutput struct {
	Parent   *domain.Goal  // Parent goal (nil for root goals)
	Subgoals []domain.Goal // Immediate subgoals of any status
	Goal     domain.Goal   // The goal
}

// ShowGoal is the use case for displaying goal details.
type ShowGoal struct {
	session domain.GoalSession
}

// NewShowGoal creates a new ShowGoal use case.
func NewShowGoal(session domain.GoalSession) *ShowGoal {
	return &ShowGoal{session: session}
}

// Execute retrieves a goal with its parent and immediate subgoals.
func (uc *ShowGoal) Execute(_ context.Context, in ShowGoalInput) (*ShowGoalOutput, error) {
	store, err := uc.session.Store()
	if err != nil {
		return nil, err
	}

	goal, err := shared.GetGoal(store, in.GoalID)
	if err != nil {
		return nil, err
	}

	out := &ShowGoalOutput{
		Goal:     goal,
		Subgoals: store.ImmediateSubgoals(goal.ID, nil),
	}
	if !goal.IsRoot() {
		if parent, code := store.GetGoal(goal.ParentID); code == domain.GetSuccess {
			out.Parent = &parent
		}
	}
	return out, nil
}
