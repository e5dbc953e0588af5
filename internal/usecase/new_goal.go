package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/goalkeeper/internal/domain"
)

// NewGoalInput contains the parameters for creating a new goal.
// Fields are ordered to minimize memory padding.
type NewGoalInput struct {
	Criteria       domain.CriteriaSpec // Time target or checklist (required)
	Name           string              // Goal name (required)
	SuccessActions []string            // Run when the goal succeeds
	FailureActions []string            // Run when the goal fails
	FinallyActions []string            // Run after either outcome
	Start          int64               // Start time in unix ms
	End            int64               // End time in unix ms
	ParentID       int                 // Parent goal ID (0 = root goal)
}

// NewGoalOutput contains the result of creating a new goal.
type NewGoalOutput struct {
	GoalID int // The ID of the created goal
}

// NewGoal is the use case for creating a new goal.
type NewGoal struct {
	session domain.GoalSession
	logger  domain.Logger
}

// NewNewGoal creates a new NewGoal use case.
func NewNewGoal(session domain.GoalSession, logger domain.Logger) *NewGoal {
	return &NewGoal{
		session: session,
		logger:  logger,
	}
}

// Execute creates a new goal with the given input.
func (uc *NewGoal) Execute(_ context.Context, in NewGoalInput) (*NewGoalOutput, error) {
	if in.Name == "" {
		return nil, domain.ErrEmptyName
	}
	if in.End < in.Start {
		return nil, domain.ErrInvalidTimebound
	}
	criteria, err := in.Criteria.Build()
	if err != nil {
		return nil, err
	}

	store, err := uc.session.Store()
	if err != nil {
		return nil, err
	}

	id, code := store.CreateOrEditGoal(domain.Goal{
		Name:           in.Name,
		Criteria:       criteria,
		Start:          in.Start,
		End:            in.End,
		ParentID:       in.ParentID,
		SuccessActions: in.SuccessActions,
		FailureActions: in.FailureActions,
		FinallyActions: in.FinallyActions,
	})
	if err := code.Err(); err != nil {
		return nil, err
	}

	if err := uc.session.Commit(); err != nil {
		return nil, err
	}

	uc.logger.Info(id, "goal", fmt.Sprintf("created: %q", in.Name))

	return &NewGoalOutput{GoalID: id}, nil
}
