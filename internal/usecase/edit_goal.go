package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/goalkeeper/internal/domain"
	"github.com/runoshun/goalkeeper/internal/usecase/shared"
)

// EditGoalInput contains the parameters for editing a goal.
// All fields except GoalID are optional. Only non-nil fields will be updated.
// The goal kind cannot change; the parent is fixed at creation.
// Fields are ordered to minimize memory padding.
type EditGoalInput struct {
	Name           *string              // New name (nil = no change)
	Start          *int64               // New start (nil = no change)
	End            *int64               // New end (nil = no change)
	Criteria       *domain.CriteriaSpec // New criteria (nil = no change)
	SuccessActions []string             // New success actions (nil = no change)
	FailureActions []string             // New failure actions (nil = no change)
	FinallyActions []string             // New finally actions (nil = no change)
	GoalID         int                  // Goal ID to edit (required)
}

func (in *EditGoalInput) isEmpty() bool {
	return in.Name == nil && in.Start == nil && in.End == nil && in.Criteria == nil &&
		in.SuccessActions == nil && in.FailureActions == nil && in.FinallyActions == nil
}

// EditGoalOutput contains the result of editing a goal.
type EditGoalOutput struct {
	Goal domain.Goal // The updated goal
}

// EditGoal is the use case for editing an existing goal.
type EditGoal struct {
	session domain.GoalSession
	logger  domain.Logger
}

// NewEditGoal creates a new EditGoal use case.
func NewEditGoal(session domain.GoalSession, logger domain.Logger) *EditGoal {
	return &EditGoal{
		session: session,
		logger:  logger,
	}
}

// Execute edits a goal with the given input.
func (uc *EditGoal) Execute(_ context.Context, in EditGoalInput) (*EditGoalOutput, error) {
	if in.isEmpty() {
		return nil, domain.ErrNoFieldsToUpdate
	}
	if in.Name != nil && *in.Name == "" {
		return nil, domain.ErrEmptyName
	}

	store, err := uc.session.Store()
	if err != nil {
		return nil, err
	}

	goal, err := shared.GetGoal(store, in.GoalID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		goal.Name = *in.Name
	}
	if in.Start != nil {
		goal.Start = *in.Start
	}
	if in.End != nil {
		goal.End = *in.End
	}
	if goal.End < goal.Start {
		return nil, domain.ErrInvalidTimebound
	}
	if in.SuccessActions != nil {
		goal.SuccessActions = in.SuccessActions
	}
	if in.FailureActions != nil {
		goal.FailureActions = in.FailureActions
	}
	if in.FinallyActions != nil {
		goal.FinallyActions = in.FinallyActions
	}
	if in.Criteria != nil {
		criteria, err := mergeCriteria(goal.Criteria, *in.Criteria)
		if err != nil {
			return nil, err
		}
		goal.Criteria = criteria
	}

	_, code := store.CreateOrEditGoal(goal)
	if err := code.Err(); err != nil {
		return nil, err
	}

	if err := uc.session.Commit(); err != nil {
		return nil, err
	}

	uc.logger.Info(goal.ID, "goal", fmt.Sprintf("edited: %q", goal.Name))

	updated, err := shared.GetGoal(store, goal.ID)
	if err != nil {
		return nil, err
	}
	return &EditGoalOutput{Goal: updated}, nil
}

// mergeCriteria builds the edited criteria. Time already dedicated carries over.
func mergeCriteria(current domain.Criteria, spec domain.CriteriaSpec) (domain.Criteria, error) {
	next, err := spec.Build()
	if err != nil {
		return nil, err
	}
	if next.Kind() != current.Kind() {
		return nil, domain.ErrIncorrectGoalType
	}
	if nextTime, ok := next.(*domain.TimeCriteria); ok {
		curTime := current.(*domain.TimeCriteria)
		nextTime.DedicatedMs = curTime.DedicatedMs
	}
	return next, nil
}
