package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/goalkeeper/internal/domain"
	"github.com/runoshun/goalkeeper/internal/usecase/shared"
)

// Resolution is how a goal is manually resolved.
type Resolution string

// Resolutions.
const (
	ResolutionSucceed Resolution = "succeed"
	ResolutionFail    Resolution = "fail"
	ResolutionDelete  Resolution = "delete"
)

// ResolveGoalInput contains the parameters for resolving a goal.
// Fields are ordered to minimize memory padding.
type ResolveGoalInput struct {
	Resolution  Resolution // Target resolution (required)
	GoalID      int        // Goal ID to resolve (required)
	SkipActions bool       // Do not run the goal's actions
}

// ResolveGoalOutput contains the result of resolving a goal.
type ResolveGoalOutput struct {
	ActionErrors []error     // Errors from actions; the resolution stands regardless
	Goal         domain.Goal // The resolved goal
}

// ResolveGoal is the use case for succeeding, failing or deleting a goal.
type ResolveGoal struct {
	session  domain.GoalSession
	executor domain.ActionExecutor
	logger   domain.Logger
}

// NewResolveGoal creates a new ResolveGoal use case.
func NewResolveGoal(session domain.GoalSession, executor domain.ActionExecutor, logger domain.Logger) *ResolveGoal {
	return &ResolveGoal{
		session:  session,
		executor: executor,
		logger:   logger,
	}
}

// Execute resolves the goal, commits the store, then runs the goal's actions.
// Deleting a goal runs no actions.
func (uc *ResolveGoal) Execute(ctx context.Context, in ResolveGoalInput) (*ResolveGoalOutput, error) {
	store, err := uc.session.Store()
	if err != nil {
		return nil, err
	}

	switch in.Resolution {
	case ResolutionSucceed:
		err = store.SucceedGoal(in.GoalID).Err()
	case ResolutionFail:
		err = store.FailGoal(in.GoalID).Err()
	case ResolutionDelete:
		err = store.DeleteGoal(in.GoalID).Err()
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, in.Resolution)
	}
	if err != nil {
		return nil, fmt.Errorf("goal %d: %w", in.GoalID, err)
	}

	if err := uc.session.Commit(); err != nil {
		return nil, err
	}

	goal, err := shared.GetGoal(store, in.GoalID)
	if err != nil {
		return nil, err
	}
	uc.logger.Info(goal.ID, "goal", fmt.Sprintf("status changed to %s", goal.Status))

	out := &ResolveGoalOutput{Goal: goal}
	if in.SkipActions || in.Resolution == ResolutionDelete {
		return out, nil
	}

	runner := actionRunner{executor: uc.executor, logger: uc.logger}
	actions, kind := goal.FailureActions, "failure"
	if in.Resolution == ResolutionSucceed {
		actions, kind = goal.SuccessActions, "success"
	}
	if err := runner.run(ctx, goal.ID, kind, actions); err != nil {
		out.ActionErrors = append(out.ActionErrors, err)
	}
	if err := runner.run(ctx, goal.ID, "finally", goal.FinallyActions); err != nil {
		out.ActionErrors = append(out.ActionErrors, err)
	}
	return out, nil
}
