// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/goalkeeper/internal/domain"
)

// actionRunner runs a goal's actions through the executor and logs the results.
type actionRunner struct {
	executor domain.ActionExecutor
	logger   domain.Logger
}

// run executes actions in order and stops at the first failure.
func (r actionRunner) run(ctx context.Context, goalID int, kind string, actions []string) error {
	for _, action := range actions {
		out, err := r.executor.Run(ctx, action)
		if out != "" {
			r.logger.Debug(goalID, "action", out)
		}
		if err != nil {
			r.logger.Error(goalID, "action", fmt.Sprintf("%s action failed: %v", kind, err))
			return fmt.Errorf("%s action: %w", kind, err)
		}
		r.logger.Info(goalID, "action", fmt.Sprintf("%s action done: %q", kind, action))
	}
	return nil
}

// resolve runs the outcome actions followed by the finally actions.
// A failing success action demotes the outcome to failure and runs the
// failure actions instead. Returns the final outcome and every action error.
// Once ctx is done no further actions are started.
func (r actionRunner) resolve(ctx context.Context, goal domain.Goal, succeeded bool) (bool, []error) {
	var errs []error
	if succeeded {
		if err := r.run(ctx, goal.ID, "success", goal.SuccessActions); err != nil {
			errs = append(errs, err)
			if ctx.Err() != nil {
				return succeeded, errs
			}
			succeeded = false
			if err := r.run(ctx, goal.ID, "failure", goal.FailureActions); err != nil {
				errs = append(errs, err)
			}
		}
	} else if err := r.run(ctx, goal.ID, "failure", goal.FailureActions); err != nil {
		errs = append(errs, err)
	}
	if ctx.Err() != nil {
		return succeeded, errs
	}
	if err := r.run(ctx, goal.ID, "finally", goal.FinallyActions); err != nil {
		errs = append(errs, err)
	}
	return succeeded, errs
}
