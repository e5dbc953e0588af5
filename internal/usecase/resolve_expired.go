package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/runoshun/goalkeeper/internal/domain"
	"github.com/runoshun/goalkeeper/internal/usecase/shared"
)

// ResolveExpiredInput contains the parameters for resolving expired goals.
type ResolveExpiredInput struct {
	DryRun bool // Report outcomes without running actions or changing goals
}

// ExpiredResult is the outcome of one expired goal.
// Fields are ordered to minimize memory padding.
type ExpiredResult struct {
	ActionErrors []error     // Errors from actions run for the goal
	Goal         domain.Goal // The goal as it was before resolution
	Succeeded    bool        // Final outcome
}

// ResolveExpiredOutput contains the result of resolving expired goals.
type ResolveExpiredOutput struct {
	Resolved []ExpiredResult // Resolved goals in resolution order
	Deferred []int           // Expired goals still waiting for incomplete subgoals
}

// ResolveExpired settles incomplete goals whose end has passed.
// Subgoals are settled before their parents: a goal with incomplete subgoals
// is deferred to a later pass, and passes repeat until nothing changes.
type ResolveExpired struct {
	session  domain.GoalSession
	executor domain.ActionExecutor
	clock    domain.Clock
	logger   domain.Logger
}

// NewResolveExpired creates a new ResolveExpired use case.
func NewResolveExpired(
	session domain.GoalSession,
	executor domain.ActionExecutor,
	clock domain.Clock,
	logger domain.Logger,
) *ResolveExpired {
	return &ResolveExpired{
		session:  session,
		executor: executor,
		clock:    clock,
		logger:   logger,
	}
}

// Execute resolves expired goals. A goal succeeds when its criteria is met.
func (uc *ResolveExpired) Execute(ctx context.Context, in ResolveExpiredInput) (*ResolveExpiredOutput, error) {
	store, err := uc.session.Store()
	if err != nil {
		return nil, err
	}

	now := domain.NowMs(uc.clock)
	runID := uuid.NewString()[:8]
	runner := actionRunner{executor: uc.executor, logger: uc.logger}
	settled := make(map[int]bool)
	out := &ResolveExpiredOutput{}

passes:
	for {
		progressed := false
		for _, id := range store.ExpiredGoalIDs(now) {
			if ctx.Err() != nil {
				break passes
			}
			if settled[id] || shared.PendingSubgoals(store, id, settled) > 0 {
				continue
			}
			goal, err := shared.GetGoal(store, id)
			if err != nil {
				return nil, err
			}

			result := ExpiredResult{Goal: goal, Succeeded: goal.Criteria.Met()}
			if !in.DryRun {
				result.Succeeded, result.ActionErrors = runner.resolve(ctx, goal, result.Succeeded)
				// Actions cut short by cancellation say nothing about the outcome.
				// The goal stays incomplete for the next run.
				if ctx.Err() != nil {
					uc.logger.Warn(goal.ID, "resolve", "interrupted; goal left incomplete")
					break passes
				}
				if err := uc.settle(store, goal, result.Succeeded); err != nil {
					return nil, err
				}
			}

			settled[id] = true
			progressed = true
			out.Resolved = append(out.Resolved, result)
		}
		if !progressed {
			break
		}
	}

	for _, id := range store.ExpiredGoalIDs(now) {
		if !settled[id] {
			out.Deferred = append(out.Deferred, id)
		}
	}

	if !in.DryRun && len(out.Resolved) > 0 {
		if err := uc.session.Commit(); err != nil {
			return nil, err
		}
		uc.logger.Info(0, "resolve", fmt.Sprintf("run %s: resolved %d, deferred %d",
			runID, len(out.Resolved), len(out.Deferred)))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// settle records the outcome in the store.
func (uc *ResolveExpired) settle(store domain.GoalStore, goal domain.Goal, succeeded bool) error {
	resolve, status := store.FailGoal, domain.StatusFailed
	if succeeded {
		resolve, status = store.SucceedGoal, domain.StatusSucceeded
	}
	if err := resolve(goal.ID).Err(); err != nil {
		return fmt.Errorf("goal %d: %w", goal.ID, err)
	}
	uc.logger.Info(goal.ID, "goal", fmt.Sprintf("expired: status changed to %s", status))
	return nil
}
