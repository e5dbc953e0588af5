package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/goalkeeper/internal/domain"
	"github.com/runoshun/goalkeeper/internal/usecase/shared"
)

// FeedGoalInput contains the parameters for feeding time to a goal.
type FeedGoalInput struct {
	DurationMs int64 // Time to add (must be positive)
	GoalID     int   // Time-based goal ID (required)
}

// FeedGoalOutput contains the result of feeding a goal.
type FeedGoalOutput struct {
	Goal         domain.Goal // The fed goal
	LinkedGoalID int         // Linked goal that was fed too (0 = none)
	Met          bool        // True if the target is now reached
}

// FeedGoal is the use case for adding dedicated time to a time-based goal.
// A goal that links another time-based goal with feeding enabled passes the
// time on to it.
type FeedGoal struct {
	session domain.GoalSession
	logger  domain.Logger
}

// NewFeedGoal creates a new FeedGoal use case.
func NewFeedGoal(session domain.GoalSession, logger domain.Logger) *FeedGoal {
	return &FeedGoal{
		session: session,
		logger:  logger,
	}
}

// Execute adds the duration to the goal.
func (uc *FeedGoal) Execute(_ context.Context, in FeedGoalInput) (*FeedGoalOutput, error) {
	if in.DurationMs <= 0 {
		return nil, domain.ErrInvalidDuration
	}

	store, err := uc.session.Store()
	if err != nil {
		return nil, err
	}

	goal, code := store.GetTimeGoal(in.GoalID)
	switch code {
	case domain.GetSuccess:
	case domain.GetGoalIncorrectType:
		return nil, fmt.Errorf("goal %d: %w", in.GoalID, domain.ErrGoalIsTaskBased)
	default:
		return nil, fmt.Errorf("goal %d: %w", in.GoalID, code.Err())
	}
	if goal.Status.IsTerminal() {
		return nil, fmt.Errorf("goal %d: %w", in.GoalID, domain.ErrGoalAlreadyResolved)
	}

	store.FeedTimeGoal(goal.ID, in.DurationMs)
	uc.logger.Info(goal.ID, "goal", fmt.Sprintf("fed %s", domain.FormatDurationMs(in.DurationMs)))

	out := &FeedGoalOutput{}
	tc, _ := goal.TimeCriteria()
	if tc.LinkID != 0 && tc.Feed && tc.LinkID != goal.ID {
		linked, code := store.GetTimeGoal(tc.LinkID)
		if code == domain.GetSuccess && !linked.Status.IsTerminal() {
			store.FeedTimeGoal(linked.ID, in.DurationMs)
			out.LinkedGoalID = linked.ID
			uc.logger.Info(linked.ID, "goal", fmt.Sprintf("fed %s via goal %d", domain.FormatDurationMs(in.DurationMs), goal.ID))
		} else {
			uc.logger.Warn(goal.ID, "goal", fmt.Sprintf("linked goal %d cannot be fed", tc.LinkID))
		}
	}

	if err := uc.session.Commit(); err != nil {
		return nil, err
	}

	out.Goal, err = shared.GetGoal(store, goal.ID)
	if err != nil {
		return nil, err
	}
	out.Met = out.Goal.Criteria.Met()
	return out, nil
}
