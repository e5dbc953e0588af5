package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/goalkeeper/internal/domain"
	"github.com/runoshun/goalkeeper/internal/usecase/shared"
)

// ToggleCriteriaInput contains the parameters for checking or unchecking a checklist item.
type ToggleCriteriaInput struct {
	GoalID int  // Task-based goal ID (required)
	Index  int  // 0-based item index
	Check  bool // True to check, false to uncheck
}

// ToggleCriteriaOutput contains the result of toggling a checklist item.
type ToggleCriteriaOutput struct {
	Goal    domain.Goal // The goal after the toggle
	Changed bool        // False if the item was already in the requested state
}

// ToggleCriteria is the use case for checking or unchecking checklist items.
type ToggleCriteria struct {
	session domain.GoalSession
	logger  domain.Logger
}

// NewToggleCriteria creates a new ToggleCriteria use case.
func NewToggleCriteria(session domain.GoalSession, logger domain.Logger) *ToggleCriteria {
	return &ToggleCriteria{
		session: session,
		logger:  logger,
	}
}

// Execute checks or unchecks the item.
func (uc *ToggleCriteria) Execute(_ context.Context, in ToggleCriteriaInput) (*ToggleCriteriaOutput, error) {
	store, err := uc.session.Store()
	if err != nil {
		return nil, err
	}

	var code domain.CriteriaToggleCode
	if in.Check {
		code = store.CheckTaskCriteria(in.GoalID, in.Index)
	} else {
		code = store.UncheckTaskCriteria(in.GoalID, in.Index)
	}
	if err := code.Err(); err != nil {
		return nil, fmt.Errorf("goal %d: %w", in.GoalID, err)
	}

	changed := code == domain.CriteriaToggled
	if changed {
		if err := uc.session.Commit(); err != nil {
			return nil, err
		}
		verb := "unchecked"
		if in.Check {
			verb = "checked"
		}
		uc.logger.Info(in.GoalID, "goal", fmt.Sprintf("%s item %d", verb, in.Index+1))
	}

	goal, err := shared.GetGoal(store, in.GoalID)
	if err != nil {
		return nil, err
	}
	return &ToggleCriteriaOutput{Goal: goal, Changed: changed}, nil
}
