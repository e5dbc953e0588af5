package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/goalkeeper/internal/domain"
	"github.com/runoshun/goalkeeper/internal/usecase/shared"
)

// EditRecurrenceInput contains the parameters for editing a recurrence.
// All fields except RecurrenceID are optional. Only non-nil fields will be updated.
// Goals spawned before the edit are left untouched.
// Fields are ordered to minimize memory padding.
type EditRecurrenceInput struct {
	Name            *string              // New template name (nil = no change)
	Criteria        *domain.CriteriaSpec // New template criteria (nil = no change)
	Start           *int64               // New start (nil = no change)
	End             *int64               // New end, 0 = indefinite (nil = no change)
	SpawnIntervalMs *int64               // New spawn interval (nil = no change)
	GoalDurationMs  *int64               // New goal duration (nil = no change)
	SuccessActions  []string             // New success actions (nil = no change)
	FailureActions  []string             // New failure actions (nil = no change)
	FinallyActions  []string             // New finally actions (nil = no change)
	RecurrenceID    int                  // Recurrence ID to edit (required)
}

func (in *EditRecurrenceInput) isEmpty() bool {
	return in.Name == nil && in.Criteria == nil && in.Start == nil && in.End == nil &&
		in.SpawnIntervalMs == nil && in.GoalDurationMs == nil &&
		in.SuccessActions == nil && in.FailureActions == nil && in.FinallyActions == nil
}

// EditRecurrenceOutput contains the result of editing a recurrence.
type EditRecurrenceOutput struct {
	Recurrence domain.Recurrence // The updated recurrence
}

// EditRecurrence is the use case for editing a recurrence.
type EditRecurrence struct {
	session domain.GoalSession
	logger  domain.Logger
}

// NewEditRecurrence creates a new EditRecurrence use case.
func NewEditRecurrence(session domain.GoalSession, logger domain.Logger) *EditRecurrence {
	return &EditRecurrence{
		session: session,
		logger:  logger,
	}
}

// Execute edits a recurrence. Spawn progress is kept.
func (uc *EditRecurrence) Execute(_ context.Context, in EditRecurrenceInput) (*EditRecurrenceOutput, error) {
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

	rec, err := shared.GetRecurrence(store, in.RecurrenceID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		rec.Template.Name = *in.Name
	}
	if in.Start != nil {
		rec.Start = *in.Start
	}
	if in.End != nil {
		rec.End = *in.End
	}
	if in.SpawnIntervalMs != nil {
		rec.SpawnIntervalMs = *in.SpawnIntervalMs
	}
	if in.GoalDurationMs != nil {
		rec.GoalDurationMs = *in.GoalDurationMs
	}
	if in.SuccessActions != nil {
		rec.Template.SuccessActions = in.SuccessActions
	}
	if in.FailureActions != nil {
		rec.Template.FailureActions = in.FailureActions
	}
	if in.FinallyActions != nil {
		rec.Template.FinallyActions = in.FinallyActions
	}
	if in.Criteria != nil {
		// Templates may switch kind; existing spawned goals keep theirs.
		criteria, err := in.Criteria.Build()
		if err != nil {
			return nil, err
		}
		rec.Template.Criteria = criteria
	}
	if err := validateRecurrence(&rec); err != nil {
		return nil, err
	}

	if _, code := store.CreateOrEditRecurrence(rec); code.Err() != nil {
		return nil, code.Err()
	}

	if err := uc.session.Commit(); err != nil {
		return nil, err
	}

	uc.logger.Info(0, "recurrence", fmt.Sprintf("edited recurrence %d", rec.ID))

	updated, err := shared.GetRecurrence(store, rec.ID)
	if err != nil {
		return nil, err
	}
	return &EditRecurrenceOutput{Recurrence: updated}, nil
}
