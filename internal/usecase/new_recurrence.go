package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/goalkeeper/internal/domain"
)

// NewRecurrenceInput contains the parameters for creating a recurrence.
// Fields are ordered to minimize memory padding.
type NewRecurrenceInput struct {
	Criteria        domain.CriteriaSpec // Criteria copied into every spawned goal (required)
	Name            string              // Name of spawned goals (required)
	SuccessActions  []string            // Copied into every spawned goal
	FailureActions  []string            // Copied into every spawned goal
	FinallyActions  []string            // Copied into every spawned goal
	Start           int64               // First spawn time in unix ms
	End             int64               // Last possible spawn time (0 = indefinite)
	SpawnIntervalMs int64               // Time between spawns (must be positive)
	GoalDurationMs  int64               // Length of each spawned goal
	ParentID        int                 // Parent of spawned goals when it contains them (0 = root)
}

// NewRecurrenceOutput contains the result of creating a recurrence.
type NewRecurrenceOutput struct {
	RecurrenceID int // The ID of the created recurrence
}

// NewRecurrence is the use case for creating a recurrence.
type NewRecurrence struct {
	session domain.GoalSession
	logger  domain.Logger
}

// NewNewRecurrence creates a new NewRecurrence use case.
func NewNewRecurrence(session domain.GoalSession, logger domain.Logger) *NewRecurrence {
	return &NewRecurrence{
		session: session,
		logger:  logger,
	}
}

// Execute creates a recurrence. No goal is spawned until SpawnGoals runs.
func (uc *NewRecurrence) Execute(_ context.Context, in NewRecurrenceInput) (*NewRecurrenceOutput, error) {
	if in.Name == "" {
		return nil, domain.ErrEmptyName
	}
	rec := domain.Recurrence{
		Start:           in.Start,
		End:             in.End,
		SpawnIntervalMs: in.SpawnIntervalMs,
		GoalDurationMs:  in.GoalDurationMs,
	}
	if err := validateRecurrence(&rec); err != nil {
		return nil, err
	}
	criteria, err := in.Criteria.Build()
	if err != nil {
		return nil, err
	}
	rec.Template = domain.Goal{
		Name:           in.Name,
		Criteria:       criteria,
		ParentID:       in.ParentID,
		SuccessActions: in.SuccessActions,
		FailureActions: in.FailureActions,
		FinallyActions: in.FinallyActions,
	}

	store, err := uc.session.Store()
	if err != nil {
		return nil, err
	}
	if in.ParentID != 0 && !store.DoesGoalExist(in.ParentID) {
		return nil, fmt.Errorf("goal %d: %w", in.ParentID, domain.ErrParentNotFound)
	}

	id, code := store.CreateOrEditRecurrence(rec)
	if err := code.Err(); err != nil {
		return nil, err
	}

	if err := uc.session.Commit(); err != nil {
		return nil, err
	}

	uc.logger.Info(0, "recurrence", fmt.Sprintf("created recurrence %d: %q every %s",
		id, in.Name, domain.FormatDurationMs(in.SpawnIntervalMs)))

	return &NewRecurrenceOutput{RecurrenceID: id}, nil
}

// validateRecurrence checks the schedule fields of a recurrence.
func validateRecurrence(rec *domain.Recurrence) error {
	if rec.SpawnIntervalMs <= 0 {
		return domain.ErrInvalidSpawnInterval
	}
	if rec.GoalDurationMs < 0 {
		return domain.ErrInvalidDuration
	}
	if !rec.IsIndefinite() && rec.End < rec.Start {
		return domain.ErrInvalidTimebound
	}
	return nil
}
