package usecase

import (
	"context"

	"github.com/runoshun/goalkeeper/internal/domain"
	"github.com/runoshun/goalkeeper/internal/usecase/shared"
)

// DefaultPreviewLimit caps the number of previewed goals.
const DefaultPreviewLimit = 20

// PreviewRecurrenceInput contains the parameters for previewing a recurrence.
type PreviewRecurrenceInput struct {
	Until        int64 // Preview goals starting up to this time (0 = no time cap)
	RecurrenceID int   // Recurrence to preview (required)
	Limit        int   // Maximum number of goals (0 = DefaultPreviewLimit)
}

// PreviewRecurrenceOutput contains the goals a recurrence would spawn.
type PreviewRecurrenceOutput struct {
	Recurrence domain.Recurrence
	Goals      []domain.Goal // Unsaved goals, ID 0
}

// PreviewRecurrence shows the goals a recurrence has yet to spawn without
// modifying anything.
type PreviewRecurrence struct {
	session domain.GoalSession
}

// NewPreviewRecurrence creates a new PreviewRecurrence use case.
func NewPreviewRecurrence(session domain.GoalSession) *PreviewRecurrence {
	return &PreviewRecurrence{session: session}
}

// Execute lists the upcoming goals of a recurrence.
func (uc *PreviewRecurrence) Execute(_ context.Context, in PreviewRecurrenceInput) (*PreviewRecurrenceOutput, error) {
	store, err := uc.session.Store()
	if err != nil {
		return nil, err
	}

	rec, err := shared.GetRecurrence(store, in.RecurrenceID)
	if err != nil {
		return nil, err
	}

	limit := in.Limit
	if limit <= 0 {
		limit = DefaultPreviewLimit
	}
	until := in.Until
	if until == 0 {
		until = rec.BoundEnd()
	}

	return &PreviewRecurrenceOutput{
		Recurrence: rec,
		Goals:      rec.Ghosts(until, limit),
	}, nil
}
