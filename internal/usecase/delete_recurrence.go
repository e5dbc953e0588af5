package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/goalkeeper/internal/domain"
)

// DeleteRecurrenceInput contains the parameters for deleting a recurrence.
type DeleteRecurrenceInput struct {
	RecurrenceID int // Recurrence ID to delete
}

// DeleteRecurrenceOutput contains the result of deleting a recurrence.
type DeleteRecurrenceOutput struct{}

// DeleteRecurrence is the use case for deleting a recurrence.
// Goals it already spawned are kept.
type DeleteRecurrence struct {
	session domain.GoalSession
	logger  domain.Logger
}

// NewDeleteRecurrence creates a new DeleteRecurrence use case.
func NewDeleteRecurrence(session domain.GoalSession, logger domain.Logger) *DeleteRecurrence {
	return &DeleteRecurrence{
		session: session,
		logger:  logger,
	}
}

// Execute deletes a recurrence with the given ID.
func (uc *DeleteRecurrence) Execute(_ context.Context, in DeleteRecurrenceInput) (*DeleteRecurrenceOutput, error) {
	store, err := uc.session.Store()
	if err != nil {
		return nil, err
	}

	if !store.DeleteRecurrence(in.RecurrenceID) {
		return nil, fmt.Errorf("recurrence %d: %w", in.RecurrenceID, domain.ErrRecurrenceNotFound)
	}

	if err := uc.session.Commit(); err != nil {
		return nil, err
	}

	uc.logger.Info(0, "recurrence", fmt.Sprintf("deleted recurrence %d", in.RecurrenceID))

	return &DeleteRecurrenceOutput{}, nil
}
