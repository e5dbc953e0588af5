package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/goalkeeper/internal/domain"
)

// ListRecurrencesInput contains the parameters for listing recurrences.
type ListRecurrencesInput struct {
	Kind  domain.GoalKind // Filter by spawned goal kind ("" = both)
	Start int64           // Interval start (0 with End 0 = unbounded)
	End   int64           // Interval end
}

// ListRecurrencesOutput contains the result of listing recurrences.
type ListRecurrencesOutput struct {
	Recurrences []domain.Recurrence // Matching recurrences in creation order
}

// ListRecurrences is the use case for listing recurrences.
type ListRecurrences struct {
	session domain.GoalSession
}

// NewListRecurrences creates a new ListRecurrences use case.
func NewListRecurrences(session domain.GoalSession) *ListRecurrences {
	return &ListRecurrences{session: session}
}

// Execute lists recurrences whose bound intersects the interval.
func (uc *ListRecurrences) Execute(_ context.Context, in ListRecurrencesInput) (*ListRecurrencesOutput, error) {
	store, err := uc.session.Store()
	if err != nil {
		return nil, err
	}

	var recs []domain.Recurrence
	switch in.Kind {
	case "":
		recs = store.Recurrences(in.Start, in.End)
	case domain.KindTime:
		recs = store.TimeRecurrences(in.Start, in.End)
	case domain.KindTask:
		recs = store.TaskRecurrences(in.Start, in.End)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidKind, in.Kind)
	}
	return &ListRecurrencesOutput{Recurrences: recs}, nil
}
