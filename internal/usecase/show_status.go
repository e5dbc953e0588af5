package usecase

import (
	"context"

	"github.com/runoshun/goalkeeper/internal/domain"
)

// ShowStatusInput contains the input for the ShowStatus use case.
type ShowStatusInput struct{}

// ShowStatusOutput summarizes the goal store.
// Fields are ordered to minimize memory padding.
type ShowStatusOutput struct {
	ByStatus    map[domain.CompletionStatus]int // Goal count per status
	Version     uint64                          // Store change counter
	Now         int64                           // Time the summary was taken
	TimeGoals   int                             // Time-based goals of any status
	TaskGoals   int                             // Task-based goals of any status
	Recurrences int                             // Recurrence count
	Expired     int                             // Incomplete goals past their end
}

// ShowStatus is the use case for summarizing the goal store.
type ShowStatus struct {
	session domain.GoalSession
	clock   domain.Clock
}

// NewShowStatus creates a new ShowStatus use case.
func NewShowStatus(session domain.GoalSession, clock domain.Clock) *ShowStatus {
	return &ShowStatus{
		session: session,
		clock:   clock,
	}
}

// Execute counts goals and recurrences.
func (uc *ShowStatus) Execute(_ context.Context, _ ShowStatusInput) (*ShowStatusOutput, error) {
	store, err := uc.session.Store()
	if err != nil {
		return nil, err
	}

	now := domain.NowMs(uc.clock)
	out := &ShowStatusOutput{
		ByStatus:    make(map[domain.CompletionStatus]int, len(domain.AllStatuses())),
		Version:     store.Version(),
		Now:         now,
		Recurrences: len(store.Recurrences(0, 0)),
		Expired:     len(store.ExpiredGoalIDs(now)),
	}
	for _, g := range store.Goals(0, 0, nil) {
		out.ByStatus[g.Status]++
		if g.IsTimeBased() {
			out.TimeGoals++
		} else {
			out.TaskGoals++
		}
	}
	return out, nil
}
