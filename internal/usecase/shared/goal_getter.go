// Package shared contains helpers used by several use cases.
package shared

import (
	"fmt"

	"github.com/runoshun/goalkeeper/internal/domain"
)

// GetGoal retrieves a goal by ID and returns domain.ErrGoalNotFound if not found.
func GetGoal(store domain.GoalStore, goalID int) (domain.Goal, error) {
	goal, code := store.GetGoal(goalID)
	if err := code.Err(); err != nil {
		return domain.Goal{}, fmt.Errorf("goal %d: %w", goalID, err)
	}
	return goal, nil
}

// GetRecurrence retrieves a recurrence by ID and returns domain.ErrRecurrenceNotFound if not found.
func GetRecurrence(store domain.GoalStore, recurrenceID int) (domain.Recurrence, error) {
	rec, ok := store.GetRecurrence(recurrenceID)
	if !ok {
		return domain.Recurrence{}, fmt.Errorf("recurrence %d: %w", recurrenceID, domain.ErrRecurrenceNotFound)
	}
	return rec, nil
}

// PendingSubgoals counts incomplete immediate subgoals of a goal,
// ignoring the IDs in settled.
func PendingSubgoals(store domain.GoalStore, goalID int, settled map[int]bool) int {
	n := 0
	for _, sub := range store.ImmediateSubgoals(goalID, domain.StatusFilter{domain.StatusIncomplete}) {
		if !settled[sub.ID] {
			n++
		}
	}
	return n
}
