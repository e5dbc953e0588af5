package domain

// CompletionStatus represents the lifecycle state of a goal.
type CompletionStatus string

const (
	StatusIncomplete CompletionStatus = "incomplete" // Created, not yet resolved
	StatusSucceeded  CompletionStatus = "succeeded"  // Resolved as a success
	StatusFailed     CompletionStatus = "failed"     // Resolved as a failure
	StatusDeleted    CompletionStatus = "deleted"    // Removed by the user (row is kept)
)

// AllStatuses returns all valid status values.
func AllStatuses() []CompletionStatus {
	return []CompletionStatus{
		StatusIncomplete,
		StatusSucceeded,
		StatusFailed,
		StatusDeleted,
	}
}

// transitions defines the allowed status transitions.
// Flow: incomplete → succeeded | failed | deleted (all terminal)
var transitions = map[CompletionStatus][]CompletionStatus{
	StatusIncomplete: {StatusSucceeded, StatusFailed, StatusDeleted},
	StatusSucceeded:  {},
	StatusFailed:     {},
	StatusDeleted:    {},
}

// CanTransitionTo returns true if the status can transition to the target status.
func (s CompletionStatus) CanTransitionTo(target CompletionStatus) bool {
	allowed, ok := transitions[s]
	if !ok {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if the status is a terminal state.
func (s CompletionStatus) IsTerminal() bool {
	return s == StatusSucceeded || s == StatusFailed || s == StatusDeleted
}

// Display returns a human-readable representation of the status.
func (s CompletionStatus) Display() string {
	switch s {
	case StatusIncomplete:
		return "Incomplete"
	case StatusSucceeded:
		return "Succeeded"
	case StatusFailed:
		return "Failed"
	case StatusDeleted:
		return "Deleted"
	default:
		return string(s)
	}
}

// IsValid returns true if the status is a known valid value.
func (s CompletionStatus) IsValid() bool {
	switch s {
	case StatusIncomplete, StatusSucceeded, StatusFailed, StatusDeleted:
		return true
	default:
		return false
	}
}

// StatusFilter is a set of statuses used by queries.
// An empty filter matches every status.
type StatusFilter []CompletionStatus

// Matches reports whether s passes the filter.
func (f StatusFilter) Matches(s CompletionStatus) bool {
	if len(f) == 0 {
		return true
	}
	for _, want := range f {
		if want == s {
			return true
		}
	}
	return false
}
