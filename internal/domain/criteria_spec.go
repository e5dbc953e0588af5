package domain

// CriteriaSpec is the user-facing description of a goal's criteria,
// shared by CLI flags and plan files.
// Fields are ordered to minimize memory padding.
type CriteriaSpec struct {
	Target string   // Time target as a Go duration; selects a time-based goal
	Task   string   // Free-text task for time-based goals
	Items  []string // Checklist items; selects a task-based goal
	LinkID int      // Linked goal ID for time-based goals
	Feed   bool     // Feed the linked goal
}

// IsEmpty reports whether no criteria field was given.
func (s CriteriaSpec) IsEmpty() bool {
	return s.Target == "" && len(s.Items) == 0 && s.Task == "" && s.LinkID == 0 && !s.Feed
}

// Build converts the spec into a criteria payload.
func (s CriteriaSpec) Build() (Criteria, error) {
	hasTime := s.Target != ""
	hasTask := len(s.Items) > 0

	switch {
	case hasTime && hasTask:
		return nil, ErrConflictingCriteria
	case hasTime:
		target, err := ParseDurationMs(s.Target)
		if err != nil {
			return nil, err
		}
		return &TimeCriteria{
			TargetMs: target,
			LinkID:   s.LinkID,
			Task:     s.Task,
			Feed:     s.Feed,
		}, nil
	case hasTask:
		items := make([]CriteriaItem, 0, len(s.Items))
		for _, desc := range s.Items {
			items = append(items, CriteriaItem{Description: desc})
		}
		return &TaskCriteria{Items: items}, nil
	default:
		return nil, ErrMissingCriteria
	}
}
