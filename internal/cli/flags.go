package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runoshun/goalkeeper/internal/domain"
)

// goalFlags holds the flags shared by goal and recurrence commands.
// Fields are ordered to minimize memory padding.
type goalFlags struct {
	Name      string
	Start     string
	End       string
	Target    string
	Task      string
	Items     []string
	OnSuccess []string
	OnFailure []string
	Finally   []string
	Link      int
	Feed      bool
}

// criteriaFlags are the flag names that make up a criteria spec.
var criteriaFlags = []string{"target", "task", "item", "link", "feed"}

func (f *goalFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Name, "name", "", "Goal name")
	cmd.Flags().StringVar(&f.Start, "start", "", "Start time (RFC3339, \"2006-01-02 15:04\", \"2006-01-02\" or unix ms)")
	cmd.Flags().StringVar(&f.End, "end", "", "End time (same formats as --start)")
	cmd.Flags().StringVar(&f.Target, "target", "", "Time to dedicate, e.g. 2h30m (time-based goal)")
	cmd.Flags().StringVar(&f.Task, "task", "", "Free-text task for a time-based goal")
	cmd.Flags().StringArrayVar(&f.Items, "item", nil, "Checklist item (task-based goal, can specify multiple)")
	cmd.Flags().IntVar(&f.Link, "link", 0, "Linked goal ID for a time-based goal")
	cmd.Flags().BoolVar(&f.Feed, "feed", false, "Feed dedicated time into the linked goal")
	cmd.Flags().StringArrayVar(&f.OnSuccess, "on-success", nil, "Shell action run on success (can specify multiple)")
	cmd.Flags().StringArrayVar(&f.OnFailure, "on-failure", nil, "Shell action run on failure (can specify multiple)")
	cmd.Flags().StringArrayVar(&f.Finally, "finally", nil, "Shell action run after either outcome (can specify multiple)")
}

func (f *goalFlags) criteria() domain.CriteriaSpec {
	return domain.CriteriaSpec{
		Target: f.Target,
		Task:   f.Task,
		Items:  f.Items,
		LinkID: f.Link,
		Feed:   f.Feed,
	}
}

// changedCriteria returns the criteria spec if any criteria flag was given.
func (f *goalFlags) changedCriteria(cmd *cobra.Command) *domain.CriteriaSpec {
	for _, name := range criteriaFlags {
		if cmd.Flags().Changed(name) {
			spec := f.criteria()
			return &spec
		}
	}
	return nil
}

// changedActions returns the action list if the flag was given.
// Empty values are dropped, so --on-success "" clears the list.
func changedActions(cmd *cobra.Command, name string, values []string) []string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	actions := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			actions = append(actions, v)
		}
	}
	return actions
}

// parseTimeFlag parses a time flag value into unix milliseconds.
func parseTimeFlag(name, value string) (int64, error) {
	ms, err := domain.ParseTimestamp(value)
	if err != nil {
		return 0, fmt.Errorf("--%s: %w", name, err)
	}
	return ms, nil
}

// changedTime parses a time flag if it was given.
func changedTime(cmd *cobra.Command, name, value string) (*int64, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}
	ms, err := parseTimeFlag(name, value)
	if err != nil {
		return nil, err
	}
	return &ms, nil
}

// parseGoalID parses a goal or recurrence ID argument ("12" or "#12").
func parseGoalID(s string) (int, error) {
	id, ok := domain.ParseGoalRef(s)
	if !ok {
		return 0, fmt.Errorf("invalid ID %q: must be a positive integer", s)
	}
	return id, nil
}
