// Package domain contains core business entities and interfaces.
package domain

import "slices"

// GoalKind distinguishes the two goal variants.
type GoalKind string

const (
	KindTime GoalKind = "time" // Completed by dedicating a target amount of time
	KindTask GoalKind = "task" // Completed by checking off a list of items
)

// IsValid returns true if the kind is a known value.
func (k GoalKind) IsValid() bool {
	return k == KindTime || k == KindTask
}

// Criteria is the variant-specific completion payload of a goal.
// It is implemented by *TimeCriteria and *TaskCriteria only.
type Criteria interface {
	// Kind returns the goal variant this payload belongs to.
	Kind() GoalKind

	// Met reports whether the payload is satisfied.
	Met() bool

	clone() Criteria
}

// TimeCriteria is the payload of a time-based goal.
// Fields are ordered to minimize memory padding.
type TimeCriteria struct {
	Task        string `json:"task,omitempty"` // Free-text task, only meaningful when LinkID is 0
	TargetMs    int64  `json:"targetMs"`       // Time to dedicate
	DedicatedMs int64  `json:"dedicatedMs"`    // Time dedicated so far
	LinkID      int    `json:"linkID,omitempty"`
	Feed        bool   `json:"feed,omitempty"` // Only meaningful when LinkID is not 0
}

// Kind returns KindTime.
func (c *TimeCriteria) Kind() GoalKind { return KindTime }

// Met reports whether the dedicated time reached the target.
func (c *TimeCriteria) Met() bool { return c.DedicatedMs >= c.TargetMs }

func (c *TimeCriteria) clone() Criteria {
	cp := *c
	return &cp
}

// CriteriaItem is one entry of a task-based checklist.
type CriteriaItem struct {
	Description string `json:"description"`
	LinkID      int    `json:"linkID,omitempty"` // 0 if unlinked
	Checked     bool   `json:"checked"`
}

// TaskCriteria is the payload of a task-based goal.
type TaskCriteria struct {
	Items []CriteriaItem `json:"items"`
}

// Kind returns KindTask.
func (c *TaskCriteria) Kind() GoalKind { return KindTask }

// Met reports whether every item is checked.
func (c *TaskCriteria) Met() bool {
	for _, item := range c.Items {
		if !item.Checked {
			return false
		}
	}
	return true
}

// NumChecked returns the number of checked items.
func (c *TaskCriteria) NumChecked() int {
	n := 0
	for _, item := range c.Items {
		if item.Checked {
			n++
		}
	}
	return n
}

func (c *TaskCriteria) clone() Criteria {
	return &TaskCriteria{Items: slices.Clone(c.Items)}
}

// clearChecks unchecks every item.
func (c *TaskCriteria) clearChecks() {
	for i := range c.Items {
		c.Items[i].Checked = false
	}
}

// Goal is a named, time-bounded unit of work.
// Timestamps and durations are unix milliseconds.
// Fields are ordered to minimize memory padding.
type Goal struct {
	Criteria       Criteria         `json:"-"` // *TimeCriteria or *TaskCriteria
	Name           string           `json:"name"`
	Status         CompletionStatus `json:"status"`
	SuccessActions []string         `json:"successActions,omitempty"`
	FailureActions []string         `json:"failureActions,omitempty"`
	FinallyActions []string         `json:"finallyActions,omitempty"`
	Start          int64            `json:"start"` // 0 if undefined (templates)
	End            int64            `json:"end"`   // 0 if undefined (templates)
	ID             int              `json:"id"`    // 0 until assigned
	ParentID       int              `json:"parentID,omitempty"`
	RecurrenceID   int              `json:"recurrenceID,omitempty"`
}

// Kind returns the goal variant, or "" when no criteria is set.
func (g *Goal) Kind() GoalKind {
	if g.Criteria == nil {
		return ""
	}
	return g.Criteria.Kind()
}

// IsRoot returns true if the goal has no parent.
func (g *Goal) IsRoot() bool {
	return g.ParentID == 0
}

// IsTimeBased returns true for time-based goals.
func (g *Goal) IsTimeBased() bool {
	return g.Kind() == KindTime
}

// TimeCriteria returns the time-based payload, if any.
func (g *Goal) TimeCriteria() (*TimeCriteria, bool) {
	c, ok := g.Criteria.(*TimeCriteria)
	return c, ok
}

// TaskCriteria returns the task-based payload, if any.
func (g *Goal) TaskCriteria() (*TaskCriteria, bool) {
	c, ok := g.Criteria.(*TaskCriteria)
	return c, ok
}

// Contains reports whether another bound starting at start lies inside this goal's bound.
func (g *Goal) Contains(start, end int64) bool {
	return IsWithinBounds(g.Start, g.End, start, end)
}

// IsExpired reports whether an incomplete goal ended before now.
func (g *Goal) IsExpired(now int64) bool {
	return g.Status == StatusIncomplete && g.End < now
}

// Clone returns a deep copy of the goal.
func (g *Goal) Clone() Goal {
	cp := *g
	cp.SuccessActions = slices.Clone(g.SuccessActions)
	cp.FailureActions = slices.Clone(g.FailureActions)
	cp.FinallyActions = slices.Clone(g.FinallyActions)
	if g.Criteria != nil {
		cp.Criteria = g.Criteria.clone()
	}
	return cp
}

// ClearChecks unchecks every checklist item of a task-based goal.
func (g *Goal) ClearChecks() {
	if c, ok := g.TaskCriteria(); ok {
		c.clearChecks()
	}
}
