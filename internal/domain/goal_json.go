package domain

import (
	"encoding/json"
	"fmt"
)

// goalAlias drops the Goal methods so the wire structs below do not recurse.
type goalAlias Goal

// goalWire is the JSON representation of a goal.
// The criteria interface is flattened into a kind tag plus one payload.
type goalWire struct {
	goalAlias
	Time *TimeCriteria `json:"time,omitempty"`
	Task *TaskCriteria `json:"task,omitempty"`
	Kind GoalKind      `json:"kind"`
}

// MarshalJSON encodes the goal with a "kind" discriminator.
func (g Goal) MarshalJSON() ([]byte, error) {
	w := goalWire{goalAlias: goalAlias(g), Kind: g.Kind()}
	switch c := g.Criteria.(type) {
	case *TimeCriteria:
		w.Time = c
	case *TaskCriteria:
		w.Task = c
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes a goal written by MarshalJSON.
func (g *Goal) UnmarshalJSON(data []byte) error {
	var w goalWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*g = Goal(w.goalAlias)
	switch w.Kind {
	case KindTime:
		if w.Time == nil {
			w.Time = &TimeCriteria{}
		}
		g.Criteria = w.Time
	case KindTask:
		if w.Task == nil {
			w.Task = &TaskCriteria{}
		}
		g.Criteria = w.Task
	case "":
		// Criteria-less goal (never stored, but tolerated)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownGoalKind, w.Kind)
	}
	return nil
}
