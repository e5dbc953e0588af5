package domain

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Plan is a batch of goals and recurrences loaded from a YAML file.
//
// Example:
//
//	goals:
//	  - name: Ship v1
//	    start: 2026-01-01
//	    end: 2026-03-01
//	    items: [Design, Build, Release]
//	  - name: Write docs
//	    parent: 1          # first goal in this file
//	    start: 2026-02-01
//	    end: 2026-02-15
//	    target: 10h
//	recurrences:
//	  - name: Daily reading
//	    start: 2026-01-01
//	    every: 24h
//	    duration: 1h
//	    target: 30m
type Plan struct {
	Goals       []GoalDraft       `yaml:"goals" validate:"dive"`
	Recurrences []RecurrenceDraft `yaml:"recurrences" validate:"dive"`
}

// GoalDraft is a goal entry in a plan file.
// Fields are ordered to minimize memory padding.
type GoalDraft struct {
	Name      string   `yaml:"name" validate:"required"`
	Parent    string   `yaml:"parent"` // "#N" = existing goal ID, "N" = Nth goal in this file
	Start     string   `yaml:"start" validate:"required"`
	End       string   `yaml:"end" validate:"required"`
	Target    string   `yaml:"target"`
	Task      string   `yaml:"task"`
	Items     []string `yaml:"items" validate:"dive,required"`
	OnSuccess []string `yaml:"on_success" validate:"dive,required"`
	OnFailure []string `yaml:"on_failure" validate:"dive,required"`
	Finally   []string `yaml:"finally" validate:"dive,required"`
	Link      int      `yaml:"link" validate:"gte=0"`
	Feed      bool     `yaml:"feed"`
}

// RecurrenceDraft is a recurrence entry in a plan file.
// Fields are ordered to minimize memory padding.
type RecurrenceDraft struct {
	Name      string   `yaml:"name" validate:"required"`
	Parent    string   `yaml:"parent"`
	Start     string   `yaml:"start" validate:"required"`
	End       string   `yaml:"end"` // empty = indefinite
	Every     string   `yaml:"every" validate:"required"`
	Duration  string   `yaml:"duration" validate:"required"`
	Target    string   `yaml:"target"`
	Task      string   `yaml:"task"`
	Items     []string `yaml:"items" validate:"dive,required"`
	OnSuccess []string `yaml:"on_success" validate:"dive,required"`
	OnFailure []string `yaml:"on_failure" validate:"dive,required"`
	Finally   []string `yaml:"finally" validate:"dive,required"`
	Link      int      `yaml:"link" validate:"gte=0"`
	Feed      bool     `yaml:"feed"`
}

var planValidator = validator.New()

// ParsePlan decodes and validates a YAML plan.
func ParsePlan(content []byte) (*Plan, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, ErrEmptyFile
	}

	var plan Plan
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(&plan); err != nil {
		return nil, fmt.Errorf("decode plan: %w", err)
	}

	if len(plan.Goals) == 0 && len(plan.Recurrences) == 0 {
		return nil, ErrNoEntriesInFile
	}

	if err := planValidator.Struct(&plan); err != nil {
		return nil, fmt.Errorf("validate plan: %w", err)
	}

	return &plan, nil
}

// Criteria returns the criteria spec described by the draft.
func (d *GoalDraft) Criteria() CriteriaSpec {
	return CriteriaSpec{
		Target: d.Target,
		Task:   d.Task,
		Items:  d.Items,
		LinkID: d.Link,
		Feed:   d.Feed,
	}
}

// Goal builds a goal from the draft. ParentID is left for the caller to resolve.
func (d *GoalDraft) Goal() (Goal, error) {
	start, err := ParseTimestamp(d.Start)
	if err != nil {
		return Goal{}, fmt.Errorf("start: %w", err)
	}
	end, err := ParseTimestamp(d.End)
	if err != nil {
		return Goal{}, fmt.Errorf("end: %w", err)
	}
	criteria, err := d.Criteria().Build()
	if err != nil {
		return Goal{}, err
	}
	return Goal{
		Name:           d.Name,
		Criteria:       criteria,
		Start:          start,
		End:            end,
		SuccessActions: d.OnSuccess,
		FailureActions: d.OnFailure,
		FinallyActions: d.Finally,
	}, nil
}

// Recurrence builds a recurrence from the draft. The template's ParentID is
// left for the caller to resolve.
func (d *RecurrenceDraft) Recurrence() (Recurrence, error) {
	start, err := ParseTimestamp(d.Start)
	if err != nil {
		return Recurrence{}, fmt.Errorf("start: %w", err)
	}
	var end int64
	if d.End != "" {
		end, err = ParseTimestamp(d.End)
		if err != nil {
			return Recurrence{}, fmt.Errorf("end: %w", err)
		}
	}
	every, err := ParseDurationMs(d.Every)
	if err != nil {
		return Recurrence{}, fmt.Errorf("every: %w", err)
	}
	if every <= 0 {
		return Recurrence{}, ErrInvalidSpawnInterval
	}
	duration, err := ParseDurationMs(d.Duration)
	if err != nil {
		return Recurrence{}, fmt.Errorf("duration: %w", err)
	}
	criteria, err := CriteriaSpec{
		Target: d.Target,
		Task:   d.Task,
		Items:  d.Items,
		LinkID: d.Link,
		Feed:   d.Feed,
	}.Build()
	if err != nil {
		return Recurrence{}, err
	}
	return Recurrence{
		Template: Goal{
			Name:           d.Name,
			Criteria:       criteria,
			SuccessActions: d.OnSuccess,
			FailureActions: d.OnFailure,
			FinallyActions: d.Finally,
		},
		Start:           start,
		End:             end,
		SpawnIntervalMs: every,
		GoalDurationMs:  duration,
	}, nil
}

// ResolveParentRef resolves a plan parent reference to a goal ID.
//   - "" means no parent (returns 0)
//   - "#N" is an absolute goal ID
//   - "N" is the 1-based index of a goal created earlier in the same plan;
//     if no such goal exists, N is treated as an absolute goal ID
func ResolveParentRef(ref string, createdIDs map[int]int) (int, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return 0, nil
	}

	if strings.HasPrefix(ref, "#") {
		id, err := strconv.Atoi(ref[1:])
		if err != nil || id <= 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidParentRef, ref)
		}
		return id, nil
	}

	n, err := strconv.Atoi(ref)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidParentRef, ref)
	}
	if id, ok := createdIDs[n]; ok {
		return id, nil
	}
	return n, nil
}
