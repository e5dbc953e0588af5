package memstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/goalkeeper/internal/domain"
)

func ids(goals []domain.Goal) []int {
	out := make([]int, 0, len(goals))
	for _, g := range goals {
		out = append(out, g.ID)
	}
	return out
}

func TestStore_GoalQueries(t *testing.T) {
	s := New()
	a := mustCreate(t, s, timeGoal("a", 0, 100, 0))
	b := mustCreate(t, s, taskGoal("b", 200, 300, 0, "x"))
	c := mustCreate(t, s, timeGoal("c", 250, 400, 0))
	require.Equal(t, domain.DeathSuccess, s.SucceedGoal(c))

	tests := []struct {
		name   string
		query  func() []domain.Goal
		expect []int
	}{
		{"all", func() []domain.Goal { return s.Goals(0, 0, nil) }, []int{a, b, c}},
		{"time only", func() []domain.Goal { return s.TimeGoals(0, 0, nil) }, []int{a, c}},
		{"task only", func() []domain.Goal { return s.TaskGoals(0, 0, nil) }, []int{b}},
		{"interval", func() []domain.Goal { return s.Goals(90, 210, nil) }, []int{a, b}},
		{"touching endpoint", func() []domain.Goal { return s.Goals(300, 300, nil) }, []int{b, c}},
		{"no match", func() []domain.Goal { return s.Goals(500, 600, nil) }, []int{}},
		{
			"status filter",
			func() []domain.Goal { return s.Goals(0, 0, domain.StatusFilter{domain.StatusSucceeded}) },
			[]int{c},
		},
		{
			"interval and filter",
			func() []domain.Goal {
				return s.TimeGoals(0, 1000, domain.StatusFilter{domain.StatusIncomplete, domain.StatusFailed})
			},
			[]int{a},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, ids(tt.query()))
		})
	}
}

func TestStore_RecurrenceQueries(t *testing.T) {
	s := New()
	timeRec, _ := s.CreateOrEditRecurrence(newRecurrence(0, 1000, 100, 10))
	taskRec, _ := s.CreateOrEditRecurrence(domain.Recurrence{
		Template:        taskGoal("t", 0, 0, 0, "x"),
		Start:           2000,
		End:             3000,
		SpawnIntervalMs: 100,
	})
	openRec, _ := s.CreateOrEditRecurrence(newRecurrence(5000, 0, 100, 10))

	recIDs := func(recs []domain.Recurrence) []int {
		out := make([]int, 0, len(recs))
		for _, r := range recs {
			out = append(out, r.ID)
		}
		return out
	}

	assert.Equal(t, []int{timeRec, taskRec, openRec}, recIDs(s.Recurrences(0, 0)))
	assert.Equal(t, []int{timeRec, openRec}, recIDs(s.TimeRecurrences(0, 0)))
	assert.Equal(t, []int{taskRec}, recIDs(s.TaskRecurrences(0, 0)))
	assert.Equal(t, []int{taskRec}, recIDs(s.Recurrences(1500, 2500)))
	assert.Equal(t, []int{openRec}, recIDs(s.Recurrences(1_000_000, 2_000_000)), "indefinite end extends forever")
}

func TestStore_ImmediateSubgoals(t *testing.T) {
	s := New()
	root := mustCreate(t, s, timeGoal("root", 0, 1000, 0))
	child1 := mustCreate(t, s, timeGoal("c1", 10, 20, root))
	child2 := mustCreate(t, s, taskGoal("c2", 30, 40, root, "x"))
	mustCreate(t, s, timeGoal("grandchild", 12, 15, child1))
	require.Equal(t, domain.DeathSuccess, s.FailGoal(child2))

	assert.Equal(t, []int{child1, child2}, ids(s.ImmediateSubgoals(root, nil)))
	assert.Equal(t, 2, s.NumImmediateSubgoals(root, nil))
	assert.Equal(t, []int{child1}, ids(s.ImmediateSubgoals(root, domain.StatusFilter{domain.StatusIncomplete})))
	assert.Equal(t, 1, s.NumImmediateSubgoals(root, domain.StatusFilter{domain.StatusFailed}))
	assert.Empty(t, s.ImmediateSubgoals(99, nil))
}

func TestStore_ExpiredGoalIDs(t *testing.T) {
	s := New()
	a := mustCreate(t, s, timeGoal("a", 0, 100, 0))
	b := mustCreate(t, s, taskGoal("b", 0, 200, 0, "x"))
	c := mustCreate(t, s, timeGoal("c", 0, 50, 0))
	require.Equal(t, domain.DeleteSuccess, s.DeleteGoal(c))

	assert.Empty(t, s.ExpiredGoalIDs(100), "end equal to now is not expired")
	assert.Equal(t, []int{a}, s.ExpiredGoalIDs(101))
	assert.Equal(t, []int{a, b}, s.ExpiredGoalIDs(1000))
}
