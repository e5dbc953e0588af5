package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/goalkeeper/internal/domain"
)

// =============================================================================
// goal new
// =============================================================================

func TestGoalNew_TimeGoal(t *testing.T) {
	env := newTestContainer(t)

	out, _, err := execute(newGoalCommand(env.container),
		"new", "--name", "Learn Go", "--start", "1000", "--end", "5000", "--target", "2h",
		"--on-success", "echo done")

	require.NoError(t, err)
	assert.Contains(t, out, "Created goal #1")
	assert.Equal(t, 1, env.snapshots.SaveCount)

	g := env.mustGoal(t, 1)
	assert.Equal(t, "Learn Go", g.Name)
	assert.Equal(t, int64(1000), g.Start)
	assert.Equal(t, int64(5000), g.End)
	assert.Equal(t, []string{"echo done"}, g.SuccessActions)
	tc, ok := g.TimeCriteria()
	require.True(t, ok)
	assert.Equal(t, int64(2*60*60*1000), tc.TargetMs)
}

func TestGoalNew_TaskGoalWithParent(t *testing.T) {
	env := newTestContainer(t)
	cmd := newGoalCommand(env.container)
	_, _, err := execute(cmd, "new", "--name", "Release", "--start", "1000", "--end", "5000", "--item", "a")
	require.NoError(t, err)

	out, _, err := execute(newGoalCommand(env.container),
		"new", "--name", "Docs", "--parent", "1", "--start", "2000", "--end", "3000",
		"--item", "write", "--item", "review")

	require.NoError(t, err)
	assert.Contains(t, out, "Created goal #2")
	g := env.mustGoal(t, 2)
	assert.Equal(t, 1, g.ParentID)
	tc, ok := g.TaskCriteria()
	require.True(t, ok)
	require.Len(t, tc.Items, 2)
	assert.Equal(t, "review", tc.Items[1].Description)
}

func TestGoalNew_Errors(t *testing.T) {
	tests := []struct {
		name    string
		wantErr error
		wantMsg string
		args    []string
	}{
		{
			name:    "missing name",
			args:    []string{"new", "--start", "1000", "--end", "2000", "--target", "1h"},
			wantMsg: `required flag(s) "name" not set`,
		},
		{
			name:    "missing criteria",
			args:    []string{"new", "--name", "x", "--start", "1000", "--end", "2000"},
			wantErr: domain.ErrMissingCriteria,
		},
		{
			name:    "conflicting criteria",
			args:    []string{"new", "--name", "x", "--start", "1000", "--end", "2000", "--target", "1h", "--item", "a"},
			wantErr: domain.ErrConflictingCriteria,
		},
		{
			name:    "invalid time",
			args:    []string{"new", "--name", "x", "--start", "yesterday", "--end", "2000", "--target", "1h"},
			wantErr: domain.ErrInvalidTime,
		},
		{
			name:    "end before start",
			args:    []string{"new", "--name", "x", "--start", "2000", "--end", "1000", "--target", "1h"},
			wantErr: domain.ErrInvalidTimebound,
		},
		{
			name:    "unknown parent",
			args:    []string{"new", "--name", "x", "--parent", "9", "--start", "1000", "--end", "2000", "--target", "1h"},
			wantErr: domain.ErrParentNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestContainer(t)

			_, _, err := execute(newGoalCommand(env.container), tt.args...)

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
			assert.Equal(t, 0, env.snapshots.SaveCount)
		})
	}
}

// =============================================================================
// goal edit
// =============================================================================

func TestGoalEdit_RenameAndRetarget(t *testing.T) {
	env := newTestContainer(t)
	_, _, err := execute(newGoalCommand(env.container),
		"new", "--name", "Learn Go", "--start", "1000", "--end", "5000", "--target", "2h")
	require.NoError(t, err)
	env.store(t).FeedTimeGoal(1, 60_000)

	out, _, err := execute(newGoalCommand(env.container),
		"edit", "1", "--name", "Learn Go well", "--target", "3h", "--end", "6000")

	require.NoError(t, err)
	assert.Contains(t, out, "Updated goal #1: Learn Go well")
	g := env.mustGoal(t, 1)
	assert.Equal(t, int64(6000), g.End)
	assert.Equal(t, int64(1000), g.Start, "start untouched")
	tc, _ := g.TimeCriteria()
	assert.Equal(t, int64(3*60*60*1000), tc.TargetMs)
	assert.Equal(t, int64(60_000), tc.DedicatedMs, "dedicated time carries over")
}

func TestGoalEdit_ClearActions(t *testing.T) {
	env := newTestContainer(t)
	_, _, err := execute(newGoalCommand(env.container),
		"new", "--name", "x", "--start", "1000", "--end", "5000", "--target", "1h",
		"--on-success", "a", "--finally", "b")
	require.NoError(t, err)

	_, _, err = execute(newGoalCommand(env.container), "edit", "1", "--on-success", "")

	require.NoError(t, err)
	g := env.mustGoal(t, 1)
	assert.Empty(t, g.SuccessActions)
	assert.Equal(t, []string{"b"}, g.FinallyActions)
}

func TestGoalEdit_Errors(t *testing.T) {
	env := newTestContainer(t)
	_, _, err := execute(newGoalCommand(env.container),
		"new", "--name", "x", "--start", "1000", "--end", "5000", "--target", "1h")
	require.NoError(t, err)

	_, _, err = execute(newGoalCommand(env.container), "edit", "1")
	assert.ErrorIs(t, err, domain.ErrNoFieldsToUpdate)

	_, _, err = execute(newGoalCommand(env.container), "edit", "1", "--item", "a")
	assert.ErrorIs(t, err, domain.ErrIncorrectGoalType)

	_, _, err = execute(newGoalCommand(env.container), "edit", "abc", "--name", "y")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid ID")
}

// =============================================================================
// goal list / show
// =============================================================================

func TestGoalList(t *testing.T) {
	env := newTestContainer(t)
	for _, args := range [][]string{
		{"new", "--name", "Alpha", "--start", "1000", "--end", "5000", "--target", "1h"},
		{"new", "--name", "Beta", "--start", "6000", "--end", "9000", "--item", "a", "--item", "b"},
		{"new", "--name", "Gamma", "--parent", "1", "--start", "2000", "--end", "3000", "--target", "30m"},
		{"rm", "2"},
	} {
		_, _, err := execute(newGoalCommand(env.container), args...)
		require.NoError(t, err)
	}

	t.Run("hides deleted by default", func(t *testing.T) {
		out, _, err := execute(newGoalCommand(env.container), "list")
		require.NoError(t, err)
		assert.Contains(t, out, "ID")
		assert.Contains(t, out, "PROGRESS")
		assert.Contains(t, out, "Alpha")
		assert.Contains(t, out, "Gamma")
		assert.NotContains(t, out, "Beta")
		assert.Contains(t, out, "0s/1h0m0s")
	})

	t.Run("all", func(t *testing.T) {
		out, _, err := execute(newGoalCommand(env.container), "list", "--all")
		require.NoError(t, err)
		assert.Contains(t, out, "Beta")
		assert.Contains(t, out, "0/2")
	})

	t.Run("status filter", func(t *testing.T) {
		out, _, err := execute(newGoalCommand(env.container), "list", "--status", "deleted")
		require.NoError(t, err)
		assert.Contains(t, out, "Beta")
		assert.NotContains(t, out, "Alpha")
	})

	t.Run("parent", func(t *testing.T) {
		out, _, err := execute(newGoalCommand(env.container), "list", "--parent", "1")
		require.NoError(t, err)
		assert.Contains(t, out, "Gamma")
		assert.NotContains(t, out, "Alpha")
	})

	t.Run("interval", func(t *testing.T) {
		out, _, err := execute(newGoalCommand(env.container), "list", "--all", "--from", "5500", "--to", "7000")
		require.NoError(t, err)
		assert.Contains(t, out, "Beta")
		assert.NotContains(t, out, "Alpha")
	})

	t.Run("interval needs both ends", func(t *testing.T) {
		_, _, err := execute(newGoalCommand(env.container), "list", "--from", "5500")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--from and --to")
	})

	t.Run("invalid kind", func(t *testing.T) {
		_, _, err := execute(newGoalCommand(env.container), "list", "--kind", "habit")
		assert.ErrorIs(t, err, domain.ErrInvalidKind)
	})
}

func TestGoalShow(t *testing.T) {
	env := newTestContainer(t)
	for _, args := range [][]string{
		{"new", "--name", "Release", "--start", "1000", "--end", "5000", "--item", "Tag", "--item", "Announce",
			"--on-failure", "notify-send late"},
		{"new", "--name", "Prep", "--parent", "1", "--start", "2000", "--end", "3000", "--target", "1h"},
		{"check", "1", "1"},
	} {
		_, _, err := execute(newGoalCommand(env.container), args...)
		require.NoError(t, err)
	}

	out, _, err := execute(newGoalCommand(env.container), "show", "#1")

	require.NoError(t, err)
	assert.Contains(t, out, "# Goal 1: Release")
	assert.Contains(t, out, "Status: incomplete")
	assert.Contains(t, out, "Parent: none")
	assert.Contains(t, out, "Progress: 1/2")
	assert.Contains(t, out, "1. [x] Tag")
	assert.Contains(t, out, "2. [ ] Announce")
	assert.Contains(t, out, "$ notify-send late")
	assert.Contains(t, out, "#2 [incomplete] Prep")

	out, _, err = execute(newGoalCommand(env.container), "show", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Parent: #1 Release")

	_, _, err = execute(newGoalCommand(env.container), "show", "42")
	assert.ErrorIs(t, err, domain.ErrGoalNotFound)
}

// =============================================================================
// goal succeed / fail / rm
// =============================================================================

func TestGoalSucceed_RunsActions(t *testing.T) {
	env := newTestContainer(t)
	_, _, err := execute(newGoalCommand(env.container),
		"new", "--name", "x", "--start", "1000", "--end", "5000", "--target", "1h",
		"--on-success", "yay", "--on-failure", "nay", "--finally", "done")
	require.NoError(t, err)

	out, _, err := execute(newGoalCommand(env.container), "succeed", "1")

	require.NoError(t, err)
	assert.Contains(t, out, "Goal #1 succeeded")
	assert.Equal(t, []string{"yay", "done"}, env.executor.Ran)
	assert.Equal(t, domain.StatusSucceeded, env.mustGoal(t, 1).Status)
}

func TestGoalFail_ActionErrorIsWarning(t *testing.T) {
	env := newTestContainer(t)
	_, _, err := execute(newGoalCommand(env.container),
		"new", "--name", "x", "--start", "1000", "--end", "5000", "--target", "1h",
		"--on-failure", "broken")
	require.NoError(t, err)
	env.executor.Errors["broken"] = assert.AnError

	out, errOut, err := execute(newGoalCommand(env.container), "fail", "1")

	require.NoError(t, err)
	assert.Contains(t, out, "Goal #1 failed")
	assert.Contains(t, errOut, "Warning: failure action")
	assert.Equal(t, domain.StatusFailed, env.mustGoal(t, 1).Status)
}

func TestGoalResolve_SkipActionsAndRm(t *testing.T) {
	env := newTestContainer(t)
	for i := 0; i < 2; i++ {
		_, _, err := execute(newGoalCommand(env.container),
			"new", "--name", "x", "--start", "1000", "--end", "5000", "--target", "1h", "--finally", "bye")
		require.NoError(t, err)
	}

	_, _, err := execute(newGoalCommand(env.container), "succeed", "1", "--skip-actions")
	require.NoError(t, err)
	out, _, err := execute(newGoalCommand(env.container), "rm", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "Goal #2 deleted")
	assert.Empty(t, env.executor.Ran)

	_, _, err = execute(newGoalCommand(env.container), "fail", "1")
	assert.ErrorIs(t, err, domain.ErrGoalAlreadyResolved)
}

// =============================================================================
// goal feed / check / uncheck
// =============================================================================

func TestGoalFeed(t *testing.T) {
	env := newTestContainer(t)
	for _, args := range [][]string{
		{"new", "--name", "Parent", "--start", "1000", "--end", "5000", "--target", "2h"},
		{"new", "--name", "Child", "--parent", "1", "--start", "1000", "--end", "2000", "--target", "30m",
			"--link", "1", "--feed"},
	} {
		_, _, err := execute(newGoalCommand(env.container), args...)
		require.NoError(t, err)
	}

	out, _, err := execute(newGoalCommand(env.container), "feed", "2", "30m")

	require.NoError(t, err)
	assert.Contains(t, out, "Goal #2: 30m0s/30m0s")
	assert.Contains(t, out, "Fed linked goal #1")
	assert.Contains(t, out, "Target reached")
	g := env.mustGoal(t, 1)
	tc, _ := g.TimeCriteria()
	assert.Equal(t, int64(30*60*1000), tc.DedicatedMs)
}

func TestGoalFeed_Errors(t *testing.T) {
	env := newTestContainer(t)
	_, _, err := execute(newGoalCommand(env.container),
		"new", "--name", "x", "--start", "1000", "--end", "5000", "--item", "a")
	require.NoError(t, err)

	_, _, err = execute(newGoalCommand(env.container), "feed", "1", "10m")
	assert.ErrorIs(t, err, domain.ErrGoalIsTaskBased)

	_, _, err = execute(newGoalCommand(env.container), "feed", "1", "soon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse duration")
}

func TestGoalCheckUncheck(t *testing.T) {
	env := newTestContainer(t)
	_, _, err := execute(newGoalCommand(env.container),
		"new", "--name", "x", "--start", "1000", "--end", "5000", "--item", "a", "--item", "b")
	require.NoError(t, err)

	out, _, err := execute(newGoalCommand(env.container), "check", "1", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Goal #1: 1/2")
	g := env.mustGoal(t, 1)
	tc, _ := g.TaskCriteria()
	assert.True(t, tc.Items[1].Checked)

	out, _, err = execute(newGoalCommand(env.container), "check", "1", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "unchanged")

	out, _, err = execute(newGoalCommand(env.container), "uncheck", "1", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Goal #1: 0/2")

	_, _, err = execute(newGoalCommand(env.container), "check", "1", "3")
	assert.ErrorIs(t, err, domain.ErrCriteriaIndexOutOfRange)

	_, _, err = execute(newGoalCommand(env.container), "check", "1", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid item")
}
