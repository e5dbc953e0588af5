package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/goalkeeper/internal/domain"
	"github.com/runoshun/goalkeeper/internal/testutil"
)

func TestToggleCriteria_Execute(t *testing.T) {
	session, snapshots := newTestSession(t)
	id := seedGoal(t, session, taskGoal("g", 0, 100, "a", "b"))
	logger := &testutil.MockLogger{}
	uc := NewToggleCriteria(session, logger)
	ctx := context.Background()

	out, err := uc.Execute(ctx, ToggleCriteriaInput{GoalID: id, Index: 1, Check: true})
	require.NoError(t, err)
	assert.True(t, out.Changed)
	tc, _ := out.Goal.TaskCriteria()
	assert.True(t, tc.Items[1].Checked)
	assert.Equal(t, 1, snapshots.SaveCount)

	out, err = uc.Execute(ctx, ToggleCriteriaInput{GoalID: id, Index: 1, Check: true})
	require.NoError(t, err)
	assert.False(t, out.Changed, "already checked")
	assert.Equal(t, 1, snapshots.SaveCount)

	out, err = uc.Execute(ctx, ToggleCriteriaInput{GoalID: id, Index: 1})
	require.NoError(t, err)
	assert.True(t, out.Changed)
	assert.Len(t, logger.Entries, 2)
}

func TestToggleCriteria_Execute_Errors(t *testing.T) {
	session, _ := newTestSession(t)
	taskID := seedGoal(t, session, taskGoal("g", 0, 100, "a"))
	timeID := seedGoal(t, session, timeGoal("t", 0, 100, 10))
	uc := NewToggleCriteria(session, &testutil.MockLogger{})
	ctx := context.Background()

	_, err := uc.Execute(ctx, ToggleCriteriaInput{GoalID: taskID, Index: 3, Check: true})
	assert.ErrorIs(t, err, domain.ErrCriteriaIndexOutOfRange)

	_, err = uc.Execute(ctx, ToggleCriteriaInput{GoalID: timeID, Check: true})
	assert.ErrorIs(t, err, domain.ErrGoalIsTimeBased)

	_, err = uc.Execute(ctx, ToggleCriteriaInput{GoalID: 99, Check: true})
	assert.ErrorIs(t, err, domain.ErrGoalNotFound)
}
