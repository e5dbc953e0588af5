package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/goalkeeper/internal/domain"
	"github.com/runoshun/goalkeeper/internal/testutil"
)

func TestShowStatus_Execute(t *testing.T) {
	session, _ := newTestSession(t)
	seedGoal(t, session, timeGoal("expired", 0, 100, 10))
	seedGoal(t, session, timeGoal("open", 0, 5000, 10))
	done := seedGoal(t, session, taskGoal("done", 0, 100, "x"))
	require.Equal(t, domain.DeathSuccess, mustStore(t, session).FailGoal(done))
	seedRecurrence(t, session, 0, 0, 1000, 10)
	uc := NewShowStatus(session, testutil.NewMockClockMs(1000))

	out, err := uc.Execute(context.Background(), ShowStatusInput{})
	require.NoError(t, err)
	assert.Equal(t, int64(1000), out.Now)
	assert.Equal(t, 2, out.TimeGoals)
	assert.Equal(t, 1, out.TaskGoals)
	assert.Equal(t, 1, out.Recurrences)
	assert.Equal(t, 1, out.Expired)
	assert.Equal(t, 2, out.ByStatus[domain.StatusIncomplete])
	assert.Equal(t, 1, out.ByStatus[domain.StatusFailed])
	assert.Equal(t, mustStore(t, session).Version(), out.Version)
}

func TestShowStatus_Execute_NotInitialized(t *testing.T) {
	uc := NewShowStatus(memstoreSession(&testutil.MockSnapshotStore{}), testutil.NewMockClockMs(0))

	_, err := uc.Execute(context.Background(), ShowStatusInput{})
	assert.ErrorIs(t, err, domain.ErrNotInitialized)
}
