package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/goalkeeper/internal/domain"
	"github.com/runoshun/goalkeeper/internal/testutil"
)

func TestDeleteRecurrence_Execute(t *testing.T) {
	session, snapshots := newTestSession(t)
	id := seedRecurrence(t, session, 0, 1000, 100, 10)
	require.True(t, mustStore(t, session).GenerateGoalsFromRecurrence(id, 0))
	uc := NewDeleteRecurrence(session, &testutil.MockLogger{})

	_, err := uc.Execute(context.Background(), DeleteRecurrenceInput{RecurrenceID: id})
	require.NoError(t, err)
	assert.False(t, mustStore(t, session).DoesRecurrenceExist(id))
	assert.Len(t, mustStore(t, session).Goals(0, 0, nil), 2, "spawned goals are kept")
	assert.Equal(t, 1, snapshots.SaveCount)

	_, err = uc.Execute(context.Background(), DeleteRecurrenceInput{RecurrenceID: id})
	assert.ErrorIs(t, err, domain.ErrRecurrenceNotFound)
}
