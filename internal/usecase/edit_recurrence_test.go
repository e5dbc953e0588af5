package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/goalkeeper/internal/domain"
	"github.com/runoshun/goalkeeper/internal/testutil"
)

func TestEditRecurrence_Execute(t *testing.T) {
	session, _ := newTestSession(t)
	id := seedRecurrence(t, session, 0, 10_000, 1000, 100)
	require.True(t, mustStore(t, session).GenerateGoalsFromRecurrence(id, 1500))
	uc := NewEditRecurrence(session, &testutil.MockLogger{})

	out, err := uc.Execute(context.Background(), EditRecurrenceInput{
		RecurrenceID:    id,
		Name:            ptr("weekly"),
		SpawnIntervalMs: ptr(int64(7000)),
		End:             ptr(int64(0)),
		Criteria:        &domain.CriteriaSpec{Items: []string{"review"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "weekly", out.Recurrence.Template.Name)
	assert.Equal(t, int64(7000), out.Recurrence.SpawnIntervalMs)
	assert.True(t, out.Recurrence.IsIndefinite())
	assert.Equal(t, domain.KindTask, out.Recurrence.Kind())
	assert.Equal(t, int64(2000), out.Recurrence.LatestSpawnedStart, "spawn progress is kept")

	spawned := mustStore(t, session).Goals(0, 0, nil)
	require.Len(t, spawned, 3)
	assert.Equal(t, "daily", spawned[0].Name, "spawned goals are untouched")
}

func TestEditRecurrence_Execute_Errors(t *testing.T) {
	session, _ := newTestSession(t)
	id := seedRecurrence(t, session, 100, 1000, 10, 5)
	uc := NewEditRecurrence(session, &testutil.MockLogger{})
	ctx := context.Background()

	_, err := uc.Execute(ctx, EditRecurrenceInput{RecurrenceID: id})
	assert.ErrorIs(t, err, domain.ErrNoFieldsToUpdate)

	_, err = uc.Execute(ctx, EditRecurrenceInput{RecurrenceID: 99, Name: ptr("x")})
	assert.ErrorIs(t, err, domain.ErrRecurrenceNotFound)

	_, err = uc.Execute(ctx, EditRecurrenceInput{RecurrenceID: id, SpawnIntervalMs: ptr(int64(-5))})
	assert.ErrorIs(t, err, domain.ErrInvalidSpawnInterval)

	_, err = uc.Execute(ctx, EditRecurrenceInput{RecurrenceID: id, End: ptr(int64(50))})
	assert.ErrorIs(t, err, domain.ErrInvalidTimebound)

	_, err = uc.Execute(ctx, EditRecurrenceInput{RecurrenceID: id, Name: ptr("")})
	assert.ErrorIs(t, err, domain.ErrEmptyName)
}
