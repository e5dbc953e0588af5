package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/goalkeeper/internal/domain"
)

func TestPreviewRecurrence_Execute(t *testing.T) {
	session, snapshots := newTestSession(t)
	id := seedRecurrence(t, session, 0, 5000, 1000, 100)
	require.True(t, mustStore(t, session).GenerateGoalsFromRecurrence(id, 500))
	require.NoError(t, session.Commit())
	version := mustStore(t, session).Version()
	uc := NewPreviewRecurrence(session)

	out, err := uc.Execute(context.Background(), PreviewRecurrenceInput{RecurrenceID: id, Until: 3500})
	require.NoError(t, err)
	assert.Equal(t, []int64{2000, 3000}, goalStarts(out.Goals))
	for _, g := range out.Goals {
		assert.Zero(t, g.ID)
		assert.Equal(t, id, g.RecurrenceID)
	}

	out, err = uc.Execute(context.Background(), PreviewRecurrenceInput{RecurrenceID: id})
	require.NoError(t, err)
	assert.Equal(t, []int64{2000, 3000, 4000, 5000}, goalStarts(out.Goals), "defaults to the recurrence end")

	out, err = uc.Execute(context.Background(), PreviewRecurrenceInput{RecurrenceID: id, Limit: 1})
	require.NoError(t, err)
	assert.Len(t, out.Goals, 1)

	assert.Equal(t, version, mustStore(t, session).Version(), "preview is read-only")
	assert.Equal(t, 1, snapshots.SaveCount)
}

func TestPreviewRecurrence_Execute_Indefinite(t *testing.T) {
	session, _ := newTestSession(t)
	id := seedRecurrence(t, session, 0, 0, 1000, 100)
	uc := NewPreviewRecurrence(session)

	out, err := uc.Execute(context.Background(), PreviewRecurrenceInput{RecurrenceID: id})
	require.NoError(t, err)
	assert.Len(t, out.Goals, DefaultPreviewLimit)
}

func TestPreviewRecurrence_Execute_NotFound(t *testing.T) {
	session, _ := newTestSession(t)
	uc := NewPreviewRecurrence(session)

	_, err := uc.Execute(context.Background(), PreviewRecurrenceInput{RecurrenceID: 3})
	assert.ErrorIs(t, err, domain.ErrRecurrenceNotFound)
}
