package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecurrence(start, end, interval int64) *Recurrence {
	return &Recurrence{
		Template: Goal{
			Name:     "daily",
			ParentID: 3,
			Criteria: &TimeCriteria{TargetMs: 100, DedicatedMs: 40},
		},
		ID:                 7,
		Start:              start,
		End:                end,
		SpawnIntervalMs:    interval,
		GoalDurationMs:     50,
		LatestSpawnedStart: start,
	}
}

func TestRecurrence_NextSpawnStart(t *testing.T) {
	tests := []struct {
		name   string
		rec    *Recurrence
		mutate func(r *Recurrence)
		want   int64
		wantOK bool
	}{
		{"first spawn at start", newTestRecurrence(100, 1000, 10), nil, 100, true},
		{
			"advances after spawn",
			newTestRecurrence(100, 1000, 10),
			func(r *Recurrence) { r.MarkSpawned(100) },
			110, true,
		},
		{
			"clamped to start after edit",
			newTestRecurrence(100, 1000, 10),
			func(r *Recurrence) { r.Start = 500 },
			500, true,
		},
		{
			"past end",
			newTestRecurrence(100, 1000, 10),
			func(r *Recurrence) { r.MarkSpawned(1000) },
			0, false,
		},
		{
			"indefinite never ends",
			newTestRecurrence(100, 0, 10),
			func(r *Recurrence) { r.MarkSpawned(1_000_000) },
			1_000_010, true,
		},
		{
			"non-positive interval is one-shot",
			newTestRecurrence(100, 1000, 0),
			func(r *Recurrence) { r.MarkSpawned(100) },
			0, false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mutate != nil {
				tt.mutate(tt.rec)
			}
			got, ok := tt.rec.NextSpawnStart()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecurrence_PlanSpawns(t *testing.T) {
	r := newTestRecurrence(0, 10000, 1000)

	assert.Equal(t, []int64{0, 1000, 2000, 3000}, r.PlanSpawns(2500))
	assert.Equal(t, int64(0), r.LatestSpawnedStart, "planning does not modify the recurrence")

	r.MarkSpawned(3000)
	assert.True(t, r.IsCaughtUp(2500))
	assert.Empty(t, r.PlanSpawns(2500))
	assert.Equal(t, []int64{4000}, r.PlanSpawns(3000))
}

func TestRecurrence_PlanSpawns_Capped(t *testing.T) {
	r := newTestRecurrence(0, 0, 1)

	starts := r.PlanSpawns(1_000_000)
	require.Len(t, starts, MaxSpawnsPerCall)
	assert.Equal(t, int64(MaxSpawnsPerCall-1), starts[len(starts)-1])

	r.MarkSpawned(starts[len(starts)-1])
	assert.True(t, r.HasPendingSpawns(1_000_000))
	assert.Equal(t, int64(MaxSpawnsPerCall), r.PlanSpawns(1_000_000)[0], "next call continues where the cap stopped")
}

func TestRecurrence_NextSpawnStart_NoOverflow(t *testing.T) {
	r := newTestRecurrence(0, 0, 1000)
	r.MarkSpawned(maxTimestamp - 10)

	_, ok := r.NextSpawnStart()
	assert.False(t, ok)
	assert.False(t, r.HasPendingSpawns(maxTimestamp))
	assert.Empty(t, r.PlanSpawns(maxTimestamp))

	g := r.Instance(maxTimestamp - 10)
	assert.Equal(t, maxTimestamp, g.End)
}

func TestRecurrence_MarkSpawnedIsMonotonic(t *testing.T) {
	r := newTestRecurrence(0, 0, 10)
	r.MarkSpawned(50)
	r.MarkSpawned(20)
	assert.Equal(t, int64(50), r.LatestSpawnedStart)
	assert.True(t, r.Spawned)
}

func TestRecurrence_Instance(t *testing.T) {
	r := newTestRecurrence(0, 0, 10)
	g := r.Instance(500)

	assert.Equal(t, 0, g.ID)
	assert.Equal(t, 7, g.RecurrenceID)
	assert.Equal(t, 3, g.ParentID)
	assert.Equal(t, int64(500), g.Start)
	assert.Equal(t, int64(550), g.End)
	assert.Equal(t, StatusIncomplete, g.Status)
	tc, ok := g.TimeCriteria()
	require.True(t, ok)
	assert.Equal(t, int64(0), tc.DedicatedMs)

	tmpl, _ := r.Template.TimeCriteria()
	assert.Equal(t, int64(40), tmpl.DedicatedMs, "template is untouched")
}

func TestRecurrence_Ghosts(t *testing.T) {
	r := newTestRecurrence(0, 0, 100)

	ghosts := r.Ghosts(250, 10)
	require.Len(t, ghosts, 3)
	assert.Equal(t, int64(0), ghosts[0].Start)
	assert.Equal(t, int64(200), ghosts[2].Start)

	assert.Len(t, r.Ghosts(1_000_000, 5), 5)
	assert.False(t, r.Spawned)
}

func TestRecurrence_BoundEnd(t *testing.T) {
	assert.Equal(t, int64(1000), newTestRecurrence(0, 1000, 1).BoundEnd())
	assert.Equal(t, maxTimestamp, newTestRecurrence(0, 0, 1).BoundEnd())
	assert.True(t, newTestRecurrence(0, 0, 1).IsIndefinite())
}
