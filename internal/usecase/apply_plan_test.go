package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/goalkeeper/internal/domain"
	"github.com/runoshun/goalkeeper/internal/testutil"
)

const samplePlan = `
goals:
  - name: Quarter
    start: "0"
    end: "10000"
    items: [plan, review]
  - name: Month
    parent: 1
    start: "100"
    end: "3000"
    target: 2h
    on_success: [echo month done]
recurrences:
  - name: Daily
    parent: 1
    start: "0"
    end: "5000"
    every: 1s
    duration: 500ms
    target: 10m
`

func TestApplyPlan_Execute(t *testing.T) {
	session, snapshots := newTestSession(t)
	existing := seedGoal(t, session, timeGoal("existing", 0, 1, 1))
	uc := NewApplyPlan(session, &testutil.MockLogger{})

	out, err := uc.Execute(context.Background(), ApplyPlanInput{Content: []byte(samplePlan)})
	require.NoError(t, err)
	require.Len(t, out.Goals, 2)
	require.Len(t, out.Recurrences, 1)
	assert.Equal(t, 1, snapshots.SaveCount)

	quarter, month := out.Goals[0], out.Goals[1]
	assert.Greater(t, quarter.ID, existing)
	assert.Equal(t, 0, quarter.ParentID)
	assert.Equal(t, quarter.ID, month.ParentID, "relative parent resolves to the created goal")

	store := mustStore(t, session)
	g, code := store.GetTimeGoal(month.ID)
	require.Equal(t, domain.GetSuccess, code)
	assert.Equal(t, []string{"echo month done"}, g.SuccessActions)

	rec, ok := store.GetRecurrence(out.Recurrences[0].ID)
	require.True(t, ok)
	assert.Equal(t, quarter.ID, rec.Template.ParentID)
	assert.Equal(t, int64(1000), rec.SpawnIntervalMs)
	assert.Equal(t, int64(500), rec.GoalDurationMs)
}

func TestApplyPlan_Execute_DryRun(t *testing.T) {
	session, snapshots := newTestSession(t)
	uc := NewApplyPlan(session, &testutil.MockLogger{})

	out, err := uc.Execute(context.Background(), ApplyPlanInput{Content: []byte(samplePlan), DryRun: true})
	require.NoError(t, err)
	require.Len(t, out.Goals, 2)
	assert.Equal(t, 1, out.Goals[0].ID)
	assert.Equal(t, 1, out.Goals[1].ParentID)
	assert.Equal(t, 1, out.Recurrences[0].ID)

	assert.Empty(t, mustStore(t, session).Goals(0, 0, nil))
	assert.Zero(t, snapshots.SaveCount)
}

func TestApplyPlan_Execute_AbsoluteParent(t *testing.T) {
	session, _ := newTestSession(t)
	existing := seedGoal(t, session, timeGoal("existing", 0, 1000, 1))
	uc := NewApplyPlan(session, &testutil.MockLogger{})
	content := []byte(`
goals:
  - name: Child
    parent: "#1"
    start: "10"
    end: "20"
    target: 1m
`)

	for _, dryRun := range []bool{true, false} {
		out, err := uc.Execute(context.Background(), ApplyPlanInput{Content: content, DryRun: dryRun})
		require.NoError(t, err)
		assert.Equal(t, existing, out.Goals[0].ParentID)
	}
}

func TestApplyPlan_Execute_Errors(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		content string
		dryRun  bool
	}{
		{
			name:    "empty",
			content: "",
			wantErr: domain.ErrEmptyFile,
		},
		{
			name:    "missing parent in dry run",
			content: "goals:\n  - {name: a, parent: \"#9\", start: \"0\", end: \"1\", target: 1m}\n",
			dryRun:  true,
			wantErr: domain.ErrParentNotFound,
		},
		{
			name:    "missing parent",
			content: "goals:\n  - {name: a, parent: \"#9\", start: \"0\", end: \"1\", target: 1m}\n",
			wantErr: domain.ErrParentNotFound,
		},
		{
			name: "outside parent",
			content: "goals:\n  - {name: a, start: \"0\", end: \"10\", target: 1m}\n" +
				"  - {name: b, parent: 1, start: \"50\", end: \"60\", target: 1m}\n",
			wantErr: domain.ErrSubgoalOutsideParent,
		},
		{
			name:    "end before start",
			content: "goals:\n  - {name: a, start: \"10\", end: \"0\", target: 1m}\n",
			wantErr: domain.ErrInvalidTimebound,
		},
		{
			name:    "conflicting criteria",
			content: "goals:\n  - {name: a, start: \"0\", end: \"1\", target: 1m, items: [x]}\n",
			wantErr: domain.ErrConflictingCriteria,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, snapshots := newTestSession(t)
			uc := NewApplyPlan(session, &testutil.MockLogger{})

			_, err := uc.Execute(context.Background(), ApplyPlanInput{Content: []byte(tt.content), DryRun: tt.dryRun})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, snapshots.SaveCount, "nothing is saved on error")
		})
	}
}
