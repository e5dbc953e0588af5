package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/runoshun/goalkeeper/internal/domain"
	"github.com/runoshun/goalkeeper/internal/infra/memstore"
	"github.com/runoshun/goalkeeper/internal/testutil"
)

// newTestSession returns a session over an initialized, empty snapshot store.
func newTestSession(t *testing.T) (*memstore.Session, *testutil.MockSnapshotStore) {
	t.Helper()
	snapshots := testutil.NewMockSnapshotStore()
	return memstore.NewSession(snapshots), snapshots
}

func memstoreSession(snapshots domain.SnapshotStore) *memstore.Session {
	return memstore.NewSession(snapshots)
}

func mustStore(t *testing.T, session domain.GoalSession) domain.GoalStore {
	t.Helper()
	store, err := session.Store()
	require.NoError(t, err)
	return store
}

func seedGoal(t *testing.T, session domain.GoalSession, goal domain.Goal) int {
	t.Helper()
	id, code := mustStore(t, session).CreateOrEditGoal(goal)
	require.NoError(t, code.Err())
	return id
}

func seedRecurrence(t *testing.T, session domain.GoalSession, start, end, interval, duration int64) int {
	t.Helper()
	id, code := mustStore(t, session).CreateOrEditRecurrence(domain.Recurrence{
		Template:        timeGoal("daily", 0, 0, 1000),
		Start:           start,
		End:             end,
		SpawnIntervalMs: interval,
		GoalDurationMs:  duration,
	})
	require.NoError(t, code.Err())
	return id
}

func timeGoal(name string, start, end int64, targetMs int64) domain.Goal {
	return domain.Goal{
		Name:     name,
		Start:    start,
		End:      end,
		Criteria: &domain.TimeCriteria{TargetMs: targetMs},
	}
}

func taskGoal(name string, start, end int64, items ...string) domain.Goal {
	criteria := &domain.TaskCriteria{}
	for _, desc := range items {
		criteria.Items = append(criteria.Items, domain.CriteriaItem{Description: desc})
	}
	return domain.Goal{
		Name:     name,
		Start:    start,
		End:      end,
		Criteria: criteria,
	}
}

func ptr[T any](v T) *T {
	return &v
}
