package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/goalkeeper/internal/app"
	"github.com/runoshun/goalkeeper/internal/domain"
	"github.com/runoshun/goalkeeper/internal/testutil"
)

// testEnv bundles a container built from mocks with handles to those mocks.
type testEnv struct {
	container *app.Container
	snapshots *testutil.MockSnapshotStore
	executor  *testutil.MockActionExecutor
	logger    *testutil.MockLogger
	clock     *testutil.MockClock
}

// newTestContainer creates an app.Container with mock dependencies.
// The clock is fixed at 10000 ms.
func newTestContainer(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		snapshots: testutil.NewMockSnapshotStore(),
		executor:  testutil.NewMockActionExecutor(),
		logger:    &testutil.MockLogger{},
		clock:     testutil.NewMockClockMs(10000),
	}
	env.container = app.NewWithDeps(
		app.Config{DataDir: t.TempDir()},
		env.snapshots,
		env.clock,
		env.executor,
		env.logger,
		testutil.NewMockConfigLoader(),
		testutil.NewMockConfigManager(),
	)
	return env
}

// store returns the container's loaded goal store.
func (e *testEnv) store(t *testing.T) domain.GoalStore {
	t.Helper()
	store, err := e.container.Session.Store()
	require.NoError(t, err)
	return store
}

// execute runs cmd with args and returns stdout and stderr.
func execute(cmd *cobra.Command, args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// mustGoal fetches a goal from the store.
func (e *testEnv) mustGoal(t *testing.T, id int) domain.Goal {
	t.Helper()
	g, code := e.store(t).GetGoal(id)
	require.NoError(t, code.Err())
	return g
}
