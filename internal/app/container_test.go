package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/goalkeeper/internal/domain"
	"github.com/runoshun/goalkeeper/internal/infra/jsonstore"
	"github.com/runoshun/goalkeeper/internal/infra/sqlitestore"
	"github.com/runoshun/goalkeeper/internal/testutil"
	"github.com/runoshun/goalkeeper/internal/usecase"
)

func TestDefaultDataDir(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		t.Setenv(domain.HomeEnvVar, "/tmp/goals")
		dir, err := DefaultDataDir()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/goals", dir)
	})

	t.Run("xdg data home", func(t *testing.T) {
		t.Setenv(domain.HomeEnvVar, "")
		t.Setenv("XDG_DATA_HOME", "/tmp/xdg")
		dir, err := DefaultDataDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/tmp/xdg", domain.AppDirName), dir)
	})
}

func TestNew_DefaultsToJSON(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dataDir := t.TempDir()

	c, err := New(dataDir)
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, domain.StoreBackendJSON, c.Config.Backend)
	assert.Equal(t, filepath.Join(dataDir, domain.JSONStoreName), c.Config.StorePath)
	assert.IsType(t, &jsonstore.Store{}, c.Snapshots)
}

func TestNew_SQLiteBackend(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dataDir := t.TempDir()
	content := "[store]\nbackend = \"sqlite\"\n"
	require.NoError(t, os.WriteFile(domain.DataConfigPath(dataDir), []byte(content), 0o600))

	c, err := New(dataDir)
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, domain.StoreBackendSQLite, c.Config.Backend)
	assert.Equal(t, filepath.Join(dataDir, domain.SQLiteStoreName), c.Config.StorePath)
	assert.IsType(t, &sqlitestore.Store{}, c.Snapshots)
}

func TestNew_EndToEnd(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dataDir := t.TempDir()

	c, err := New(dataDir)
	require.NoError(t, err)
	_, err = c.InitStoreUseCase().Execute(context.Background(), usecase.InitStoreInput{DataDir: dataDir})
	require.NoError(t, err)
	require.NoError(t, c.Close())

	assert.FileExists(t, filepath.Join(dataDir, domain.JSONStoreName))
}

func TestNewWithDeps(t *testing.T) {
	c := NewWithDeps(
		Config{DataDir: "/data"},
		testutil.NewMockSnapshotStore(),
		testutil.NewMockClockMs(0),
		testutil.NewMockActionExecutor(),
		&testutil.MockLogger{},
		testutil.NewMockConfigLoader(),
		testutil.NewMockConfigManager(),
	)

	assert.NotNil(t, c.Session)
	assert.Equal(t, domain.NewDefaultConfig(), c.AppConfig)
	assert.NotNil(t, c.NewGoalUseCase())
	assert.NotNil(t, c.ResolveExpiredUseCase())
	assert.NotNil(t, c.SpawnGoalsUseCase())
	assert.NotNil(t, c.ShowLogsUseCase())
	assert.NoError(t, c.Close())
}
