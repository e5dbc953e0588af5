package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/goalkeeper/internal/app"
	"github.com/runoshun/goalkeeper/internal/domain"
)

// newConfigTestContainer creates an app.Container with real config infrastructure.
// Global config is isolated under a temporary XDG_CONFIG_HOME.
func newConfigTestContainer(t *testing.T) (*app.Container, string, string) {
	t.Helper()

	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	dataDir := t.TempDir()

	container, err := app.New(dataDir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Close() })

	return container, dataDir, configHome
}

func TestConfigCommand_NoSubcommand_ShowsHelp(t *testing.T) {
	container, _, _ := newConfigTestContainer(t)

	out, _, err := execute(newConfigCommand(container))

	require.NoError(t, err)
	assert.Contains(t, out, "Available Commands:")
	assert.Contains(t, out, "show")
	assert.Contains(t, out, "template")
	assert.Contains(t, out, "init")
}

func TestConfigShow_Defaults(t *testing.T) {
	container, dataDir, _ := newConfigTestContainer(t)

	out, _, err := execute(newConfigCommand(container), "show")

	require.NoError(t, err)
	assert.Contains(t, out, "[Loaded from]")
	assert.Contains(t, out, domain.DataConfigPath(dataDir)+" (not found)")
	assert.Contains(t, out, "[Effective Config]")
	assert.Contains(t, out, "backend = 'json'")
	assert.Contains(t, out, "timeout = '30s'")
}

func TestConfigShow_MergesDataConfig(t *testing.T) {
	container, dataDir, _ := newConfigTestContainer(t)
	content := "[actions]\nshell = \"bash\"\n[spawn]\nhorizon = \"24h\"\n[bogus]\nkey = 1\n"
	require.NoError(t, os.WriteFile(domain.DataConfigPath(dataDir), []byte(content), 0o600))

	out, errOut, err := execute(newConfigCommand(container), "show")

	require.NoError(t, err)
	assert.Contains(t, out, domain.DataConfigPath(dataDir)+"\n")
	assert.Contains(t, out, "shell = 'bash'")
	assert.Contains(t, out, "horizon = '24h0m0s'")
	assert.Contains(t, errOut, "bogus")

	out, _, err = execute(newConfigCommand(container), "show", "--ignore-data")
	require.NoError(t, err)
	assert.Contains(t, out, "shell = 'sh'")
	assert.NotContains(t, out, domain.DataConfigPath(dataDir))
}

func TestConfigTemplate(t *testing.T) {
	container, _, _ := newConfigTestContainer(t)

	out, _, err := execute(newConfigCommand(container), "template")

	require.NoError(t, err)
	assert.Contains(t, out, "[store]")
	assert.Contains(t, out, "[actions]")
}

func TestConfigInit(t *testing.T) {
	container, dataDir, configHome := newConfigTestContainer(t)

	out, _, err := execute(newConfigCommand(container), "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Created config file: "+domain.DataConfigPath(dataDir))
	assert.FileExists(t, domain.DataConfigPath(dataDir))

	_, _, err = execute(newConfigCommand(container), "init")
	assert.ErrorIs(t, err, domain.ErrConfigExists)

	out, _, err = execute(newConfigCommand(container), "init", "--global")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(configHome, domain.AppDirName))
}
