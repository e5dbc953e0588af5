package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"text/template"
	"time"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Store    StoreConfig   // [store] settings
	Log      LogConfig     // [log] settings
	Actions  ActionsConfig // [actions] settings
	Warnings []string      // Unknown keys and other non-fatal problems found while loading
	Spawn    SpawnConfig   // [spawn] settings
}

// StoreConfig holds snapshot persistence settings from [store] section.
type StoreConfig struct {
	Backend string `toml:"backend,omitempty"` // "json" or "sqlite"
	Path    string `toml:"path,omitempty"`    // Store file path (empty = inside the data dir)
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
}

// ActionsConfig holds action executor settings from [actions] section.
type ActionsConfig struct {
	Shell   string        `toml:"shell,omitempty"`   // Shell used to run actions with -c
	Timeout time.Duration `toml:"timeout,omitempty"` // Per-action timeout
}

// SpawnConfig holds recurrence spawning settings from [spawn] section.
type SpawnConfig struct {
	Horizon time.Duration `toml:"horizon,omitempty"` // Added to "now" when spawning goals
}

// Store backends.
const (
	StoreBackendJSON   = "json"
	StoreBackendSQLite = "sqlite"
)

// Default configuration values.
const (
	DefaultLogLevel       = "info"
	DefaultStoreBackend   = StoreBackendJSON
	DefaultActionsShell   = "sh"
	DefaultActionsTimeout = 30 * time.Second
)

// Directory and file names for goalkeeper.
const (
	AppDirName      = "goalkeeper"  // Directory name for goalkeeper data and global config
	ConfigFileName  = "config.toml" // Config file name
	JSONStoreName   = "goals.json"  // JSON snapshot file name
	SQLiteStoreName = "goals.db"    // SQLite snapshot file name
	HomeEnvVar      = "GOALKEEPER_HOME"
)

// LoadConfigOptions controls which config sources are merged.
type LoadConfigOptions struct {
	IgnoreGlobal bool // Skip the global config file
	IgnoreData   bool // Skip the data directory config file
}

// DataConfigPath returns the config path inside the data directory.
func DataConfigPath(dataDir string) string {
	return filepath.Join(dataDir, ConfigFileName)
}

// GlobalAppDir returns the global goalkeeper config directory path.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalAppDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalAppDir(configHome), ConfigFileName)
}

// StorePath resolves the snapshot file path for the configured backend.
func (c *Config) StorePath(dataDir string) string {
	if c.Store.Path != "" {
		if filepath.IsAbs(c.Store.Path) {
			return c.Store.Path
		}
		return filepath.Join(dataDir, c.Store.Path)
	}
	if c.Store.Backend == StoreBackendSQLite {
		return filepath.Join(dataDir, SQLiteStoreName)
	}
	return filepath.Join(dataDir, JSONStoreName)
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Backend: DefaultStoreBackend,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Actions: ActionsConfig{
			Shell:   DefaultActionsShell,
			Timeout: DefaultActionsTimeout,
		},
	}
}

// templateData holds all data for rendering the config template.
type templateData struct {
	Backend  string
	LogLevel string
	Shell    string
	Timeout  string
	Horizon  string
}

// RenderConfigTemplate renders the commented config template from the given Config.
func RenderConfigTemplate(cfg *Config) string {
	data := templateData{
		Backend:  cfg.Store.Backend,
		LogLevel: cfg.Log.Level,
		Shell:    cfg.Actions.Shell,
		Timeout:  cfg.Actions.Timeout.String(),
		Horizon:  cfg.Spawn.Horizon.String(),
	}

	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		// Should never happen with valid data
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}

	return buf.String()
}
