// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/goalkeeper/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	dataDir       string // Path to the goalkeeper data directory
	globalConfDir string // Path to global config directory (e.g., ~/.config/goalkeeper)
}

// NewLoader creates a new Loader.
func NewLoader(dataDir string) *Loader {
	return &Loader{
		dataDir:       dataDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(dataDir, globalConfDir string) *Loader {
	return &Loader{
		dataDir:       dataDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalAppDir(configHome)
}

// Load returns the merged configuration (data dir + global).
// The data dir config takes precedence over global config.
func (l *Loader) Load() (*domain.Config, error) {
	return l.LoadWithOptions(domain.LoadConfigOptions{})
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// LoadData returns only the data directory configuration.
func (l *Loader) LoadData() (*domain.Config, error) {
	return l.loadFile(domain.DataConfigPath(l.dataDir))
}

// LoadWithOptions returns the merged configuration with options to ignore sources.
func (l *Loader) LoadWithOptions(opts domain.LoadConfigOptions) (*domain.Config, error) {
	var global, data *domain.Config
	var err error

	if !opts.IgnoreGlobal {
		global, err = l.LoadGlobal()
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	if !opts.IgnoreData {
		data, err = l.LoadData()
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	base := domain.NewDefaultConfig()

	// Merge: default <- global <- data (later takes precedence)
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if data != nil {
		base = mergeConfigs(base, data)
	}

	return base, nil
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "store":
			for k, v := range m {
				switch k {
				case "backend":
					if s, ok := v.(string); ok {
						res.Store.Backend = s
					}
				case "path":
					if s, ok := v.(string); ok {
						res.Store.Path = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [store]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						res.Log.Level = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		case "actions":
			for k, v := range m {
				switch k {
				case "shell":
					if s, ok := v.(string); ok {
						res.Actions.Shell = s
					}
				case "timeout":
					if d, ok := parseDuration(v); ok && d > 0 {
						res.Actions.Timeout = d
					} else {
						warnings = append(warnings, fmt.Sprintf("invalid duration in [actions]: timeout = %v", v))
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [actions]: %s", k))
				}
			}
		case "spawn":
			for k, v := range m {
				switch k {
				case "horizon":
					if d, ok := parseDuration(v); ok && d >= 0 {
						res.Spawn.Horizon = d
					} else {
						warnings = append(warnings, fmt.Sprintf("invalid duration in [spawn]: horizon = %v", v))
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [spawn]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	if res.Store.Backend != "" &&
		res.Store.Backend != domain.StoreBackendJSON &&
		res.Store.Backend != domain.StoreBackendSQLite {
		warnings = append(warnings, fmt.Sprintf("unknown store backend: %s", res.Store.Backend))
		res.Store.Backend = ""
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// parseDuration accepts a Go duration string or an integer number of seconds.
func parseDuration(v any) (time.Duration, bool) {
	switch val := v.(type) {
	case string:
		d, err := time.ParseDuration(val)
		return d, err == nil
	case int64:
		return time.Duration(val) * time.Second, true
	default:
		return 0, false
	}
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		Store:    base.Store,
		Log:      base.Log,
		Actions:  base.Actions,
		Spawn:    base.Spawn,
		Warnings: append([]string{}, base.Warnings...),
	}

	result.Warnings = append(result.Warnings, override.Warnings...)

	if override.Store.Backend != "" {
		result.Store.Backend = override.Store.Backend
	}
	if override.Store.Path != "" {
		result.Store.Path = override.Store.Path
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	if override.Actions.Shell != "" {
		result.Actions.Shell = override.Actions.Shell
	}
	if override.Actions.Timeout != 0 {
		result.Actions.Timeout = override.Actions.Timeout
	}
	if override.Spawn.Horizon != 0 {
		result.Spawn.Horizon = override.Spawn.Horizon
	}

	return result
}
