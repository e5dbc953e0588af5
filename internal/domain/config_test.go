package domain

import (
	"strings"
	"testing"
	"time"
)

func TestDataConfigPath(t *testing.T) {
	got := DataConfigPath("/home/user/.local/share/goalkeeper")
	want := "/home/user/.local/share/goalkeeper/config.toml"
	if got != want {
		t.Errorf("DataConfigPath() = %q, want %q", got, want)
	}
}

func TestGlobalConfigPath(t *testing.T) {
	got := GlobalConfigPath("/home/user/.config")
	want := "/home/user/.config/goalkeeper/config.toml"
	if got != want {
		t.Errorf("GlobalConfigPath() = %q, want %q", got, want)
	}
}

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.Log.Level != DefaultLogLevel {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, DefaultLogLevel)
	}
	if cfg.Store.Backend != StoreBackendJSON {
		t.Errorf("Store.Backend = %q, want %q", cfg.Store.Backend, StoreBackendJSON)
	}
	if cfg.Actions.Shell != DefaultActionsShell {
		t.Errorf("Actions.Shell = %q, want %q", cfg.Actions.Shell, DefaultActionsShell)
	}
	if cfg.Actions.Timeout != DefaultActionsTimeout {
		t.Errorf("Actions.Timeout = %v, want %v", cfg.Actions.Timeout, DefaultActionsTimeout)
	}
}

func TestConfig_StorePath(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		path    string
		want    string
	}{
		{"json default", StoreBackendJSON, "", "/data/goals.json"},
		{"sqlite default", StoreBackendSQLite, "", "/data/goals.db"},
		{"relative", StoreBackendJSON, "custom.json", "/data/custom.json"},
		{"absolute", StoreBackendSQLite, "/var/lib/goals.db", "/var/lib/goals.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Store: StoreConfig{Backend: tt.backend, Path: tt.path}}
			if got := cfg.StorePath("/data"); got != tt.want {
				t.Errorf("StorePath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderConfigTemplate(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Spawn.Horizon = 24 * time.Hour

	got := RenderConfigTemplate(cfg)

	for _, want := range []string{
		`backend = "json"`,
		`level = "info"`,
		`shell = "sh"`,
		`timeout = "30s"`,
		`horizon = "24h0m0s"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered template missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "<<") {
		t.Error("rendered template still contains delimiters")
	}
}
