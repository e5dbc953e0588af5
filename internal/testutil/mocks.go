// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/runoshun/goalkeeper/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// NewMockClockMs creates a MockClock fixed at the given unix milliseconds.
func NewMockClockMs(ms int64) *MockClock {
	return &MockClock{NowTime: time.UnixMilli(ms)}
}

// MockSnapshotStore is a test double for domain.SnapshotStore.
// Fields are ordered to minimize memory padding.
type MockSnapshotStore struct {
	Snap        *domain.Snapshot
	LoadErr     error
	SaveErr     error
	InitErr     error
	SaveCount   int
	Initialized bool
}

// Ensure MockSnapshotStore implements domain.SnapshotStore interface.
var _ domain.SnapshotStore = (*MockSnapshotStore)(nil)

// NewMockSnapshotStore creates an initialized, empty MockSnapshotStore.
func NewMockSnapshotStore() *MockSnapshotStore {
	return &MockSnapshotStore{
		Snap:        domain.NewSnapshot(),
		Initialized: true,
	}
}

// Initialize marks the store as initialized.
func (m *MockSnapshotStore) Initialize() error {
	if m.InitErr != nil {
		return m.InitErr
	}
	if m.Snap == nil {
		m.Snap = domain.NewSnapshot()
	}
	m.Initialized = true
	return nil
}

// IsInitialized returns the configured state.
func (m *MockSnapshotStore) IsInitialized() bool {
	return m.Initialized
}

// Load returns the stored snapshot or error.
func (m *MockSnapshotStore) Load() (*domain.Snapshot, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Snap == nil {
		return domain.NewSnapshot(), nil
	}
	return m.Snap, nil
}

// Save records the snapshot or returns the configured error.
func (m *MockSnapshotStore) Save(snap *domain.Snapshot) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Snap = snap
	m.SaveCount++
	return nil
}

// MockActionExecutor is a test double for domain.ActionExecutor.
// Fields are ordered to minimize memory padding.
type MockActionExecutor struct {
	Errors map[string]error    // Per-action errors
	OnRun  func(action string) // Called before each action returns
	Ran    []string            // Actions in execution order
	mu     sync.Mutex
}

// Ensure MockActionExecutor implements domain.ActionExecutor interface.
var _ domain.ActionExecutor = (*MockActionExecutor)(nil)

// NewMockActionExecutor creates a MockActionExecutor where every action succeeds.
func NewMockActionExecutor() *MockActionExecutor {
	return &MockActionExecutor{Errors: make(map[string]error)}
}

// Run records the action and returns its configured error.
func (m *MockActionExecutor) Run(_ context.Context, action string) (string, error) {
	m.mu.Lock()
	m.Ran = append(m.Ran, action)
	err := m.Errors[action]
	onRun := m.OnRun
	m.mu.Unlock()

	if onRun != nil {
		onRun(action)
	}
	if err != nil {
		return "", err
	}
	return "", nil
}

// LogEntry is a single line recorded by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
	GoalID   int
}

// MockLogger is a test double for domain.Logger.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

// Ensure MockLogger implements domain.Logger interface.
var _ domain.Logger = (*MockLogger)(nil)

func (m *MockLogger) record(level string, goalID int, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, GoalID: goalID, Category: category, Msg: msg})
}

// Info records an info entry.
func (m *MockLogger) Info(goalID int, category, msg string) { m.record("INFO", goalID, category, msg) }

// Debug records a debug entry.
func (m *MockLogger) Debug(goalID int, category, msg string) { m.record("DEBUG", goalID, category, msg) }

// Warn records a warning entry.
func (m *MockLogger) Warn(goalID int, category, msg string) { m.record("WARN", goalID, category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(goalID int, category, msg string) { m.record("ERROR", goalID, category, msg) }

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config       *domain.Config
	GlobalConfig *domain.Config
	LoadErr      error
	GlobalErr    error
	LastOptions  domain.LoadConfigOptions
}

// NewMockConfigLoader creates a new MockConfigLoader with default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{
		Config: domain.NewDefaultConfig(),
	}
}

// Ensure MockConfigLoader implements domain.ConfigLoader interface.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// Load returns the configured config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	return m.LoadWithOptions(domain.LoadConfigOptions{})
}

// LoadGlobal returns the configured config or error.
func (m *MockConfigLoader) LoadGlobal() (*domain.Config, error) {
	if m.GlobalErr != nil {
		return nil, m.GlobalErr
	}
	if m.GlobalConfig != nil {
		return m.GlobalConfig, nil
	}
	return m.Config, nil
}

// LoadWithOptions records the options and returns the configured config.
func (m *MockConfigLoader) LoadWithOptions(opts domain.LoadConfigOptions) (*domain.Config, error) {
	m.LastOptions = opts
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitDataErr      error
	InitGlobalErr    error
	InitConfig       *domain.Config
	DataConfigInfo   domain.ConfigInfo
	GlobalConfigInfo domain.ConfigInfo
	InitDataCalled   bool
	InitGlobalCalled bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{
		DataConfigInfo: domain.ConfigInfo{
			Path:   "/home/test/.local/share/goalkeeper/config.toml",
			Exists: false,
		},
		GlobalConfigInfo: domain.ConfigInfo{
			Path:   "/home/test/.config/goalkeeper/config.toml",
			Exists: false,
		},
	}
}

// Ensure MockConfigManager implements domain.ConfigManager interface.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

// GetDataConfigInfo returns the configured data dir config info.
func (m *MockConfigManager) GetDataConfigInfo() domain.ConfigInfo {
	return m.DataConfigInfo
}

// GetGlobalConfigInfo returns the configured global config info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfigInfo
}

// InitDataConfig records the call and returns configured error.
func (m *MockConfigManager) InitDataConfig(cfg *domain.Config) error {
	m.InitDataCalled = true
	m.InitConfig = cfg
	return m.InitDataErr
}

// InitGlobalConfig records the call and returns configured error.
func (m *MockConfigManager) InitGlobalConfig(cfg *domain.Config) error {
	m.InitGlobalCalled = true
	m.InitConfig = cfg
	return m.InitGlobalErr
}
