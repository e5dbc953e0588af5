// Package app provides the dependency injection container for the application.
package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/runoshun/goalkeeper/internal/domain"
	"github.com/runoshun/goalkeeper/internal/infra/config"
	"github.com/runoshun/goalkeeper/internal/infra/executor"
	"github.com/runoshun/goalkeeper/internal/infra/jsonstore"
	"github.com/runoshun/goalkeeper/internal/infra/logging"
	"github.com/runoshun/goalkeeper/internal/infra/memstore"
	"github.com/runoshun/goalkeeper/internal/infra/sqlitestore"
	"github.com/runoshun/goalkeeper/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	DataDir   string // goalkeeper data directory
	StorePath string // Snapshot file path
	Backend   string // Snapshot backend ("json" or "sqlite")
}

// DefaultDataDir returns $GOALKEEPER_HOME, or the goalkeeper directory under
// $XDG_DATA_HOME (default ~/.local/share).
func DefaultDataDir() (string, error) {
	if dir := os.Getenv(domain.HomeEnvVar); dir != "" {
		return dir, nil
	}
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, domain.AppDirName), nil
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Session       domain.GoalSession
	Snapshots     domain.SnapshotStore
	Clock         domain.Clock
	Executor      domain.ActionExecutor
	Logger        domain.Logger
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager

	// Pointer fields
	AppConfig *domain.Config

	closers []io.Closer

	// Configuration
	Config Config
}

// New creates a new Container for the given data directory.
func New(dataDir string) (*Container, error) {
	// Load app config to determine the store backend
	configLoader := config.NewLoader(dataDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		// Broken config files are reported by 'config show'; fall back to defaults
		appConfig = domain.NewDefaultConfig()
	}

	cfg := Config{
		DataDir:   dataDir,
		StorePath: appConfig.StorePath(dataDir),
		Backend:   appConfig.Store.Backend,
	}

	var snapshots domain.SnapshotStore
	var closers []io.Closer
	switch cfg.Backend {
	case "", domain.StoreBackendJSON:
		cfg.Backend = domain.StoreBackendJSON
		snapshots = jsonstore.New(cfg.StorePath)
	case domain.StoreBackendSQLite:
		sqlite := sqlitestore.New(cfg.StorePath)
		snapshots = sqlite
		closers = append(closers, sqlite)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownStoreBackend, cfg.Backend)
	}

	clock := domain.RealClock{}

	level, ok := logging.ParseLevel(appConfig.Log.Level)
	if !ok {
		level = slog.LevelInfo
	}
	logger := logging.NewWithClock(dataDir, level, clock)
	closers = append(closers, logger)
	for _, warning := range appConfig.Warnings {
		logger.Warn(0, "config", warning)
	}

	c := &Container{
		Session:       memstore.NewSession(snapshots),
		Snapshots:     snapshots,
		Clock:         clock,
		Executor:      executor.NewClient(appConfig.Actions.Shell, "", appConfig.Actions.Timeout),
		Logger:        logger,
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(dataDir),
		AppConfig:     appConfig,
		closers:       closers,
		Config:        cfg,
	}
	return c, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(
	cfg Config,
	snapshots domain.SnapshotStore,
	clock domain.Clock,
	actions domain.ActionExecutor,
	logger domain.Logger,
	configLoader domain.ConfigLoader,
	configManager domain.ConfigManager,
) *Container {
	appConfig, err := configLoader.Load()
	if err != nil {
		appConfig = domain.NewDefaultConfig()
	}
	return &Container{
		Session:       memstore.NewSession(snapshots),
		Snapshots:     snapshots,
		Clock:         clock,
		Executor:      actions,
		Logger:        logger,
		ConfigLoader:  configLoader,
		ConfigManager: configManager,
		AppConfig:     appConfig,
		Config:        cfg,
	}
}

// Close releases open log files and database handles.
func (c *Container) Close() error {
	var errs []error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// UseCase factory methods

// InitStoreUseCase returns a new InitStore use case.
func (c *Container) InitStoreUseCase() *usecase.InitStore {
	return usecase.NewInitStore(c.Snapshots)
}

// NewGoalUseCase returns a new NewGoal use case.
func (c *Container) NewGoalUseCase() *usecase.NewGoal {
	return usecase.NewNewGoal(c.Session, c.Logger)
}

// EditGoalUseCase returns a new EditGoal use case.
func (c *Container) EditGoalUseCase() *usecase.EditGoal {
	return usecase.NewEditGoal(c.Session, c.Logger)
}

// ResolveGoalUseCase returns a new ResolveGoal use case.
func (c *Container) ResolveGoalUseCase() *usecase.ResolveGoal {
	return usecase.NewResolveGoal(c.Session, c.Executor, c.Logger)
}

// FeedGoalUseCase returns a new FeedGoal use case.
func (c *Container) FeedGoalUseCase() *usecase.FeedGoal {
	return usecase.NewFeedGoal(c.Session, c.Logger)
}

// ToggleCriteriaUseCase returns a new ToggleCriteria use case.
func (c *Container) ToggleCriteriaUseCase() *usecase.ToggleCriteria {
	return usecase.NewToggleCriteria(c.Session, c.Logger)
}

// ListGoalsUseCase returns a new ListGoals use case.
func (c *Container) ListGoalsUseCase() *usecase.ListGoals {
	return usecase.NewListGoals(c.Session)
}

// ShowGoalUseCase returns a new ShowGoal use case.
func (c *Container) ShowGoalUseCase() *usecase.ShowGoal {
	return usecase.NewShowGoal(c.Session)
}

// NewRecurrenceUseCase returns a new NewRecurrence use case.
func (c *Container) NewRecurrenceUseCase() *usecase.NewRecurrence {
	return usecase.NewNewRecurrence(c.Session, c.Logger)
}

// EditRecurrenceUseCase returns a new EditRecurrence use case.
func (c *Container) EditRecurrenceUseCase() *usecase.EditRecurrence {
	return usecase.NewEditRecurrence(c.Session, c.Logger)
}

// DeleteRecurrenceUseCase returns a new DeleteRecurrence use case.
func (c *Container) DeleteRecurrenceUseCase() *usecase.DeleteRecurrence {
	return usecase.NewDeleteRecurrence(c.Session, c.Logger)
}

// ListRecurrencesUseCase returns a new ListRecurrences use case.
func (c *Container) ListRecurrencesUseCase() *usecase.ListRecurrences {
	return usecase.NewListRecurrences(c.Session)
}

// SpawnGoalsUseCase returns a new SpawnGoals use case.
func (c *Container) SpawnGoalsUseCase() *usecase.SpawnGoals {
	return usecase.NewSpawnGoals(c.Session, c.ConfigLoader, c.Clock, c.Logger)
}

// PreviewRecurrenceUseCase returns a new PreviewRecurrence use case.
func (c *Container) PreviewRecurrenceUseCase() *usecase.PreviewRecurrence {
	return usecase.NewPreviewRecurrence(c.Session)
}

// ResolveExpiredUseCase returns a new ResolveExpired use case.
func (c *Container) ResolveExpiredUseCase() *usecase.ResolveExpired {
	return usecase.NewResolveExpired(c.Session, c.Executor, c.Clock, c.Logger)
}

// ApplyPlanUseCase returns a new ApplyPlan use case.
func (c *Container) ApplyPlanUseCase() *usecase.ApplyPlan {
	return usecase.NewApplyPlan(c.Session, c.Logger)
}

// ShowStatusUseCase returns a new ShowStatus use case.
func (c *Container) ShowStatusUseCase() *usecase.ShowStatus {
	return usecase.NewShowStatus(c.Session, c.Clock)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

// ShowLogsUseCase returns a new ShowLogs use case.
func (c *Container) ShowLogsUseCase() *usecase.ShowLogs {
	return usecase.NewShowLogs(c.Config.DataDir)
}
