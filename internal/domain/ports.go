package domain

import (
	"context"
	"time"
)

// GoalStore is the goal and recurrence aggregate.
// Implementations must serialize every call: each operation observes and
// leaves the store in a consistent state. All returned values are copies.
type GoalStore interface {
	// CreateOrEditGoal creates the goal when goal.ID is 0, otherwise edits it.
	// Returns the goal ID on success.
	CreateOrEditGoal(goal Goal) (int, CreateGoalCode)

	// DeleteGoal marks a goal as deleted.
	DeleteGoal(id int) GoalDeleteCode

	// SucceedGoal marks a goal as succeeded.
	SucceedGoal(id int) GoalDeathCode

	// FailGoal marks a goal as failed.
	FailGoal(id int) GoalDeathCode

	// FeedTimeGoal adds dedicated time to a time-based goal.
	FeedTimeGoal(id int, durationMs int64) bool

	// CheckTaskCriteria checks the checklist item at index.
	CheckTaskCriteria(id, index int) CriteriaToggleCode

	// UncheckTaskCriteria unchecks the checklist item at index.
	UncheckTaskCriteria(id, index int) CriteriaToggleCode

	// GetGoal retrieves a goal of either variant.
	GetGoal(id int) (Goal, GetGoalCode)

	// GetTimeGoal retrieves a time-based goal.
	GetTimeGoal(id int) (Goal, GetGoalCode)

	// GetTaskGoal retrieves a task-based goal.
	GetTaskGoal(id int) (Goal, GetGoalCode)

	// CreateOrEditRecurrence creates the recurrence when rec.ID is 0, otherwise edits it.
	CreateOrEditRecurrence(rec Recurrence) (int, CreateRecurrenceCode)

	// DeleteRecurrence removes a recurrence. Returns false if it doesn't exist.
	DeleteRecurrence(id int) bool

	// GetRecurrence retrieves a recurrence.
	GetRecurrence(id int) (Recurrence, bool)

	// GenerateGoalsFromRecurrence spawns goals up to and including the first
	// one starting after curTime. Returns false if the recurrence doesn't exist.
	GenerateGoalsFromRecurrence(id int, curTime int64) bool

	// Goals lists goals of both variants matching the interval and filter.
	Goals(start, end int64, filter StatusFilter) []Goal

	// TimeGoals lists time-based goals matching the interval and filter.
	TimeGoals(start, end int64, filter StatusFilter) []Goal

	// TaskGoals lists task-based goals matching the interval and filter.
	TaskGoals(start, end int64, filter StatusFilter) []Goal

	// Recurrences lists recurrences whose bound intersects the interval.
	Recurrences(start, end int64) []Recurrence

	// TimeRecurrences lists time-based recurrences whose bound intersects the interval.
	TimeRecurrences(start, end int64) []Recurrence

	// TaskRecurrences lists task-based recurrences whose bound intersects the interval.
	TaskRecurrences(start, end int64) []Recurrence

	// ImmediateSubgoals lists direct children of a goal.
	ImmediateSubgoals(id int, filter StatusFilter) []Goal

	// NumImmediateSubgoals counts direct children of a goal.
	NumImmediateSubgoals(id int, filter StatusFilter) int

	// ExpiredGoalIDs lists incomplete goals that ended before curTime.
	ExpiredGoalIDs(curTime int64) []int

	// DoesGoalExist reports whether a goal with the ID exists.
	DoesGoalExist(id int) bool

	// DoesRecurrenceExist reports whether a recurrence with the ID exists.
	DoesRecurrenceExist(id int) bool

	// IsTimeGoal reports whether the ID belongs to a time-based goal.
	IsTimeGoal(id int) bool

	// IsTimeRecurrence reports whether the ID belongs to a time-based recurrence.
	IsTimeRecurrence(id int) bool

	// Version returns the change counter, bumped by every successful mutation.
	Version() uint64

	// Snapshot exports the full store state.
	Snapshot() *Snapshot
}

// GoalSession gives use cases a goal store backed by persisted snapshots.
type GoalSession interface {
	// Store returns the goal store, loading it on first use.
	Store() (GoalStore, error)

	// Commit persists the store if it changed since it was loaded.
	Commit() error
}

// SnapshotStore persists store snapshots between process runs.
type SnapshotStore interface {
	// Initialize creates an empty store if it doesn't exist.
	Initialize() error

	// IsInitialized reports whether the store exists.
	IsInitialized() bool

	// Load reads the latest snapshot.
	Load() (*Snapshot, error)

	// Save replaces the stored snapshot.
	Save(snap *Snapshot) error
}

// ActionExecutor runs opaque goal actions (success/failure/finally).
type ActionExecutor interface {
	// Run executes a single action and returns its combined output.
	Run(ctx context.Context, action string) (string, error)
}

// Logger writes operational logs.
// goalID 0 means the entry is not tied to a goal.
type Logger interface {
	Info(goalID int, category, msg string)
	Debug(goalID int, category, msg string)
	Warn(goalID int, category, msg string)
	Error(goalID int, category, msg string)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (data dir + global).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)

	// LoadWithOptions returns the merged configuration, skipping ignored sources.
	LoadWithOptions(opts LoadConfigOptions) (*Config, error)
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GetDataConfigInfo returns information about the data dir config file.
	GetDataConfigInfo() ConfigInfo

	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// InitDataConfig writes the config template to the data dir.
	InitDataConfig(cfg *Config) error

	// InitGlobalConfig writes the config template to the global config dir.
	InitGlobalConfig(cfg *Config) error
}

// ConfigInfo describes a config file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// NowMs returns the clock's current time in unix milliseconds.
func NowMs(c Clock) int64 {
	return c.Now().UnixMilli()
}
