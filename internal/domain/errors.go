package domain

import "errors"

// Domain errors.
var (
	ErrGoalNotFound                 = errors.New("goal not found")
	ErrParentNotFound               = errors.New("parent goal not found")
	ErrSubgoalOutsideParent         = errors.New("subgoal starts outside its parent's timebound")
	ErrTimeboundSmallerThanSubgoals = errors.New("new timebound would leave incomplete subgoals outside")
	ErrIncorrectGoalType            = errors.New("goal is of the incorrect type")
	ErrSubgoalsNotResolved          = errors.New("goal has incomplete subgoals")
	ErrGoalAlreadyResolved          = errors.New("goal is already resolved")
	ErrCriteriaIndexOutOfRange      = errors.New("criteria index out of range")
	ErrGoalIsTimeBased              = errors.New("goal is time-based")
	ErrGoalIsTaskBased              = errors.New("goal is task-based")
	ErrRecurrenceNotFound           = errors.New("recurrence not found")
	ErrUnknownGoalKind              = errors.New("unknown goal kind")
	ErrUnknownResult                = errors.New("unknown result code")
	ErrNotInitialized               = errors.New("goalkeeper not initialized (run 'goalkeeper init' first)")
	ErrAlreadyInitialized           = errors.New("goalkeeper already initialized")
	ErrEmptyName                    = errors.New("name cannot be empty")
	ErrInvalidTimebound             = errors.New("end must not be before start")
	ErrMissingCriteria              = errors.New("goal needs either a time target or checklist items")
	ErrConflictingCriteria          = errors.New("goal cannot have both a time target and checklist items")
	ErrInvalidStatus                = errors.New("invalid status")
	ErrInvalidKind                  = errors.New("invalid kind (expected time or task)")
	ErrInvalidTime                  = errors.New("invalid time")
	ErrInvalidDuration              = errors.New("duration must be positive")
	ErrNoFieldsToUpdate             = errors.New("no fields to update")
	ErrNoLogFile                    = errors.New("no log file")
	ErrInvalidSpawnInterval         = errors.New("spawn interval must be positive")
	ErrEmptyFile                    = errors.New("file is empty")
	ErrNoEntriesInFile              = errors.New("no goals or recurrences found in file")
	ErrInvalidParentRef             = errors.New("invalid parent reference")
	ErrConfigExists                 = errors.New("config file already exists")
	ErrUnknownStoreBackend          = errors.New("unknown store backend")
)
