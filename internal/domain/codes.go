package domain

// Result codes returned by the goal store.
// Each operation family has its own closed set; the zero value is success.
// Err maps a code to the sentinel error callers can match with errors.Is.

// CreateGoalCode is the result of creating or editing a goal.
type CreateGoalCode int

const (
	CreateGoalSuccess CreateGoalCode = iota
	CreateGoalSubgoalOutsideParentTimebound
	CreateGoalNewTimeboundSmallerThanSubgoals
	CreateGoalEditingGoalOfIncorrectType
	CreateGoalEditingGoalDoesntExist
	CreateGoalParentDoesntExist
	CreateGoalMissingCriteria
)

func (c CreateGoalCode) String() string {
	switch c {
	case CreateGoalSuccess:
		return "success"
	case CreateGoalSubgoalOutsideParentTimebound:
		return "subgoal outside parent timebound"
	case CreateGoalNewTimeboundSmallerThanSubgoals:
		return "new timebound smaller than subgoals"
	case CreateGoalEditingGoalOfIncorrectType:
		return "editing goal of incorrect type"
	case CreateGoalEditingGoalDoesntExist:
		return "editing goal doesn't exist"
	case CreateGoalParentDoesntExist:
		return "parent goal doesn't exist"
	case CreateGoalMissingCriteria:
		return "missing criteria"
	default:
		return "unknown"
	}
}

// Err returns nil on success, otherwise the matching sentinel error.
func (c CreateGoalCode) Err() error {
	switch c {
	case CreateGoalSuccess:
		return nil
	case CreateGoalSubgoalOutsideParentTimebound:
		return ErrSubgoalOutsideParent
	case CreateGoalNewTimeboundSmallerThanSubgoals:
		return ErrTimeboundSmallerThanSubgoals
	case CreateGoalEditingGoalOfIncorrectType:
		return ErrIncorrectGoalType
	case CreateGoalEditingGoalDoesntExist:
		return ErrGoalNotFound
	case CreateGoalParentDoesntExist:
		return ErrParentNotFound
	case CreateGoalMissingCriteria:
		return ErrMissingCriteria
	default:
		return ErrUnknownResult
	}
}

// GoalDeathCode is the result of succeeding or failing a goal.
type GoalDeathCode int

const (
	DeathSuccess GoalDeathCode = iota
	DeathSubgoalsNotAllDead
	DeathGoalDoesntExist
	DeathGoalAlreadyResolved
)

func (c GoalDeathCode) String() string {
	switch c {
	case DeathSuccess:
		return "success"
	case DeathSubgoalsNotAllDead:
		return "subgoals not all dead"
	case DeathGoalDoesntExist:
		return "goal doesn't exist"
	case DeathGoalAlreadyResolved:
		return "goal already resolved"
	default:
		return "unknown"
	}
}

// Err returns nil on success, otherwise the matching sentinel error.
func (c GoalDeathCode) Err() error {
	switch c {
	case DeathSuccess:
		return nil
	case DeathSubgoalsNotAllDead:
		return ErrSubgoalsNotResolved
	case DeathGoalDoesntExist:
		return ErrGoalNotFound
	case DeathGoalAlreadyResolved:
		return ErrGoalAlreadyResolved
	default:
		return ErrUnknownResult
	}
}

// GoalDeleteCode is the result of deleting a goal.
type GoalDeleteCode int

const (
	DeleteSuccess GoalDeleteCode = iota
	DeleteGoalHasSubgoals
	DeleteGoalDoesntExist
	DeleteGoalAlreadyResolved
)

func (c GoalDeleteCode) String() string {
	switch c {
	case DeleteSuccess:
		return "success"
	case DeleteGoalHasSubgoals:
		return "goal has subgoals"
	case DeleteGoalDoesntExist:
		return "goal doesn't exist"
	case DeleteGoalAlreadyResolved:
		return "goal already resolved"
	default:
		return "unknown"
	}
}

// Err returns nil on success, otherwise the matching sentinel error.
func (c GoalDeleteCode) Err() error {
	switch c {
	case DeleteSuccess:
		return nil
	case DeleteGoalHasSubgoals:
		return ErrSubgoalsNotResolved
	case DeleteGoalDoesntExist:
		return ErrGoalNotFound
	case DeleteGoalAlreadyResolved:
		return ErrGoalAlreadyResolved
	default:
		return ErrUnknownResult
	}
}

// GetGoalCode is the result of fetching a goal by ID.
type GetGoalCode int

const (
	GetSuccess GetGoalCode = iota
	GetGoalIncorrectType
	GetGoalDoesntExist
)

func (c GetGoalCode) String() string {
	switch c {
	case GetSuccess:
		return "success"
	case GetGoalIncorrectType:
		return "goal of incorrect type"
	case GetGoalDoesntExist:
		return "goal doesn't exist"
	default:
		return "unknown"
	}
}

// Err returns nil on success, otherwise the matching sentinel error.
func (c GetGoalCode) Err() error {
	switch c {
	case GetSuccess:
		return nil
	case GetGoalIncorrectType:
		return ErrIncorrectGoalType
	case GetGoalDoesntExist:
		return ErrGoalNotFound
	default:
		return ErrUnknownResult
	}
}

// CriteriaToggleCode is the result of checking or unchecking a checklist item.
type CriteriaToggleCode int

const (
	CriteriaToggled CriteriaToggleCode = iota
	CriteriaAlreadyInThisState
	CriteriaIndexOutOfBounds
	CriteriaGoalDoesntExist
	CriteriaGoalIsTimebased
)

func (c CriteriaToggleCode) String() string {
	switch c {
	case CriteriaToggled:
		return "toggled"
	case CriteriaAlreadyInThisState:
		return "already in this state"
	case CriteriaIndexOutOfBounds:
		return "criteria index out of bounds"
	case CriteriaGoalDoesntExist:
		return "goal doesn't exist"
	case CriteriaGoalIsTimebased:
		return "goal is time-based"
	default:
		return "unknown"
	}
}

// Err returns nil for both success codes, otherwise the matching sentinel error.
func (c CriteriaToggleCode) Err() error {
	switch c {
	case CriteriaToggled, CriteriaAlreadyInThisState:
		return nil
	case CriteriaIndexOutOfBounds:
		return ErrCriteriaIndexOutOfRange
	case CriteriaGoalDoesntExist:
		return ErrGoalNotFound
	case CriteriaGoalIsTimebased:
		return ErrGoalIsTimeBased
	default:
		return ErrUnknownResult
	}
}

// CreateRecurrenceCode is the result of creating or editing a recurrence.
type CreateRecurrenceCode int

const (
	RecurrenceSuccess CreateRecurrenceCode = iota
	RecurrenceEditingDoesntExist
)

func (c CreateRecurrenceCode) String() string {
	switch c {
	case RecurrenceSuccess:
		return "success"
	case RecurrenceEditingDoesntExist:
		return "editing recurrence doesn't exist"
	default:
		return "unknown"
	}
}

// Err returns nil on success, otherwise the matching sentinel error.
func (c CreateRecurrenceCode) Err() error {
	switch c {
	case RecurrenceSuccess:
		return nil
	case RecurrenceEditingDoesntExist:
		return ErrRecurrenceNotFound
	default:
		return ErrUnknownResult
	}
}
