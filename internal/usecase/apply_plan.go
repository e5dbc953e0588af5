package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/goalkeeper/internal/domain"
)

// ApplyPlanInput contains the parameters for applying a plan file.
type ApplyPlanInput struct {
	Content []byte // YAML plan content
	DryRun  bool   // If true, parse and validate without creating anything
}

// PlannedGoal is a goal created (or that would be created) from a plan.
// Fields are ordered to minimize memory padding.
type PlannedGoal struct {
	Name     string
	Start    int64
	End      int64
	ID       int // 1-based plan index in dry-run mode
	ParentID int // Plan index for in-file parents in dry-run mode
}

// PlannedRecurrence is a recurrence created (or that would be created) from a plan.
type PlannedRecurrence struct {
	Name string
	ID   int // 1-based plan index in dry-run mode
}

// ApplyPlanOutput contains the result of applying a plan.
type ApplyPlanOutput struct {
	Goals       []PlannedGoal
	Recurrences []PlannedRecurrence
}

// ApplyPlan is the use case for creating goals and recurrences from a YAML plan.
// Nothing is saved unless every entry is created.
type ApplyPlan struct {
	session domain.GoalSession
	logger  domain.Logger
}

// NewApplyPlan creates a new ApplyPlan use case.
func NewApplyPlan(session domain.GoalSession, logger domain.Logger) *ApplyPlan {
	return &ApplyPlan{
		session: session,
		logger:  logger,
	}
}

// Execute applies the plan.
func (uc *ApplyPlan) Execute(_ context.Context, in ApplyPlanInput) (*ApplyPlanOutput, error) {
	plan, err := domain.ParsePlan(in.Content)
	if err != nil {
		return nil, err
	}

	goals := make([]domain.Goal, 0, len(plan.Goals))
	for i := range plan.Goals {
		g, err := plan.Goals[i].Goal()
		if err != nil {
			return nil, fmt.Errorf("goal %d: %w", i+1, err)
		}
		if g.End < g.Start {
			return nil, fmt.Errorf("goal %d: %w", i+1, domain.ErrInvalidTimebound)
		}
		goals = append(goals, g)
	}
	recs := make([]domain.Recurrence, 0, len(plan.Recurrences))
	for i := range plan.Recurrences {
		r, err := plan.Recurrences[i].Recurrence()
		if err != nil {
			return nil, fmt.Errorf("recurrence %d: %w", i+1, err)
		}
		if err := validateRecurrence(&r); err != nil {
			return nil, fmt.Errorf("recurrence %d: %w", i+1, err)
		}
		recs = append(recs, r)
	}

	store, err := uc.session.Store()
	if err != nil {
		return nil, err
	}

	if in.DryRun {
		return uc.dryRun(store, plan, goals, recs)
	}
	return uc.apply(store, plan, goals, recs)
}

// dryRun resolves parent references and returns what would be created.
func (uc *ApplyPlan) dryRun(
	store domain.GoalStore,
	plan *domain.Plan,
	goals []domain.Goal,
	recs []domain.Recurrence,
) (*ApplyPlanOutput, error) {
	// In dry-run, the plan index stands in for the created ID
	pseudoIDs := make(map[int]int, len(goals))
	for i := range goals {
		pseudoIDs[i+1] = i + 1
	}

	checkParent := func(ref string) (int, error) {
		parentID, err := domain.ResolveParentRef(ref, pseudoIDs)
		if err != nil {
			return 0, err
		}
		_, inFile := pseudoIDs[parentID]
		absolute := strings.HasPrefix(strings.TrimSpace(ref), "#")
		if parentID != 0 && (absolute || !inFile) && !store.DoesGoalExist(parentID) {
			return 0, domain.ErrParentNotFound
		}
		return parentID, nil
	}

	out := &ApplyPlanOutput{}
	for i, g := range goals {
		parentID, err := checkParent(plan.Goals[i].Parent)
		if err != nil {
			return nil, fmt.Errorf("goal %d: %w", i+1, err)
		}
		out.Goals = append(out.Goals, PlannedGoal{
			ID:       i + 1,
			ParentID: parentID,
			Name:     g.Name,
			Start:    g.Start,
			End:      g.End,
		})
	}
	for i, r := range recs {
		if _, err := checkParent(plan.Recurrences[i].Parent); err != nil {
			return nil, fmt.Errorf("recurrence %d: %w", i+1, err)
		}
		out.Recurrences = append(out.Recurrences, PlannedRecurrence{ID: i + 1, Name: r.Template.Name})
	}
	return out, nil
}

// apply creates every entry in file order and commits once.
func (uc *ApplyPlan) apply(
	store domain.GoalStore,
	plan *domain.Plan,
	goals []domain.Goal,
	recs []domain.Recurrence,
) (*ApplyPlanOutput, error) {
	// Map of plan index (1-based) to created goal ID
	createdIDs := make(map[int]int, len(goals))
	out := &ApplyPlanOutput{}

	for i, g := range goals {
		parentID, err := domain.ResolveParentRef(plan.Goals[i].Parent, createdIDs)
		if err != nil {
			return nil, fmt.Errorf("goal %d: %w", i+1, err)
		}
		g.ParentID = parentID
		id, code := store.CreateOrEditGoal(g)
		if err := code.Err(); err != nil {
			return nil, fmt.Errorf("goal %d: %w", i+1, err)
		}
		createdIDs[i+1] = id
		out.Goals = append(out.Goals, PlannedGoal{
			ID:       id,
			ParentID: parentID,
			Name:     g.Name,
			Start:    g.Start,
			End:      g.End,
		})
	}

	for i, r := range recs {
		parentID, err := domain.ResolveParentRef(plan.Recurrences[i].Parent, createdIDs)
		if err != nil {
			return nil, fmt.Errorf("recurrence %d: %w", i+1, err)
		}
		if parentID != 0 && !store.DoesGoalExist(parentID) {
			return nil, fmt.Errorf("recurrence %d: %w", i+1, domain.ErrParentNotFound)
		}
		r.Template.ParentID = parentID
		id, code := store.CreateOrEditRecurrence(r)
		if err := code.Err(); err != nil {
			return nil, fmt.Errorf("recurrence %d: %w", i+1, err)
		}
		out.Recurrences = append(out.Recurrences, PlannedRecurrence{ID: id, Name: r.Template.Name})
	}

	if err := uc.session.Commit(); err != nil {
		return nil, err
	}

	uc.logger.Info(0, "plan", fmt.Sprintf("applied plan: %d goals, %d recurrences",
		len(out.Goals), len(out.Recurrences)))

	return out, nil
}
