package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/goalkeeper/internal/domain"
)

// SpawnGoalsInput contains the parameters for spawning goals from recurrences.
type SpawnGoalsInput struct {
	Until        int64 // Spawn up to this time in unix ms (0 = now + configured horizon)
	RecurrenceID int   // Recurrence to spawn from (0 = all recurrences)
}

// SpawnGoalsOutput contains the result of spawning goals.
type SpawnGoalsOutput struct {
	Spawned []domain.Goal // Newly created goals in creation order
	Pending []int         // Recurrences still behind Until after hitting the per-call cap
	Until   int64         // Time spawning caught up to
}

// SpawnGoals is the use case for materializing goals from recurrences.
type SpawnGoals struct {
	session      domain.GoalSession
	configLoader domain.ConfigLoader
	clock        domain.Clock
	logger       domain.Logger
}

// NewSpawnGoals creates a new SpawnGoals use case.
func NewSpawnGoals(
	session domain.GoalSession,
	configLoader domain.ConfigLoader,
	clock domain.Clock,
	logger domain.Logger,
) *SpawnGoals {
	return &SpawnGoals{
		session:      session,
		configLoader: configLoader,
		clock:        clock,
		logger:       logger,
	}
}

// Execute spawns every pending goal and the first one starting after Until.
// Calling it again with the same time spawns nothing new, unless a recurrence
// hit the per-call cap and is listed in Pending.
func (uc *SpawnGoals) Execute(_ context.Context, in SpawnGoalsInput) (*SpawnGoalsOutput, error) {
	until := in.Until
	if until == 0 {
		cfg, err := uc.configLoader.Load()
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		until = domain.NowMs(uc.clock) + cfg.Spawn.Horizon.Milliseconds()
	}

	store, err := uc.session.Store()
	if err != nil {
		return nil, err
	}

	var ids []int
	if in.RecurrenceID != 0 {
		if !store.DoesRecurrenceExist(in.RecurrenceID) {
			return nil, fmt.Errorf("recurrence %d: %w", in.RecurrenceID, domain.ErrRecurrenceNotFound)
		}
		ids = []int{in.RecurrenceID}
	} else {
		for _, rec := range store.Recurrences(0, 0) {
			ids = append(ids, rec.ID)
		}
	}

	before := len(store.Goals(0, 0, nil))
	for _, id := range ids {
		store.GenerateGoalsFromRecurrence(id, until)
	}
	spawned := store.Goals(0, 0, nil)[before:]

	var pending []int
	for _, id := range ids {
		if rec, ok := store.GetRecurrence(id); ok && rec.HasPendingSpawns(until) {
			pending = append(pending, id)
		}
	}

	if len(spawned) > 0 {
		if err := uc.session.Commit(); err != nil {
			return nil, err
		}
	}
	for _, g := range spawned {
		uc.logger.Info(g.ID, "recurrence", fmt.Sprintf("spawned from recurrence %d: %q at %s",
			g.RecurrenceID, g.Name, domain.FormatTimestamp(g.Start)))
	}

	for _, id := range pending {
		uc.logger.Warn(0, "recurrence", fmt.Sprintf("recurrence %d stopped after %d goals; more are pending",
			id, domain.MaxSpawnsPerCall))
	}

	return &SpawnGoalsOutput{Spawned: spawned, Pending: pending, Until: until}, nil
}
