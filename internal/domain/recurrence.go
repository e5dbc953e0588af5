package domain

// Recurrence periodically materializes goals from a template.
// Fields are ordered to minimize memory padding.
type Recurrence struct {
	Template           Goal  `json:"template"` // Header and criteria copied into every spawned goal
	Start              int64 `json:"start"`
	End                int64 `json:"end"` // 0 = indefinite
	SpawnIntervalMs    int64 `json:"spawnIntervalMs"`
	GoalDurationMs     int64 `json:"goalDurationMs"`
	LatestSpawnedStart int64 `json:"latestSpawnedStart"`
	ID                 int   `json:"id"`      // 0 until assigned
	Spawned            bool  `json:"spawned"` // True once at least one goal was materialized
}

// Kind returns the variant of goals this recurrence spawns.
func (r *Recurrence) Kind() GoalKind {
	return r.Template.Kind()
}

// IsIndefinite returns true if the recurrence has no end bound.
func (r *Recurrence) IsIndefinite() bool {
	return r.End == 0
}

// PastEnd reports whether a spawn at start would fall after the end bound.
func (r *Recurrence) PastEnd(start int64) bool {
	return !r.IsIndefinite() && start > r.End
}

// BoundEnd returns the end used for interval queries.
// Indefinite recurrences extend to the largest representable time.
func (r *Recurrence) BoundEnd() int64 {
	if r.IsIndefinite() {
		return maxTimestamp
	}
	return r.End
}

// NextSpawnStart returns the start time of the next goal to materialize.
// The first spawn happens at LatestSpawnedStart (initialized to Start);
// later spawns advance by SpawnIntervalMs. A non-positive interval makes the
// recurrence one-shot. Returns false when nothing is left to spawn.
func (r *Recurrence) NextSpawnStart() (int64, bool) {
	next := r.LatestSpawnedStart
	if r.Spawned {
		if r.SpawnIntervalMs <= 0 || next > maxTimestamp-r.SpawnIntervalMs {
			return 0, false
		}
		next += r.SpawnIntervalMs
	}
	next = max(next, r.Start)
	if r.PastEnd(next) {
		return 0, false
	}
	return next, true
}

// IsCaughtUp reports whether a goal starting after curTime was already spawned.
func (r *Recurrence) IsCaughtUp(curTime int64) bool {
	return r.Spawned && r.LatestSpawnedStart > curTime
}

// HasPendingSpawns reports whether a spawn call at curTime would materialize
// anything.
func (r *Recurrence) HasPendingSpawns(curTime int64) bool {
	if r.IsCaughtUp(curTime) {
		return false
	}
	_, ok := r.NextSpawnStart()
	return ok
}

// PlanSpawns returns the start times a spawn call at curTime materializes:
// every pending start up to curTime plus the first one past it, at most
// MaxSpawnsPerCall of them. The recurrence itself is not modified.
func (r *Recurrence) PlanSpawns(curTime int64) []int64 {
	if r.IsCaughtUp(curTime) {
		return nil
	}
	sim := *r
	var starts []int64
	for len(starts) < MaxSpawnsPerCall {
		next, ok := sim.NextSpawnStart()
		if !ok {
			break
		}
		starts = append(starts, next)
		sim.MarkSpawned(next)
		if next > curTime {
			break
		}
	}
	return starts
}

// Instance builds an unsaved goal from the template starting at start.
func (r *Recurrence) Instance(start int64) Goal {
	g := r.Template.Clone()
	g.ID = 0
	g.RecurrenceID = r.ID
	g.Start = start
	g.End = start + r.GoalDurationMs
	if start > maxTimestamp-r.GoalDurationMs {
		g.End = maxTimestamp
	}
	g.Status = StatusIncomplete
	g.ClearChecks()
	if tc, ok := g.TimeCriteria(); ok {
		tc.DedicatedMs = 0
	}
	return g
}

// MarkSpawned records that a goal starting at start was materialized.
func (r *Recurrence) MarkSpawned(start int64) {
	if start > r.LatestSpawnedStart {
		r.LatestSpawnedStart = start
	}
	r.Spawned = true
}

// Ghosts returns the goals that would be spawned up to and including until,
// without touching the recurrence. At most limit goals are returned.
func (r *Recurrence) Ghosts(until int64, limit int) []Goal {
	sim := *r
	var ghosts []Goal
	for len(ghosts) < limit {
		next, ok := sim.NextSpawnStart()
		if !ok || next > until {
			break
		}
		ghosts = append(ghosts, sim.Instance(next))
		sim.MarkSpawned(next)
	}
	return ghosts
}

// Clone returns a deep copy of the recurrence.
func (r *Recurrence) Clone() Recurrence {
	cp := *r
	cp.Template = r.Template.Clone()
	return cp
}

// MaxSpawnsPerCall caps the goals one spawn call materializes from a single
// recurrence. A recurrence further behind catches up over later calls.
const MaxSpawnsPerCall = 1000

// maxTimestamp is the open end of indefinite recurrences.
const maxTimestamp = int64(^uint64(0) >> 1)
