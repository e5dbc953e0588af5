package domain

// Snapshot is the full state of a goal store, in insertion order.
// It is what persistence backends read and write.
type Snapshot struct {
	Goals       []Goal       `json:"goals"`
	Recurrences []Recurrence `json:"recurrences"`
	Version     uint64       `json:"version"`
	LastID      int          `json:"lastID"` // Last ID handed out by the allocator
}

// NewSnapshot returns an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Goals:       []Goal{},
		Recurrences: []Recurrence{},
	}
}
