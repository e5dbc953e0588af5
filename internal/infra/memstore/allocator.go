package memstore

// allocator hands out unique positive IDs shared by goals and recurrences.
// IDs are never reused, even after a recurrence is removed.
type allocator struct {
	last int
}

// next increments the counter and returns it. Never returns 0.
func (a *allocator) next() int {
	a.last++
	return a.last
}
