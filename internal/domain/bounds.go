package domain

// IsWithinBounds reports whether the inner bound starts inside [outerStart, outerEnd].
// Only innerStart is checked; innerEnd is accepted for symmetry with callers
// and intentionally ignored.
func IsWithinBounds(outerStart, outerEnd, innerStart, _ int64) bool {
	return innerStart >= outerStart && innerStart <= outerEnd
}

// IntervalsIntersect reports whether the closed intervals [aStart, aEnd] and
// [bStart, bEnd] overlap.
func IntervalsIntersect(aStart, aEnd, bStart, bEnd int64) bool {
	return aStart <= bEnd && bStart <= aEnd
}

// IsUnbounded reports whether a query interval means "no time restriction".
func IsUnbounded(start, end int64) bool {
	return start == 0 && end == 0
}

// MatchesInterval reports whether [start, end] passes the query interval
// [qStart, qEnd]. The (0, 0) query matches everything.
func MatchesInterval(qStart, qEnd, start, end int64) bool {
	if IsUnbounded(qStart, qEnd) {
		return true
	}
	return IntervalsIntersect(qStart, qEnd, start, end)
}
