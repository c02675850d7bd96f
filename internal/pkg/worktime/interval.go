package worktime

// afterMidnightThreshold decides which side of midnight a same-day interval
// sits on when compared inside an overnight frame. Anything starting before
// noon is treated as the after-midnight segment.
//
// This misclassifies intervals that start before noon but belong to the
// evening side of a long shift (e.g. 11:00 in a 10:00-02:00 shift). The
// behavior is kept as is; see TestNormalize_NoonHeuristic.
const afterMidnightThreshold = 12 * MinutesPerHour

// Interval is a start/end pair of wall-clock times. AllowWraparound marks
// whether end < start may be read as a span crossing midnight.
type Interval struct {
	Start           TimeOfDay
	End             TimeOfDay
	AllowWraparound bool
}

// Valid reports whether the interval has a usable shape under its own
// wraparound flag. Without wraparound start must be strictly before end.
// With wraparound only start == end is rejected, since it is ambiguous
// between zero length and a full day.
func (i Interval) Valid() bool {
	if i.AllowWraparound {
		return i.Start != i.End
	}
	return i.Start.Minutes() < i.End.Minutes()
}

// IsOvernight reports whether the end clock time is before the start.
func (i Interval) IsOvernight() bool {
	return i.End.Minutes() < i.Start.Minutes()
}

// Duration returns the length in minutes. An inverted interval is worth
// end+1440-start when wraparound is allowed and 0 otherwise. It never fails.
func (i Interval) Duration(allowWraparound bool) int {
	start, end := i.Start.Minutes(), i.End.Minutes()
	if end >= start {
		return end - start
	}
	if allowWraparound {
		return end + MinutesPerDay - start
	}
	return 0
}

// Normalize projects the interval onto an unwrapped minute line so that it
// can be compared against other intervals of the same frame. The returned
// end may exceed 1439.
func (i Interval) Normalize(referenceIsOvernight bool) (int, int) {
	start, end := i.Start.Minutes(), i.End.Minutes()

	switch {
	case end < start:
		end += MinutesPerDay
	case referenceIsOvernight && start < afterMidnightThreshold:
		start += MinutesPerDay
		end += MinutesPerDay
	}

	return start, end
}

// Overlaps reports whether the two intervals share any time. Intervals that
// only touch (one ends exactly when the other starts) do not overlap.
func (i Interval) Overlaps(other Interval, isOvernight bool) bool {
	s1, e1 := i.Normalize(isOvernight)
	s2, e2 := other.Normalize(isOvernight)
	return s1 < e2 && s2 < e1
}

// Contains reports whether inner lies within i, boundaries included.
func (i Interval) Contains(inner Interval, isOvernight bool) bool {
	os, oe := i.Normalize(isOvernight)
	is, ie := inner.Normalize(isOvernight)
	return is >= os && ie <= oe
}
