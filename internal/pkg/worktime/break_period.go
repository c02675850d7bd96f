package worktime

// BreakPeriod is a named break inside a work interval. Name is for display
// only and need not be unique. IsFlexible is carried through untouched.
type BreakPeriod struct {
	Name       string
	Interval   Interval
	IsFlexible bool
}

// TotalMinutes sums the duration of every period in the given frame.
// Overlapping periods are double counted; callers validate first.
func TotalMinutes(periods []BreakPeriod, isOvernight bool) int {
	total := 0
	for _, p := range periods {
		total += p.Interval.Duration(isOvernight)
	}
	return total
}

// FirstOverlap returns the indexes of the first pair of periods that overlap
// in the given frame, scanning pairs in order. ok is false if none overlap.
func FirstOverlap(periods []BreakPeriod, isOvernight bool) (i, j int, ok bool) {
	for i = 0; i < len(periods); i++ {
		for j = i + 1; j < len(periods); j++ {
			if periods[i].Interval.Overlaps(periods[j].Interval, isOvernight) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}
