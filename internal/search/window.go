package search

import "fmt"

// minutesPerDay bounds the minute-of-day domain [0, 1440).
const minutesPerDay = 1440

// IsOvernightWrap reports whether a schedule window crosses midnight, i.e. its
// end-of-day minute is numerically less than its start (22:00-02:00 is stored
// as 1320-120).
func IsOvernightWrap(startMinutes, endMinutes int) bool {
	return startMinutes > endMinutes
}

// ValidateEntryWindow checks a schedule entry's own minute window. Either bound
// may be nil (unbounded). Equal bounds are rejected: a zero-length window and a
// full-day window would be indistinguishable. start > end is allowed and means
// the window wraps past midnight.
//
// An earlier schema version required start < end outright; entries persisted
// under that rule all satisfy this one.
func ValidateEntryWindow(startMinutes, endMinutes *int) error {
	for _, m := range []*int{startMinutes, endMinutes} {
		if m != nil && (*m < 0 || *m >= minutesPerDay) {
			return fmt.Errorf("minute value %d outside [0, %d)", *m, minutesPerDay)
		}
	}
	if startMinutes == nil || endMinutes == nil {
		return nil
	}
	if *startMinutes == *endMinutes {
		return fmt.Errorf("start and end minutes are both %d; an empty window is not allowed", *startMinutes)
	}
	return nil
}

// WindowOverlaps is the reference semantics of the SQL time predicate emitted
// by BuildSearchQuery: does a schedule entry's window intersect the requested
// half-open window [reqStart, reqEnd)? A nil entry bound matches everything. A
// wrapped entry covers [start, 1440) and [0, end) and matches if the request
// overlaps either piece.
func WindowOverlaps(entryStart, entryEnd *int, reqStart, reqEnd int) bool {
	if entryStart == nil || entryEnd == nil {
		return true
	}
	if IsOvernightWrap(*entryStart, *entryEnd) {
		return *entryStart < reqEnd || *entryEnd > reqStart
	}
	return *entryStart < reqEnd && *entryEnd > reqStart
}
