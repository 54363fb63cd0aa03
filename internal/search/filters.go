package search

import "fmt"

// Page-size bounds. A zero limit means "use the default"; anything else outside
// [MinLimit, MaxLimit] is rejected rather than clamped so callers get explicit
// feedback.
const (
	MinLimit     = 1
	MaxLimit     = 50
	DefaultLimit = 20
)

// Filters is the full set of optional constraints a search request can carry.
// Built fresh per request from already-coerced input, validated once, then
// compiled into exactly one query. Nil pointer fields omit their predicate.
type Filters struct {
	// Requested UTC time-of-day window [StartMinutesUTC, EndMinutesUTC).
	// Unlike a schedule entry's own window this one never wraps.
	StartMinutesUTC *int
	EndMinutesUTC   *int

	DayOfWeekUTC *int

	AgeMin *int
	AgeMax *int

	Term      *string
	Category  *string
	City      *string
	Languages []string

	Limit  int
	Cursor *Cursor
}

// Validate checks the structural invariants before any SQL is built. It never
// mutates or silently corrects the filters.
func (f Filters) Validate() error {
	for _, m := range []*int{f.StartMinutesUTC, f.EndMinutesUTC} {
		if m != nil && (*m < 0 || *m > minutesPerDay) {
			return fmt.Errorf("%w: minute value %d outside [0, %d]", ErrInvalidRange, *m, minutesPerDay)
		}
	}
	if f.StartMinutesUTC != nil || f.EndMinutesUTC != nil {
		// The builder fills a missing edge with 0/1440; the effective window
		// must still be non-empty, or a lone bound at the domain edge would
		// compile to [1440, 1440).
		start, end := 0, minutesPerDay
		if f.StartMinutesUTC != nil {
			start = *f.StartMinutesUTC
		}
		if f.EndMinutesUTC != nil {
			end = *f.EndMinutesUTC
		}
		if start >= end {
			return fmt.Errorf("%w: start minutes %d not before end minutes %d",
				ErrInvalidRange, start, end)
		}
	}
	if f.DayOfWeekUTC != nil && (*f.DayOfWeekUTC < 0 || *f.DayOfWeekUTC > 6) {
		return fmt.Errorf("%w: day of week %d outside [0, 6]", ErrInvalidRange, *f.DayOfWeekUTC)
	}
	for _, a := range []*int{f.AgeMin, f.AgeMax} {
		if a != nil && *a < 0 {
			return fmt.Errorf("%w: negative age %d", ErrInvalidRange, *a)
		}
	}
	if f.AgeMin != nil && f.AgeMax != nil && *f.AgeMin > *f.AgeMax {
		return fmt.Errorf("%w: minimum age %d above maximum age %d", ErrInvalidRange, *f.AgeMin, *f.AgeMax)
	}
	if f.Limit != 0 && (f.Limit < MinLimit || f.Limit > MaxLimit) {
		return fmt.Errorf("%w: limit %d outside [%d, %d]", ErrInvalidLimit, f.Limit, MinLimit, MaxLimit)
	}
	return nil
}

// PageSize resolves the effective result cap, substituting the default for an
// unset limit.
func (f Filters) PageSize() int {
	if f.Limit == 0 {
		return DefaultLimit
	}
	return f.Limit
}
