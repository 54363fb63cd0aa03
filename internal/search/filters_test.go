package search

import (
	"errors"
	"testing"
)

func TestValidateTimeWindow(t *testing.T) {
	f := Filters{StartMinutesUTC: intPtr(600), EndMinutesUTC: intPtr(540)}
	if err := f.Validate(); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("start after end: got %v, want ErrInvalidRange", err)
	}

	f = Filters{StartMinutesUTC: intPtr(540), EndMinutesUTC: intPtr(540)}
	if err := f.Validate(); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("equal bounds: got %v, want ErrInvalidRange", err)
	}

	f = Filters{StartMinutesUTC: intPtr(540), EndMinutesUTC: intPtr(600)}
	if err := f.Validate(); err != nil {
		t.Fatalf("valid window rejected: %v", err)
	}

	// A lone bound is fine; the builder defaults the missing edge.
	f = Filters{EndMinutesUTC: intPtr(600)}
	if err := f.Validate(); err != nil {
		t.Fatalf("one-sided window rejected: %v", err)
	}

	// A lone bound at the domain edge would default to an empty window
	// ([1440, 1440) or [0, 0)), which the wrap predicate must never see.
	f = Filters{StartMinutesUTC: intPtr(1440)}
	if err := f.Validate(); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("lone start 1440: got %v, want ErrInvalidRange", err)
	}
	f = Filters{EndMinutesUTC: intPtr(0)}
	if err := f.Validate(); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("lone end 0: got %v, want ErrInvalidRange", err)
	}
}

func TestValidateAges(t *testing.T) {
	f := Filters{AgeMin: intPtr(12), AgeMax: intPtr(6)}
	if err := f.Validate(); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("min above max: got %v, want ErrInvalidRange", err)
	}
	f = Filters{AgeMin: intPtr(-1)}
	if err := f.Validate(); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("negative age: got %v, want ErrInvalidRange", err)
	}
}

func TestValidateDayOfWeek(t *testing.T) {
	for _, d := range []int{-1, 7} {
		f := Filters{DayOfWeekUTC: intPtr(d)}
		if err := f.Validate(); !errors.Is(err, ErrInvalidRange) {
			t.Fatalf("day %d: got %v, want ErrInvalidRange", d, err)
		}
	}
}

func TestValidateLimit(t *testing.T) {
	for _, l := range []int{-5, 51, 1000} {
		f := Filters{Limit: l}
		if err := f.Validate(); !errors.Is(err, ErrInvalidLimit) {
			t.Fatalf("limit %d: got %v, want ErrInvalidLimit", l, err)
		}
	}
	for _, l := range []int{0, 1, 50} {
		f := Filters{Limit: l}
		if err := f.Validate(); err != nil {
			t.Fatalf("limit %d rejected: %v", l, err)
		}
	}
}

func TestPageSize(t *testing.T) {
	if got := (Filters{}).PageSize(); got != DefaultLimit {
		t.Errorf("unset limit: got %d, want %d", got, DefaultLimit)
	}
	if got := (Filters{Limit: 25}).PageSize(); got != 25 {
		t.Errorf("limit 25: got %d", got)
	}
}
