package search

import "testing"

func TestValidateEntryWindow(t *testing.T) {
	if err := ValidateEntryWindow(nil, nil); err != nil {
		t.Errorf("nil bounds: %v", err)
	}
	if err := ValidateEntryWindow(intPtr(540), nil); err != nil {
		t.Errorf("nil end: %v", err)
	}
	if err := ValidateEntryWindow(intPtr(540), intPtr(600)); err != nil {
		t.Errorf("plain window: %v", err)
	}
	// Wrapping is allowed: 22:00-02:00.
	if err := ValidateEntryWindow(intPtr(1320), intPtr(120)); err != nil {
		t.Errorf("wrapped window: %v", err)
	}
	if err := ValidateEntryWindow(intPtr(540), intPtr(540)); err == nil {
		t.Error("equal bounds accepted")
	}
	if err := ValidateEntryWindow(intPtr(-1), intPtr(120)); err == nil {
		t.Error("negative minute accepted")
	}
	if err := ValidateEntryWindow(intPtr(0), intPtr(1440)); err == nil {
		t.Error("minute 1440 accepted")
	}
}

func TestIsOvernightWrap(t *testing.T) {
	if !IsOvernightWrap(1320, 120) {
		t.Error("1320-120 should wrap")
	}
	if IsOvernightWrap(540, 600) {
		t.Error("540-600 should not wrap")
	}
}

// A 22:00-02:00 UTC entry must be found by a 00:00-01:00 search and missed by a
// 10:00-11:00 one.
func TestWindowOverlapsWrappedEntry(t *testing.T) {
	start, end := intPtr(1320), intPtr(120)
	if !WindowOverlaps(start, end, 0, 60) {
		t.Error("early-morning search missed the wrapped entry")
	}
	if !WindowOverlaps(start, end, 1380, 1440) {
		t.Error("late-evening search missed the wrapped entry")
	}
	if WindowOverlaps(start, end, 600, 660) {
		t.Error("midday search matched the wrapped entry")
	}
}

func TestWindowOverlapsPlainEntry(t *testing.T) {
	start, end := intPtr(540), intPtr(660)
	if !WindowOverlaps(start, end, 600, 720) {
		t.Error("overlapping request missed")
	}
	if WindowOverlaps(start, end, 660, 720) {
		t.Error("half-open windows must not match at the shared edge")
	}
	if WindowOverlaps(start, end, 0, 540) {
		t.Error("request ending at the entry start must not match")
	}
	if !WindowOverlaps(nil, end, 0, 1) {
		t.Error("nil entry bound must match any request")
	}
}
