package clock

import (
	"testing"
	"time"
)

func TestManualAdvance(t *testing.T) {
	start := time.Date(2024, 3, 1, 23, 0, 0, 0, time.UTC)
	m := NewManual(start)

	if got := m.Now(); !got.Equal(start) {
		t.Fatalf("expected %v, got %v", start, got)
	}
	next := m.Advance(2 * time.Hour)
	if next.Day() != 2 {
		t.Fatalf("expected rollover to day 2, got %v", next)
	}
	if got := m.Now(); !got.Equal(next) {
		t.Fatalf("Now after Advance = %v, want %v", got, next)
	}
}

func TestDayBefore(t *testing.T) {
	d1 := time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC)
	d2 := time.Date(2025, 1, 1, 0, 1, 0, 0, time.UTC)

	if !DayBefore(d1, d2) {
		t.Fatalf("expected %v before %v", d1, d2)
	}
	if DayBefore(d2, d1) {
		t.Fatalf("did not expect %v before %v", d2, d1)
	}
	if DayBefore(d1, d1.Add(time.Second)) {
		t.Fatalf("same calendar day must not count as before")
	}
}

func TestDayBeforeUsesReferenceLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	// 20:00 UTC on Jan 1 is already Jan 2 in Tokyo.
	a := time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC)
	b := time.Date(2024, 1, 2, 8, 0, 0, 0, tokyo)

	if DayBefore(a, b) {
		t.Fatalf("expected same calendar day in %s", tokyo)
	}
	if DayBefore(b, a.In(tokyo)) {
		t.Fatalf("expected no rollover between %v and %v", b, a)
	}
}

func TestSystemDefaultsToUTC(t *testing.T) {
	if loc := NewSystem(nil).Now().Location(); loc != time.UTC {
		t.Fatalf("expected UTC, got %v", loc)
	}
}

func TestManualKeepsLocation(t *testing.T) {
	brazzaville := time.FixedZone("WAT", 60*60)
	m := NewManual(time.Date(2024, 6, 1, 23, 30, 0, 0, brazzaville))

	next := m.Advance(time.Hour)
	if next.Location() != brazzaville {
		t.Fatalf("expected %s, got %s", brazzaville, next.Location())
	}
	if next.Day() != 2 {
		t.Fatalf("expected June 2 local, got %v", next)
	}
}
