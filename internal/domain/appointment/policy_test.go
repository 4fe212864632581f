package appointment

import (
	"testing"
	"time"
)

func utcPolicy() WorkingHoursPolicy {
	pol := DefaultPolicy()
	pol.Timezone = "UTC"
	return pol
}

func TestDayWindowAnchorsClockTimes(t *testing.T) {
	pol := utcPolicy()
	date := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	start, end := pol.DayWindow(date)

	wantStart := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2026, 2, 10, 17, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) || !end.Equal(wantEnd) {
		t.Fatalf("DayWindow = [%v, %v], want [%v, %v]", start, end, wantStart, wantEnd)
	}
}

func TestMinStartAddsLeadDays(t *testing.T) {
	pol := utcPolicy()

	now := time.Date(2026, 2, 2, 15, 45, 0, 0, time.UTC)
	got := pol.MinStart(now)
	want := time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("MinStart = %v, want %v", got, want)
	}

	pol.MinLeadDays = 3
	got = pol.MinStart(now)
	want = time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("MinStart with 3 lead days = %v, want %v", got, want)
	}
}

func TestBlackoutWeekends(t *testing.T) {
	pol := utcPolicy()

	saturday := time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)
	tuesday := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	if !pol.IsBlackout(saturday) {
		t.Fatalf("expected saturday to be blacked out")
	}
	if pol.IsBlackout(tuesday) {
		t.Fatalf("expected tuesday to be bookable")
	}
}

func TestHoldCutoff(t *testing.T) {
	pol := utcPolicy()

	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	got := pol.HoldCutoff(now)
	want := time.Date(2026, 2, 10, 11, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("HoldCutoff = %v, want %v", got, want)
	}
}
