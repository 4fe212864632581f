package appointment

import "time"

// WorkingHoursPolicy is firm-wide configuration, not user data. It
// defines the bookable day, the slot granularity, blackout weekdays,
// the minimum booking lead time and the pending-payment hold window.
type WorkingHoursPolicy struct {
	Timezone    string
	DayStart    string // "15:04"
	DayEnd      string // "15:04"
	SlotMinutes int
	Blackout    map[time.Weekday]bool
	MinLeadDays int
	HoldMinutes int
}

func DefaultPolicy() WorkingHoursPolicy {
	return WorkingHoursPolicy{
		Timezone:    "Asia/Kolkata",
		DayStart:    "09:00",
		DayEnd:      "17:00",
		SlotMinutes: 60,
		Blackout: map[time.Weekday]bool{
			time.Saturday: true,
			time.Sunday:   true,
		},
		MinLeadDays: 1,
		HoldMinutes: 30,
	}
}

func (p WorkingHoursPolicy) Location() *time.Location {
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (p WorkingHoursPolicy) SlotDuration() time.Duration {
	return time.Duration(p.SlotMinutes) * time.Minute
}

func (p WorkingHoursPolicy) HoldWindow() time.Duration {
	return time.Duration(p.HoldMinutes) * time.Minute
}

// HoldCutoff is the creation-time threshold below which a pending
// appointment no longer counts as booked.
func (p WorkingHoursPolicy) HoldCutoff(now time.Time) time.Time {
	return now.Add(-p.HoldWindow())
}

func (p WorkingHoursPolicy) IsBlackout(date time.Time) bool {
	return p.Blackout[date.Weekday()]
}

// DayWindow anchors the configured start/end clock times onto the given
// calendar day.
func (p WorkingHoursPolicy) DayWindow(date time.Time) (time.Time, time.Time) {
	loc := date.Location()

	parseHM := func(hm string) time.Time {
		t, _ := time.Parse("15:04", hm)
		return time.Date(
			date.Year(), date.Month(), date.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		)
	}

	return parseHM(p.DayStart), parseHM(p.DayEnd)
}

// MinStart is the earliest bookable instant: midnight of today plus the
// lead-time days. With the default of one day, bookings open tomorrow.
func (p WorkingHoursPolicy) MinStart(now time.Time) time.Time {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return midnight.AddDate(0, 0, p.MinLeadDays)
}
