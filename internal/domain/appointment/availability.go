package appointment

import "time"

type AvailabilityInput struct {
	Date time.Time
}

type TimeSlot struct {
	Start     string `json:"start_time"`
	End       string `json:"end_time"`
	Available bool   `json:"available"`
}
