package appointment

import (
	"context"
	"time"

	domain "github.com/veritalaw/consult-scheduler/internal/domain/appointment"
)

type GetAvailability struct {
	repo domain.Repository
	pol  domain.WorkingHoursPolicy
	now  func() time.Time
}

func NewGetAvailability(
	repo domain.Repository,
	pol domain.WorkingHoursPolicy,
) *GetAvailability {
	return &GetAvailability{
		repo: repo,
		pol:  pol,
		now:  time.Now,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	now := uc.now().In(in.Date.Location())

	// past dates and dates inside the lead window have no bookable
	// slots; blackout days likewise
	if in.Date.Before(uc.pol.MinStart(now)) || uc.pol.IsBlackout(in.Date) {
		return []domain.TimeSlot{}, nil
	}

	dayStart, dayEnd := uc.pol.DayWindow(in.Date)

	appointments, err := uc.repo.ListActiveForDay(
		ctx,
		dayStart,
		dayEnd,
		uc.pol.HoldCutoff(now),
	)
	if err != nil {
		return nil, err
	}

	slotDuration := uc.pol.SlotDuration()
	slots := make([]domain.TimeSlot, 0)

	apIdx := 0

	for cur := dayStart; cur.Add(slotDuration).Before(dayEnd) || cur.Add(slotDuration).Equal(dayEnd); cur = cur.Add(slotDuration) {

		slotStart := cur
		slotEnd := cur.Add(slotDuration)

		// skip appointments that end at or before this slot
		for apIdx < len(appointments) && !appointments[apIdx].EndTime.After(slotStart) {
			apIdx++
		}

		conflict := false
		if apIdx < len(appointments) {
			ap := appointments[apIdx]
			if slotStart.Before(ap.EndTime) && slotEnd.After(ap.StartTime) {
				conflict = true
			}
		}

		slots = append(slots, domain.TimeSlot{
			Start:     slotStart.Format("15:04"),
			End:       slotEnd.Format("15:04"),
			Available: !conflict,
		})
	}

	return slots, nil
}
