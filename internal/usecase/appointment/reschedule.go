package appointment

import (
	"context"
	"time"

	"github.com/veritalaw/consult-scheduler/internal/audit"
	domain "github.com/veritalaw/consult-scheduler/internal/domain/appointment"
	"github.com/veritalaw/consult-scheduler/internal/httperr"
	"github.com/veritalaw/consult-scheduler/internal/models"
	"github.com/veritalaw/consult-scheduler/internal/notify"
)

type RescheduleInput struct {
	AppointmentID uint
	Date          string // YYYY-MM-DD
	Time          string // HH:mm
	ActorID       uint
}

// RescheduleAppointment moves a confirmed appointment to a new slot
// range of the same duration. Validation runs against the target range
// excluding the appointment itself; on conflict nothing changes.
type RescheduleAppointment struct {
	repo   domain.Repository
	pol    domain.WorkingHoursPolicy
	audit  *audit.Dispatcher
	notify *notify.Dispatcher
	now    func() time.Time
}

func NewRescheduleAppointment(
	repo domain.Repository,
	pol domain.WorkingHoursPolicy,
	audit *audit.Dispatcher,
	notify *notify.Dispatcher,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:   repo,
		pol:    pol,
		audit:  audit,
		notify: notify,
		now:    time.Now,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.CanReschedule(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	loc := uc.pol.Location()
	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	now := uc.now().In(loc)
	if start.Before(now) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	end, err := validateSlotRange(uc.pol, start, ap.DurationHours)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.RescheduleExclusive(ctx, ap, start, end, uc.pol.HoldCutoff(now)); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"start": start, "end": end},
	})

	subject, body := notify.RescheduleEmail(ap)
	uc.notify.Dispatch(notify.Message{To: ap.CustomerEmail, Subject: subject, Body: body})

	return ap, nil
}
