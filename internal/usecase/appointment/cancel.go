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

type CancelAppointment struct {
	repo   domain.Repository
	pol    domain.WorkingHoursPolicy
	audit  *audit.Dispatcher
	notify *notify.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	pol domain.WorkingHoursPolicy,
	audit *audit.Dispatcher,
	notify *notify.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:   repo,
		pol:    pol,
		audit:  audit,
		notify: notify,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	reason string,
	actorID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := time.Now().In(uc.pol.Location())
	if err := domain.Cancel(ap, reason, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"reason": reason},
	})

	subject, body := notify.CancellationEmail(ap)
	uc.notify.Dispatch(notify.Message{To: ap.CustomerEmail, Subject: subject, Body: body})

	return ap, nil
}
