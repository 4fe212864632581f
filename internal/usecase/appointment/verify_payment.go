package appointment

import (
	"context"
	"time"

	"github.com/veritalaw/consult-scheduler/internal/audit"
	domain "github.com/veritalaw/consult-scheduler/internal/domain/appointment"
	"github.com/veritalaw/consult-scheduler/internal/httperr"
	"github.com/veritalaw/consult-scheduler/internal/models"
	"github.com/veritalaw/consult-scheduler/internal/notify"
	"github.com/veritalaw/consult-scheduler/internal/payment"
)

type VerifyPaymentInput struct {
	AppointmentID uint
	OrderID       string
	PaymentID     string
	Signature     string
}

// VerifyPayment finalizes a booking from a client-submitted gateway
// confirmation. The signature is recomputed server-side; replaying a
// valid confirmation against an already-confirmed appointment is a
// successful no-op, never a second charge.
type VerifyPayment struct {
	repo    domain.Repository
	gateway payment.Gateway
	audit   *audit.Dispatcher
	notify  *notify.Dispatcher
	now     func() time.Time
}

func NewVerifyPayment(
	repo domain.Repository,
	gateway payment.Gateway,
	audit *audit.Dispatcher,
	notify *notify.Dispatcher,
) *VerifyPayment {
	return &VerifyPayment{
		repo:    repo,
		gateway: gateway,
		audit:   audit,
		notify:  notify,
		now:     time.Now,
	}
}

func (uc *VerifyPayment) Execute(
	ctx context.Context,
	in VerifyPaymentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if ap.RazorpayOrderID == "" || ap.RazorpayOrderID != in.OrderID {
		return nil, httperr.ErrBusiness("payment_verification_failed")
	}

	if !uc.gateway.VerifySignature(in.OrderID, in.PaymentID, in.Signature) {
		// a bad signature never moves the appointment
		return nil, httperr.ErrBusiness("payment_verification_failed")
	}

	// idempotent replay of the confirmation we already processed
	if ap.Status == string(domain.StatusConfirmed) &&
		ap.PaymentStatus == string(domain.PaymentPaid) &&
		ap.RazorpayPaymentID == in.PaymentID {
		return ap, nil
	}

	now := uc.now()
	if err := domain.Confirm(ap, in.PaymentID, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "payment_confirmed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"payment_id": in.PaymentID, "order_id": in.OrderID},
	})

	subject, body := notify.ConfirmationEmail(ap)
	uc.notify.Dispatch(notify.Message{To: ap.CustomerEmail, Subject: subject, Body: body})

	return ap, nil
}
