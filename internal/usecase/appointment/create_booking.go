package appointment

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/veritalaw/consult-scheduler/internal/audit"
	domain "github.com/veritalaw/consult-scheduler/internal/domain/appointment"
	"github.com/veritalaw/consult-scheduler/internal/httperr"
	"github.com/veritalaw/consult-scheduler/internal/models"
	"github.com/veritalaw/consult-scheduler/internal/notify"
	"github.com/veritalaw/consult-scheduler/internal/payment"
	ucrate "github.com/veritalaw/consult-scheduler/internal/usecase/rate"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CreateBookingInput struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	Date          string // YYYY-MM-DD
	Time          string // HH:mm
	DurationHours int
	Notes         string

	// BypassPayment confirms without a gateway order. Only the staff
	// handler sets it, and only for admins.
	BypassPayment bool
	ActorID       *uint
}

type BookingResult struct {
	Appointment  *models.Appointment `json:"appointment"`
	PaymentOrder *payment.Order      `json:"payment_order,omitempty"`
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo    domain.Repository
	rates   *ucrate.GetCurrentRate
	gateway payment.Gateway
	pol     domain.WorkingHoursPolicy
	audit   *audit.Dispatcher
	notify  *notify.Dispatcher
	now     func() time.Time
}

func NewCreateBooking(
	repo domain.Repository,
	rates *ucrate.GetCurrentRate,
	gateway payment.Gateway,
	pol domain.WorkingHoursPolicy,
	audit *audit.Dispatcher,
	notify *notify.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:    repo,
		rates:   rates,
		gateway: gateway,
		pol:     pol,
		audit:   audit,
		notify:  notify,
		now:     time.Now,
	}
}

// validateSlotRange checks that [start, start+duration slots) lies on
// the slot grid and fully inside the working day. A duration-N request
// is valid iff the whole contiguous range fits; any slot outside the
// window rejects the request.
func validateSlotRange(
	pol domain.WorkingHoursPolicy,
	start time.Time,
	durationHours int,
) (time.Time, error) {

	if durationHours < 1 {
		return time.Time{}, httperr.ErrBusiness("invalid_duration")
	}

	if pol.IsBlackout(start) {
		return time.Time{}, httperr.ErrBusiness("blackout_day")
	}

	dayStart, dayEnd := pol.DayWindow(start)
	end := start.Add(time.Duration(durationHours) * pol.SlotDuration())

	if start.Before(dayStart) || end.After(dayEnd) {
		return time.Time{}, httperr.ErrBusiness("outside_working_hours")
	}

	if start.Sub(dayStart)%pol.SlotDuration() != 0 {
		return time.Time{}, httperr.ErrBusiness("invalid_start_time")
	}

	return end, nil
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*BookingResult, error) {

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
	if start.Before(uc.pol.MinStart(now)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	end, err := validateSlotRange(uc.pol, start, in.DurationHours)
	if err != nil {
		return nil, err
	}

	// Price is frozen at creation time; later rate changes never touch
	// this appointment.
	rate, err := uc.rates.Execute(ctx, now)
	if err != nil {
		return nil, err
	}
	total := rate.RatePaise * int64(in.DurationHours) * int64(uc.pol.SlotMinutes) / 60

	ap := &models.Appointment{
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		CustomerPhone: in.CustomerPhone,
		StartTime:     start,
		EndTime:       end,
		DurationHours: in.DurationHours,
		AmountPaise:   total,
		Currency:      rate.Currency,
		Status:        string(domain.InitialStatus()),
		PaymentStatus: string(domain.PaymentAwaiting),
		Notes:         in.Notes,
	}

	if in.BypassPayment {
		return uc.createBypassed(ctx, ap, now, in.ActorID)
	}

	// Availability is re-checked inside the exclusive insert; an
	// earlier availability query is never trusted.
	if err := uc.repo.CreateExclusive(ctx, ap, uc.pol.HoldCutoff(now)); err != nil {
		return nil, err
	}

	receipt := uuid.NewString()
	order, err := uc.gateway.CreateOrder(ctx, total, rate.Currency, receipt)
	if err != nil {
		// release the hold so the caller can retry cleanly; if the
		// delete fails too, the reaper reclaims the slot later
		if derr := uc.repo.DeleteAppointment(ctx, ap.ID); derr != nil {
			log.Println("failed to release hold after gateway error:", derr)
		}
		return nil, httperr.ErrBusiness("gateway_unavailable")
	}

	ap.RazorpayOrderID = order.ID
	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.ActorID,
		Action:   "booking_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"order_id": order.ID, "amount_paise": total},
	})

	return &BookingResult{
		Appointment:  ap,
		PaymentOrder: order,
	}, nil
}

func (uc *CreateBooking) createBypassed(
	ctx context.Context,
	ap *models.Appointment,
	now time.Time,
	actorID *uint,
) (*BookingResult, error) {

	domain.ConfirmBypassed(ap)

	if err := uc.repo.CreateExclusive(ctx, ap, uc.pol.HoldCutoff(now)); err != nil {
		return nil, err
	}

	ap.MeetingLink = domain.MeetingLink(ap.ID)
	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "booking_created_bypassed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	subject, body := notify.ConfirmationEmail(ap)
	uc.notify.Dispatch(notify.Message{To: ap.CustomerEmail, Subject: subject, Body: body})

	return &BookingResult{Appointment: ap}, nil
}
