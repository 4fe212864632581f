package appointment

import (
	"testing"
	"time"

	"github.com/veritalaw/consult-scheduler/internal/httperr"
	"github.com/veritalaw/consult-scheduler/internal/models"
)

func TestConfirmSetsPaidAndMeetingLink(t *testing.T) {
	ap := &models.Appointment{
		ID:            7,
		Status:        string(StatusPending),
		PaymentStatus: string(PaymentAwaiting),
	}

	now := time.Date(2026, 2, 10, 10, 0, 0, 0, time.UTC)
	if err := Confirm(ap, "pay_123", now); err != nil {
		t.Fatalf("Confirm returned error: %v", err)
	}

	if ap.Status != string(StatusConfirmed) {
		t.Fatalf("status = %s, want confirmed", ap.Status)
	}
	if ap.PaymentStatus != string(PaymentPaid) {
		t.Fatalf("payment status = %s, want paid", ap.PaymentStatus)
	}
	if ap.RazorpayPaymentID != "pay_123" {
		t.Fatalf("payment id = %s, want pay_123", ap.RazorpayPaymentID)
	}
	if ap.MeetingLink != MeetingLink(7) {
		t.Fatalf("meeting link = %s, want %s", ap.MeetingLink, MeetingLink(7))
	}
}

func TestConfirmRejectsNonPending(t *testing.T) {
	for _, status := range []Status{StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow} {
		ap := &models.Appointment{
			Status:        string(status),
			PaymentStatus: string(PaymentPaid),
		}
		err := Confirm(ap, "pay_123", time.Now())
		if !httperr.IsBusiness(err, "invalid_state") {
			t.Fatalf("Confirm(%s) error = %v, want invalid_state", status, err)
		}
	}
}

func TestCancelPendingMarksPaymentFailed(t *testing.T) {
	ap := &models.Appointment{
		Status:        string(StatusPending),
		PaymentStatus: string(PaymentAwaiting),
	}

	now := time.Date(2026, 2, 10, 10, 0, 0, 0, time.UTC)
	if err := Cancel(ap, "client request", now); err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}

	if ap.Status != string(StatusCancelled) {
		t.Fatalf("status = %s, want cancelled", ap.Status)
	}
	if ap.PaymentStatus != string(PaymentFailed) {
		t.Fatalf("payment status = %s, want failed", ap.PaymentStatus)
	}
	if ap.CancelReason != "client request" {
		t.Fatalf("cancel reason = %q", ap.CancelReason)
	}
	if ap.CancelledAt == nil || !ap.CancelledAt.Equal(now) {
		t.Fatalf("cancelled at = %v, want %v", ap.CancelledAt, now)
	}
}

func TestCancelConfirmedKeepsPaymentStatus(t *testing.T) {
	ap := &models.Appointment{
		Status:        string(StatusConfirmed),
		PaymentStatus: string(PaymentPaid),
	}

	if err := Cancel(ap, "", time.Now()); err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}
	if ap.PaymentStatus != string(PaymentPaid) {
		t.Fatalf("payment status = %s, want paid (refunds are a separate concern)", ap.PaymentStatus)
	}
}

func TestCancelRejectsTerminalStates(t *testing.T) {
	for _, status := range []Status{StatusCompleted, StatusCancelled, StatusNoShow} {
		ap := &models.Appointment{Status: string(status)}
		err := Cancel(ap, "", time.Now())
		if !httperr.IsBusiness(err, "invalid_state") {
			t.Fatalf("Cancel(%s) error = %v, want invalid_state", status, err)
		}
	}
}

func TestCompleteOnlyFromConfirmed(t *testing.T) {
	now := time.Date(2026, 2, 10, 18, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusConfirmed)}
	if err := Complete(ap, now); err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if ap.Status != string(StatusCompleted) || ap.CompletedAt == nil {
		t.Fatalf("completed transition not applied: %+v", ap)
	}

	pending := &models.Appointment{Status: string(StatusPending)}
	if err := Complete(pending, now); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("Complete(pending) error = %v, want invalid_state", err)
	}
}

func TestMarkNoShowOnlyFromConfirmed(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusConfirmed)}
	if err := MarkNoShow(ap, time.Now()); err != nil {
		t.Fatalf("MarkNoShow returned error: %v", err)
	}
	if ap.Status != string(StatusNoShow) {
		t.Fatalf("status = %s, want no-show", ap.Status)
	}

	done := &models.Appointment{Status: string(StatusCompleted)}
	if err := MarkNoShow(done, time.Now()); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("MarkNoShow(completed) error = %v, want invalid_state", err)
	}
}

func TestConfirmBypassed(t *testing.T) {
	ap := &models.Appointment{
		Status:        string(StatusPending),
		PaymentStatus: string(PaymentAwaiting),
	}

	ConfirmBypassed(ap)

	if ap.Status != string(StatusConfirmed) {
		t.Fatalf("status = %s, want confirmed", ap.Status)
	}
	if ap.PaymentStatus != string(PaymentBypassed) {
		t.Fatalf("payment status = %s, want bypassed", ap.PaymentStatus)
	}
}
