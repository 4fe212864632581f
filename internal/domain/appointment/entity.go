package appointment

import (
	"fmt"
	"time"

	"github.com/veritalaw/consult-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Confirm records a verified payment exactly once. The payment id is
// frozen on first confirmation so gateway retries cannot double-count.
func Confirm(ap *models.Appointment, paymentID string, now time.Time) error {
	if err := CanConfirm(Status(ap.Status), PaymentStatus(ap.PaymentStatus)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	ap.PaymentStatus = string(PaymentPaid)
	ap.RazorpayPaymentID = paymentID
	if ap.MeetingLink == "" {
		ap.MeetingLink = MeetingLink(ap.ID)
	}
	return nil
}

// ConfirmBypassed skips the payment step entirely. Callers must gate
// this behind an elevated-privilege check.
func ConfirmBypassed(ap *models.Appointment) {
	ap.Status = string(StatusConfirmed)
	ap.PaymentStatus = string(PaymentBypassed)
}

func MeetingLink(id uint) string {
	return fmt.Sprintf("https://meet.veritalaw.in/consult-%d", id)
}

func Cancel(ap *models.Appointment, reason string, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelReason = reason
	ap.CancelledAt = &now
	if ap.PaymentStatus == string(PaymentAwaiting) {
		ap.PaymentStatus = string(PaymentFailed)
	}
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

func MarkNoShow(ap *models.Appointment, now time.Time) error {
	if err := CanMarkNoShow(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusNoShow)
	return nil
}
