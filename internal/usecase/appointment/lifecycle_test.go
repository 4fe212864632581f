package appointment

import (
	"context"
	"testing"
	"time"

	domain "github.com/veritalaw/consult-scheduler/internal/domain/appointment"
	"github.com/veritalaw/consult-scheduler/internal/httperr"
)

func TestCancelConfirmedAppointment(t *testing.T) {
	repo := newFakeRepo(testNow)
	ap := seedConfirmed(repo,
		time.Date(2026, 2, 10, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 10, 11, 0, 0, 0, time.UTC),
	)
	uc := NewCancelAppointment(repo, testPolicy(), nil, nil)

	got, err := uc.Execute(context.Background(), ap.ID, "client asked to drop the matter", 1)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if got.Status != string(domain.StatusCancelled) {
		t.Fatalf("status = %s, want cancelled", got.Status)
	}
	if got.CancelReason == "" || got.CancelledAt == nil {
		t.Fatalf("cancellation metadata missing: %+v", got)
	}

	// the freed slot no longer blocks new bookings
	booking := newBookingUC(repo, paiseRate(200000), &fakeGateway{})
	in := baseInput()
	in.Time = "10:00"
	in.DurationHours = 1
	if _, err := booking.Execute(context.Background(), in); err != nil {
		t.Fatalf("slot still blocked after cancellation: %v", err)
	}
}

func TestCompleteAndNoShow(t *testing.T) {
	repo := newFakeRepo(testNow)
	first := seedConfirmed(repo,
		time.Date(2026, 2, 10, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 10, 11, 0, 0, 0, time.UTC),
	)
	second := seedConfirmed(repo,
		time.Date(2026, 2, 10, 14, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 10, 15, 0, 0, 0, time.UTC),
	)

	completeUC := NewCompleteAppointment(repo, testPolicy(), nil)
	got, err := completeUC.Execute(context.Background(), first.ID, 1)
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if got.Status != string(domain.StatusCompleted) {
		t.Fatalf("status = %s, want completed", got.Status)
	}

	noShowUC := NewMarkNoShow(repo, testPolicy(), nil)
	got, err = noShowUC.Execute(context.Background(), second.ID, 1)
	if err != nil {
		t.Fatalf("no-show failed: %v", err)
	}
	if got.Status != string(domain.StatusNoShow) {
		t.Fatalf("status = %s, want no-show", got.Status)
	}

	// both are terminal
	if _, err := completeUC.Execute(context.Background(), first.ID, 1); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("completing twice: error = %v, want invalid_state", err)
	}
	if _, err := noShowUC.Execute(context.Background(), second.ID, 1); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("no-show twice: error = %v, want invalid_state", err)
	}
}
