package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/veritalaw/consult-scheduler/internal/models"
)

func TestConfiguredNilSafe(t *testing.T) {
	var m *Mailer
	if m.Configured() {
		t.Fatalf("nil mailer reports configured")
	}
	if NewMailer("", 0, "", "", "").Configured() {
		t.Fatalf("mailer without host reports configured")
	}
	if !NewMailer("smtp.example.com", 587, "u", "p", "noreply@example.com").Configured() {
		t.Fatalf("mailer with host reports unconfigured")
	}
}

func TestConfirmationEmailContent(t *testing.T) {
	ap := &models.Appointment{
		CustomerName: "Asha Rao",
		StartTime:    time.Date(2026, 2, 10, 10, 0, 0, 0, time.UTC),
		EndTime:      time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC),
		MeetingLink:  "https://meet.veritalaw.in/consult-7",
	}

	subject, body := ConfirmationEmail(ap)
	if subject == "" {
		t.Fatalf("empty subject")
	}
	for _, want := range []string{"Asha Rao", "Tue, 10 Feb 2026 10:00", "https://meet.veritalaw.in/consult-7"} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q:\n%s", want, body)
		}
	}
}

func TestCancellationEmailCarriesReason(t *testing.T) {
	ap := &models.Appointment{
		CustomerName: "Asha Rao",
		StartTime:    time.Date(2026, 2, 10, 10, 0, 0, 0, time.UTC),
		CancelReason: "payment not completed in time",
	}

	_, body := CancellationEmail(ap)
	if !strings.Contains(body, "payment not completed in time") {
		t.Fatalf("body missing cancel reason:\n%s", body)
	}
}
