package notify

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/veritalaw/consult-scheduler/internal/models"
)

type Mailer struct {
	host string
	port int
	user string
	pass string
	from string
}

func NewMailer(host string, port int, user, pass, from string) *Mailer {
	return &Mailer{
		host: host,
		port: port,
		user: user,
		pass: pass,
		from: from,
	}
}

func (m *Mailer) Configured() bool {
	return m != nil && m.host != ""
}

func (m *Mailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	d := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	return d.DialAndSend(msg)
}

// ------------------------------
// Templates
// ------------------------------

const timeLayout = "Mon, 02 Jan 2006 15:04"

func ConfirmationEmail(ap *models.Appointment) (string, string) {
	subject := "Your consultation is confirmed"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your consultation is confirmed.</p>
		<ul>
			<li><strong>Start:</strong> %s</li>
			<li><strong>End:</strong> %s</li>
			<li><strong>Meeting link:</strong> %s</li>
		</ul>
		<p>Veritalaw Associates</p>
	`, ap.CustomerName,
		ap.StartTime.Format(timeLayout),
		ap.EndTime.Format(timeLayout),
		ap.MeetingLink)
	return subject, body
}

func CancellationEmail(ap *models.Appointment) (string, string) {
	subject := "Your consultation has been cancelled"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your consultation scheduled for %s has been cancelled.</p>
		<p>Reason: %s</p>
		<p>Veritalaw Associates</p>
	`, ap.CustomerName,
		ap.StartTime.Format(timeLayout),
		ap.CancelReason)
	return subject, body
}

func RescheduleEmail(ap *models.Appointment) (string, string) {
	subject := "Your consultation has been rescheduled"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your consultation now runs from %s to %s.</p>
		<p>Veritalaw Associates</p>
	`, ap.CustomerName,
		ap.StartTime.Format(timeLayout),
		ap.EndTime.Format(timeLayout))
	return subject, body
}
