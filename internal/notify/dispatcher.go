package notify

import "log"

type Message struct {
	To      string
	Subject string
	Body    string
}

// Dispatcher sends mail off the request path. Delivery is best-effort:
// failures are logged, never surfaced to the booking flow.
type Dispatcher struct {
	mailer *Mailer
	queue  chan Message
}

func NewDispatcher(mailer *Mailer) *Dispatcher {
	d := &Dispatcher{
		mailer: mailer,
		queue:  make(chan Message, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for msg := range d.queue {
		if !d.mailer.Configured() {
			continue
		}
		if err := d.mailer.Send(msg.To, msg.Subject, msg.Body); err != nil {
			log.Println("notify error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(msg Message) {
	if d == nil {
		return
	}
	select {
	case d.queue <- msg:
	default:
		log.Println("notify queue full, dropping message")
	}
}
