package appointment

import (
	"context"
	"errors"
	"sort"
	"time"

	domain "github.com/veritalaw/consult-scheduler/internal/domain/appointment"
	"github.com/veritalaw/consult-scheduler/internal/httperr"
	"github.com/veritalaw/consult-scheduler/internal/models"
	"github.com/veritalaw/consult-scheduler/internal/payment"
)

// fakeRepo is an in-memory Repository with the same exclusion rule as
// the Postgres implementation: overlapping with a confirmed row, or a
// pending row created after the hold cutoff, is a conflict.
type fakeRepo struct {
	appointments map[uint]*models.Appointment
	nextID       uint
	clock        time.Time

	deleted    []uint
	failDelete bool
	lastFilter domain.ListFilter
	listResult []models.Appointment
	listTotal  int64
}

func newFakeRepo(clock time.Time) *fakeRepo {
	return &fakeRepo{
		appointments: map[uint]*models.Appointment{},
		nextID:       1,
		clock:        clock,
	}
}

func (r *fakeRepo) seed(ap models.Appointment) *models.Appointment {
	if ap.ID == 0 {
		ap.ID = r.nextID
		r.nextID++
	} else if ap.ID >= r.nextID {
		r.nextID = ap.ID + 1
	}
	if ap.CreatedAt.IsZero() {
		ap.CreatedAt = r.clock
	}
	stored := ap
	r.appointments[stored.ID] = &stored
	return &stored
}

func (r *fakeRepo) overlaps(start, end time.Time, holdCutoff time.Time, excludeID uint) bool {
	for _, other := range r.appointments {
		if other.ID == excludeID {
			continue
		}
		booked := other.Status == string(domain.StatusConfirmed) ||
			(other.Status == string(domain.StatusPending) && other.CreatedAt.After(holdCutoff))
		if !booked {
			continue
		}
		if start.Before(other.EndTime) && end.After(other.StartTime) {
			return true
		}
	}
	return false
}

func (r *fakeRepo) CreateExclusive(ctx context.Context, ap *models.Appointment, holdCutoff time.Time) error {
	if r.overlaps(ap.StartTime, ap.EndTime, holdCutoff, 0) {
		return httperr.ErrBusiness("time_conflict")
	}
	ap.ID = r.nextID
	r.nextID++
	ap.CreatedAt = r.clock
	r.appointments[ap.ID] = ap
	return nil
}

func (r *fakeRepo) RescheduleExclusive(ctx context.Context, ap *models.Appointment, start, end time.Time, holdCutoff time.Time) error {
	if r.overlaps(start, end, holdCutoff, ap.ID) {
		return httperr.ErrBusiness("time_conflict")
	}
	ap.StartTime = start
	ap.EndTime = end
	r.appointments[ap.ID] = ap
	return nil
}

func (r *fakeRepo) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	return ap, nil
}

func (r *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	r.appointments[ap.ID] = ap
	return nil
}

func (r *fakeRepo) DeleteAppointment(ctx context.Context, id uint) error {
	if r.failDelete {
		return errors.New("delete failed")
	}
	delete(r.appointments, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeRepo) ListActiveForDay(ctx context.Context, dayStart, dayEnd, holdCutoff time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		booked := ap.Status == string(domain.StatusConfirmed) ||
			(ap.Status == string(domain.StatusPending) && ap.CreatedAt.After(holdCutoff))
		if !booked {
			continue
		}
		if ap.StartTime.Before(dayEnd) && ap.EndTime.After(dayStart) {
			out = append(out, *ap)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (r *fakeRepo) ListAppointments(ctx context.Context, f domain.ListFilter) ([]models.Appointment, int64, error) {
	r.lastFilter = f
	return r.listResult, r.listTotal, nil
}

func (r *fakeRepo) ListAppointmentsForPeriod(ctx context.Context, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.StartTime.Before(end) && ap.EndTime.After(start) {
			out = append(out, *ap)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// fakeRateRepo serves a single mutable rate version.
type fakeRateRepo struct {
	rate    *models.HourlyRate
	created []models.HourlyRate
}

func (r *fakeRateRepo) CreateRate(ctx context.Context, rate *models.HourlyRate) error {
	rate.ID = uint(len(r.created) + 1)
	r.created = append(r.created, *rate)
	r.rate = rate
	return nil
}

func (r *fakeRateRepo) CurrentRate(ctx context.Context, now time.Time) (*models.HourlyRate, error) {
	if r.rate == nil {
		return nil, httperr.ErrBusiness("rate_not_configured")
	}
	return r.rate, nil
}

// fakeGateway accepts one well-known signature and mints sequential
// order ids.
type fakeGateway struct {
	failCreate bool
	orders     int
	lastOrder  *payment.Order
}

func (g *fakeGateway) CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string) (*payment.Order, error) {
	if g.failCreate {
		return nil, context.DeadlineExceeded
	}
	g.orders++
	g.lastOrder = &payment.Order{
		ID:          "order_test_" + receipt,
		AmountPaise: amountPaise,
		Currency:    currency,
		Receipt:     receipt,
		KeyID:       "rzp_test_key",
	}
	return g.lastOrder, nil
}

func (g *fakeGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return signature == "valid-sig"
}

func (g *fakeGateway) KeyID() string { return "rzp_test_key" }

var _ payment.Gateway = (*fakeGateway)(nil)
