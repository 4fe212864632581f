package appointment

import (
	"context"
	"time"

	"github.com/veritalaw/consult-scheduler/internal/models"
)

type ListFilter struct {
	Status string
	From   *time.Time
	To     *time.Time
	Page   int
	Limit  int
}

type Repository interface {
	// -------- Appointment (create / conflict) --------

	// CreateExclusive inserts the appointment only if its [start,end)
	// range does not overlap any confirmed appointment or any pending
	// appointment created after holdCutoff. The loser of a race gets
	// ErrBusiness("time_conflict").
	CreateExclusive(
		ctx context.Context,
		ap *models.Appointment,
		holdCutoff time.Time,
	) error

	// RescheduleExclusive moves ap to [start,end) under the same
	// exclusion rules, ignoring ap's own current range. On conflict
	// nothing is mutated.
	RescheduleExclusive(
		ctx context.Context,
		ap *models.Appointment,
		start time.Time,
		end time.Time,
		holdCutoff time.Time,
	) error

	// -------- Appointment (lookup / state change) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	// -------- Availability --------

	// ListActiveForDay returns confirmed plus non-expired pending
	// appointments overlapping [dayStart, dayEnd), ordered by start.
	ListActiveForDay(
		ctx context.Context,
		dayStart time.Time,
		dayEnd time.Time,
		holdCutoff time.Time,
	) ([]models.Appointment, error)

	// -------- Listing --------
	ListAppointments(
		ctx context.Context,
		f ListFilter,
	) ([]models.Appointment, int64, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
