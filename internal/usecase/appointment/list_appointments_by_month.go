package appointment

import (
	"context"
	"time"

	domain "github.com/veritalaw/consult-scheduler/internal/domain/appointment"
	"github.com/veritalaw/consult-scheduler/internal/models"
)

type ListAppointmentsByMonth struct {
	repo domain.Repository
	pol  domain.WorkingHoursPolicy
}

func NewListAppointmentsByMonth(
	repo domain.Repository,
	pol domain.WorkingHoursPolicy,
) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{
		repo: repo,
		pol:  pol,
	}
}

func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	year int,
	month int,
) ([]models.Appointment, error) {

	loc := uc.pol.Location()
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	return uc.repo.ListAppointmentsForPeriod(ctx, start, end)
}
