package appointment

import (
	"context"

	domain "github.com/veritalaw/consult-scheduler/internal/domain/appointment"
	"github.com/veritalaw/consult-scheduler/internal/dto"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	f domain.ListFilter,
) ([]dto.AppointmentListDTO, int64, error) {

	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = defaultPageSize
	}
	if f.Limit > maxPageSize {
		f.Limit = maxPageSize
	}

	appointments, total, err := uc.repo.ListAppointments(ctx, f)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:            ap.ID,
			CustomerName:  ap.CustomerName,
			CustomerEmail: ap.CustomerEmail,
			StartTime:     ap.StartTime,
			EndTime:       ap.EndTime,
			DurationHours: ap.DurationHours,
			AmountPaise:   ap.AmountPaise,
			Currency:      ap.Currency,
			Status:        ap.Status,
			PaymentStatus: ap.PaymentStatus,
		})
	}

	return out, total, nil
}
