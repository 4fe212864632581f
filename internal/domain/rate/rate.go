package rate

import (
	"context"
	"time"

	"github.com/veritalaw/consult-scheduler/internal/httperr"
	"github.com/veritalaw/consult-scheduler/internal/models"
)

type Repository interface {
	CreateRate(
		ctx context.Context,
		r *models.HourlyRate,
	) error

	// CurrentRate returns the rate with the latest effective_from at or
	// before now.
	CurrentRate(
		ctx context.Context,
		now time.Time,
	) (*models.HourlyRate, error)
}

func Validate(ratePaise int64, currency string) error {
	if ratePaise <= 0 {
		return httperr.ErrBusiness("invalid_rate")
	}
	if len(currency) != 3 {
		return httperr.ErrBusiness("invalid_currency")
	}
	return nil
}
