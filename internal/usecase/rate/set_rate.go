package rate

import (
	"context"
	"time"

	"github.com/veritalaw/consult-scheduler/internal/audit"
	domain "github.com/veritalaw/consult-scheduler/internal/domain/rate"
	"github.com/veritalaw/consult-scheduler/internal/infra/cache"
	"github.com/veritalaw/consult-scheduler/internal/models"
)

type SetRateInput struct {
	RatePaise int64
	Currency  string
	ActorID   uint
}

// SetRate appends a new rate version effective immediately. Earlier
// versions are never touched, so totals frozen on existing appointments
// keep their audit trail.
type SetRate struct {
	repo  domain.Repository
	cache *cache.RateCache
	audit *audit.Dispatcher
}

func NewSetRate(
	repo domain.Repository,
	cache *cache.RateCache,
	audit *audit.Dispatcher,
) *SetRate {
	return &SetRate{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *SetRate) Execute(
	ctx context.Context,
	in SetRateInput,
	now time.Time,
) (*models.HourlyRate, error) {

	if err := domain.Validate(in.RatePaise, in.Currency); err != nil {
		return nil, err
	}

	r := &models.HourlyRate{
		RatePaise:     in.RatePaise,
		Currency:      in.Currency,
		EffectiveFrom: now,
		CreatedBy:     in.ActorID,
	}

	if err := uc.repo.CreateRate(ctx, r); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx)

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "rate_updated",
		Entity:   "hourly_rate",
		EntityID: &r.ID,
		Metadata: map[string]any{"rate_paise": r.RatePaise, "currency": r.Currency},
	})

	return r, nil
}
