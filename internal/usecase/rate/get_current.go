package rate

import (
	"context"
	"time"

	domain "github.com/veritalaw/consult-scheduler/internal/domain/rate"
	"github.com/veritalaw/consult-scheduler/internal/httperr"
	"github.com/veritalaw/consult-scheduler/internal/infra/cache"
	"github.com/veritalaw/consult-scheduler/internal/models"
)

type GetCurrentRate struct {
	repo  domain.Repository
	cache *cache.RateCache
}

func NewGetCurrentRate(repo domain.Repository, cache *cache.RateCache) *GetCurrentRate {
	return &GetCurrentRate{
		repo:  repo,
		cache: cache,
	}
}

func (uc *GetCurrentRate) Execute(
	ctx context.Context,
	now time.Time,
) (*models.HourlyRate, error) {

	if cached, ok := uc.cache.Get(ctx); ok {
		return cached, nil
	}

	current, err := uc.repo.CurrentRate(ctx, now)
	if err != nil {
		return nil, httperr.ErrBusiness("rate_not_configured")
	}

	uc.cache.Set(ctx, current)
	return current, nil
}
