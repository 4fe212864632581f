package rate

import (
	"context"
	"testing"
	"time"

	"github.com/veritalaw/consult-scheduler/internal/httperr"
	"github.com/veritalaw/consult-scheduler/internal/models"
)

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

func TestGetCurrentRate(t *testing.T) {
	repo := &fakeRateRepo{rate: &models.HourlyRate{ID: 1, RatePaise: 200000, Currency: "INR"}}
	uc := NewGetCurrentRate(repo, nil)

	got, err := uc.Execute(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if got.RatePaise != 200000 {
		t.Fatalf("rate = %d, want 200000", got.RatePaise)
	}
}

func TestGetCurrentRateUnconfigured(t *testing.T) {
	uc := NewGetCurrentRate(&fakeRateRepo{}, nil)

	_, err := uc.Execute(context.Background(), time.Now())
	if !httperr.IsBusiness(err, "rate_not_configured") {
		t.Fatalf("error = %v, want rate_not_configured", err)
	}
}

func TestSetRateAppendsVersion(t *testing.T) {
	repo := &fakeRateRepo{}
	uc := NewSetRate(repo, nil, nil)

	now := time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC)
	got, err := uc.Execute(context.Background(), SetRateInput{RatePaise: 300000, Currency: "INR", ActorID: 1}, now)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if got.RatePaise != 300000 || !got.EffectiveFrom.Equal(now) || got.CreatedBy != 1 {
		t.Fatalf("stored rate = %+v", got)
	}
	if len(repo.created) != 1 {
		t.Fatalf("created %d rows, want 1", len(repo.created))
	}

	// a second update is a new row, never an overwrite
	later := now.Add(time.Hour)
	if _, err := uc.Execute(context.Background(), SetRateInput{RatePaise: 350000, Currency: "INR", ActorID: 1}, later); err != nil {
		t.Fatalf("second update failed: %v", err)
	}
	if len(repo.created) != 2 {
		t.Fatalf("created %d rows, want 2", len(repo.created))
	}
	if repo.created[0].RatePaise != 300000 {
		t.Fatalf("first version mutated: %+v", repo.created[0])
	}
}

func TestSetRateValidation(t *testing.T) {
	uc := NewSetRate(&fakeRateRepo{}, nil, nil)
	now := time.Now()

	_, err := uc.Execute(context.Background(), SetRateInput{RatePaise: 0, Currency: "INR"}, now)
	if !httperr.IsBusiness(err, "invalid_rate") {
		t.Fatalf("error = %v, want invalid_rate", err)
	}

	_, err = uc.Execute(context.Background(), SetRateInput{RatePaise: 100, Currency: "RUPEES"}, now)
	if !httperr.IsBusiness(err, "invalid_currency") {
		t.Fatalf("error = %v, want invalid_currency", err)
	}
}
