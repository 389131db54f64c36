package adapters

import (
	"context"
	"time"

	"github.com/Ejo3h9612/currencyDemo/internal/domain"
)

type RateSource interface {
	FetchDailyRates(ctx context.Context) ([]domain.Observation, error)
}

type RateRepository interface {
	Save(ctx context.Context, record domain.Record) error
	SaveBatch(ctx context.Context, records []domain.Record) error
	FindByPairBetween(ctx context.Context, pair string, from, to time.Time) ([]domain.Record, error)
}
