package forex

import (
	"context"
	"fmt"
	"time"

	"github.com/Ejo3h9612/currencyDemo/internal/adapters"
	"github.com/Ejo3h9612/currencyDemo/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type Service struct {
	source adapters.RateSource
	repo   adapters.RateRepository
	pair   string // the tracked currency pair, e.g. "USD/NTD"
}

// IngestLatest fetches the daily feed and persists the single observation
// with the most recent date. An empty feed is a soft no-op; any malformed
// date or rate aborts the run without persisting anything.
func (s *Service) IngestLatest(ctx context.Context) error {
	observations, err := s.source.FetchDailyRates(ctx)
	if err != nil {
		return err
	}
	if len(observations) == 0 {
		logrus.Infof("Daily rates feed returned no observations for %s, nothing to ingest", s.pair)
		return nil
	}

	// Dates are compared as parsed values, never as raw strings.
	latest := observations[0]
	latestDate, err := ParseCompactDate(latest.Date)
	if err != nil {
		return err
	}
	for _, obs := range observations[1:] {
		date, parseErr := ParseCompactDate(obs.Date)
		if parseErr != nil {
			return parseErr
		}
		if date.After(latestDate) {
			latest, latestDate = obs, date
		}
	}

	rate, err := decimal.NewFromString(latest.Rate)
	if err != nil {
		return fmt.Errorf("%w: %q", domain.ErrInvalidRateValue, latest.Rate)
	}

	record := domain.Record{CurrencyPair: s.pair, Rate: rate, Timestamp: latestDate}
	if err = s.repo.Save(ctx, record); err != nil {
		return err
	}
	logrus.Infof("Ingested %s rate %s for %s", s.pair, rate, latestDate.Format(isoDateLayout))
	return nil
}

// IngestAll fetches the daily feed and persists every observation in one
// batch. Observations with a missing or malformed date or rate are skipped
// with a warning; one bad row never fails the batch.
func (s *Service) IngestAll(ctx context.Context) error {
	observations, err := s.source.FetchDailyRates(ctx)
	if err != nil {
		return err
	}

	records := make([]domain.Record, 0, len(observations))
	for _, obs := range observations {
		if obs.Date == "" || obs.Rate == "" {
			logrus.Warnf("Skipping incomplete observation: date=%q rate=%q", obs.Date, obs.Rate)
			continue
		}
		date, parseErr := ParseCompactDate(obs.Date)
		if parseErr != nil {
			logrus.Warnf("Skipping observation with bad date %q: %v", obs.Date, parseErr)
			continue
		}
		rate, rateErr := decimal.NewFromString(obs.Rate)
		if rateErr != nil {
			logrus.Warnf("Skipping observation %s with bad rate %q", obs.Date, obs.Rate)
			continue
		}
		records = append(records, domain.Record{CurrencyPair: s.pair, Rate: rate, Timestamp: date})
	}

	if len(records) == 0 {
		logrus.Infof("No usable observations for %s in this feed", s.pair)
		return nil
	}
	if err = s.repo.SaveBatch(ctx, records); err != nil {
		return err
	}
	logrus.Infof("Ingested %d %s observations", len(records), s.pair)
	return nil
}

// History returns persisted rates for the requested currency pair between
// start and end inclusive (end is extended to the last second of its day),
// ordered ascending by date. An empty currency defaults to the tracked pair.
func (s *Service) History(ctx context.Context, start, end time.Time, currency string) ([]HistoryRow, error) {
	pair := currency
	if pair == "" {
		pair = s.pair
	}
	if pair != s.pair {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedCurrency, currency)
	}

	from := midnight(start)
	to := midnight(end).Add(24*time.Hour - time.Second)

	records, err := s.repo.FindByPairBetween(ctx, pair, from, to)
	if err != nil {
		return nil, err
	}

	rows := make([]HistoryRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, HistoryRow{
			Date: r.Timestamp.Format(isoDateLayout),
			USD:  r.Rate.String(),
		})
	}
	return rows, nil
}

func NewService(source adapters.RateSource, repo adapters.RateRepository, pair string) *Service {
	return &Service{source: source, repo: repo, pair: pair}
}
