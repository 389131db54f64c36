package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Ejo3h9612/currencyDemo/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const upsertRateQuery = `
	insert into exchange_rates (currency_pair, rate, ts)
	values ($1, $2, $3)
	on conflict (currency_pair, ts) do update set rate = excluded.rate;
`

type RateRepository struct {
	pool *pgxpool.Pool
}

// Save upserts a single rate row. Re-ingesting an already-stored day
// overwrites that day's value instead of creating a duplicate.
func (r *RateRepository) Save(ctx context.Context, record domain.Record) error {
	_, err := r.pool.Exec(ctx, upsertRateQuery, record.CurrencyPair, record.Rate, record.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to save %s rate for %s: %w",
			record.CurrencyPair, record.Timestamp.Format(time.DateOnly), err)
	}
	return nil
}

// SaveBatch upserts all records in one transaction.
func (r *RateRepository) SaveBatch(ctx context.Context, records []domain.Record) error {
	if len(records) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, record := range records {
		batch.Queue(upsertRateQuery, record.CurrencyPair, record.Rate, record.Timestamp)
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	br := tx.SendBatch(ctx, batch)
	for range records {
		if _, err = br.Exec(); err != nil {
			_ = br.Close()
			return fmt.Errorf("failed to save rate batch: %w", err)
		}
	}
	if err = br.Close(); err != nil {
		return fmt.Errorf("failed to close rate batch: %w", err)
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit rate batch: %w", err)
	}
	return nil
}

// FindByPairBetween returns all rows for the pair with from <= ts <= to,
// ordered ascending by timestamp.
func (r *RateRepository) FindByPairBetween(ctx context.Context, pair string, from, to time.Time) ([]domain.Record, error) {
	const q = `
		select id, currency_pair, rate, ts
		from exchange_rates
		where currency_pair = $1 and ts between $2 and $3
		order by ts;
	`

	rows, err := r.pool.Query(ctx, q, pair, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s rates: %w", pair, err)
	}
	defer rows.Close()

	records := make([]domain.Record, 0, 32)
	for rows.Next() {
		var rec domain.Record
		if err = rows.Scan(&rec.ID, &rec.CurrencyPair, &rec.Rate, &rec.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan rate row: %w", err)
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rate rows: %w", err)
	}
	return records, nil
}

func NewRateRepository(pool *pgxpool.Pool) *RateRepository {
	return &RateRepository{pool: pool}
}
