package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"landrecords/internal/domain"
	"landrecords/internal/port"
)

type statsRepo struct {
	db *sqlx.DB
}

// NewStatsRepo creates a new PostgreSQL-backed StatsRepository.
func NewStatsRepo(db *sqlx.DB) port.StatsRepository {
	return &statsRepo{db: db}
}

const statsColumns = `date, documents_processed, documents_failed, total_processing_time_ms,
	urdu_count, hindi_count, english_count`

// Increment runs create-if-absent and the counter update in one transaction.
// The UPDATE takes the row lock, so concurrent increments on the same day serialize.
func (r *statsRepo) Increment(ctx context.Context, inc port.StatsIncrement) (*domain.ProcessingStats, error) {
	day := dateOnly(inc.Date)

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("statsRepo.Increment begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO processing_stats (date) VALUES ($1) ON CONFLICT (date) DO NOTHING", day); err != nil {
		return nil, fmt.Errorf("statsRepo.Increment insert: %w", err)
	}

	var stats domain.ProcessingStats
	err = tx.GetContext(ctx, &stats,
		`UPDATE processing_stats SET
			documents_processed = documents_processed + $1,
			documents_failed = documents_failed + $2,
			total_processing_time_ms = total_processing_time_ms + $3,
			urdu_count = urdu_count + $4,
			hindi_count = hindi_count + $5,
			english_count = english_count + $6
		 WHERE date = $7
		 RETURNING `+statsColumns,
		inc.Processed, inc.Failed, inc.DurationMS,
		inc.Urdu, inc.Hindi, inc.English,
		day)
	if err != nil {
		return nil, fmt.Errorf("statsRepo.Increment update: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("statsRepo.Increment commit: %w", err)
	}
	return &stats, nil
}

func (r *statsRepo) GetByDate(ctx context.Context, date time.Time) (*domain.ProcessingStats, error) {
	var stats domain.ProcessingStats
	err := r.db.GetContext(ctx, &stats,
		"SELECT "+statsColumns+" FROM processing_stats WHERE date = $1", dateOnly(date))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("statsRepo.GetByDate: %w", err)
	}
	return &stats, nil
}

func (r *statsRepo) ListRange(ctx context.Context, from, to time.Time) ([]domain.ProcessingStats, error) {
	var rows []domain.ProcessingStats
	err := r.db.SelectContext(ctx, &rows,
		"SELECT "+statsColumns+" FROM processing_stats WHERE date BETWEEN $1 AND $2 ORDER BY date",
		dateOnly(from), dateOnly(to))
	if err != nil {
		return nil, fmt.Errorf("statsRepo.ListRange: %w", err)
	}
	return rows, nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
