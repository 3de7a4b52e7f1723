package port

import (
	"context"
	"time"

	"landrecords/internal/domain"
)

// StatsIncrement is the set of counter deltas applied to one day's ledger row.
type StatsIncrement struct {
	Date       time.Time
	Processed  int64
	Failed     int64
	DurationMS int64
	Urdu       int64
	Hindi      int64
	English    int64
}

// StatsRepository persists the per-day processing ledger.
type StatsRepository interface {
	// Increment creates the row for inc.Date if absent and adds the deltas,
	// atomically, returning the updated row.
	Increment(ctx context.Context, inc StatsIncrement) (*domain.ProcessingStats, error)
	GetByDate(ctx context.Context, date time.Time) (*domain.ProcessingStats, error)
	ListRange(ctx context.Context, from, to time.Time) ([]domain.ProcessingStats, error)
}
