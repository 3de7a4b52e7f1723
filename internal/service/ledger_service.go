package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	log "github.com/sirupsen/logrus"

	"landrecords/internal/domain"
	"landrecords/internal/export"
	"landrecords/internal/port"
)

// DefaultStatsWindow is the range used when a stats query names no dates.
const DefaultStatsWindow = 30 * 24 * time.Hour

// LedgerService records processing attempts in the per-day ledger and reads it back.
type LedgerService interface {
	RecordAttempt(ctx context.Context, date time.Time, outcome domain.Outcome, durationMS int64, language string) (*domain.ProcessingStats, error)
	GetDay(ctx context.Context, date time.Time) (*domain.ProcessingStats, error)
	ListRange(ctx context.Context, from, to time.Time) ([]domain.ProcessingStats, error)
	Summary(ctx context.Context, from, to time.Time) (*domain.StatsSummary, error)
	ExportWorkbook(ctx context.Context, from, to time.Time, w io.Writer) error
}

type ledgerService struct {
	statsRepo port.StatsRepository
}

// NewLedgerService creates a new LedgerService implementation.
func NewLedgerService(statsRepo port.StatsRepository) LedgerService {
	return &ledgerService{statsRepo: statsRepo}
}

// increment maps one attempt to counter deltas. Failures only bump the failure
// counter. Successes are bucketed urdu, hindi, or english for everything else.
func increment(date time.Time, outcome domain.Outcome, durationMS int64, language string) port.StatsIncrement {
	inc := port.StatsIncrement{Date: date}
	if outcome != domain.OutcomeSuccess {
		inc.Failed = 1
		return inc
	}
	inc.Processed = 1
	inc.DurationMS = durationMS
	switch language {
	case domain.LanguageUrdu:
		inc.Urdu = 1
	case domain.LanguageHindi:
		inc.Hindi = 1
	default:
		inc.English = 1
	}
	return inc
}

func (s *ledgerService) RecordAttempt(ctx context.Context, date time.Time, outcome domain.Outcome, durationMS int64, language string) (*domain.ProcessingStats, error) {
	if durationMS < 0 {
		durationMS = 0
	}
	stats, err := s.statsRepo.Increment(ctx, increment(date, outcome, durationMS, language))
	if err != nil {
		return nil, fmt.Errorf("recording %s attempt: %w", outcome, err)
	}
	log.WithFields(log.Fields{
		"date":     date.Format("2006-01-02"),
		"outcome":  outcome,
		"duration": durationMS,
		"language": language,
	}).Debug("ledgerService.RecordAttempt: recorded")
	return stats, nil
}

func (s *ledgerService) GetDay(ctx context.Context, date time.Time) (*domain.ProcessingStats, error) {
	stats, err := s.statsRepo.GetByDate(ctx, date)
	if errors.Is(err, domain.ErrNotFound) {
		y, m, d := date.Date()
		return &domain.ProcessingStats{Date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}, nil
	}
	return stats, err
}

func (s *ledgerService) ListRange(ctx context.Context, from, to time.Time) ([]domain.ProcessingStats, error) {
	if to.Before(from) {
		return nil, domain.ErrInvalidDateRange
	}
	return s.statsRepo.ListRange(ctx, from, to)
}

func (s *ledgerService) Summary(ctx context.Context, from, to time.Time) (*domain.StatsSummary, error) {
	rows, err := s.ListRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return Summarize(from, to, rows), nil
}

func (s *ledgerService) ExportWorkbook(ctx context.Context, from, to time.Time, w io.Writer) error {
	rows, err := s.ListRange(ctx, from, to)
	if err != nil {
		return err
	}
	return export.WriteStatsWorkbook(w, rows, Summarize(from, to, rows))
}

// Summarize folds ledger rows into range totals. Rates are percentages rounded to two decimals.
func Summarize(from, to time.Time, rows []domain.ProcessingStats) *domain.StatsSummary {
	sum := &domain.StatsSummary{
		From: from.Format("2006-01-02"),
		To:   to.Format("2006-01-02"),
		LanguageDistribution: map[string]int64{
			domain.LanguageUrdu:    0,
			domain.LanguageHindi:   0,
			domain.LanguageEnglish: 0,
		},
	}

	var totalTime int64
	for _, r := range rows {
		sum.TotalProcessed += r.DocumentsProcessed
		sum.TotalFailed += r.DocumentsFailed
		totalTime += r.TotalProcessingTimeMS
		sum.LanguageDistribution[domain.LanguageUrdu] += r.UrduCount
		sum.LanguageDistribution[domain.LanguageHindi] += r.HindiCount
		sum.LanguageDistribution[domain.LanguageEnglish] += r.EnglishCount
	}

	if attempts := sum.TotalProcessed + sum.TotalFailed; attempts > 0 {
		sum.SuccessRate = round2(float64(sum.TotalProcessed) / float64(attempts) * 100)
	}
	if sum.TotalProcessed > 0 {
		sum.AvgProcessingTimeMS = round2(float64(totalTime) / float64(sum.TotalProcessed))
	}
	return sum
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
