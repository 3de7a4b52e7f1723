package service_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"landrecords/internal/domain"
	"landrecords/internal/port"
)

// memStatsRepo is an in-memory StatsRepository. The mutex gives Increment the
// same per-day atomicity the database transaction provides.
type memStatsRepo struct {
	mu   sync.Mutex
	rows map[string]*domain.ProcessingStats
}

func newMemStatsRepo() *memStatsRepo {
	return &memStatsRepo{rows: map[string]*domain.ProcessingStats{}}
}

func dayKey(t time.Time) string { return t.UTC().Format("2006-01-02") }

func (r *memStatsRepo) Increment(_ context.Context, inc port.StatsIncrement) (*domain.ProcessingStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := dayKey(inc.Date)
	row, ok := r.rows[key]
	if !ok {
		y, m, d := inc.Date.UTC().Date()
		row = &domain.ProcessingStats{Date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
		r.rows[key] = row
	}
	row.DocumentsProcessed += inc.Processed
	row.DocumentsFailed += inc.Failed
	row.TotalProcessingTimeMS += inc.DurationMS
	row.UrduCount += inc.Urdu
	row.HindiCount += inc.Hindi
	row.EnglishCount += inc.English
	out := *row
	return &out, nil
}

func (r *memStatsRepo) GetByDate(_ context.Context, date time.Time) (*domain.ProcessingStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[dayKey(date)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *row
	return &out, nil
}

func (r *memStatsRepo) ListRange(_ context.Context, from, to time.Time) ([]domain.ProcessingStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	lo, hi := dayKey(from), dayKey(to)
	out := []domain.ProcessingStats{}
	for key, row := range r.rows {
		if key >= lo && key <= hi {
			out = append(out, *row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

// identityTranslator returns its input unchanged.
type identityTranslator struct{}

func (identityTranslator) Translate(_ context.Context, text, _, _ string) (string, error) {
	return text, nil
}

func (identityTranslator) Capability() domain.Capability {
	return domain.Capability{Name: "translation", Provider: "identity", Available: true}
}

// scanPNG returns a small two-tone PNG that decodes like a scanned page.
func scanPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 32, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 32; x++ {
			v := uint8(220)
			if x%8 < 3 {
				v = 30
			}
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func floatPtr(v float64) *float64 { return &v }
