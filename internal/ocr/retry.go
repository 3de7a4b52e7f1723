package ocr

import (
	"context"
	"time"

	"github.com/googleapis/gax-go/v2"
	log "github.com/sirupsen/logrus"

	"landrecords/internal/config"
	"landrecords/internal/domain"
	"landrecords/internal/port"
)

// RetryingRecognizer retries transport failures of the wrapped recognizer
// with exponential backoff. API and configuration errors are returned as-is.
type RetryingRecognizer struct {
	next        port.TextRecognizer
	maxAttempts int
	initial     time.Duration
	max         time.Duration
	multiplier  float64
}

// NewRetryingRecognizer wraps next with the retry policy from cfg.
func NewRetryingRecognizer(next port.TextRecognizer, cfg config.OCRConfig) *RetryingRecognizer {
	r := &RetryingRecognizer{
		next:        next,
		maxAttempts: cfg.MaxAttempts,
		initial:     cfg.BackoffInitial,
		max:         cfg.BackoffMax,
		multiplier:  cfg.BackoffMultiplier,
	}
	if r.maxAttempts <= 0 {
		r.maxAttempts = 1
	}
	if r.initial <= 0 {
		r.initial = 500 * time.Millisecond
	}
	if r.max < r.initial {
		r.max = r.initial
	}
	if r.multiplier < 1 {
		r.multiplier = 2
	}
	return r
}

func (r *RetryingRecognizer) Recognize(ctx context.Context, image []byte, hints []string) (*port.Annotation, error) {
	bo := gax.Backoff{Initial: r.initial, Max: r.max, Multiplier: r.multiplier}

	var lastErr error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		ann, err := r.next.Recognize(ctx, image, hints)
		if err == nil {
			return ann, nil
		}
		lastErr = err
		if !domain.IsRetryable(err) || attempt == r.maxAttempts {
			break
		}

		pause := bo.Pause()
		log.WithFields(log.Fields{
			"attempt": attempt,
			"max":     r.maxAttempts,
			"pause":   pause,
		}).Warnf("ocr.RetryingRecognizer: transient failure: %v", err)

		if err := gax.Sleep(ctx, pause); err != nil {
			return nil, domain.NewTransportError("vision", err)
		}
	}
	return nil, lastErr
}

// Capability reports the wrapped recognizer's availability.
func (r *RetryingRecognizer) Capability() domain.Capability {
	if cr, ok := r.next.(port.CapabilityReporter); ok {
		return cr.Capability()
	}
	return domain.Capability{Name: "ocr", Available: true}
}
