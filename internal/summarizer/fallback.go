package summarizer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"landrecords/internal/domain"
	"landrecords/internal/port"
)

// circuitState tracks rate-limit backoff for a single provider.
type circuitState struct {
	mu      sync.RWMutex
	resetAt time.Time // zero value = closed (healthy)
}

func (c *circuitState) isOpenWithReset(now time.Time) (time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.resetAt, !c.resetAt.IsZero() && now.Before(c.resetAt)
}

func (c *circuitState) open(resetAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetAt = resetAt
}

// FallbackSummarizer tries summarizers in order, skipping unconfigured ones
// and those whose circuit is open after a rate limit.
type FallbackSummarizer struct {
	summarizers []port.Summarizer
	circuits    []*circuitState
	names       []string
	now         func() time.Time
}

// NewFallbackSummarizer creates a FallbackSummarizer from an ordered list of summarizers and their names.
func NewFallbackSummarizer(summarizers []port.Summarizer, names []string) *FallbackSummarizer {
	circuits := make([]*circuitState, len(summarizers))
	for i := range circuits {
		circuits[i] = &circuitState{}
	}
	return &FallbackSummarizer{
		summarizers: summarizers,
		circuits:    circuits,
		names:       names,
		now:         time.Now,
	}
}

// Capability reports the first available provider, or the primary's reason
// when none is available.
func (f *FallbackSummarizer) Capability() domain.Capability {
	for _, s := range f.summarizers {
		if c := s.Capability(); c.Available {
			return c
		}
	}
	if len(f.summarizers) == 0 {
		return domain.Capability{Name: "summarizer", Reason: "no summarizer configured"}
	}
	return f.summarizers[0].Capability()
}

func (f *FallbackSummarizer) Summarize(ctx context.Context, text string, kind domain.SummaryKind) (*port.SummaryOutput, error) {
	return f.try(func(s port.Summarizer) (*port.SummaryOutput, error) {
		return s.Summarize(ctx, text, kind)
	})
}

func (f *FallbackSummarizer) Ask(ctx context.Context, text, question string) (*port.SummaryOutput, error) {
	return f.try(func(s port.Summarizer) (*port.SummaryOutput, error) {
		return s.Ask(ctx, text, question)
	})
}

// Close closes every wrapped summarizer that holds resources.
func (f *FallbackSummarizer) Close() error {
	var errs []error
	for _, s := range f.summarizers {
		if c, ok := s.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (f *FallbackSummarizer) try(call func(port.Summarizer) (*port.SummaryOutput, error)) (*port.SummaryOutput, error) {
	now := f.now()
	var lastErr error
	allRateLimited := true
	var earliestReset time.Time

	for i, s := range f.summarizers {
		if resetAt, open := f.circuits[i].isOpenWithReset(now); open {
			log.WithField("provider", f.names[i]).
				Infof("summarizer.FallbackSummarizer: skipping (circuit open until %s)", resetAt.Format(time.RFC3339))
			if earliestReset.IsZero() || resetAt.Before(earliestReset) {
				earliestReset = resetAt
			}
			continue
		}
		if !s.Capability().Available {
			continue
		}

		out, err := call(s)
		if err == nil {
			return out, nil
		}

		log.WithField("provider", f.names[i]).Warnf("summarizer.FallbackSummarizer: failed: %v", err)
		lastErr = err

		var rlErr *domain.RateLimitError
		if errors.As(err, &rlErr) {
			resetAt := now.Add(rlErr.RetryAfter)
			f.circuits[i].open(resetAt)
			if earliestReset.IsZero() || resetAt.Before(earliestReset) {
				earliestReset = resetAt
			}
		} else {
			allRateLimited = false
		}
	}

	if lastErr == nil && earliestReset.IsZero() {
		c := f.Capability()
		return nil, domain.NewConfigurationError("summarizer", c.Reason)
	}

	if lastErr == nil || allRateLimited {
		retryAfter := earliestReset.Sub(now)
		if retryAfter < time.Second {
			retryAfter = time.Second
		}
		return nil, domain.NewRateLimitError("summarizer", fmt.Errorf("all providers rate limited"), int(retryAfter.Seconds()))
	}

	return nil, fmt.Errorf("all summarizers failed: %w", lastErr)
}
