package service

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// SummaryWorkerConfig holds settings for the summary backfill worker.
type SummaryWorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
	RunTimeout   time.Duration
}

// SummaryWorker periodically summarizes saved documents that have no AI summary yet.
type SummaryWorker struct {
	summaries SummaryService
	cfg       SummaryWorkerConfig
	wg        sync.WaitGroup
}

// NewSummaryWorker creates a new SummaryWorker.
func NewSummaryWorker(summaries SummaryService, cfg SummaryWorkerConfig) *SummaryWorker {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 20
	}
	if cfg.RunTimeout <= 0 {
		cfg.RunTimeout = 5 * time.Minute
	}
	return &SummaryWorker{summaries: summaries, cfg: cfg}
}

// Start runs the polling loop until ctx is canceled. It blocks until the
// in-flight batch has finished. Batches never overlap.
func (w *SummaryWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	log.Printf("summaryWorker: started (poll=%s, batch=%d)", w.cfg.PollInterval, w.cfg.BatchSize)

	for {
		select {
		case <-ctx.Done():
			log.Printf("summaryWorker: shutting down, waiting for in-flight batch...")
			w.wg.Wait()
			log.Printf("summaryWorker: shutdown complete")
			return
		case <-ticker.C:
			w.wg.Add(1)
			w.runBatch()
		}
	}
}

func (w *SummaryWorker) runBatch() {
	defer w.wg.Done()

	// A fresh context lets the batch finish even during shutdown.
	runCtx, cancel := context.WithTimeout(context.Background(), w.cfg.RunTimeout)
	defer cancel()

	res, err := w.summaries.Backfill(runCtx, w.cfg.BatchSize)
	if err != nil {
		log.Printf("summaryWorker: backfill error: %v", err)
		return
	}
	if res.Processed > 0 || res.Failed > 0 {
		log.WithFields(log.Fields{
			"processed": res.Processed,
			"failed":    res.Failed,
		}).Info("summaryWorker: batch complete")
	}
}
