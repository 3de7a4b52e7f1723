// Command backfill writes AI summaries for saved documents that have none.
// Usage: go run ./cmd/backfill [-batch 20] [-max 0]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"landrecords/internal/config"
	"landrecords/internal/logging"
	"landrecords/internal/repository/postgres"
	"landrecords/internal/service"
	"landrecords/internal/summarizer"
	_ "landrecords/internal/summarizer/providers"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	batch := flag.Int("batch", 20, "documents per batch")
	maxDocs := flag.Int("max", 0, "stop after this many summaries (0 = no limit)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logging.Setup(cfg.Log)

	ctx := context.Background()

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer func() { _ = db.Close() }()

	summ, err := summarizer.New(ctx, &cfg.Summarizer)
	if err != nil {
		return fmt.Errorf("creating summarizer: %w", err)
	}
	if closer, ok := summ.(io.Closer); ok {
		defer func() { _ = closer.Close() }()
	}
	if c := summ.Capability(); !c.Available {
		return fmt.Errorf("summarizer unavailable: %s", c.Reason)
	}

	svc := service.NewSummaryService(postgres.NewDocumentRepo(db), summ)

	total, failed := 0, 0
	for {
		res, err := svc.Backfill(ctx, *batch)
		if err != nil {
			return fmt.Errorf("backfill after %d summaries: %w", total, err)
		}
		total += res.Processed
		failed += res.Failed
		log.Printf("batch: %d summarized, %d failed (total %d)", res.Processed, res.Failed, total)

		// Failed documents stay unsummarized, so a batch with no progress would repeat forever.
		if res.Processed == 0 {
			break
		}
		if *maxDocs > 0 && total >= *maxDocs {
			break
		}
	}

	log.Printf("Done. Summarized %d documents, %d failures.", total, failed)
	return nil
}
