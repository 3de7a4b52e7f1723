// Command seeddisputes loads land dispute cases into the database, either from
// an Excel sheet (one case per row, first row is the header) or as generated
// sample data.
// Usage:
//
//	go run ./cmd/seeddisputes -xlsx cases.xlsx
//	go run ./cmd/seeddisputes -generate 50
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"landrecords/internal/config"
	"landrecords/internal/export"
	"landrecords/internal/logging"
	"landrecords/internal/repository/postgres"
	"landrecords/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	xlsxPath := flag.String("xlsx", "", "Excel file with one dispute case per row")
	generate := flag.Int("generate", 0, "number of sample cases to generate")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "random seed for -generate")
	flag.Parse()

	if (*xlsxPath == "") == (*generate <= 0) {
		return fmt.Errorf("exactly one of -xlsx or -generate is required")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logging.Setup(cfg.Log)

	var inputs []service.CreateDisputedLandInput
	if *xlsxPath != "" {
		inputs, err = readWorkbook(*xlsxPath)
		if err != nil {
			return err
		}
		log.Printf("read %d cases from %s", len(inputs), *xlsxPath)
	} else {
		rng := rand.New(rand.NewPCG(*seed, *seed>>1))
		inputs = generateCases(rng, *generate, time.Now().UTC())
		log.Printf("generated %d sample cases", len(inputs))
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer func() { _ = db.Close() }()

	svc := service.NewDisputedLandService(postgres.NewDisputedLandRepo(db))
	created, err := svc.CreateBatch(context.Background(), inputs)
	if err != nil {
		return fmt.Errorf("inserting cases: %w", err)
	}

	log.Printf("Done. Inserted %d of %d cases.", created, len(inputs))
	return nil
}

func readWorkbook(path string) ([]service.CreateDisputedLandInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := export.ReadSheetRows(f)
	if err != nil {
		return nil, fmt.Errorf("read Excel file: %w", err)
	}
	return parseRows(rows)
}
