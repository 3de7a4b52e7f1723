// @title Land Records Digitization API
// @version 1.0
// @description OCR, translation and registry backend for historical land records.
// @BasePath /api/v1
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"landrecords/internal/config"
	"landrecords/internal/email"
	"landrecords/internal/handler"
	"landrecords/internal/imaging"
	"landrecords/internal/logging"
	"landrecords/internal/ocr"
	"landrecords/internal/ocr/vision"
	"landrecords/internal/repository/postgres"
	"landrecords/internal/router"
	"landrecords/internal/service"
	"landrecords/internal/storage"
	"landrecords/internal/summarizer"
	_ "landrecords/internal/summarizer/providers"
	"landrecords/internal/translation"
	"landrecords/internal/translation/google"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logging.Setup(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	docRepo := postgres.NewDocumentRepo(db)
	statsRepo := postgres.NewStatsRepo(db)
	farmerRepo := postgres.NewFarmerRepo(db)
	parcelRepo := postgres.NewLandParcelRepo(db)
	recordRepo := postgres.NewRecordRepo(db)
	disputeRepo := postgres.NewDisputedLandRepo(db)
	subscriberRepo := postgres.NewSubscriberRepo(db)

	// Initialize storage
	store, err := storage.New(ctx, &cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialize %s storage: %w", cfg.Storage.Provider, err)
	}
	bucket := cfg.Storage.Bucket()

	// Initialize external engines. Missing credentials leave an engine
	// unavailable rather than failing startup.
	visionClient, err := vision.NewClient(ctx, &cfg.OCR)
	if err != nil {
		return fmt.Errorf("failed to initialize OCR client: %w", err)
	}
	recognizer := ocr.NewRetryingRecognizer(visionClient, cfg.OCR)

	googleTranslator, err := google.NewTranslator(ctx, &cfg.Translation)
	if err != nil {
		return fmt.Errorf("failed to initialize translator: %w", err)
	}
	translator := translation.NewChunkedTranslator(googleTranslator, cfg.Translation.ChunkSize, cfg.Translation.Concurrency)

	summ, err := summarizer.New(ctx, &cfg.Summarizer)
	if err != nil {
		return fmt.Errorf("failed to initialize summarizer: %w", err)
	}
	if closer, ok := summ.(io.Closer); ok {
		defer func() { _ = closer.Close() }()
	}

	sender, err := email.New(ctx, &cfg.Email)
	if err != nil {
		return fmt.Errorf("failed to initialize email sender: %w", err)
	}

	capabilitySvc := service.NewCapabilityService(recognizer, translator, summ)
	for _, c := range capabilitySvc.Capabilities() {
		if !c.Available {
			log.Warnf("%s unavailable: %s", c.Name, c.Reason)
		}
	}

	// Initialize services
	ledgerSvc := service.NewLedgerService(statsRepo)
	fileSvc := service.NewFileService(store, bucket, cfg.Storage.MaxFileSizeMB)
	processingSvc := service.NewProcessingService(
		docRepo, store, bucket,
		imaging.NewPreprocessor(cfg.Imaging),
		recognizer, ledgerSvc, cfg.OCR.LanguageHints,
	)
	documentSvc := service.NewDocumentService(docRepo, recordRepo, store, bucket, cfg.Storage.PresignExpiry)
	translationSvc := service.NewTranslationService(docRepo, translator, translation.NewLandRecordGlossary(), cfg.Translation.TargetLanguage)
	summarySvc := service.NewSummaryService(docRepo, summ)
	disputeSvc := service.NewDisputedLandService(disputeRepo)
	registrySvc := service.NewRegistryService(farmerRepo, parcelRepo)
	newsletterSvc := service.NewNewsletterService(subscriberRepo, sender)

	// Setup router
	r := router.Setup(router.Handlers{
		OCR:          handler.NewOCRHandler(fileSvc, processingSvc, ledgerSvc),
		Document:     handler.NewDocumentHandler(documentSvc, summarySvc),
		Translation:  handler.NewTranslationHandler(translationSvc),
		DisputedLand: handler.NewDisputedLandHandler(disputeSvc),
		Registry:     handler.NewRegistryHandler(registrySvc),
		Newsletter:   handler.NewNewsletterHandler(newsletterSvc),
		Health:       handler.NewHealthHandler(db, capabilitySvc),
	}, cfg.CORS.AllowedOrigins)

	var wg sync.WaitGroup
	if cfg.Summarizer.BackfillEvery > 0 {
		worker := service.NewSummaryWorker(summarySvc, service.SummaryWorkerConfig{
			PollInterval: cfg.Summarizer.BackfillEvery,
			BatchSize:    cfg.Summarizer.BackfillBatch,
		})
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Start(ctx)
		}()
	}

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		log.Printf("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	stop()
	wg.Wait()

	log.Printf("Server stopped")
	return nil
}
