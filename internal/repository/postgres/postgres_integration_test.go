package postgres_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landrecords/internal/domain"
	"landrecords/internal/port"
	"landrecords/internal/repository/postgres"
)

// openTestDB connects to LANDREC_TEST_DATABASE_URL, applies the schema and
// empties every table. Tests are skipped when the variable is unset.
func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	dsn := os.Getenv("LANDREC_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("LANDREC_TEST_DATABASE_URL not set")
	}

	m, err := migrate.New("file://../../../db/migrations", dsn)
	require.NoError(t, err)
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		require.NoError(t, err)
	}
	_, _ = m.Close()

	db, err := sqlx.Connect("pgx", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`TRUNCATE documents, processing_stats, farmers, land_parcels,
		disputed_lands, newsletter_subscribers CASCADE`)
	require.NoError(t, err)
	return db
}

func TestStatsRepo_ConcurrentIncrements(t *testing.T) {
	db := openTestDB(t)
	repo := postgres.NewStatsRepo(db)
	ctx := context.Background()
	day := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			inc := port.StatsIncrement{Date: day, Processed: 1, DurationMS: 100, Urdu: 1}
			if i%5 == 0 {
				inc = port.StatsIncrement{Date: day, Failed: 1}
			}
			_, err := repo.Increment(ctx, inc)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	row, err := repo.GetByDate(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, int64(16), row.DocumentsProcessed)
	assert.Equal(t, int64(4), row.DocumentsFailed)
	assert.Equal(t, int64(1600), row.TotalProcessingTimeMS)
	assert.Equal(t, int64(16), row.UrduCount)
	assert.True(t, row.Date.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)))
}

func TestStatsRepo_GetByDateAndRange(t *testing.T) {
	db := openTestDB(t)
	repo := postgres.NewStatsRepo(db)
	ctx := context.Background()

	_, err := repo.GetByDate(ctx, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	for _, d := range []int{3, 1, 2} {
		_, err := repo.Increment(ctx, port.StatsIncrement{Date: time.Date(2024, 2, d, 0, 0, 0, 0, time.UTC), Processed: 1, English: 1})
		require.NoError(t, err)
	}

	rows, err := repo.ListRange(ctx, time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC), time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].Date.Day())
	assert.Equal(t, 3, rows[1].Date.Day())
}

func TestSubscriberRepo_Lifecycle(t *testing.T) {
	db := openTestDB(t)
	repo := postgres.NewSubscriberRepo(db)
	ctx := context.Background()

	sub := &domain.NewsletterSubscriber{
		ID:           uuid.New(),
		Email:        "reader@example.com",
		Status:       domain.SubscriberActive,
		SubscribedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, sub))

	dup := *sub
	dup.ID = uuid.New()
	assert.ErrorIs(t, repo.Create(ctx, &dup), domain.ErrAlreadySubscribed)

	now := time.Now().UTC()
	sub.Status = domain.SubscriberUnsubscribed
	sub.UnsubscribedAt = &now
	require.NoError(t, repo.UpdateStatus(ctx, sub))

	got, err := repo.GetByEmail(ctx, "reader@example.com")
	require.NoError(t, err)
	assert.Equal(t, domain.SubscriberUnsubscribed, got.Status)
	assert.NotNil(t, got.UnsubscribedAt)

	_, err = repo.GetByEmail(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, domain.ErrSubscriberNotFound)
}

func TestDisputedLandRepo_BatchAndStats(t *testing.T) {
	db := openTestDB(t)
	repo := postgres.NewDisputedLandRepo(db)
	ctx := context.Background()
	lat, lng := 33.92, 74.71

	lands := []domain.DisputedLand{
		{ID: uuid.New(), KhasraNumber: "45", Mauza: "Chadoora", Tehsil: "Chadoora", District: "Budgam",
			DisputeType: domain.DisputeRefugeeClaim, DisputeStatus: domain.DisputeStatusUnderReview,
			Claimants: []byte(`[{"name":"Ghulam Nabi"},{"name":"Abdul Rashid"}]`), Latitude: &lat, Longitude: &lng, PartitionImpact: true},
		{ID: uuid.New(), KhasraNumber: "78", Mauza: "Khag", Tehsil: "Khag", District: "Budgam",
			DisputeType: domain.DisputeInheritance, DisputeStatus: domain.DisputeStatusPendingCourt},
		{ID: uuid.New(), KhasraNumber: "112", Mauza: "Chak 12", Tehsil: "Lahore City", District: "Lahore",
			DisputeType: domain.DisputeInheritance, DisputeStatus: domain.DisputeStatusResolved},
	}
	n, err := repo.CreateBatch(ctx, lands)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	got, err := repo.GetByID(ctx, lands[0].ID)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"Ghulam Nabi"},{"name":"Abdul Rashid"}]`, string(got.Claimants))
	assert.JSONEq(t, `[]`, string(got.SupportingDocs))

	points, err := repo.ListMapPoints(ctx, "Budgam", "")
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, 2, points[0].ClaimantsCount)

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalDisputes)
	assert.Equal(t, 2, stats.ByType["inheritance"])
	assert.Equal(t, 2, stats.ByDistrict["Budgam"])
	assert.Equal(t, 1, stats.PartitionAffected)

	tehsils, err := repo.Tehsils(ctx, "Budgam")
	require.NoError(t, err)
	assert.Equal(t, []string{"Chadoora", "Khag"}, tehsils)

	require.NoError(t, repo.Delete(ctx, lands[2].ID))
	_, err = repo.GetByID(ctx, lands[2].ID)
	assert.ErrorIs(t, err, domain.ErrDisputedLandNotFound)
}

func seedProcessedDocument(t *testing.T, db *sqlx.DB) *domain.Document {
	t.Helper()
	doc := &domain.Document{
		ID:               uuid.New(),
		Filename:         "jamabandi.jpg",
		FileType:         domain.FileTypeJPG,
		PageCount:        1,
		DetectedLanguage: domain.LanguageUrdu,
		ProcessingStatus: domain.ProcessingStatusProcessed,
	}
	require.NoError(t, postgres.NewDocumentRepo(db).Create(context.Background(), doc))
	return doc
}

func newSavedRecord(doc *domain.Document, owner, landType string) *port.SavedRecord {
	doc.KhasraNumber = "78"
	doc.OwnerName = owner
	rec := &port.SavedRecord{
		Document: doc,
		Parcel: &domain.LandParcel{
			ID:               uuid.New(),
			KhasraNumber:     "78",
			District:         "Budgam",
			LandType:         landType,
			OwnershipStatus:  "recorded",
			SourceDocumentID: &doc.ID,
		},
	}
	if owner != "" {
		rec.Farmer = &domain.Farmer{ID: uuid.New(), NameLocal: owner, District: "Budgam"}
		rec.Parcel.FarmerID = &rec.Farmer.ID
	}
	return rec
}

func countRows(t *testing.T, db *sqlx.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.Get(&n, "SELECT COUNT(*) FROM "+table))
	return n
}

func TestRecordRepo_SaveTwiceUpdatesInPlace(t *testing.T) {
	db := openTestDB(t)
	repo := postgres.NewRecordRepo(db)
	ctx := context.Background()
	doc := seedProcessedDocument(t, db)

	first := newSavedRecord(doc, "Abdul Rashid", "agricultural")
	require.NoError(t, repo.SaveRecord(ctx, first))
	assert.True(t, doc.IsSaved)

	second := newSavedRecord(doc, "Abdul Rashid Mir", "orchard")
	require.NoError(t, repo.SaveRecord(ctx, second))

	assert.Equal(t, 1, countRows(t, db, "land_parcels"))
	assert.Equal(t, 1, countRows(t, db, "farmers"))
	assert.Equal(t, first.Parcel.ID, second.Parcel.ID)
	assert.Equal(t, first.Farmer.ID, second.Farmer.ID)

	parcel, err := postgres.NewLandParcelRepo(db).GetByID(ctx, first.Parcel.ID)
	require.NoError(t, err)
	assert.Equal(t, "orchard", parcel.LandType)
	require.NotNil(t, parcel.FarmerID)
	assert.Equal(t, first.Farmer.ID, *parcel.FarmerID)

	farmer, err := postgres.NewFarmerRepo(db).GetByID(ctx, first.Farmer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Abdul Rashid Mir", farmer.NameLocal)
}

func TestRecordRepo_FailedParcelRollsBack(t *testing.T) {
	db := openTestDB(t)
	repo := postgres.NewRecordRepo(db)
	ctx := context.Background()
	doc := seedProcessedDocument(t, db)

	// land_type is VARCHAR(50), so the parcel write fails after the
	// document update and farmer insert have run.
	rec := newSavedRecord(doc, "Abdul Rashid", strings.Repeat("x", 60))
	require.Error(t, repo.SaveRecord(ctx, rec))

	got, err := postgres.NewDocumentRepo(db).GetByID(ctx, doc.ID)
	require.NoError(t, err)
	assert.False(t, got.IsSaved)
	assert.Empty(t, got.KhasraNumber)
	assert.Equal(t, 0, countRows(t, db, "farmers"))
	assert.Equal(t, 0, countRows(t, db, "land_parcels"))
}

func TestRecordRepo_MissingDocument(t *testing.T) {
	db := openTestDB(t)
	repo := postgres.NewRecordRepo(db)

	rec := newSavedRecord(&domain.Document{ID: uuid.New()}, "", "")
	err := repo.SaveRecord(context.Background(), rec)

	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
	assert.Equal(t, 0, countRows(t, db, "land_parcels"))
}
