package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"landrecords/internal/domain"
	"landrecords/internal/port"
)

type disputedLandRepo struct {
	db *sqlx.DB
}

// NewDisputedLandRepo creates a new PostgreSQL-backed DisputedLandRepository.
func NewDisputedLandRepo(db *sqlx.DB) port.DisputedLandRepository {
	return &disputedLandRepo{db: db}
}

const disputedLandInsertColumns = `id, khasra_number, mauza, tehsil, district, dispute_type, dispute_status,
	dispute_description, claimants, latitude, longitude, area_kanal, area_marla, land_type,
	historical_owner, partition_impact, redistribution_year, case_number, filed_date,
	last_hearing_date, next_hearing_date, court_jurisdiction, supporting_docs,
	created_at, updated_at, resolved_at`

const disputedLandColumnCount = 26

// batchSize keeps multi-row inserts under the PostgreSQL parameter limit.
const batchSize = 500

func disputedLandArgs(l *domain.DisputedLand) []interface{} {
	return []interface{}{
		l.ID, l.KhasraNumber, l.Mauza, l.Tehsil, l.District, l.DisputeType, l.DisputeStatus,
		l.DisputeDescription, jsonOrEmptyArray(l.Claimants), l.Latitude, l.Longitude, l.AreaKanal, l.AreaMarla, l.LandType,
		l.HistoricalOwner, l.PartitionImpact, l.RedistributionYear, l.CaseNumber, l.FiledDate,
		l.LastHearingDate, l.NextHearingDate, l.CourtJurisdiction, jsonOrEmptyArray(l.SupportingDocs),
		l.CreatedAt, l.UpdatedAt, l.ResolvedAt,
	}
}

func jsonOrEmptyArray(raw []byte) string {
	if len(raw) == 0 {
		return "[]"
	}
	return string(raw)
}

func placeholders(offset, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", offset+i+1)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (r *disputedLandRepo) Create(ctx context.Context, land *domain.DisputedLand) error {
	now := time.Now().UTC()
	land.CreatedAt = now
	land.UpdatedAt = now

	query := fmt.Sprintf("INSERT INTO disputed_lands (%s) VALUES %s",
		disputedLandInsertColumns, placeholders(0, disputedLandColumnCount))
	if _, err := r.db.ExecContext(ctx, query, disputedLandArgs(land)...); err != nil {
		return fmt.Errorf("disputedLandRepo.Create: %w", err)
	}
	return nil
}

func (r *disputedLandRepo) CreateBatch(ctx context.Context, lands []domain.DisputedLand) (int, error) {
	if len(lands) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("disputedLandRepo.CreateBatch begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	inserted := 0
	for start := 0; start < len(lands); start += batchSize {
		end := start + batchSize
		if end > len(lands) {
			end = len(lands)
		}

		valueStrings := make([]string, 0, end-start)
		valueArgs := make([]interface{}, 0, (end-start)*disputedLandColumnCount)
		for i := start; i < end; i++ {
			l := &lands[i]
			if l.CreatedAt.IsZero() {
				l.CreatedAt = now
			}
			l.UpdatedAt = now
			valueStrings = append(valueStrings, placeholders((i-start)*disputedLandColumnCount, disputedLandColumnCount))
			valueArgs = append(valueArgs, disputedLandArgs(l)...)
		}

		query := fmt.Sprintf("INSERT INTO disputed_lands (%s) VALUES %s",
			disputedLandInsertColumns, strings.Join(valueStrings, ", "))
		if _, err := tx.ExecContext(ctx, query, valueArgs...); err != nil {
			return 0, fmt.Errorf("disputedLandRepo.CreateBatch: %w", err)
		}
		inserted += end - start
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("disputedLandRepo.CreateBatch commit: %w", err)
	}
	return inserted, nil
}

func (r *disputedLandRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.DisputedLand, error) {
	var land domain.DisputedLand
	err := r.db.GetContext(ctx, &land, "SELECT * FROM disputed_lands WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDisputedLandNotFound
		}
		return nil, fmt.Errorf("disputedLandRepo.GetByID: %w", err)
	}
	return &land, nil
}

// buildDisputeWhere constructs the WHERE clause for disputed land queries.
func buildDisputeWhere(filter domain.DisputedLandFilter, base string) (clause string, args []interface{}) {
	clause = base
	argN := 1

	if filter.District != "" {
		clause += fmt.Sprintf(" AND district = $%d", argN)
		args = append(args, filter.District)
		argN++
	}
	if filter.Tehsil != "" {
		clause += fmt.Sprintf(" AND tehsil = $%d", argN)
		args = append(args, filter.Tehsil)
		argN++
	}
	if filter.DisputeType != "" {
		clause += fmt.Sprintf(" AND dispute_type = $%d", argN)
		args = append(args, filter.DisputeType)
		argN++
	}
	if filter.Status != "" {
		clause += fmt.Sprintf(" AND dispute_status = $%d", argN)
		args = append(args, filter.Status)
		argN++ //nolint:ineffassign // argN kept incremented for consistency
	}
	return clause, args
}

func (r *disputedLandRepo) List(ctx context.Context, filter domain.DisputedLandFilter, offset, limit int) ([]domain.DisputedLand, int, error) {
	where, args := buildDisputeWhere(filter, "WHERE TRUE")

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM disputed_lands "+where, args...); err != nil {
		return nil, 0, fmt.Errorf("disputedLandRepo.List count: %w", err)
	}

	n := len(args)
	query := fmt.Sprintf("SELECT * FROM disputed_lands %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d", where, n+1, n+2)
	var lands []domain.DisputedLand
	if err := r.db.SelectContext(ctx, &lands, query, append(args, limit, offset)...); err != nil {
		return nil, 0, fmt.Errorf("disputedLandRepo.List: %w", err)
	}
	return lands, total, nil
}

func (r *disputedLandRepo) ListMapPoints(ctx context.Context, district, tehsil string) ([]domain.DisputedLandMapPoint, error) {
	where, args := buildDisputeWhere(domain.DisputedLandFilter{District: district, Tehsil: tehsil},
		"WHERE latitude IS NOT NULL AND longitude IS NOT NULL")

	var points []domain.DisputedLandMapPoint
	err := r.db.SelectContext(ctx, &points,
		`SELECT id, khasra_number, mauza, tehsil, district, latitude, longitude,
			dispute_type, dispute_status, area_kanal, partition_impact,
			COALESCE(jsonb_array_length(claimants), 0) AS claimants_count
		 FROM disputed_lands `+where, args...)
	if err != nil {
		return nil, fmt.Errorf("disputedLandRepo.ListMapPoints: %w", err)
	}
	return points, nil
}

func (r *disputedLandRepo) Update(ctx context.Context, land *domain.DisputedLand) error {
	land.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE disputed_lands SET
			dispute_status = $1, dispute_description = $2, claimants = $3,
			latitude = $4, longitude = $5, case_number = $6, court_jurisdiction = $7,
			last_hearing_date = $8, next_hearing_date = $9, resolved_at = $10, updated_at = $11
		 WHERE id = $12`,
		land.DisputeStatus, land.DisputeDescription, jsonOrEmptyArray(land.Claimants),
		land.Latitude, land.Longitude, land.CaseNumber, land.CourtJurisdiction,
		land.LastHearingDate, land.NextHearingDate, land.ResolvedAt, land.UpdatedAt,
		land.ID)
	if err != nil {
		return fmt.Errorf("disputedLandRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrDisputedLandNotFound
	}
	return nil
}

func (r *disputedLandRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM disputed_lands WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("disputedLandRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrDisputedLandNotFound
	}
	return nil
}

type groupCount struct {
	Key   string `db:"key"`
	Count int    `db:"count"`
}

func (r *disputedLandRepo) countBy(ctx context.Context, column string) (map[string]int, error) {
	var rows []groupCount
	query := fmt.Sprintf("SELECT %s AS key, COUNT(*) AS count FROM disputed_lands GROUP BY %s", column, column)
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}
	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.Key] = row.Count
	}
	return out, nil
}

func (r *disputedLandRepo) Stats(ctx context.Context) (*domain.DisputedLandStats, error) {
	var stats domain.DisputedLandStats
	if err := r.db.GetContext(ctx, &stats.TotalDisputes, "SELECT COUNT(*) FROM disputed_lands"); err != nil {
		return nil, fmt.Errorf("disputedLandRepo.Stats total: %w", err)
	}

	var err error
	if stats.ByType, err = r.countBy(ctx, "dispute_type"); err != nil {
		return nil, fmt.Errorf("disputedLandRepo.Stats by type: %w", err)
	}
	if stats.ByStatus, err = r.countBy(ctx, "dispute_status"); err != nil {
		return nil, fmt.Errorf("disputedLandRepo.Stats by status: %w", err)
	}
	if stats.ByDistrict, err = r.countBy(ctx, "district"); err != nil {
		return nil, fmt.Errorf("disputedLandRepo.Stats by district: %w", err)
	}

	if err := r.db.GetContext(ctx, &stats.PartitionAffected,
		"SELECT COUNT(*) FROM disputed_lands WHERE partition_impact = TRUE"); err != nil {
		return nil, fmt.Errorf("disputedLandRepo.Stats partition: %w", err)
	}
	return &stats, nil
}

func (r *disputedLandRepo) Districts(ctx context.Context) ([]string, error) {
	districts := []string{}
	if err := r.db.SelectContext(ctx, &districts,
		"SELECT DISTINCT district FROM disputed_lands ORDER BY district"); err != nil {
		return nil, fmt.Errorf("disputedLandRepo.Districts: %w", err)
	}
	return districts, nil
}

func (r *disputedLandRepo) Tehsils(ctx context.Context, district string) ([]string, error) {
	tehsils := []string{}
	if err := r.db.SelectContext(ctx, &tehsils,
		"SELECT DISTINCT tehsil FROM disputed_lands WHERE ($1 = '' OR district = $1) ORDER BY tehsil",
		district); err != nil {
		return nil, fmt.Errorf("disputedLandRepo.Tehsils: %w", err)
	}
	return tehsils, nil
}
