package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"landrecords/internal/domain"
	"landrecords/internal/port"
)

type parcelRepo struct {
	db *sqlx.DB
}

// NewLandParcelRepo creates a new PostgreSQL-backed LandParcelRepository.
func NewLandParcelRepo(db *sqlx.DB) port.LandParcelRepository {
	return &parcelRepo{db: db}
}

func (r *parcelRepo) Create(ctx context.Context, parcel *domain.LandParcel) error {
	now := time.Now().UTC()
	parcel.CreatedAt = now
	parcel.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO land_parcels (
			id, khasra_number, mauza, tehsil, district, area_kanal, area_marla,
			land_type, ownership_status, farmer_id, source_document_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		parcel.ID, parcel.KhasraNumber, parcel.Mauza, parcel.Tehsil, parcel.District,
		parcel.AreaKanal, parcel.AreaMarla, parcel.LandType, parcel.OwnershipStatus,
		parcel.FarmerID, parcel.SourceDocumentID, parcel.CreatedAt, parcel.UpdatedAt)
	if err != nil {
		return fmt.Errorf("parcelRepo.Create: %w", err)
	}
	return nil
}

func (r *parcelRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.LandParcel, error) {
	var parcel domain.LandParcel
	err := r.db.GetContext(ctx, &parcel, "SELECT * FROM land_parcels WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrParcelNotFound
		}
		return nil, fmt.Errorf("parcelRepo.GetByID: %w", err)
	}
	return &parcel, nil
}

func (r *parcelRepo) List(ctx context.Context, khasra string, offset, limit int) ([]domain.LandParcel, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM land_parcels WHERE ($1 = '' OR khasra_number = $1)", khasra)
	if err != nil {
		return nil, 0, fmt.Errorf("parcelRepo.List count: %w", err)
	}

	var parcels []domain.LandParcel
	err = r.db.SelectContext(ctx, &parcels,
		`SELECT * FROM land_parcels WHERE ($1 = '' OR khasra_number = $1)
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		khasra, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("parcelRepo.List: %w", err)
	}
	return parcels, total, nil
}
