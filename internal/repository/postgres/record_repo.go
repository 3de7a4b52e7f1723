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

type recordRepo struct {
	db *sqlx.DB
}

// NewRecordRepo creates a new PostgreSQL-backed RecordSaver.
func NewRecordRepo(db *sqlx.DB) port.RecordSaver {
	return &recordRepo{db: db}
}

type existingParcel struct {
	ID        uuid.UUID  `db:"id"`
	FarmerID  *uuid.UUID `db:"farmer_id"`
	CreatedAt time.Time  `db:"created_at"`
}

func (r *recordRepo) SaveRecord(ctx context.Context, rec *port.SavedRecord) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("recordRepo.SaveRecord begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	doc := rec.Document

	// The document row lock serializes concurrent saves of one document.
	result, err := tx.ExecContext(ctx,
		`UPDATE documents SET
			khasra_number = $1, owner_name = $2, area_kanal = $3, area_marla = $4,
			mauza = $5, tehsil = $6, district = $7, is_saved = TRUE, updated_at = $8
		 WHERE id = $9`,
		doc.KhasraNumber, doc.OwnerName, doc.AreaKanal, doc.AreaMarla,
		doc.Mauza, doc.Tehsil, doc.District, now,
		doc.ID)
	if err != nil {
		return fmt.Errorf("recordRepo.SaveRecord document: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrDocumentNotFound
	}

	var prev *existingParcel
	var found existingParcel
	err = tx.GetContext(ctx, &found,
		`SELECT id, farmer_id, created_at FROM land_parcels
		 WHERE source_document_id = $1 ORDER BY created_at LIMIT 1`, doc.ID)
	switch {
	case err == nil:
		prev = &found
	case !errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("recordRepo.SaveRecord lookup: %w", err)
	}

	parcel := rec.Parcel
	parcel.SourceDocumentID = &doc.ID
	if prev != nil {
		parcel.FarmerID = prev.FarmerID
	}

	if rec.Farmer != nil {
		if prev != nil && prev.FarmerID != nil {
			rec.Farmer.ID = *prev.FarmerID
		}
		if err := upsertFarmer(ctx, tx, rec.Farmer, now); err != nil {
			return err
		}
		parcel.FarmerID = &rec.Farmer.ID
	}

	if prev != nil {
		parcel.ID = prev.ID
		parcel.CreatedAt = prev.CreatedAt
		parcel.UpdatedAt = now
		_, err = tx.ExecContext(ctx,
			`UPDATE land_parcels SET
				khasra_number = $1, mauza = $2, tehsil = $3, district = $4,
				area_kanal = $5, area_marla = $6, land_type = $7, ownership_status = $8,
				farmer_id = $9, updated_at = $10
			 WHERE id = $11`,
			parcel.KhasraNumber, parcel.Mauza, parcel.Tehsil, parcel.District,
			parcel.AreaKanal, parcel.AreaMarla, parcel.LandType, parcel.OwnershipStatus,
			parcel.FarmerID, parcel.UpdatedAt, parcel.ID)
	} else {
		parcel.CreatedAt = now
		parcel.UpdatedAt = now
		_, err = tx.ExecContext(ctx,
			`INSERT INTO land_parcels (
				id, khasra_number, mauza, tehsil, district, area_kanal, area_marla,
				land_type, ownership_status, farmer_id, source_document_id, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			parcel.ID, parcel.KhasraNumber, parcel.Mauza, parcel.Tehsil, parcel.District,
			parcel.AreaKanal, parcel.AreaMarla, parcel.LandType, parcel.OwnershipStatus,
			parcel.FarmerID, parcel.SourceDocumentID, parcel.CreatedAt, parcel.UpdatedAt)
	}
	if err != nil {
		return fmt.Errorf("recordRepo.SaveRecord parcel: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("recordRepo.SaveRecord commit: %w", err)
	}
	doc.IsSaved = true
	doc.UpdatedAt = now
	return nil
}

// upsertFarmer refreshes the farmer linked to an earlier save, or inserts it
// when that row is gone or never existed.
func upsertFarmer(ctx context.Context, tx *sqlx.Tx, farmer *domain.Farmer, now time.Time) error {
	farmer.UpdatedAt = now
	result, err := tx.ExecContext(ctx,
		`UPDATE farmers SET name_local = $1, tehsil = $2, district = $3, updated_at = $4
		 WHERE id = $5`,
		farmer.NameLocal, farmer.Tehsil, farmer.District, now, farmer.ID)
	if err != nil {
		return fmt.Errorf("recordRepo.SaveRecord farmer: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows > 0 {
		return nil
	}

	farmer.CreatedAt = now
	_, err = tx.ExecContext(ctx,
		`INSERT INTO farmers (id, name_local, name_english, father_name, address, tehsil, district, phone, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		farmer.ID, farmer.NameLocal, farmer.NameEnglish, farmer.FatherName, farmer.Address,
		farmer.Tehsil, farmer.District, farmer.Phone, farmer.CreatedAt, farmer.UpdatedAt)
	if err != nil {
		return fmt.Errorf("recordRepo.SaveRecord farmer: %w", err)
	}
	return nil
}
