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

type farmerRepo struct {
	db *sqlx.DB
}

// NewFarmerRepo creates a new PostgreSQL-backed FarmerRepository.
func NewFarmerRepo(db *sqlx.DB) port.FarmerRepository {
	return &farmerRepo{db: db}
}

func (r *farmerRepo) Create(ctx context.Context, farmer *domain.Farmer) error {
	now := time.Now().UTC()
	farmer.CreatedAt = now
	farmer.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO farmers (id, name_local, name_english, father_name, address, tehsil, district, phone, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		farmer.ID, farmer.NameLocal, farmer.NameEnglish, farmer.FatherName, farmer.Address,
		farmer.Tehsil, farmer.District, farmer.Phone, farmer.CreatedAt, farmer.UpdatedAt)
	if err != nil {
		return fmt.Errorf("farmerRepo.Create: %w", err)
	}
	return nil
}

func (r *farmerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Farmer, error) {
	var farmer domain.Farmer
	err := r.db.GetContext(ctx, &farmer, "SELECT * FROM farmers WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFarmerNotFound
		}
		return nil, fmt.Errorf("farmerRepo.GetByID: %w", err)
	}
	return &farmer, nil
}

func (r *farmerRepo) List(ctx context.Context, district string, offset, limit int) ([]domain.Farmer, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM farmers WHERE ($1 = '' OR district = $1)", district)
	if err != nil {
		return nil, 0, fmt.Errorf("farmerRepo.List count: %w", err)
	}

	var farmers []domain.Farmer
	err = r.db.SelectContext(ctx, &farmers,
		`SELECT * FROM farmers WHERE ($1 = '' OR district = $1)
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		district, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("farmerRepo.List: %w", err)
	}
	return farmers, total, nil
}
