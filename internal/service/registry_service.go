package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"landrecords/internal/domain"
	"landrecords/internal/port"
)

// CreateFarmerInput is the DTO for registering a farmer.
type CreateFarmerInput struct {
	NameLocal   string
	NameEnglish string
	FatherName  string
	Address     string
	Tehsil      string
	District    string
	Phone       string
}

// RegistryService exposes the farmer and land parcel registers.
type RegistryService interface {
	CreateFarmer(ctx context.Context, input CreateFarmerInput) (*domain.Farmer, error)
	GetFarmer(ctx context.Context, id uuid.UUID) (*domain.Farmer, error)
	ListFarmers(ctx context.Context, district string, offset, limit int) ([]domain.Farmer, int, error)
	GetParcel(ctx context.Context, id uuid.UUID) (*domain.LandParcel, error)
	ListParcels(ctx context.Context, khasra string, offset, limit int) ([]domain.LandParcel, int, error)
}

type registryService struct {
	farmerRepo port.FarmerRepository
	parcelRepo port.LandParcelRepository
}

// NewRegistryService creates a new RegistryService implementation.
func NewRegistryService(farmerRepo port.FarmerRepository, parcelRepo port.LandParcelRepository) RegistryService {
	return &registryService{farmerRepo: farmerRepo, parcelRepo: parcelRepo}
}

func (s *registryService) CreateFarmer(ctx context.Context, input CreateFarmerInput) (*domain.Farmer, error) {
	if strings.TrimSpace(input.NameLocal) == "" && strings.TrimSpace(input.NameEnglish) == "" {
		return nil, domain.ErrMissingRequiredFields
	}
	farmer := &domain.Farmer{
		ID:          uuid.New(),
		NameLocal:   strings.TrimSpace(input.NameLocal),
		NameEnglish: strings.TrimSpace(input.NameEnglish),
		FatherName:  input.FatherName,
		Address:     input.Address,
		Tehsil:      input.Tehsil,
		District:    input.District,
		Phone:       input.Phone,
	}
	if err := s.farmerRepo.Create(ctx, farmer); err != nil {
		return nil, err
	}
	return farmer, nil
}

func (s *registryService) GetFarmer(ctx context.Context, id uuid.UUID) (*domain.Farmer, error) {
	return s.farmerRepo.GetByID(ctx, id)
}

func (s *registryService) ListFarmers(ctx context.Context, district string, offset, limit int) ([]domain.Farmer, int, error) {
	return s.farmerRepo.List(ctx, district, offset, limit)
}

func (s *registryService) GetParcel(ctx context.Context, id uuid.UUID) (*domain.LandParcel, error) {
	return s.parcelRepo.GetByID(ctx, id)
}

func (s *registryService) ListParcels(ctx context.Context, khasra string, offset, limit int) ([]domain.LandParcel, int, error) {
	return s.parcelRepo.List(ctx, strings.TrimSpace(khasra), offset, limit)
}
