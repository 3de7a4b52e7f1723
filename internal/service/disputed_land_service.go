package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"landrecords/internal/domain"
	"landrecords/internal/port"
)

const dateLayout = "2006-01-02"

// CreateDisputedLandInput is the DTO for registering a dispute case.
type CreateDisputedLandInput struct {
	KhasraNumber       string
	Mauza              string
	Tehsil             string
	District           string
	DisputeType        domain.DisputeType
	DisputeStatus      domain.DisputeStatus
	DisputeDescription string
	Claimants          json.RawMessage
	Latitude           *float64
	Longitude          *float64
	AreaKanal          *float64
	AreaMarla          *float64
	LandType           string
	HistoricalOwner    string
	PartitionImpact    bool
	RedistributionYear *int
	CaseNumber         string
	FiledDate          string
	CourtJurisdiction  string
}

// UpdateDisputedLandInput is the DTO for editing a dispute case. Nil fields are left unchanged.
type UpdateDisputedLandInput struct {
	ID                 uuid.UUID
	DisputeStatus      *domain.DisputeStatus
	DisputeDescription *string
	Claimants          json.RawMessage
	Latitude           *float64
	Longitude          *float64
	CaseNumber         *string
	CourtJurisdiction  *string
	LastHearingDate    *string
	NextHearingDate    *string
}

// DisputedLandPage is one page of dispute cases.
type DisputedLandPage struct {
	Lands       []domain.DisputedLand `json:"lands"`
	Total       int                   `json:"total"`
	Pages       int                   `json:"pages"`
	CurrentPage int                   `json:"current_page"`
}

// DisputedLandService manages land dispute cases.
type DisputedLandService interface {
	List(ctx context.Context, filter domain.DisputedLandFilter, page, perPage int) (*DisputedLandPage, error)
	MapData(ctx context.Context, district, tehsil string) ([]domain.DisputedLandMapPoint, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DisputedLand, error)
	Create(ctx context.Context, input CreateDisputedLandInput) (*domain.DisputedLand, error)
	CreateBatch(ctx context.Context, inputs []CreateDisputedLandInput) (int, error)
	Update(ctx context.Context, input UpdateDisputedLandInput) (*domain.DisputedLand, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*domain.DisputedLandStats, error)
	Districts(ctx context.Context) ([]string, error)
	Tehsils(ctx context.Context, district string) ([]string, error)
}

type disputedLandService struct {
	repo port.DisputedLandRepository
	now  func() time.Time
}

// NewDisputedLandService creates a new DisputedLandService implementation.
func NewDisputedLandService(repo port.DisputedLandRepository) DisputedLandService {
	return &disputedLandService{repo: repo, now: time.Now}
}

func (s *disputedLandService) List(ctx context.Context, filter domain.DisputedLandFilter, page, perPage int) (*DisputedLandPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 50
	}
	if perPage > 500 {
		perPage = 500
	}

	lands, total, err := s.repo.List(ctx, filter, (page-1)*perPage, perPage)
	if err != nil {
		return nil, err
	}
	if lands == nil {
		lands = []domain.DisputedLand{}
	}
	return &DisputedLandPage{
		Lands:       lands,
		Total:       total,
		Pages:       (total + perPage - 1) / perPage,
		CurrentPage: page,
	}, nil
}

func (s *disputedLandService) MapData(ctx context.Context, district, tehsil string) ([]domain.DisputedLandMapPoint, error) {
	points, err := s.repo.ListMapPoints(ctx, district, tehsil)
	if err != nil {
		return nil, err
	}
	if points == nil {
		points = []domain.DisputedLandMapPoint{}
	}
	return points, nil
}

func (s *disputedLandService) GetByID(ctx context.Context, id uuid.UUID) (*domain.DisputedLand, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *disputedLandService) build(input CreateDisputedLandInput) (*domain.DisputedLand, error) {
	if strings.TrimSpace(input.KhasraNumber) == "" || strings.TrimSpace(input.District) == "" ||
		strings.TrimSpace(input.Tehsil) == "" || strings.TrimSpace(input.Mauza) == "" || input.DisputeType == "" {
		return nil, domain.ErrMissingRequiredFields
	}
	if !domain.ValidDisputeTypes[input.DisputeType] {
		return nil, domain.ErrInvalidDisputeType
	}
	status := input.DisputeStatus
	if status == "" {
		status = domain.DisputeStatusUnderReview
	}
	if !domain.ValidDisputeStatuses[status] {
		return nil, domain.ErrInvalidDisputeStatus
	}
	filed, err := parseDate(input.FiledDate)
	if err != nil {
		return nil, err
	}
	claimants, err := normalizeJSONArray(input.Claimants)
	if err != nil {
		return nil, err
	}

	land := &domain.DisputedLand{
		ID:                 uuid.New(),
		KhasraNumber:       strings.TrimSpace(input.KhasraNumber),
		Mauza:              input.Mauza,
		Tehsil:             input.Tehsil,
		District:           input.District,
		DisputeType:        input.DisputeType,
		DisputeStatus:      status,
		DisputeDescription: input.DisputeDescription,
		Claimants:          claimants,
		Latitude:           input.Latitude,
		Longitude:          input.Longitude,
		AreaKanal:          input.AreaKanal,
		AreaMarla:          input.AreaMarla,
		LandType:           input.LandType,
		HistoricalOwner:    input.HistoricalOwner,
		PartitionImpact:    input.PartitionImpact,
		RedistributionYear: input.RedistributionYear,
		CaseNumber:         input.CaseNumber,
		FiledDate:          filed,
		CourtJurisdiction:  input.CourtJurisdiction,
		SupportingDocs:     json.RawMessage("[]"),
	}
	if status == domain.DisputeStatusResolved {
		now := s.now().UTC()
		land.ResolvedAt = &now
	}
	return land, nil
}

func (s *disputedLandService) Create(ctx context.Context, input CreateDisputedLandInput) (*domain.DisputedLand, error) {
	land, err := s.build(input)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, land); err != nil {
		return nil, err
	}
	return land, nil
}

func (s *disputedLandService) CreateBatch(ctx context.Context, inputs []CreateDisputedLandInput) (int, error) {
	lands := make([]domain.DisputedLand, 0, len(inputs))
	for i, in := range inputs {
		land, err := s.build(in)
		if err != nil {
			log.Printf("disputedLandService.CreateBatch: skipping row %d: %v", i+1, err)
			continue
		}
		lands = append(lands, *land)
	}
	return s.repo.CreateBatch(ctx, lands)
}

func (s *disputedLandService) Update(ctx context.Context, input UpdateDisputedLandInput) (*domain.DisputedLand, error) {
	land, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.DisputeStatus != nil {
		if !domain.ValidDisputeStatuses[*input.DisputeStatus] {
			return nil, domain.ErrInvalidDisputeStatus
		}
		land.DisputeStatus = *input.DisputeStatus
	}
	if input.DisputeDescription != nil {
		land.DisputeDescription = *input.DisputeDescription
	}
	if input.Claimants != nil {
		claimants, err := normalizeJSONArray(input.Claimants)
		if err != nil {
			return nil, err
		}
		land.Claimants = claimants
	}
	if input.Latitude != nil {
		land.Latitude = input.Latitude
	}
	if input.Longitude != nil {
		land.Longitude = input.Longitude
	}
	if input.CaseNumber != nil {
		land.CaseNumber = *input.CaseNumber
	}
	if input.CourtJurisdiction != nil {
		land.CourtJurisdiction = *input.CourtJurisdiction
	}
	if input.LastHearingDate != nil && *input.LastHearingDate != "" {
		if land.LastHearingDate, err = parseDate(*input.LastHearingDate); err != nil {
			return nil, err
		}
	}
	if input.NextHearingDate != nil && *input.NextHearingDate != "" {
		if land.NextHearingDate, err = parseDate(*input.NextHearingDate); err != nil {
			return nil, err
		}
	}

	// resolved_at records the first resolution only.
	if land.DisputeStatus == domain.DisputeStatusResolved && land.ResolvedAt == nil {
		now := s.now().UTC()
		land.ResolvedAt = &now
	}

	if err := s.repo.Update(ctx, land); err != nil {
		return nil, err
	}
	return land, nil
}

func (s *disputedLandService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *disputedLandService) Stats(ctx context.Context) (*domain.DisputedLandStats, error) {
	return s.repo.Stats(ctx)
}

func (s *disputedLandService) Districts(ctx context.Context) ([]string, error) {
	return s.repo.Districts(ctx)
}

func (s *disputedLandService) Tehsils(ctx context.Context, district string) ([]string, error) {
	return s.repo.Tehsils(ctx, district)
}

func parseDate(v string) (*time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	return &t, nil
}

// normalizeJSONArray accepts a JSON array (or nothing) and returns it compacted.
func normalizeJSONArray(raw json.RawMessage) (json.RawMessage, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return json.RawMessage("[]"), nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, domain.ErrInvalidClaimants
	}
	out, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	return out, nil
}
