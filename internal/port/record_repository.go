package port

import (
	"context"

	"github.com/google/uuid"

	"landrecords/internal/domain"
)

// FarmerRepository defines the contract for farmer persistence.
type FarmerRepository interface {
	Create(ctx context.Context, farmer *domain.Farmer) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Farmer, error)
	List(ctx context.Context, district string, offset, limit int) ([]domain.Farmer, int, error)
}

// LandParcelRepository defines the contract for land parcel persistence.
type LandParcelRepository interface {
	Create(ctx context.Context, parcel *domain.LandParcel) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.LandParcel, error)
	List(ctx context.Context, khasra string, offset, limit int) ([]domain.LandParcel, int, error)
}

// SavedRecord is the set of rows written when a document's extraction is
// confirmed. Farmer is nil when no owner is known.
type SavedRecord struct {
	Document *domain.Document
	Farmer   *domain.Farmer
	Parcel   *domain.LandParcel
}

// RecordSaver persists a confirmed extraction in one transaction: the
// document fields and saved flag, the optional farmer and the land parcel.
// Saving the same document again updates the parcel and farmer it produced
// earlier instead of inserting new ones.
type RecordSaver interface {
	SaveRecord(ctx context.Context, rec *SavedRecord) error
}

// DisputedLandRepository defines the contract for disputed land case persistence.
type DisputedLandRepository interface {
	Create(ctx context.Context, land *domain.DisputedLand) error
	CreateBatch(ctx context.Context, lands []domain.DisputedLand) (int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DisputedLand, error)
	List(ctx context.Context, filter domain.DisputedLandFilter, offset, limit int) ([]domain.DisputedLand, int, error)
	ListMapPoints(ctx context.Context, district, tehsil string) ([]domain.DisputedLandMapPoint, error)
	Update(ctx context.Context, land *domain.DisputedLand) error
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*domain.DisputedLandStats, error)
	Districts(ctx context.Context) ([]string, error)
	Tehsils(ctx context.Context, district string) ([]string, error)
}

// SubscriberRepository defines the contract for newsletter subscriber persistence.
type SubscriberRepository interface {
	Create(ctx context.Context, sub *domain.NewsletterSubscriber) error
	GetByEmail(ctx context.Context, email string) (*domain.NewsletterSubscriber, error)
	UpdateStatus(ctx context.Context, sub *domain.NewsletterSubscriber) error
}
