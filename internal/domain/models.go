package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Document is one OCR processing attempt on one uploaded file.
type Document struct {
	ID               uuid.UUID        `db:"id" json:"id"`
	Filename         string           `db:"filename" json:"filename"`
	StoragePath      string           `db:"storage_path" json:"storage_path"`
	FileType         FileType         `db:"file_type" json:"file_type"`
	FileSizeKB       int              `db:"file_size_kb" json:"file_size_kb"`
	PageCount        int              `db:"page_count" json:"page_count"`
	OCRText          string           `db:"ocr_text" json:"ocr_text"`
	TranslatedText   string           `db:"translated_text" json:"translated_text"`
	DetectedLanguage string           `db:"detected_language" json:"detected_language"`
	OCRConfidence    float64          `db:"ocr_confidence" json:"ocr_confidence"`
	ProcessingStatus ProcessingStatus `db:"processing_status" json:"processing_status"`
	ProcessingError  string           `db:"processing_error" json:"processing_error,omitempty"`
	ProcessingTimeMS int64            `db:"processing_time_ms" json:"processing_time_ms"`
	AISummary        string           `db:"ai_summary" json:"ai_summary"`
	KhasraNumber     string           `db:"khasra_number" json:"khasra_number"`
	OwnerName        string           `db:"owner_name" json:"owner_name"`
	AreaKanal        *float64         `db:"area_kanal" json:"area_kanal"`
	AreaMarla        *float64         `db:"area_marla" json:"area_marla"`
	Mauza            string           `db:"mauza" json:"mauza"`
	Tehsil           string           `db:"tehsil" json:"tehsil"`
	District         string           `db:"district" json:"district"`
	IsSaved          bool             `db:"is_saved" json:"is_saved"`
	Notes            string           `db:"notes" json:"notes"`
	Tags             string           `db:"tags" json:"tags"`
	ProcessedAt      *time.Time       `db:"processed_at" json:"processed_at"`
	CreatedAt        time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time        `db:"updated_at" json:"updated_at"`
}

// ProcessingStats is the per-day aggregate ledger row.
type ProcessingStats struct {
	Date                  time.Time `db:"date" json:"date"`
	DocumentsProcessed    int64     `db:"documents_processed" json:"documents_processed"`
	DocumentsFailed       int64     `db:"documents_failed" json:"documents_failed"`
	TotalProcessingTimeMS int64     `db:"total_processing_time_ms" json:"total_processing_time_ms"`
	UrduCount             int64     `db:"urdu_count" json:"urdu_count"`
	HindiCount            int64     `db:"hindi_count" json:"hindi_count"`
	EnglishCount          int64     `db:"english_count" json:"english_count"`
}

// StatsSummary aggregates ledger rows over a date range.
type StatsSummary struct {
	From                 string           `json:"from"`
	To                   string           `json:"to"`
	TotalProcessed       int64            `json:"total_processed"`
	TotalFailed          int64            `json:"total_failed"`
	SuccessRate          float64          `json:"success_rate"`
	AvgProcessingTimeMS  float64          `json:"avg_processing_time"`
	LanguageDistribution map[string]int64 `json:"language_distribution"`
}

// LandRecordExtraction is the transient structured view pattern-matched out of OCR text.
type LandRecordExtraction struct {
	KhasraNumber string   `json:"khasra_number"`
	OwnerName    string   `json:"owner_name"`
	AreaKanal    *float64 `json:"area_kanal"`
	AreaMarla    *float64 `json:"area_marla"`
	Mauza        string   `json:"mauza"`
	Tehsil       string   `json:"tehsil"`
	District     string   `json:"district"`
}

// Farmer is a registered land holder.
type Farmer struct {
	ID          uuid.UUID `db:"id" json:"id"`
	NameLocal   string    `db:"name_local" json:"name_local"`
	NameEnglish string    `db:"name_english" json:"name_english"`
	FatherName  string    `db:"father_name" json:"father_name"`
	Address     string    `db:"address" json:"address"`
	Tehsil      string    `db:"tehsil" json:"tehsil"`
	District    string    `db:"district" json:"district"`
	Phone       string    `db:"phone" json:"phone"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// LandParcel is a plot identified by its khasra number.
type LandParcel struct {
	ID               uuid.UUID  `db:"id" json:"id"`
	KhasraNumber     string     `db:"khasra_number" json:"khasra_number"`
	Mauza            string     `db:"mauza" json:"mauza"`
	Tehsil           string     `db:"tehsil" json:"tehsil"`
	District         string     `db:"district" json:"district"`
	AreaKanal        *float64   `db:"area_kanal" json:"area_kanal"`
	AreaMarla        *float64   `db:"area_marla" json:"area_marla"`
	LandType         string     `db:"land_type" json:"land_type"`
	OwnershipStatus  string     `db:"ownership_status" json:"ownership_status"`
	FarmerID         *uuid.UUID `db:"farmer_id" json:"farmer_id"`
	SourceDocumentID *uuid.UUID `db:"source_document_id" json:"source_document_id"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
}

// DisputedLand is a land dispute case record.
type DisputedLand struct {
	ID                 uuid.UUID       `db:"id" json:"id"`
	KhasraNumber       string          `db:"khasra_number" json:"khasra_number"`
	Mauza              string          `db:"mauza" json:"mauza"`
	Tehsil             string          `db:"tehsil" json:"tehsil"`
	District           string          `db:"district" json:"district"`
	DisputeType        DisputeType     `db:"dispute_type" json:"dispute_type"`
	DisputeStatus      DisputeStatus   `db:"dispute_status" json:"dispute_status"`
	DisputeDescription string          `db:"dispute_description" json:"dispute_description"`
	Claimants          json.RawMessage `db:"claimants" json:"claimants" swaggertype:"array,object"`
	Latitude           *float64        `db:"latitude" json:"latitude"`
	Longitude          *float64        `db:"longitude" json:"longitude"`
	AreaKanal          *float64        `db:"area_kanal" json:"area_kanal"`
	AreaMarla          *float64        `db:"area_marla" json:"area_marla"`
	LandType           string          `db:"land_type" json:"land_type"`
	HistoricalOwner    string          `db:"historical_owner" json:"historical_owner"`
	PartitionImpact    bool            `db:"partition_impact" json:"partition_impact"`
	RedistributionYear *int            `db:"redistribution_year" json:"redistribution_year"`
	CaseNumber         string          `db:"case_number" json:"case_number"`
	FiledDate          *time.Time      `db:"filed_date" json:"filed_date"`
	LastHearingDate    *time.Time      `db:"last_hearing_date" json:"last_hearing_date"`
	NextHearingDate    *time.Time      `db:"next_hearing_date" json:"next_hearing_date"`
	CourtJurisdiction  string          `db:"court_jurisdiction" json:"court_jurisdiction"`
	SupportingDocs     json.RawMessage `db:"supporting_docs" json:"supporting_docs" swaggertype:"array,object"`
	CreatedAt          time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time       `db:"updated_at" json:"updated_at"`
	ResolvedAt         *time.Time      `db:"resolved_at" json:"resolved_at"`
}

// DisputedLandFilter narrows disputed land listings. Empty fields match all.
type DisputedLandFilter struct {
	District    string
	Tehsil      string
	DisputeType string
	Status      string
}

// DisputedLandMapPoint is the slim projection used for map rendering.
type DisputedLandMapPoint struct {
	ID              uuid.UUID     `db:"id" json:"id"`
	KhasraNumber    string        `db:"khasra_number" json:"khasra_number"`
	Mauza           string        `db:"mauza" json:"mauza"`
	Tehsil          string        `db:"tehsil" json:"tehsil"`
	District        string        `db:"district" json:"district"`
	Latitude        float64       `db:"latitude" json:"latitude"`
	Longitude       float64       `db:"longitude" json:"longitude"`
	DisputeType     DisputeType   `db:"dispute_type" json:"dispute_type"`
	DisputeStatus   DisputeStatus `db:"dispute_status" json:"dispute_status"`
	AreaKanal       *float64      `db:"area_kanal" json:"area_kanal"`
	ClaimantsCount  int           `db:"claimants_count" json:"claimants_count"`
	PartitionImpact bool          `db:"partition_impact" json:"partition_impact"`
}

// DisputedLandStats summarizes all dispute cases.
type DisputedLandStats struct {
	TotalDisputes     int            `json:"total_disputes"`
	ByType            map[string]int `json:"by_type"`
	ByStatus          map[string]int `json:"by_status"`
	ByDistrict        map[string]int `json:"by_district"`
	PartitionAffected int            `json:"partition_affected"`
}

// NewsletterSubscriber is one newsletter email address.
type NewsletterSubscriber struct {
	ID             uuid.UUID        `db:"id" json:"id"`
	Email          string           `db:"email" json:"email"`
	Status         SubscriberStatus `db:"status" json:"status"`
	SubscribedAt   time.Time        `db:"subscribed_at" json:"subscribed_at"`
	UnsubscribedAt *time.Time       `db:"unsubscribed_at" json:"unsubscribed_at"`
}

// Capability reports whether an external engine can be used.
type Capability struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
	Provider  string `json:"provider,omitempty"`
	Reason    string `json:"reason,omitempty"`
}
