package handler

import (
	"encoding/json"

	"landrecords/internal/domain"
)

// Swagger type definitions for API documentation.
// Handlers also bind request bodies into the request types below.

// --- Request Types ---

// ProcessStoredRequest represents the body of POST /ocr/process.
type ProcessStoredRequest struct {
	StoragePath string `json:"storage_path" binding:"required" example:"scans/2024/05/01/550e8400-e29b-41d4-a716-446655440000.jpg"`
}

// UpdateDocumentRequest represents the document metadata patch body.
type UpdateDocumentRequest struct {
	Notes *string `json:"notes" example:"Verified against the tehsil copy"`
	Tags  *string `json:"tags" example:"fard,1947"`
}

// SaveRecordRequest represents the confirmed land record fields for a document.
type SaveRecordRequest struct {
	KhasraNumber string   `json:"khasra_number" example:"45"`
	OwnerName    string   `json:"owner_name" example:"Muhammad Aslam"`
	AreaKanal    *float64 `json:"area_kanal" example:"4"`
	AreaMarla    *float64 `json:"area_marla" example:"12"`
	Mauza        string   `json:"mauza" example:"Chak 45"`
	Tehsil       string   `json:"tehsil" example:"Okara"`
	District     string   `json:"district" example:"Okara"`
	LandType     string   `json:"land_type" example:"agricultural"`
}

// SummarizeRequest represents the body of POST /documents/{id}/summarize.
type SummarizeRequest struct {
	Kind string `json:"kind" example:"land_record"`
}

// AskRequest represents the body of POST /documents/{id}/ask.
type AskRequest struct {
	Question string `json:"question" binding:"required" example:"Who is the owner of this land?"`
}

// TranslateTextRequest represents the body of POST /translate/text.
type TranslateTextRequest struct {
	Text           string `json:"text" binding:"required" example:"خسرہ نمبر: 45"`
	SourceLanguage string `json:"source_language" example:"ur"`
	TargetLanguage string `json:"target_language" example:"en"`
}

// DetectTermsRequest represents the body of POST /translate/terms.
type DetectTermsRequest struct {
	Text string `json:"text" binding:"required" example:"خسرہ نمبر 45 موضع"`
}

// CreateDisputedLandRequest represents the body for creating a dispute case.
type CreateDisputedLandRequest struct {
	KhasraNumber       string               `json:"khasra_number" example:"112"`
	Mauza              string               `json:"mauza" example:"Chak 12"`
	Tehsil             string               `json:"tehsil" example:"Lahore City"`
	District           string               `json:"district" example:"Lahore"`
	DisputeType        domain.DisputeType   `json:"dispute_type" example:"refugee_claim"`
	DisputeStatus      domain.DisputeStatus `json:"dispute_status" example:"under_review"`
	DisputeDescription string               `json:"dispute_description" example:"Claim filed by a refugee family in 1948"`
	Claimants          json.RawMessage      `json:"claimants" swaggertype:"array,object"`
	Latitude           *float64             `json:"latitude" example:"31.5204"`
	Longitude          *float64             `json:"longitude" example:"74.3587"`
	AreaKanal          *float64             `json:"area_kanal" example:"8"`
	AreaMarla          *float64             `json:"area_marla" example:"5"`
	LandType           string               `json:"land_type" example:"agricultural"`
	HistoricalOwner    string               `json:"historical_owner" example:"Sardar Gurbachan Singh"`
	PartitionImpact    bool                 `json:"partition_impact" example:"true"`
	RedistributionYear *int                 `json:"redistribution_year" example:"1952"`
	CaseNumber         string               `json:"case_number" example:"LHR-1948-0042"`
	FiledDate          string               `json:"filed_date" example:"1948-03-15"`
	CourtJurisdiction  string               `json:"court_jurisdiction" example:"Lahore High Court"`
}

// UpdateDisputedLandRequest represents the body for editing a dispute case.
type UpdateDisputedLandRequest struct {
	DisputeStatus      *domain.DisputeStatus `json:"dispute_status" example:"resolved"`
	DisputeDescription *string               `json:"dispute_description" example:"Settled by mutual agreement"`
	Claimants          json.RawMessage       `json:"claimants" swaggertype:"array,object"`
	Latitude           *float64              `json:"latitude" example:"31.5204"`
	Longitude          *float64              `json:"longitude" example:"74.3587"`
	CaseNumber         *string               `json:"case_number" example:"LHR-1948-0042"`
	CourtJurisdiction  *string               `json:"court_jurisdiction" example:"Lahore High Court"`
	LastHearingDate    *string               `json:"last_hearing_date" example:"2024-02-01"`
	NextHearingDate    *string               `json:"next_hearing_date" example:"2024-06-01"`
}

// CreateFarmerRequest represents the body for registering a farmer.
type CreateFarmerRequest struct {
	NameLocal   string `json:"name_local" example:"محمد اسلم"`
	NameEnglish string `json:"name_english" example:"Muhammad Aslam"`
	FatherName  string `json:"father_name" example:"Abdul Rasheed"`
	Address     string `json:"address" example:"Chak 45, Okara"`
	Tehsil      string `json:"tehsil" example:"Okara"`
	District    string `json:"district" example:"Okara"`
	Phone       string `json:"phone" example:"+92-300-1234567"`
}

// SubscribeRequest represents a newsletter subscribe or unsubscribe body.
type SubscribeRequest struct {
	Email string `json:"email" binding:"required" example:"reader@example.com"`
}

// --- Response Types ---

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// CapabilitiesResponse represents the external engine status report.
type CapabilitiesResponse struct {
	Status       string              `json:"status" example:"ok"`
	Capabilities []domain.Capability `json:"capabilities"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed successfully"`
}

// DownloadURLResponse represents a document download link.
type DownloadURLResponse struct {
	DocumentID  string `json:"document_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	DownloadURL string `json:"download_url" example:"https://landrecords-uploads.s3.amazonaws.com/scans/...?X-Amz-Signature=..."`
}

// DetectedTermsResponse represents the glossary terms found in a text.
type DetectedTermsResponse struct {
	Terms interface{} `json:"terms"`
	Count int         `json:"count" example:"3"`
}

// BatchCreateResponse represents the result of a bulk insert.
type BatchCreateResponse struct {
	Created int `json:"created" example:"250"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
