package domain

// FileType represents the allowed file types for upload.
type FileType string

const (
	FileTypePDF  FileType = "pdf"
	FileTypeJPG  FileType = "jpg"
	FileTypePNG  FileType = "png"
	FileTypeTIFF FileType = "tiff"
	FileTypeBMP  FileType = "bmp"
	FileTypeWEBP FileType = "webp"
)

// AllowedFileTypes maps FileType to its MIME content type.
var AllowedFileTypes = map[FileType]string{
	FileTypePDF:  "application/pdf",
	FileTypeJPG:  "image/jpeg",
	FileTypePNG:  "image/png",
	FileTypeTIFF: "image/tiff",
	FileTypeBMP:  "image/bmp",
	FileTypeWEBP: "image/webp",
}

// AllowedContentTypes maps sniffed MIME content types back to FileType.
var AllowedContentTypes = map[string]FileType{
	"application/pdf": FileTypePDF,
	"image/jpeg":      FileTypeJPG,
	"image/png":       FileTypePNG,
	"image/tiff":      FileTypeTIFF,
	"image/bmp":       FileTypeBMP,
	"image/webp":      FileTypeWEBP,
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf":  FileTypePDF,
	"jpg":  FileTypeJPG,
	"jpeg": FileTypeJPG,
	"png":  FileTypePNG,
	"tif":  FileTypeTIFF,
	"tiff": FileTypeTIFF,
	"bmp":  FileTypeBMP,
	"webp": FileTypeWEBP,
}

// ProcessingStatus tracks a Document through OCR.
type ProcessingStatus string

const (
	ProcessingStatusPending   ProcessingStatus = "pending"
	ProcessingStatusProcessed ProcessingStatus = "processed"
	ProcessingStatusFailed    ProcessingStatus = "failed"
)

// Outcome is the result of one processing attempt, as recorded in the ledger.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// Canonical language names stored on documents.
const (
	LanguageUrdu     = "urdu"
	LanguageHindi    = "hindi"
	LanguageEnglish  = "english"
	LanguagePunjabi  = "punjabi"
	LanguageKashmiri = "kashmiri"
	LanguageArabic   = "arabic"
	LanguageUnknown  = "unknown"
)

// SummaryKind selects the prompt used for AI summaries.
type SummaryKind string

const (
	SummaryGeneral      SummaryKind = "general"
	SummaryLandRecord   SummaryKind = "land_record"
	SummaryLegal        SummaryKind = "legal"
	SummaryBulletPoints SummaryKind = "bullet_points"
	SummaryExtractData  SummaryKind = "extract_data"
)

// ValidSummaryKinds lists the accepted summary kinds.
var ValidSummaryKinds = map[SummaryKind]bool{
	SummaryGeneral:      true,
	SummaryLandRecord:   true,
	SummaryLegal:        true,
	SummaryBulletPoints: true,
	SummaryExtractData:  true,
}

// DisputeType classifies a disputed land case.
type DisputeType string

const (
	DisputeRefugeeClaim         DisputeType = "refugee_claim"
	DisputeMuhajireenClaim      DisputeType = "muhajireen_claim"
	DisputeRedistributed        DisputeType = "redistributed"
	DisputeOverlappingOwnership DisputeType = "overlapping_ownership"
	DisputeInheritance          DisputeType = "inheritance"
)

// DisputeStatus tracks a disputed land case.
type DisputeStatus string

const (
	DisputeStatusUnderReview  DisputeStatus = "under_review"
	DisputeStatusPendingCourt DisputeStatus = "pending_court"
	DisputeStatusResolved     DisputeStatus = "resolved"
	DisputeStatusClosed       DisputeStatus = "closed"
)

// SubscriberStatus is the state of a newsletter subscription.
type SubscriberStatus string

const (
	SubscriberActive       SubscriberStatus = "active"
	SubscriberUnsubscribed SubscriberStatus = "unsubscribed"
)

// ValidDisputeStatuses lists accepted case statuses. The seed data also uses
// the investigation and hearing states.
var ValidDisputeStatuses = map[DisputeStatus]bool{
	DisputeStatusUnderReview:  true,
	DisputeStatusPendingCourt: true,
	DisputeStatusResolved:     true,
	DisputeStatusClosed:       true,
	"pending":                 true,
	"under_investigation":     true,
	"court_hearing":           true,
	"rejected":                true,
}

// ValidDisputeTypes lists accepted dispute classifications.
var ValidDisputeTypes = map[DisputeType]bool{
	DisputeRefugeeClaim:         true,
	DisputeMuhajireenClaim:      true,
	DisputeRedistributed:        true,
	DisputeOverlappingOwnership: true,
	DisputeInheritance:          true,
}
