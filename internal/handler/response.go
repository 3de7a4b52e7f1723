package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"landrecords/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	var (
		cfgErr   *domain.ConfigurationError
		transErr *domain.TransportError
		apiErr   *domain.APIError
		decErr   *domain.DecodeError
		chunkErr *domain.ChunkTranslationError
		rateErr  *domain.RateLimitError
	)

	switch {
	case errors.As(err, &chunkErr):
		return http.StatusBadGateway, "TRANSLATION_INCOMPLETE", chunkErr.Error()
	case errors.As(err, &rateErr):
		return http.StatusTooManyRequests, "RATE_LIMITED", rateErr.Error()
	case errors.As(err, &cfgErr):
		return http.StatusServiceUnavailable, "SERVICE_NOT_CONFIGURED", cfgErr.Error()
	case errors.As(err, &transErr):
		return http.StatusGatewayTimeout, "UPSTREAM_UNAVAILABLE", transErr.Service + " is unreachable; try again later"
	case errors.As(err, &apiErr):
		return http.StatusBadGateway, "UPSTREAM_ERROR", apiErr.Error()
	case errors.As(err, &decErr):
		return http.StatusUnprocessableEntity, "UNREADABLE_DOCUMENT", decErr.Error()
	case errors.Is(err, domain.ErrDocumentNotFound):
		return http.StatusNotFound, "DOCUMENT_NOT_FOUND", "document not found"
	case errors.Is(err, domain.ErrDisputedLandNotFound):
		return http.StatusNotFound, "DISPUTED_LAND_NOT_FOUND", "disputed land not found"
	case errors.Is(err, domain.ErrFarmerNotFound):
		return http.StatusNotFound, "FARMER_NOT_FOUND", "farmer not found"
	case errors.Is(err, domain.ErrParcelNotFound):
		return http.StatusNotFound, "PARCEL_NOT_FOUND", "land parcel not found"
	case errors.Is(err, domain.ErrSubscriberNotFound):
		return http.StatusNotFound, "SUBSCRIBER_NOT_FOUND", "email not found in subscriber list"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrAlreadySubscribed):
		return http.StatusConflict, "ALREADY_SUBSCRIBED", "email is already subscribed"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "unsupported file type; allowed: pdf, jpg, png, tiff, bmp, webp"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrEmptyFile):
		return http.StatusBadRequest, "EMPTY_FILE", "uploaded file is empty"
	case errors.Is(err, domain.ErrUploadFailed):
		return http.StatusInternalServerError, "UPLOAD_FAILED", "file upload to storage failed"
	case errors.Is(err, domain.ErrDocumentNotProcessed):
		return http.StatusBadRequest, "DOCUMENT_NOT_PROCESSED", "document has not been processed yet"
	case errors.Is(err, domain.ErrNoText):
		return http.StatusBadRequest, "NO_TEXT", "document has no extracted text"
	case errors.Is(err, domain.ErrInvalidEmail):
		return http.StatusBadRequest, "INVALID_EMAIL", "invalid email format"
	case errors.Is(err, domain.ErrInvalidSummaryKind):
		return http.StatusBadRequest, "INVALID_SUMMARY_KIND", "kind must be one of: general, land_record, legal, bullet_points, extract_data"
	case errors.Is(err, domain.ErrInvalidDateRange):
		return http.StatusBadRequest, "INVALID_DATE_RANGE", "'to' must not be before 'from'"
	case errors.Is(err, domain.ErrInvalidDate):
		return http.StatusBadRequest, "INVALID_DATE", "invalid date, expected YYYY-MM-DD"
	case errors.Is(err, domain.ErrInvalidDisputeStatus):
		return http.StatusBadRequest, "INVALID_DISPUTE_STATUS", "invalid dispute status"
	case errors.Is(err, domain.ErrInvalidDisputeType):
		return http.StatusBadRequest, "INVALID_DISPUTE_TYPE", "invalid dispute type"
	case errors.Is(err, domain.ErrInvalidClaimants):
		return http.StatusBadRequest, "INVALID_CLAIMANTS", "claimants must be a JSON array"
	case errors.Is(err, domain.ErrMissingRequiredFields):
		return http.StatusBadRequest, "MISSING_REQUIRED_FIELDS", "missing required fields"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] request failed (%s): %v", requestID, code, err)
	}
	RespondError(c, status, code, msg)
}

// parsePagination reads offset/limit query params. Limit defaults to 20, capped at 100.
func parsePagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}
