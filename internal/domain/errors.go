package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound              = errors.New("resource not found")
	ErrUnsupportedFileType   = errors.New("unsupported file type")
	ErrFileTooLarge          = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed          = errors.New("file upload to storage failed")
	ErrEmptyFile             = errors.New("uploaded file is empty")
	ErrDocumentNotFound      = errors.New("document not found")
	ErrDocumentNotProcessed  = errors.New("document has not been processed")
	ErrNoText                = errors.New("document has no extracted text")
	ErrDisputedLandNotFound  = errors.New("disputed land not found")
	ErrFarmerNotFound        = errors.New("farmer not found")
	ErrParcelNotFound        = errors.New("land parcel not found")
	ErrSubscriberNotFound    = errors.New("email not found in subscriber list")
	ErrAlreadySubscribed     = errors.New("email is already subscribed")
	ErrInvalidEmail          = errors.New("invalid email format")
	ErrInvalidSummaryKind    = errors.New("unknown summary kind")
	ErrInvalidDateRange      = errors.New("invalid date range")
	ErrInvalidDisputeStatus  = errors.New("invalid dispute status")
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDate           = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidDisputeType    = errors.New("invalid dispute type")
	ErrInvalidClaimants      = errors.New("claimants must be a JSON array")
)

// ConfigurationError reports that an external service cannot be called
// because its credentials or settings are missing. Never retried.
type ConfigurationError struct {
	Service string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s not configured: %s", e.Service, e.Reason)
}

// NewConfigurationError creates a ConfigurationError for service.
func NewConfigurationError(service, reason string) *ConfigurationError {
	return &ConfigurationError{Service: service, Reason: reason}
}

// TransportError reports a network or timeout failure talking to an external
// service. Callers may retry it.
type TransportError struct {
	Service string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s transport failure: %v", e.Service, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewTransportError wraps err as a TransportError for service.
func NewTransportError(service string, err error) *TransportError {
	return &TransportError{Service: service, Err: err}
}

// APIError reports that an external service answered but rejected the request.
// Retrying without changing the request will not help.
type APIError struct {
	Service    string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s API error (status %d): %s", e.Service, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s API error: %s", e.Service, e.Message)
}

// NewAPIError creates an APIError carrying the service's message.
func NewAPIError(service string, statusCode int, message string) *APIError {
	return &APIError{Service: service, StatusCode: statusCode, Message: message}
}

// RateLimitError reports that an external service returned HTTP 429.
type RateLimitError struct {
	Service    string
	RetryAfter time.Duration
	Err        error
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s rate limited (retry after %s): %v", e.Service, e.RetryAfter, e.Err)
}

func (e *RateLimitError) Unwrap() error {
	return e.Err
}

// NewRateLimitError creates a RateLimitError. A non-positive retryAfterSecs defaults to 60s.
func NewRateLimitError(service string, err error, retryAfterSecs int) *RateLimitError {
	if retryAfterSecs <= 0 {
		retryAfterSecs = 60
	}
	return &RateLimitError{
		Service:    service,
		RetryAfter: time.Duration(retryAfterSecs) * time.Second,
		Err:        err,
	}
}

// DecodeError reports an unreadable image or PDF.
type DecodeError struct {
	Format string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("cannot decode document: %v", e.Err)
	}
	return fmt.Sprintf("cannot decode %s document: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NewDecodeError wraps err as a DecodeError.
func NewDecodeError(format string, err error) *DecodeError {
	return &DecodeError{Format: format, Err: err}
}

// ChunkTranslationError reports which chunk of a long document failed to
// translate. Chunk is 1-based; Start and End are rune offsets into the source.
type ChunkTranslationError struct {
	Chunk int
	Total int
	Start int
	End   int
	Err   error
}

func (e *ChunkTranslationError) Error() string {
	return fmt.Sprintf("translation of chunk %d/%d (characters %d-%d) failed: %v",
		e.Chunk, e.Total, e.Start, e.End, e.Err)
}

func (e *ChunkTranslationError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether err is transient and worth retrying.
func IsRetryable(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
