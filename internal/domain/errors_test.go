package domain_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"landrecords/internal/domain"
)

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"transport", domain.NewTransportError("vision", errors.New("reset")), true},
		{"wrapped transport", fmt.Errorf("ocr: %w", domain.NewTransportError("vision", errors.New("eof"))), true},
		{"api", domain.NewAPIError("vision", 400, "bad image"), false},
		{"configuration", domain.NewConfigurationError("vision", "api key is not set"), false},
		{"decode", domain.NewDecodeError("png", errors.New("bad crc")), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.IsRetryable(tt.err))
		})
	}
}

func TestNewRateLimitError_DefaultRetryAfter(t *testing.T) {
	assert.Equal(t, 60*time.Second, domain.NewRateLimitError("claude", nil, 0).RetryAfter)
	assert.Equal(t, 12*time.Second, domain.NewRateLimitError("claude", nil, 12).RetryAfter)
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "translate not configured: api key is not set",
		domain.NewConfigurationError("translate", "api key is not set").Error())
	assert.Equal(t, "vision API error (status 403): denied",
		domain.NewAPIError("vision", 403, "denied").Error())
	assert.Equal(t, "vision API error: empty response",
		domain.NewAPIError("vision", 0, "empty response").Error())
	assert.Equal(t, "cannot decode document: eof",
		domain.NewDecodeError("", errors.New("eof")).Error())

	chunk := &domain.ChunkTranslationError{Chunk: 2, Total: 5, Start: 5000, End: 9800, Err: errors.New("quota")}
	assert.Equal(t, "translation of chunk 2/5 (characters 5000-9800) failed: quota", chunk.Error())
	assert.EqualError(t, errors.Unwrap(chunk), "quota")
}
