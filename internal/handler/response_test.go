package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landrecords/internal/domain"
	"landrecords/internal/handler"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) handler.APIResponse {
	t.Helper()
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	resp := decode(t, w)
	require.NotNil(t, resp.Error)
	assert.False(t, resp.Success)
	return resp.Error.Code
}

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"chunk failure", &domain.ChunkTranslationError{Chunk: 2, Total: 3, Err: errors.New("x")}, http.StatusBadGateway, "TRANSLATION_INCOMPLETE"},
		{"rate limited", domain.NewRateLimitError("summarizer", errors.New("429"), 5), http.StatusTooManyRequests, "RATE_LIMITED"},
		{"not configured", domain.NewConfigurationError("vision", "api key is not set"), http.StatusServiceUnavailable, "SERVICE_NOT_CONFIGURED"},
		{"transport", domain.NewTransportError("vision", errors.New("timeout")), http.StatusGatewayTimeout, "UPSTREAM_UNAVAILABLE"},
		{"upstream api", domain.NewAPIError("translate", 400, "bad"), http.StatusBadGateway, "UPSTREAM_ERROR"},
		{"decode", domain.NewDecodeError("jpeg", errors.New("bad huffman")), http.StatusUnprocessableEntity, "UNREADABLE_DOCUMENT"},
		{"wrapped not found", fmt.Errorf("loading: %w", domain.ErrDocumentNotFound), http.StatusNotFound, "DOCUMENT_NOT_FOUND"},
		{"dispute not found", domain.ErrDisputedLandNotFound, http.StatusNotFound, "DISPUTED_LAND_NOT_FOUND"},
		{"subscriber", domain.ErrSubscriberNotFound, http.StatusNotFound, "SUBSCRIBER_NOT_FOUND"},
		{"already subscribed", domain.ErrAlreadySubscribed, http.StatusConflict, "ALREADY_SUBSCRIBED"},
		{"too large", domain.ErrFileTooLarge, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"},
		{"not processed", domain.ErrDocumentNotProcessed, http.StatusBadRequest, "DOCUMENT_NOT_PROCESSED"},
		{"no text", domain.ErrNoText, http.StatusBadRequest, "NO_TEXT"},
		{"date range", domain.ErrInvalidDateRange, http.StatusBadRequest, "INVALID_DATE_RANGE"},
		{"claimants", domain.ErrInvalidClaimants, http.StatusBadRequest, "INVALID_CLAIMANTS"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code, msg := handler.MapDomainError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, code)
			assert.NotEmpty(t, msg)
		})
	}
}

func TestMapDomainError_ChunkWinsOverCause(t *testing.T) {
	err := &domain.ChunkTranslationError{Chunk: 1, Total: 2, Err: domain.NewTransportError("translate", errors.New("reset"))}

	status, code, _ := handler.MapDomainError(err)
	assert.Equal(t, http.StatusBadGateway, status)
	assert.Equal(t, "TRANSLATION_INCOMPLETE", code)
}

func TestHandleError_InternalMessageHidden(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/", http.NoBody)

	handler.HandleError(c, errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
}
