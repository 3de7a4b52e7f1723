package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landrecords/internal/config"
	"landrecords/internal/domain"
	"landrecords/internal/summarizer/openai"
)

func TestSummarizer_Summarize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "gpt-4.1", body["model"])
		assert.EqualValues(t, 2048, body["max_completion_tokens"])

		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"- owner: A\n- area: 4 kanal"},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	s := openai.NewSummarizerWithEndpoint(&config.SummarizerConfig{APIKey: "sk-test", Model: "gpt-4.1"}, srv.URL)
	out, err := s.Summarize(context.Background(), "text", domain.SummaryBulletPoints)
	require.NoError(t, err)
	assert.Equal(t, "- owner: A\n- area: 4 kanal", out.Text)
	assert.Equal(t, "gpt-4.1", out.Model)
}

func TestSummarizer_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "7")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"type":"rate_limit_exceeded"}}`))
	}))
	defer srv.Close()

	s := openai.NewSummarizerWithEndpoint(&config.SummarizerConfig{APIKey: "k"}, srv.URL)
	_, err := s.Ask(context.Background(), "text", "q")

	var rl *domain.RateLimitError
	require.ErrorAs(t, err, &rl)
	assert.Equal(t, 7*time.Second, rl.RetryAfter)
	assert.Contains(t, rl.Error(), "rate_limit_exceeded")
}

func TestSummarizer_EmptyChoice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"  "},"finish_reason":"length"}]}`))
	}))
	defer srv.Close()

	s := openai.NewSummarizerWithEndpoint(&config.SummarizerConfig{APIKey: "k"}, srv.URL)
	_, err := s.Summarize(context.Background(), "text", domain.SummaryGeneral)

	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Message, "length")
}

func TestSummarizer_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	s := openai.NewSummarizerWithEndpoint(&config.SummarizerConfig{APIKey: "k"}, srv.URL)
	_, err := s.Summarize(context.Background(), "text", domain.SummaryGeneral)
	assert.True(t, domain.IsRetryable(err))
}
