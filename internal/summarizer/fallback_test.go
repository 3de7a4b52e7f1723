package summarizer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"landrecords/internal/domain"
	"landrecords/internal/port"
	"landrecords/internal/summarizer"
	"landrecords/mocks"
)

func available(name string) domain.Capability {
	return domain.Capability{Name: "summarizer", Provider: name, Available: true}
}

func unavailable(name string) domain.Capability {
	return domain.Capability{Name: "summarizer", Provider: name, Reason: name + " API key is not set"}
}

func newPair() (*mocks.MockSummarizer, *mocks.MockSummarizer, *summarizer.FallbackSummarizer) {
	primary := new(mocks.MockSummarizer)
	secondary := new(mocks.MockSummarizer)
	fb := summarizer.NewFallbackSummarizer(
		[]port.Summarizer{primary, secondary},
		[]string{"gemini", "claude"},
	)
	return primary, secondary, fb
}

func TestFallbackSummarizer_PrimarySucceeds(t *testing.T) {
	primary, secondary, fb := newPair()
	primary.On("Capability").Return(available("gemini"))
	primary.On("Summarize", mock.Anything, "text", domain.SummaryGeneral).
		Return(&port.SummaryOutput{Text: "from gemini"}, nil)

	out, err := fb.Summarize(context.Background(), "text", domain.SummaryGeneral)
	require.NoError(t, err)
	assert.Equal(t, "from gemini", out.Text)
	secondary.AssertNotCalled(t, "Summarize", mock.Anything, mock.Anything, mock.Anything)
}

func TestFallbackSummarizer_RateLimitOpensCircuit(t *testing.T) {
	primary, secondary, fb := newPair()
	ctx := context.Background()

	primary.On("Capability").Return(available("gemini"))
	secondary.On("Capability").Return(available("claude"))
	primary.On("Summarize", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.NewRateLimitError("gemini", errors.New("429"), 120)).Once()
	secondary.On("Summarize", mock.Anything, mock.Anything, mock.Anything).
		Return(&port.SummaryOutput{Text: "from claude"}, nil)

	out, err := fb.Summarize(ctx, "text", domain.SummaryLegal)
	require.NoError(t, err)
	assert.Equal(t, "from claude", out.Text)

	// The primary is skipped while its circuit is open.
	out, err = fb.Summarize(ctx, "text", domain.SummaryLegal)
	require.NoError(t, err)
	assert.Equal(t, "from claude", out.Text)
	primary.AssertNumberOfCalls(t, "Summarize", 1)
	secondary.AssertNumberOfCalls(t, "Summarize", 2)
}

func TestFallbackSummarizer_AllRateLimited(t *testing.T) {
	primary, secondary, fb := newPair()
	primary.On("Capability").Return(available("gemini"))
	secondary.On("Capability").Return(available("claude"))
	primary.On("Ask", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.NewRateLimitError("gemini", errors.New("429"), 30))
	secondary.On("Ask", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.NewRateLimitError("claude", errors.New("429"), 10))

	_, err := fb.Ask(context.Background(), "text", "question")

	var rlErr *domain.RateLimitError
	require.ErrorAs(t, err, &rlErr)
	assert.Equal(t, "summarizer", rlErr.Service)
	assert.LessOrEqual(t, rlErr.RetryAfter.Seconds(), 10.0)
	assert.GreaterOrEqual(t, rlErr.RetryAfter.Seconds(), 1.0)

	// Both circuits are open now; no provider is called again.
	_, err = fb.Ask(context.Background(), "text", "question")
	require.ErrorAs(t, err, &rlErr)
	primary.AssertNumberOfCalls(t, "Ask", 1)
	secondary.AssertNumberOfCalls(t, "Ask", 1)
}

func TestFallbackSummarizer_OtherErrorsFallThrough(t *testing.T) {
	primary, secondary, fb := newPair()
	primary.On("Capability").Return(available("gemini"))
	secondary.On("Capability").Return(available("claude"))
	primary.On("Summarize", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.NewTransportError("gemini", errors.New("timeout")))
	apiErr := domain.NewAPIError("claude", 400, "bad request")
	secondary.On("Summarize", mock.Anything, mock.Anything, mock.Anything).Return(nil, apiErr)

	_, err := fb.Summarize(context.Background(), "text", domain.SummaryGeneral)
	assert.ErrorIs(t, err, apiErr)
	assert.Contains(t, err.Error(), "all summarizers failed")

	// Non rate-limit failures leave the circuit closed.
	_, _ = fb.Summarize(context.Background(), "text", domain.SummaryGeneral)
	primary.AssertNumberOfCalls(t, "Summarize", 2)
}

func TestFallbackSummarizer_SkipsUnavailable(t *testing.T) {
	primary, secondary, fb := newPair()
	primary.On("Capability").Return(unavailable("gemini"))
	secondary.On("Capability").Return(available("claude"))
	secondary.On("Summarize", mock.Anything, mock.Anything, mock.Anything).
		Return(&port.SummaryOutput{Text: "ok"}, nil)

	_, err := fb.Summarize(context.Background(), "text", domain.SummaryGeneral)
	require.NoError(t, err)
	assert.Equal(t, "claude", fb.Capability().Provider)
	primary.AssertNotCalled(t, "Summarize", mock.Anything, mock.Anything, mock.Anything)
}

func TestFallbackSummarizer_NoneAvailable(t *testing.T) {
	primary, secondary, fb := newPair()
	primary.On("Capability").Return(unavailable("gemini"))
	secondary.On("Capability").Return(unavailable("claude"))

	_, err := fb.Summarize(context.Background(), "text", domain.SummaryGeneral)

	var cfgErr *domain.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "gemini API key is not set", cfgErr.Reason)
	assert.False(t, fb.Capability().Available)
}
