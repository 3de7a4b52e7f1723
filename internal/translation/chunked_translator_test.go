package translation_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"landrecords/internal/domain"
	"landrecords/internal/translation"
	"landrecords/mocks"
)

func TestChunkedTranslator_SingleChunk(t *testing.T) {
	next := new(mocks.MockTranslator)
	next.On("Translate", mock.Anything, "خسرہ", "ur", "en").Return("Khasra", nil).Once()

	tr := translation.NewChunkedTranslator(next, 100, 2)
	out, err := tr.Translate(context.Background(), "خسرہ", "ur", "en")

	require.NoError(t, err)
	assert.Equal(t, "Khasra", out)
	next.AssertExpectations(t)
}

// upperTranslator upper-cases each trimmed chunk and counts calls.
type upperTranslator struct {
	mu    sync.Mutex
	calls int
}

func (u *upperTranslator) Translate(_ context.Context, text, _, _ string) (string, error) {
	u.mu.Lock()
	u.calls++
	u.mu.Unlock()
	return strings.ToUpper(strings.TrimSpace(text)), nil
}

func (u *upperTranslator) Capability() domain.Capability {
	return domain.Capability{Name: "translation", Available: true}
}

func TestChunkedTranslator_JoinsChunksInOrder(t *testing.T) {
	next := &upperTranslator{}

	tr := translation.NewChunkedTranslator(next, 11, 4)
	out, err := tr.Translate(context.Background(), "aaaa bbbb. cccc dddd. eeee ffff.", "ur", "en")

	require.NoError(t, err)
	assert.Equal(t, "AAAA BBBB. CCCC DDDD. EEEE FFFF.", out)
	assert.Equal(t, 3, next.calls)
}

func TestChunkedTranslator_ChunkFailureFailsWhole(t *testing.T) {
	next := new(mocks.MockTranslator)
	next.On("Translate", mock.Anything, "bbbb.", mock.Anything, mock.Anything).
		Return("", domain.NewTransportError("translate", errors.New("timeout")))
	next.On("Translate", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("ok", nil)

	tr := translation.NewChunkedTranslator(next, 5, 1)
	out, err := tr.Translate(context.Background(), "aaaa.bbbb.cccc.", "ur", "en")

	assert.Empty(t, out)
	var chunkErr *domain.ChunkTranslationError
	require.ErrorAs(t, err, &chunkErr)
	assert.Equal(t, 2, chunkErr.Chunk)
	assert.Equal(t, 3, chunkErr.Total)
	assert.Equal(t, 5, chunkErr.Start)
	assert.Equal(t, 10, chunkErr.End)

	var transErr *domain.TransportError
	assert.ErrorAs(t, err, &transErr)
}

func TestChunkedTranslator_ConfigurationErrorUnwrapped(t *testing.T) {
	next := new(mocks.MockTranslator)
	next.On("Translate", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", domain.NewConfigurationError("translate", "translation API key is not set"))

	tr := translation.NewChunkedTranslator(next, 0, 0)
	_, err := tr.Translate(context.Background(), "text", "ur", "en")

	var cfgErr *domain.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	var chunkErr *domain.ChunkTranslationError
	assert.False(t, errors.As(err, &chunkErr))
}

func TestChunkedTranslator_EmptyText(t *testing.T) {
	next := new(mocks.MockTranslator)

	tr := translation.NewChunkedTranslator(next, 10, 2)
	out, err := tr.Translate(context.Background(), "", "ur", "en")

	require.NoError(t, err)
	assert.Empty(t, out)
	next.AssertNotCalled(t, "Translate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestChunkedTranslator_Capability(t *testing.T) {
	next := new(mocks.MockTranslator)
	next.On("Capability").Return(domain.Capability{Name: "translation", Available: true})

	tr := translation.NewChunkedTranslator(next, 10, 2)
	assert.True(t, tr.Capability().Available)
}
