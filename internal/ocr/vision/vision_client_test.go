package vision_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landrecords/internal/config"
	"landrecords/internal/domain"
	"landrecords/internal/ocr/vision"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *vision.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := vision.NewClient(context.Background(), &config.OCRConfig{
		APIKey:      "test-vision-key",
		Endpoint:    server.URL + "/",
		TimeoutSecs: 5,
	})
	require.NoError(t, err)
	return c
}

func TestClient_Recognize_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "images:annotate"))
		assert.Equal(t, "test-vision-key", r.URL.Query().Get("key"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		req := body["requests"].([]interface{})[0].(map[string]interface{})
		feature := req["features"].([]interface{})[0].(map[string]interface{})
		assert.Equal(t, "DOCUMENT_TEXT_DETECTION", feature["type"])
		hints := req["imageContext"].(map[string]interface{})["languageHints"].([]interface{})
		assert.Equal(t, "ur", hints[0])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"responses":[{"fullTextAnnotation":{"text":"خسرہ 45","pages":[{"blocks":[
			{"confidence":0.92,"property":{"detectedLanguages":[{"languageCode":"ur"}]},
			 "paragraphs":[{"words":[{"symbols":[{"text":"خ"},{"text":"سرہ"}]},{"symbols":[{"text":"4"},{"text":"5"}]}]}]},
			{"paragraphs":[{"words":[{"symbols":[{"text":"x"}]}]}]}
		]}]}}]}`))
	})

	ann, err := c.Recognize(context.Background(), []byte("image-bytes"), []string{"ur", "en"})
	require.NoError(t, err)

	assert.Equal(t, "خسرہ 45", ann.FullText)
	require.Len(t, ann.Pages, 1)
	require.Len(t, ann.Pages[0].Blocks, 2)

	first := ann.Pages[0].Blocks[0]
	assert.Equal(t, []string{"خسرہ", "45"}, first.Words)
	require.NotNil(t, first.Confidence)
	assert.InDelta(t, 0.92, *first.Confidence, 0.0001)
	assert.Equal(t, []string{"ur"}, first.Languages)

	second := ann.Pages[0].Blocks[1]
	assert.Nil(t, second.Confidence)
	assert.Empty(t, second.Languages)
}

func TestClient_Recognize_PerImageError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"responses":[{"error":{"code":3,"message":"Bad image data."}}]}`))
	})

	_, err := c.Recognize(context.Background(), []byte("not-an-image"), nil)

	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Message, "Bad image data.")
}

func TestClient_Recognize_HTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"API key not valid"}}`))
	})

	_, err := c.Recognize(context.Background(), []byte("img"), nil)

	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.False(t, domain.IsRetryable(err))
}

func TestClient_Recognize_NoTextDetected(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"responses":[{}]}`))
	})

	ann, err := c.Recognize(context.Background(), []byte("blank"), nil)
	require.NoError(t, err)
	assert.Empty(t, ann.Pages)
	assert.Empty(t, ann.FullText)
}

func TestClient_WithoutAPIKey(t *testing.T) {
	c, err := vision.NewClient(context.Background(), &config.OCRConfig{})
	require.NoError(t, err)

	assert.False(t, c.Capability().Available)

	_, err = c.Recognize(context.Background(), []byte("img"), nil)
	var cfgErr *domain.ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}
