package vision

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/option"
	visionapi "google.golang.org/api/vision/v1"

	"landrecords/internal/config"
	"landrecords/internal/domain"
	"landrecords/internal/gcp"
	"landrecords/internal/port"
)

const serviceName = "vision"

// DefaultLanguageHints ranks the scripts found in regional land records.
var DefaultLanguageHints = []string{"ur", "hi", "en", "pa"}

// Client implements port.TextRecognizer with Cloud Vision DOCUMENT_TEXT_DETECTION.
type Client struct {
	svc     *visionapi.Service
	hints   []string
	timeout time.Duration
}

// NewClient creates a Vision client. A missing API key is not an error here;
// Recognize reports it as a ConfigurationError before any network call.
func NewClient(ctx context.Context, cfg *config.OCRConfig) (*Client, error) {
	c := &Client{
		hints:   cfg.LanguageHints,
		timeout: cfg.Timeout(),
	}
	if len(c.hints) == 0 {
		c.hints = DefaultLanguageHints
	}
	if cfg.APIKey == "" {
		return c, nil
	}

	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}
	svc, err := visionapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating vision service: %w", err)
	}
	c.svc = svc
	return c, nil
}

// Capability reports whether OCR can be called.
func (c *Client) Capability() domain.Capability {
	if c.svc == nil {
		return domain.Capability{Name: "ocr", Provider: "google_vision", Reason: "OCR API key is not set"}
	}
	return domain.Capability{Name: "ocr", Provider: "google_vision", Available: true}
}

func (c *Client) Recognize(ctx context.Context, image []byte, hints []string) (*port.Annotation, error) {
	if c.svc == nil {
		return nil, domain.NewConfigurationError(serviceName, "OCR API key is not set")
	}
	if len(hints) == 0 {
		hints = c.hints
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := &visionapi.BatchAnnotateImagesRequest{
		Requests: []*visionapi.AnnotateImageRequest{
			{
				Image:        &visionapi.Image{Content: base64.StdEncoding.EncodeToString(image)},
				Features:     []*visionapi.Feature{{Type: "DOCUMENT_TEXT_DETECTION", MaxResults: 1}},
				ImageContext: &visionapi.ImageContext{LanguageHints: hints},
			},
		},
	}

	resp, err := c.svc.Images.Annotate(req).Context(ctx).Do()
	if err != nil {
		return nil, gcp.Classify(serviceName, err)
	}
	if len(resp.Responses) == 0 {
		return &port.Annotation{}, nil
	}

	r := resp.Responses[0]
	if r.Error != nil && (r.Error.Code != 0 || r.Error.Message != "") {
		return nil, domain.NewAPIError(serviceName, 0, r.Error.Message)
	}
	return toAnnotation(r.FullTextAnnotation), nil
}

// toAnnotation converts the Vision page/block tree. Vision omits zero
// confidences on the wire, so only positive values count as scored.
func toAnnotation(ta *visionapi.TextAnnotation) *port.Annotation {
	ann := &port.Annotation{}
	if ta == nil {
		return ann
	}
	ann.FullText = ta.Text

	for _, p := range ta.Pages {
		page := port.OCRPage{}
		for _, b := range p.Blocks {
			block := port.OCRBlock{Words: blockWords(b)}
			if b.Confidence > 0 {
				conf := b.Confidence
				block.Confidence = &conf
			}
			if b.Property != nil {
				for _, dl := range b.Property.DetectedLanguages {
					if dl.LanguageCode != "" {
						block.Languages = append(block.Languages, dl.LanguageCode)
					}
				}
			}
			page.Blocks = append(page.Blocks, block)
		}
		ann.Pages = append(ann.Pages, page)
	}
	return ann
}

func blockWords(b *visionapi.Block) []string {
	var words []string
	for _, para := range b.Paragraphs {
		for _, w := range para.Words {
			var sb strings.Builder
			for _, s := range w.Symbols {
				sb.WriteString(s.Text)
			}
			if sb.Len() > 0 {
				words = append(words, sb.String())
			}
		}
	}
	return words
}
