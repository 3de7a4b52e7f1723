package google

import (
	"context"
	"fmt"
	"html"
	"time"

	"google.golang.org/api/option"
	translate "google.golang.org/api/translate/v2"

	"landrecords/internal/config"
	"landrecords/internal/domain"
	"landrecords/internal/gcp"
)

const serviceName = "translate"

// Translator implements port.Translator with Cloud Translation v2.
type Translator struct {
	svc     *translate.Service
	timeout time.Duration
	reason  string
}

// NewTranslator creates the translation client. The capability check runs
// here, once: a missing key leaves the translator unavailable and every
// Translate call returns a ConfigurationError.
func NewTranslator(ctx context.Context, cfg *config.TranslationConfig) (*Translator, error) {
	t := &Translator{timeout: cfg.Timeout()}
	if cfg.APIKey == "" {
		t.reason = "translation API key is not set"
		return t, nil
	}

	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}
	svc, err := translate.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating translate service: %w", err)
	}
	t.svc = svc
	return t, nil
}

// Capability reports whether translation can be called.
func (t *Translator) Capability() domain.Capability {
	return domain.Capability{
		Name:      "translation",
		Provider:  "google_translate",
		Available: t.svc != nil,
		Reason:    t.reason,
	}
}

// Translate sends text in one call. An empty srcLang lets the service detect it.
func (t *Translator) Translate(ctx context.Context, text, srcLang, tgtLang string) (string, error) {
	if t.svc == nil {
		return "", domain.NewConfigurationError(serviceName, t.reason)
	}
	if text == "" {
		return "", nil
	}

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	call := t.svc.Translations.List([]string{text}, tgtLang).Format("text").Context(ctx)
	if srcLang != "" && srcLang != "auto" {
		call = call.Source(srcLang)
	}
	resp, err := call.Do()
	if err != nil {
		return "", gcp.Classify(serviceName, err)
	}
	if len(resp.Translations) == 0 {
		return "", domain.NewAPIError(serviceName, 0, "empty translation response")
	}
	return html.UnescapeString(resp.Translations[0].TranslatedText), nil
}
