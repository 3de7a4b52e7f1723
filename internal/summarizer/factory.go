package summarizer

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"landrecords/internal/config"
	"landrecords/internal/port"
)

// ProviderFactory creates a Summarizer from its settings.
type ProviderFactory func(ctx context.Context, cfg *config.SummarizerConfig) (port.Summarizer, error)

// registry of summarizer provider factories, populated by init() in each provider package.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a summarizer provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[strings.ToLower(name)] = factory
}

// Providers lists the registered provider names.
func Providers() []string {
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewProvider creates the single Summarizer named by cfg.Provider. An empty
// provider selects gemini.
func NewProvider(ctx context.Context, cfg *config.SummarizerConfig) (port.Summarizer, error) {
	name := strings.ToLower(cfg.Provider)
	if name == "" {
		name = "gemini"
	}
	factory, ok := providers[name]
	if !ok {
		return nil, fmt.Errorf("unknown summarizer provider: %s", cfg.Provider)
	}
	return factory(ctx, cfg)
}

// New creates the configured Summarizer. When a fallback provider is set the
// result tries the primary first and the fallback second.
func New(ctx context.Context, cfg *config.SummarizerConfig) (port.Summarizer, error) {
	primary, err := NewProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}
	fbCfg := cfg.FallbackConfig()
	if fbCfg == nil {
		return primary, nil
	}
	secondary, err := NewProvider(ctx, fbCfg)
	if err != nil {
		return nil, fmt.Errorf("creating fallback summarizer: %w", err)
	}
	return NewFallbackSummarizer(
		[]port.Summarizer{primary, secondary},
		[]string{providerName(cfg.Provider), providerName(fbCfg.Provider)},
	), nil
}

func providerName(name string) string {
	if name == "" {
		return "gemini"
	}
	return strings.ToLower(name)
}
