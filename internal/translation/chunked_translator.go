package translation

import (
	"context"
	"errors"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"landrecords/internal/domain"
	"landrecords/internal/port"
)

const defaultConcurrency = 4

// ChunkedTranslator translates arbitrarily long text through a size-limited
// primitive: split on boundaries, translate every chunk, join with one space.
// Any chunk failure fails the whole translation; no partial text is returned.
type ChunkedTranslator struct {
	next        port.Translator
	chunkSize   int
	concurrency int
}

// NewChunkedTranslator wraps next. Non-positive sizes fall back to defaults.
func NewChunkedTranslator(next port.Translator, chunkSize, concurrency int) *ChunkedTranslator {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &ChunkedTranslator{next: next, chunkSize: chunkSize, concurrency: concurrency}
}

// Capability reports the wrapped engine's availability.
func (t *ChunkedTranslator) Capability() domain.Capability {
	return t.next.Capability()
}

func (t *ChunkedTranslator) Translate(ctx context.Context, text, srcLang, tgtLang string) (string, error) {
	chunks := Split(text, t.chunkSize)
	if len(chunks) == 0 {
		return "", nil
	}
	if len(chunks) == 1 {
		out, err := t.next.Translate(ctx, chunks[0].Text, srcLang, tgtLang)
		if err != nil {
			return "", chunkError(chunks[0], 0, 1, err)
		}
		return out, nil
	}

	log.Printf("translation.ChunkedTranslator: translating %d chunks (%s -> %s)", len(chunks), srcLang, tgtLang)

	results := make([]string, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(t.concurrency)
	for i, c := range chunks {
		g.Go(func() error {
			out, err := t.next.Translate(gctx, c.Text, srcLang, tgtLang)
			if err != nil {
				return chunkError(c, i, len(chunks), err)
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}
	return strings.Join(results, " "), nil
}

// chunkError tags err with the failing chunk. A missing engine is not a
// chunk-specific failure and is returned unchanged.
func chunkError(c Chunk, index, total int, err error) error {
	var cfgErr *domain.ConfigurationError
	if errors.As(err, &cfgErr) {
		return err
	}
	return &domain.ChunkTranslationError{
		Chunk: index + 1,
		Total: total,
		Start: c.Start,
		End:   c.End,
		Err:   err,
	}
}
