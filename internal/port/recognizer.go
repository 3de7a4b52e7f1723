package port

import "context"

// OCRBlock is one text block reported by the OCR engine.
// Confidence is nil when the engine did not score the block.
type OCRBlock struct {
	Words      []string
	Confidence *float64
	Languages  []string
}

// OCRPage is one recognized page, blocks in reading order.
type OCRPage struct {
	Blocks []OCRBlock
}

// Annotation is the raw block-level output of one recognition call.
type Annotation struct {
	Pages    []OCRPage
	FullText string
}

// TextRecognizer extracts annotated text from an encoded image.
type TextRecognizer interface {
	Recognize(ctx context.Context, image []byte, hints []string) (*Annotation, error)
}
