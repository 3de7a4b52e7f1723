package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"

	// Decoders for the scan formats accepted at upload.
	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"landrecords/internal/config"
	"landrecords/internal/domain"
)

const (
	defaultJPEGQuality    = 90
	defaultThresholdFloor = 150
	defaultMaxPixels      = 50_000_000
)

// Preprocessor normalizes scanned images before OCR: grayscale, binarize,
// re-encode as JPEG. It holds no mutable state and is safe for concurrent use.
type Preprocessor struct {
	quality   int
	floor     uint8
	maxPixels int64
}

// NewPreprocessor creates a Preprocessor from imaging config.
func NewPreprocessor(cfg config.ImagingConfig) *Preprocessor {
	quality := cfg.JPEGQuality
	if quality <= 0 || quality > 100 {
		quality = defaultJPEGQuality
	}
	floor := cfg.ThresholdFloor
	if floor <= 0 || floor > 255 {
		floor = defaultThresholdFloor
	}
	maxPixels := cfg.MaxPixels
	if maxPixels <= 0 {
		maxPixels = defaultMaxPixels
	}
	return &Preprocessor{quality: quality, floor: uint8(floor), maxPixels: maxPixels}
}

// Process decodes raw, converts it to a binarized grayscale image and
// returns it JPEG-encoded. Undecodable input and images whose declared size
// exceeds the pixel cap yield a *domain.DecodeError; the original bytes are
// never passed through.
func (p *Preprocessor) Process(raw []byte) ([]byte, error) {
	if len(raw) == 0 {
		return nil, domain.NewDecodeError("", errors.New("empty input"))
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, domain.NewDecodeError(format, err)
	}
	if pixels := int64(cfg.Width) * int64(cfg.Height); pixels > p.maxPixels {
		return nil, domain.NewDecodeError(format,
			fmt.Errorf("image is %dx%d, above the %d pixel limit", cfg.Width, cfg.Height, p.maxPixels))
	}

	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, domain.NewDecodeError(format, err)
	}

	gray := toGray(img)
	threshold := p.threshold(gray)
	binarize(gray, threshold)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, gray, &jpeg.Options{Quality: p.quality}); err != nil {
		return nil, fmt.Errorf("imaging.Process encode: %w", err)
	}
	return buf.Bytes(), nil
}

// threshold picks the Otsu level for gray, falling back to the fixed floor
// when the histogram has a single occupied level.
func (p *Preprocessor) threshold(gray *image.Gray) uint8 {
	hist := Histogram(gray)
	if t, ok := OtsuThreshold(hist); ok {
		return t
	}
	return p.floor
}

func toGray(img image.Image) *image.Gray {
	b := img.Bounds()
	gray := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			gray.Set(x, y, color.GrayModel.Convert(img.At(x, y)))
		}
	}
	return gray
}

// binarize maps pixels above t to white and the rest to black, in place.
func binarize(gray *image.Gray, t uint8) {
	for i, v := range gray.Pix {
		if v > t {
			gray.Pix[i] = 255
		} else {
			gray.Pix[i] = 0
		}
	}
}

// Histogram counts pixels per gray level.
func Histogram(gray *image.Gray) [256]int {
	var hist [256]int
	b := gray.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := gray.Pix[(y-b.Min.Y)*gray.Stride : (y-b.Min.Y)*gray.Stride+b.Dx()]
		for _, v := range row {
			hist[v]++
		}
	}
	return hist
}

// OtsuThreshold returns the gray level t that maximizes between-class
// variance for the split {<=t, >t}. ok is false when fewer than two levels
// are occupied and no split exists.
func OtsuThreshold(hist [256]int) (t uint8, ok bool) {
	var total, sumAll float64
	occupied := 0
	for i, c := range hist {
		if c > 0 {
			occupied++
		}
		total += float64(c)
		sumAll += float64(i) * float64(c)
	}
	if occupied < 2 {
		return 0, false
	}

	var weightBg, sumBg, best float64
	for i := 0; i < 256; i++ {
		weightBg += float64(hist[i])
		if weightBg == 0 {
			continue
		}
		weightFg := total - weightBg
		if weightFg == 0 {
			break
		}
		sumBg += float64(i) * float64(hist[i])
		meanBg := sumBg / weightBg
		meanFg := (sumAll - sumBg) / weightFg
		between := weightBg * weightFg * (meanBg - meanFg) * (meanBg - meanFg)
		if between > best {
			best = between
			t = uint8(i)
		}
	}
	return t, true
}
