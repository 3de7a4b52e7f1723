package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"landrecords/internal/domain"
)

var pdfMagic = []byte("%PDF-")

// IsPDF reports whether data starts with the PDF header.
func IsPDF(data []byte) bool {
	return bytes.HasPrefix(data, pdfMagic)
}

// PageCount returns the number of pages in a PDF.
func PageCount(data []byte) (int, error) {
	count, err := api.PageCount(bytes.NewReader(data), relaxedConf())
	if err != nil {
		return 0, domain.NewDecodeError("pdf", err)
	}
	return count, nil
}

// ExtractPDFPages returns the embedded scan images of a PDF, ordered by page
// and then by object number within a page. A PDF without raster images
// cannot be OCR'd and yields a DecodeError.
func ExtractPDFPages(data []byte) ([][]byte, error) {
	if len(data) == 0 {
		return nil, domain.NewDecodeError("pdf", errors.New("empty input"))
	}

	pages, err := api.ExtractImagesRaw(bytes.NewReader(data), nil, relaxedConf())
	if err != nil {
		return nil, domain.NewDecodeError("pdf", err)
	}

	var imgs []model.Image
	for _, byObj := range pages {
		for _, img := range byObj {
			imgs = append(imgs, img)
		}
	}
	sort.SliceStable(imgs, func(i, j int) bool {
		if imgs[i].PageNr != imgs[j].PageNr {
			return imgs[i].PageNr < imgs[j].PageNr
		}
		return imgs[i].ObjNr < imgs[j].ObjNr
	})

	out := make([][]byte, 0, len(imgs))
	for _, img := range imgs {
		raw, err := io.ReadAll(img)
		if err != nil {
			return nil, fmt.Errorf("imaging.ExtractPDFPages read page %d: %w", img.PageNr, err)
		}
		out = append(out, raw)
	}
	if len(out) == 0 {
		return nil, domain.NewDecodeError("pdf", errors.New("no embedded page images"))
	}
	return out, nil
}

func relaxedConf() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}
