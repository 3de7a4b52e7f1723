// Package export renders documents and ledger statistics as downloadable files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"landrecords/internal/domain"
)

// UTF-8 BOM bytes so Excel on Windows reads Urdu and Hindi text correctly.
var BOM = []byte{0xEF, 0xBB, 0xBF}

var documentColumns = []string{
	"Filename",
	"Status",
	"Language",
	"Confidence",
	"Pages",
	"Processing Time (ms)",
	"Khasra Number",
	"Owner",
	"Area (Kanal)",
	"Area (Marla)",
	"Mauza",
	"Tehsil",
	"District",
	"Saved",
	"Tags",
	"Notes",
	"Processed At",
	"Created At",
}

// CSVWriter wraps csv.Writer for exporting documents.
type CSVWriter struct {
	csv *csv.Writer
}

// NewCSVWriter creates a CSVWriter that writes to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *CSVWriter) WriteHeader() error {
	return w.csv.Write(documentColumns)
}

// WriteDocuments converts a batch of documents to CSV rows and writes them.
func (w *CSVWriter) WriteDocuments(docs []domain.Document) error {
	for i := range docs {
		if err := w.csv.Write(documentToRow(&docs[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *CSVWriter) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *CSVWriter) Error() error {
	return w.csv.Error()
}

func documentToRow(doc *domain.Document) []string {
	return []string{
		doc.Filename,
		string(doc.ProcessingStatus),
		doc.DetectedLanguage,
		strconv.FormatFloat(doc.OCRConfidence, 'f', 2, 64),
		strconv.Itoa(doc.PageCount),
		strconv.FormatInt(doc.ProcessingTimeMS, 10),
		doc.KhasraNumber,
		doc.OwnerName,
		formatArea(doc.AreaKanal),
		formatArea(doc.AreaMarla),
		doc.Mauza,
		doc.Tehsil,
		doc.District,
		formatBool(doc.IsSaved),
		doc.Tags,
		doc.Notes,
		formatTime(doc.ProcessedAt),
		doc.CreatedAt.Format(time.RFC3339),
	}
}

func formatArea(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatBool(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition.
// Non-alphanumeric characters become underscores and the result is capped at 100 bytes.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	if s == "" {
		s = "export"
	}
	return s
}

// BuildFilename returns {sanitized_prefix}_{YYYY-MM-DD}.{ext}.
func BuildFilename(prefix, ext string) string {
	return fmt.Sprintf("%s_%s.%s", SanitizeFilename(prefix), time.Now().Format("2006-01-02"), ext)
}
