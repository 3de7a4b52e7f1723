package export_test

import (
	"bytes"
	"encoding/csv"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"landrecords/internal/domain"
	"landrecords/internal/export"
)

func TestCSVWriter_WritesHeaderAndRows(t *testing.T) {
	kanal, marla := 4.0, 10.5
	processed := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	docs := []domain.Document{
		{
			Filename:         "fard.jpg",
			ProcessingStatus: domain.ProcessingStatusProcessed,
			DetectedLanguage: domain.LanguageUrdu,
			OCRConfidence:    91.25,
			PageCount:        1,
			ProcessingTimeMS: 1200,
			KhasraNumber:     "45",
			OwnerName:        "محمد علی",
			AreaKanal:        &kanal,
			AreaMarla:        &marla,
			District:         "Srinagar",
			IsSaved:          true,
			ProcessedAt:      &processed,
			CreatedAt:        processed,
		},
		{Filename: "blank.png", ProcessingStatus: domain.ProcessingStatusFailed, CreatedAt: processed},
	}

	var buf bytes.Buffer
	w := export.NewCSVWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteDocuments(docs))
	w.Flush()
	require.NoError(t, w.Error())

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	header := records[0]
	assert.Equal(t, "Filename", header[0])
	assert.Len(t, records[1], len(header))

	row := records[1]
	assert.Equal(t, "fard.jpg", row[0])
	assert.Equal(t, "processed", row[1])
	assert.Equal(t, "91.25", row[3])
	assert.Equal(t, "45", row[6])
	assert.Equal(t, "محمد علی", row[7])
	assert.Equal(t, "4", row[8])
	assert.Equal(t, "10.5", row[9])
	assert.Equal(t, "Yes", row[13])
	assert.Equal(t, "2024-03-01T10:00:00Z", row[16])

	empty := records[2]
	assert.Equal(t, "", empty[8])
	assert.Equal(t, "No", empty[13])
	assert.Equal(t, "", empty[16])
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"land records", "land_records"},
		{"../../etc/passwd", "etc_passwd"},
		{"خسرہ", "export"},
		{"", "export"},
		{"a__b", "a_b"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, export.SanitizeFilename(tt.in), tt.in)
	}

	long := export.SanitizeFilename(string(bytes.Repeat([]byte("x"), 150)))
	assert.Len(t, long, 100)
}

func TestBuildFilename(t *testing.T) {
	name := export.BuildFilename("processing stats", "xlsx")
	assert.Regexp(t, regexp.MustCompile(`^processing_stats_\d{4}-\d{2}-\d{2}\.xlsx$`), name)
}

func TestWriteStatsWorkbook(t *testing.T) {
	rows := []domain.ProcessingStats{
		{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), DocumentsProcessed: 3, DocumentsFailed: 1, TotalProcessingTimeMS: 900, UrduCount: 2, EnglishCount: 1},
		{Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), DocumentsProcessed: 1, TotalProcessingTimeMS: 100, HindiCount: 1},
	}
	summary := &domain.StatsSummary{
		From:                 "2024-03-01",
		To:                   "2024-03-02",
		TotalProcessed:       4,
		TotalFailed:          1,
		SuccessRate:          80,
		AvgProcessingTimeMS:  250,
		LanguageDistribution: map[string]int64{"urdu": 2, "hindi": 1, "english": 1},
	}

	var buf bytes.Buffer
	require.NoError(t, export.WriteStatsWorkbook(&buf, rows, summary))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{"Daily", "Summary"}, f.GetSheetList())

	daily, err := f.GetRows("Daily")
	require.NoError(t, err)
	require.Len(t, daily, 3)
	assert.Equal(t, "Date", daily[0][0])
	assert.Equal(t, []string{"2024-03-01", "3", "1", "900", "2", "0", "1"}, daily[1])

	sum, err := f.GetRows("Summary")
	require.NoError(t, err)
	assert.Equal(t, []string{"Total Processed", "4"}, sum[2])
	assert.Equal(t, []string{"Language: english", "1"}, sum[6])
}

func TestReadSheetRows(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"khasra_number", "district"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"45", "Srinagar"}))
	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)
	_ = f.Close()

	rows, err := export.ReadSheetRows(&buf)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"khasra_number", "district"}, {"45", "Srinagar"}}, rows)
}

func TestReadSheetRows_NotAWorkbook(t *testing.T) {
	_, err := export.ReadSheetRows(bytes.NewReader([]byte("not a zip")))
	assert.Error(t, err)
}
