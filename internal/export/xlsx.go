package export

import (
	"fmt"
	"io"
	"sort"

	"github.com/xuri/excelize/v2"

	"landrecords/internal/domain"
)

const (
	dailySheet   = "Daily"
	summarySheet = "Summary"
)

var statsColumns = []string{
	"Date", "Processed", "Failed", "Total Time (ms)", "Urdu", "Hindi", "English",
}

// WriteStatsWorkbook writes the ledger rows and their summary as an XLSX workbook.
func WriteStatsWorkbook(w io.Writer, rows []domain.ProcessingStats, summary *domain.StatsSummary) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", dailySheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetSheetRow(dailySheet, "A1", &statsColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{
			r.Date.Format("2006-01-02"),
			r.DocumentsProcessed, r.DocumentsFailed, r.TotalProcessingTimeMS,
			r.UrduCount, r.HindiCount, r.EnglishCount,
		}
		if err := f.SetSheetRow(dailySheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if summary != nil {
		if _, err := f.NewSheet(summarySheet); err != nil {
			return fmt.Errorf("create summary sheet: %w", err)
		}
		pairs := [][]interface{}{
			{"From", summary.From},
			{"To", summary.To},
			{"Total Processed", summary.TotalProcessed},
			{"Total Failed", summary.TotalFailed},
			{"Success Rate (%)", summary.SuccessRate},
			{"Average Processing Time (ms)", summary.AvgProcessingTimeMS},
		}
		langs := make([]string, 0, len(summary.LanguageDistribution))
		for lang := range summary.LanguageDistribution {
			langs = append(langs, lang)
		}
		sort.Strings(langs)
		for _, lang := range langs {
			pairs = append(pairs, []interface{}{"Language: " + lang, summary.LanguageDistribution[lang]})
		}
		for i := range pairs {
			if err := f.SetSheetRow(summarySheet, fmt.Sprintf("A%d", i+1), &pairs[i]); err != nil {
				return fmt.Errorf("write summary row: %w", err)
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// ReadSheetRows returns the rows of the first sheet of an XLSX workbook.
func ReadSheetRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("get rows for %s: %w", sheets[0], err)
	}
	return rows, nil
}
