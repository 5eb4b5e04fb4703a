package pipeline

import (
	"fmt"
	"os"
	"strings"

	"github.com/fleximart/retail-etl/internal/domain"
)

// RenderReport formats the data quality report: one block per input file
// with the four counters.
func RenderReport(metrics []domain.FileMetrics) string {
	var lines []string
	lines = append(lines, "FlexiMart - Data Quality Report")
	lines = append(lines, strings.Repeat("=", 40))
	lines = append(lines, "")

	for _, m := range metrics {
		lines = append(lines, fmt.Sprintf("File: %s", m.FileName))
		lines = append(lines, fmt.Sprintf("  Number of records processed:      %d", m.RecordsRead))
		lines = append(lines, fmt.Sprintf("  Number of duplicates removed:     %d", m.DuplicatesRemoved))
		lines = append(lines, fmt.Sprintf("  Number of missing values handled: %d", m.MissingValuesHandled))
		lines = append(lines, fmt.Sprintf("  Number loaded successfully:       %d", m.RecordsLoaded))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// WriteReport renders the metrics and writes them to path, replacing any
// previous report.
func WriteReport(path string, metrics []domain.FileMetrics) error {
	if err := os.WriteFile(path, []byte(RenderReport(metrics)), 0o644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}
