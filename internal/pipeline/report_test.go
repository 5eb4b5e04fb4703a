package pipeline

import (
	"strings"
	"testing"

	"github.com/fleximart/retail-etl/internal/domain"
)

func TestRenderReport(t *testing.T) {
	metrics := []domain.FileMetrics{
		{
			FileName:             "customers_raw.csv",
			RecordsRead:          10,
			DuplicatesRemoved:    1,
			MissingValuesHandled: 2,
			RecordsLoaded:        7,
		},
		{
			FileName:      "products_raw.csv",
			RecordsRead:   5,
			RecordsLoaded: 5,
		},
	}

	report := RenderReport(metrics)

	lines := strings.Split(report, "\n")
	if lines[0] != "FlexiMart - Data Quality Report" {
		t.Fatalf("unexpected title line: %q", lines[0])
	}
	if lines[1] != strings.Repeat("=", 40) {
		t.Fatalf("unexpected rule line: %q", lines[1])
	}

	for _, want := range []string{
		"File: customers_raw.csv",
		"  Number of records processed:      10",
		"  Number of duplicates removed:     1",
		"  Number of missing values handled: 2",
		"  Number loaded successfully:       7",
		"File: products_raw.csv",
		"  Number of records processed:      5",
	} {
		if !strings.Contains(report, want) {
			t.Fatalf("report missing line %q:\n%s", want, report)
		}
	}
}

func TestCollectorPreservesRegistrationOrder(t *testing.T) {
	c := NewCollector()
	c.File("b.csv").RecordsRead = 2
	c.File("a.csv").RecordsRead = 1
	c.File("b.csv").DuplicatesRemoved = 3

	all := c.All()
	if len(all) != 2 {
		t.Fatalf("expected 2 files, got %d", len(all))
	}
	if all[0].FileName != "b.csv" || all[0].RecordsRead != 2 || all[0].DuplicatesRemoved != 3 {
		t.Fatalf("unexpected first metrics: %+v", all[0])
	}
	if all[1].FileName != "a.csv" {
		t.Fatalf("unexpected second metrics: %+v", all[1])
	}
}
