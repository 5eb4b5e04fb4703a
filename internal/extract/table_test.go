package extract

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestReadFileCSV(t *testing.T) {
	path := writeFixture(t, "customers.csv", "customer_id,email\nC001,a@example.com\nC002,b@example.com\n")

	table, err := ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if table.RowCount() != 2 {
		t.Fatalf("expected 2 rows, got %d", table.RowCount())
	}
	if table.FileName() != "customers.csv" {
		t.Fatalf("unexpected file name %q", table.FileName())
	}
	if got := table.Cell(1, "email"); got != "b@example.com" {
		t.Fatalf("Cell(1, email) = %q", got)
	}
	if got := table.Cell(0, "no_such_column"); got != "" {
		t.Fatalf("unknown column must be empty, got %q", got)
	}
}

func TestReadFileStripsBOMAndSkipsEmptyRows(t *testing.T) {
	content := "\xEF\xBB\xBFcustomer_id,email\n\nC001,a@example.com\n,,\n"
	path := writeFixture(t, "customers.csv", content)

	table, err := ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if missing := table.MissingColumns("customer_id", "email"); len(missing) != 0 {
		t.Fatalf("BOM not stripped, missing columns: %v", missing)
	}
	if table.RowCount() != 1 {
		t.Fatalf("expected empty rows filtered, got %d rows", table.RowCount())
	}
}

func TestReadFilePadsRaggedRows(t *testing.T) {
	path := writeFixture(t, "products.csv", "product_id,product_name,price\nP001,Mixer\n")

	table, err := ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := table.Cell(0, "price"); got != "" {
		t.Fatalf("short row must pad with empty cells, got %q", got)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestReadFileUnsupportedFormat(t *testing.T) {
	path := writeFixture(t, "data.json", "{}")
	if _, err := ReadFile(path); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func TestMissingColumns(t *testing.T) {
	path := writeFixture(t, "sales.csv", "transaction_id,customer_id\nT001,C001\n")

	table, err := ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	missing := table.MissingColumns("transaction_id", "quantity", "unit_price")
	if len(missing) != 2 || missing[0] != "quantity" || missing[1] != "unit_price" {
		t.Fatalf("unexpected missing columns: %v", missing)
	}
}
