// Package extract reads raw tabular files into in-memory text tables. Every
// cell is kept as text; numeric interpretation is the transform layer's job,
// which matters for phone numbers that would otherwise round-trip through
// floats.
package extract

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat is returned when an input file is not csv or xlsx.
var ErrUnsupportedFormat = errors.New("unsupported file format")

var byteOrderMark = []byte{0xEF, 0xBB, 0xBF}

// Table is an ordered set of all-text rows under a fixed header.
type Table struct {
	fileName string
	headers  []string
	index    map[string]int
	rows     [][]string
}

// ReadFile loads path into a Table. A missing file is a fatal error for the
// run, not a row-level defect.
func ReadFile(path string) (*Table, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("input file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read input file %s: %w", path, err)
	}
	if len(payload) == 0 {
		return nil, fmt.Errorf("input file is empty: %s", path)
	}

	var records [][]string
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		records, err = parseCSV(payload)
	case ".xlsx":
		records, err = parseExcel(payload)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}

	return newTable(filepath.Base(path), records)
}

func parseCSV(payload []byte) ([][]string, error) {
	reader := bufio.NewReader(bytes.NewReader(payload))
	if prefix, err := reader.Peek(len(byteOrderMark)); err == nil && bytes.Equal(prefix, byteOrderMark) {
		_, _ = reader.Discard(len(byteOrderMark))
	}

	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return records, nil
}

func parseExcel(payload []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("excel file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from xlsx: %w", err)
	}
	return rows, nil
}

func newTable(fileName string, records [][]string) (*Table, error) {
	var headerRow []string
	var dataRows [][]string

	for _, row := range records {
		if emptyRow(row) {
			continue
		}
		if headerRow == nil {
			headerRow = row
			continue
		}
		dataRows = append(dataRows, row)
	}

	if headerRow == nil {
		return nil, fmt.Errorf("no header row detected in %s", fileName)
	}

	headers := make([]string, len(headerRow))
	index := make(map[string]int, len(headerRow))
	for i, value := range headerRow {
		name := strings.TrimSpace(value)
		headers[i] = name
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}

	for i := range dataRows {
		dataRows[i] = padRow(dataRows[i], len(headers))
	}

	return &Table{
		fileName: fileName,
		headers:  headers,
		index:    index,
		rows:     dataRows,
	}, nil
}

func emptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func padRow(row []string, length int) []string {
	if len(row) >= length {
		return row[:length]
	}
	padded := make([]string, length)
	copy(padded, row)
	return padded
}

// FileName returns the base name of the file the table was read from.
func (t *Table) FileName() string {
	return t.fileName
}

// Headers returns the column names in file order.
func (t *Table) Headers() []string {
	return t.headers
}

// RowCount returns the number of data rows (the header is not counted).
func (t *Table) RowCount() int {
	return len(t.rows)
}

// MissingColumns returns the required column names absent from the header.
func (t *Table) MissingColumns(required ...string) []string {
	var missing []string
	for _, name := range required {
		if _, ok := t.index[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// Cell returns the raw text of the named column in the given row, or the
// empty string if the column does not exist.
func (t *Table) Cell(row int, column string) string {
	idx, ok := t.index[column]
	if !ok {
		return ""
	}
	return t.rows[row][idx]
}
