package transform

import (
	"fmt"

	"github.com/fleximart/retail-etl/internal/extract"
)

// SchemaError reports required columns missing from an input file. It aborts
// the run; no rows from the file are processed.
type SchemaError struct {
	File    string
	Missing []string
	Found   []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s missing required columns %v, found: %v", e.File, e.Missing, e.Found)
}

func requireColumns(table *extract.Table, required ...string) error {
	missing := table.MissingColumns(required...)
	if len(missing) > 0 {
		return &SchemaError{
			File:    table.FileName(),
			Missing: missing,
			Found:   table.Headers(),
		}
	}
	return nil
}
