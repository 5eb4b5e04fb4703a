package repository

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// nullText maps the pipeline's empty-string absent value to SQL NULL.
func nullText(value string) pgtype.Text {
	return pgtype.Text{String: value, Valid: value != ""}
}

// nullDate converts a YYYY-MM-DD string to a date parameter, NULL if absent.
func nullDate(value string) (pgtype.Date, error) {
	if value == "" {
		return pgtype.Date{}, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return pgtype.Date{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return pgtype.Date{Time: t, Valid: true}, nil
}
