package transform

import (
	"github.com/fleximart/retail-etl/internal/domain"
	"github.com/fleximart/retail-etl/internal/extract"
	"github.com/fleximart/retail-etl/internal/logger"
)

// CustomerResult carries the cleaned customer rows and the data quality
// counters accumulated while producing them.
type CustomerResult struct {
	Customers         []domain.Customer
	DuplicatesRemoved int
	MissingHandled    int
}

// Customers cleans and deduplicates the customer extract. Rows without an
// email are dropped because email is the store's uniqueness key; duplicate
// emails keep the first-seen row. Unparseable registration dates become
// absent rather than dropping the row.
func Customers(table *extract.Table, log *logger.Logger) (CustomerResult, error) {
	var result CustomerResult

	if err := requireColumns(table, "customer_id", "first_name", "last_name", "email"); err != nil {
		return result, err
	}

	seen := make(map[string]struct{})

	for i := 0; i < table.RowCount(); i++ {
		email := NormalizeNull(table.Cell(i, "email"))
		if email == "" {
			result.MissingHandled++
			continue
		}

		if _, dup := seen[email]; dup {
			result.DuplicatesRemoved++
			continue
		}
		seen[email] = struct{}{}

		registrationDate, _ := ParseDate(table.Cell(i, "registration_date"))

		result.Customers = append(result.Customers, domain.Customer{
			SourceKey:        NormalizeNull(table.Cell(i, "customer_id")),
			FirstName:        NormalizeNull(table.Cell(i, "first_name")),
			LastName:         NormalizeNull(table.Cell(i, "last_name")),
			Email:            email,
			Phone:            StandardizePhone(table.Cell(i, "phone")),
			City:             NormalizeNull(table.Cell(i, "city")),
			RegistrationDate: registrationDate,
		})
	}

	if result.MissingHandled > 0 {
		log.Info("customers: dropped rows due to missing email", "count", result.MissingHandled)
	}
	if result.DuplicatesRemoved > 0 {
		log.Info("customers: removed duplicate rows by email", "count", result.DuplicatesRemoved)
	}

	return result, nil
}
