package transform

import (
	"fmt"

	"github.com/fleximart/retail-etl/internal/domain"
	"github.com/fleximart/retail-etl/internal/extract"
	"github.com/fleximart/retail-etl/internal/logger"
)

// SalesResult carries the resolved sales rows and their counters.
type SalesResult struct {
	Sales             []domain.ResolvedSale
	DuplicatesRemoved int
	MissingHandled    int
}

// Sales cleans the transaction extract and resolves its foreign keys through
// the customer and product key maps built by the load stages. The per-row
// step order is fixed and counter parity depends on it: drop rows missing a
// required value, default the status, deduplicate by transaction id, filter
// invalid quantity/price ranges, then drop rows whose source keys are not in
// the maps. Both maps must be frozen before this stage runs.
func Sales(table *extract.Table, customerKeys, productKeys *domain.KeyMap, log *logger.Logger) (SalesResult, error) {
	var result SalesResult

	if err := requireColumns(table, "transaction_id", "customer_id", "product_id", "quantity", "unit_price", "transaction_date"); err != nil {
		return result, err
	}

	if !customerKeys.Frozen() || !productKeys.Frozen() {
		return result, fmt.Errorf("key maps must be frozen before the sales stage")
	}

	missingRequired := 0
	invalidRange := 0
	unmapped := 0
	seen := make(map[string]struct{})

	for i := 0; i < table.RowCount(); i++ {
		customerKey := NormalizeNull(table.Cell(i, "customer_id"))
		productKey := NormalizeNull(table.Cell(i, "product_id"))
		quantity, quantityOK := ParseNumber(table.Cell(i, "quantity"))
		unitPrice, unitPriceOK := ParseNumber(table.Cell(i, "unit_price"))
		orderDate, _ := ParseDate(table.Cell(i, "transaction_date"))

		if customerKey == "" || productKey == "" || !quantityOK || !unitPriceOK || orderDate == "" {
			missingRequired++
			continue
		}

		tx := domain.SalesTransaction{
			TransactionID:     NormalizeNull(table.Cell(i, "transaction_id")),
			SourceCustomerKey: customerKey,
			SourceProductKey:  productKey,
			Quantity:          quantity,
			UnitPrice:         unitPrice,
			OrderDate:         orderDate,
			Status:            NormalizeNull(table.Cell(i, "status")),
		}
		if tx.Status == "" {
			tx.Status = "Pending"
		}

		if _, dup := seen[tx.TransactionID]; dup {
			result.DuplicatesRemoved++
			continue
		}
		seen[tx.TransactionID] = struct{}{}

		if tx.Quantity < 1 || tx.UnitPrice < 0 {
			invalidRange++
			continue
		}

		customerID, customerOK := customerKeys.Lookup(tx.SourceCustomerKey)
		productID, productOK := productKeys.Lookup(tx.SourceProductKey)
		if !customerOK || !productOK {
			unmapped++
			continue
		}

		result.Sales = append(result.Sales, domain.ResolvedSale{
			TransactionID: tx.TransactionID,
			CustomerID:    customerID,
			ProductID:     productID,
			Quantity:      int(tx.Quantity),
			UnitPrice:     tx.UnitPrice,
			OrderDate:     tx.OrderDate,
			Status:        tx.Status,
		})
	}

	result.MissingHandled = missingRequired + invalidRange + unmapped

	if missingRequired > 0 {
		log.Info("sales: dropped rows due to missing ids/qty/price/date", "count", missingRequired)
	}
	if result.DuplicatesRemoved > 0 {
		log.Info("sales: removed duplicate rows by transaction_id", "count", result.DuplicatesRemoved)
	}
	if invalidRange > 0 {
		log.Info("sales: dropped rows due to invalid quantity/unit_price", "count", invalidRange)
	}
	if unmapped > 0 {
		log.Info("sales: dropped rows due to missing customer/product mapping", "count", unmapped)
	}

	return result, nil
}
