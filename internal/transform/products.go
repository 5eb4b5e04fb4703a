package transform

import (
	"sort"

	"github.com/fleximart/retail-etl/internal/domain"
	"github.com/fleximart/retail-etl/internal/extract"
	"github.com/fleximart/retail-etl/internal/logger"
)

// ProductResult carries the cleaned product rows and their counters.
type ProductResult struct {
	Products          []domain.Product
	DuplicatesRemoved int
	MissingHandled    int
}

type productRow struct {
	sourceKey  string
	name       string
	category   string
	price      float64
	priceKnown bool
	stock      int
}

// Products cleans and deduplicates the product extract. Rows without a
// product name are dropped. Missing or non-numeric prices are back-filled in
// two passes: the median of known prices within the row's standardized
// category, then the median across all rows. Both medians come from the
// prices as read, before any fill. Rows still without a price are dropped.
func Products(table *extract.Table, log *logger.Logger) (ProductResult, error) {
	var result ProductResult

	if err := requireColumns(table, "product_id", "product_name", "category", "price"); err != nil {
		return result, err
	}

	var rows []productRow
	nameDropped := 0

	for i := 0; i < table.RowCount(); i++ {
		name := NormalizeNull(table.Cell(i, "product_name"))
		if name == "" {
			nameDropped++
			continue
		}

		stock := 0
		if f, ok := ParseNumber(table.Cell(i, "stock_quantity")); ok {
			stock = int(f)
		}

		price, priceKnown := ParseNumber(table.Cell(i, "price"))

		rows = append(rows, productRow{
			sourceKey:  NormalizeNull(table.Cell(i, "product_id")),
			name:       name,
			category:   StandardizeCategory(table.Cell(i, "category")),
			price:      price,
			priceKnown: priceKnown,
			stock:      stock,
		})
	}

	result.MissingHandled += nameDropped
	if nameDropped > 0 {
		log.Info("products: dropped rows due to missing product_name", "count", nameDropped)
	}

	globalMedian, globalKnown := median(knownPrices(rows, ""))

	categoryMedians := make(map[string]float64)
	for _, row := range rows {
		if _, done := categoryMedians[row.category]; done {
			continue
		}
		if m, ok := median(knownPrices(rows, row.category)); ok {
			categoryMedians[row.category] = m
		}
	}

	priceDropped := 0
	seen := make(map[string]struct{})

	for _, row := range rows {
		if !row.priceKnown {
			if m, ok := categoryMedians[row.category]; ok {
				row.price = m
			} else if globalKnown {
				row.price = globalMedian
			} else {
				priceDropped++
				continue
			}
		}

		if _, dup := seen[row.sourceKey]; dup {
			result.DuplicatesRemoved++
			continue
		}
		seen[row.sourceKey] = struct{}{}

		result.Products = append(result.Products, domain.Product{
			SourceKey:     row.sourceKey,
			ProductName:   row.name,
			Category:      row.category,
			Price:         row.price,
			StockQuantity: row.stock,
		})
	}

	result.MissingHandled += priceDropped
	if priceDropped > 0 {
		log.Info("products: dropped rows due to missing price after fill", "count", priceDropped)
	}
	if result.DuplicatesRemoved > 0 {
		log.Info("products: removed duplicate rows by product_id", "count", result.DuplicatesRemoved)
	}

	return result, nil
}

// knownPrices collects the as-read prices, optionally restricted to one
// category. An empty category means all rows.
func knownPrices(rows []productRow, category string) []float64 {
	var prices []float64
	for _, row := range rows {
		if !row.priceKnown {
			continue
		}
		if category != "" && row.category != category {
			continue
		}
		prices = append(prices, row.price)
	}
	return prices
}

// median returns the middle value, averaging the two middle values for an
// even count. The second return is false for an empty slice.
func median(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid], true
	}
	return (sorted[mid-1] + sorted[mid]) / 2, true
}
