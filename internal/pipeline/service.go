// Package pipeline orchestrates the ETL run: extract the three raw files,
// clean and deduplicate them, load customers and products while building the
// key maps, resolve and aggregate sales into orders, load the orders, and
// write the data quality report.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fleximart/retail-etl/internal/domain"
	"github.com/fleximart/retail-etl/internal/extract"
	"github.com/fleximart/retail-etl/internal/logger"
	"github.com/fleximart/retail-etl/internal/repository"
	"github.com/fleximart/retail-etl/internal/transform"
)

// Service runs the pipeline. Stages execute strictly in sequence; each load
// stage commits in its own transaction, so a failure rolls back only the
// stage in flight while earlier stages stay committed.
type Service struct {
	customers repository.CustomerRepository
	products  repository.ProductRepository
	orders    repository.OrderRepository
	log       *logger.Logger

	rawDir     string
	reportPath string
}

// New creates a pipeline service.
func New(
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	orders repository.OrderRepository,
	log *logger.Logger,
	rawDir string,
	reportPath string,
) *Service {
	return &Service{
		customers:  customers,
		products:   products,
		orders:     orders,
		log:        log,
		rawDir:     rawDir,
		reportPath: reportPath,
	}
}

// Run executes the full pipeline. Row-level defects never abort the run;
// they are tallied per file. Fatal errors (missing file, schema violation,
// store failure) abort after flushing whatever metrics accumulated, and the
// report reflects the partial run.
func (s *Service) Run(ctx context.Context) error {
	collector := NewCollector()

	if runErr := s.run(ctx, collector); runErr != nil {
		s.log.Error("etl run failed", "error", runErr)
		if err := WriteReport(s.reportPath, collector.All()); err != nil {
			s.log.Error("failed to write data quality report after failure", "error", err)
		}
		return runErr
	}

	if err := WriteReport(s.reportPath, collector.All()); err != nil {
		return fmt.Errorf("failed to write data quality report: %w", err)
	}
	s.log.Info("data quality report written", "path", s.reportPath)
	s.log.Info("etl completed successfully")
	return nil
}

func (s *Service) run(ctx context.Context, collector *Collector) error {
	// Extract
	customersTable, err := s.readInput("customers_raw")
	if err != nil {
		return err
	}
	productsTable, err := s.readInput("products_raw")
	if err != nil {
		return err
	}
	salesTable, err := s.readInput("sales_raw")
	if err != nil {
		return err
	}

	customerMetrics := collector.File(customersTable.FileName())
	productMetrics := collector.File(productsTable.FileName())
	salesMetrics := collector.File(salesTable.FileName())
	customerMetrics.RecordsRead = customersTable.RowCount()
	productMetrics.RecordsRead = productsTable.RowCount()
	salesMetrics.RecordsRead = salesTable.RowCount()

	// Transform customers and products
	customerResult, err := transform.Customers(customersTable, s.log)
	if err != nil {
		return err
	}
	customerMetrics.DuplicatesRemoved = customerResult.DuplicatesRemoved
	customerMetrics.MissingValuesHandled = customerResult.MissingHandled

	productResult, err := transform.Products(productsTable, s.log)
	if err != nil {
		return err
	}
	productMetrics.DuplicatesRemoved = productResult.DuplicatesRemoved
	productMetrics.MissingValuesHandled = productResult.MissingHandled

	// Load customers and products, building the key maps
	customerKeys, err := s.loadCustomers(ctx, customerResult.Customers)
	if err != nil {
		return err
	}
	customerMetrics.RecordsLoaded = customerKeys.Len()

	productKeys, err := s.loadProducts(ctx, productResult.Products)
	if err != nil {
		return err
	}
	productMetrics.RecordsLoaded = productKeys.Len()

	// Resolve sales and aggregate orders
	salesResult, err := transform.Sales(salesTable, customerKeys, productKeys, s.log)
	if err != nil {
		return err
	}
	salesMetrics.DuplicatesRemoved = salesResult.DuplicatesRemoved
	salesMetrics.MissingValuesHandled = salesResult.MissingHandled

	orders := transform.AggregateOrders(salesResult.Sales)
	s.log.Info("sales aggregated", "orders", len(orders), "order_items", len(salesResult.Sales))

	// Load orders and items
	ordersInserted, itemsInserted, err := s.orders.InsertOrders(ctx, orders)
	if err != nil {
		return fmt.Errorf("failed to load orders: %w", err)
	}
	s.log.Info("loaded orders and order items", "orders", ordersInserted, "order_items", itemsInserted)
	salesMetrics.RecordsLoaded = ordersInserted + itemsInserted

	return nil
}

func (s *Service) loadCustomers(ctx context.Context, customers []domain.Customer) (*domain.KeyMap, error) {
	mapping, err := s.customers.UpsertAll(ctx, customers)
	if err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}

	keys := domain.NewKeyMap("customer")
	for sourceKey, id := range mapping {
		if err := keys.Put(sourceKey, id); err != nil {
			return nil, err
		}
	}
	keys.Freeze()

	s.log.Info("loaded/merged customers", "count", keys.Len())
	return keys, nil
}

func (s *Service) loadProducts(ctx context.Context, products []domain.Product) (*domain.KeyMap, error) {
	mapping, err := s.products.ResolveAll(ctx, products)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	keys := domain.NewKeyMap("product")
	for sourceKey, id := range mapping {
		if err := keys.Put(sourceKey, id); err != nil {
			return nil, err
		}
	}
	keys.Freeze()

	s.log.Info("loaded/merged products", "count", keys.Len())
	return keys, nil
}

// readInput locates the named extract in the raw directory, preferring csv
// and falling back to xlsx.
func (s *Service) readInput(base string) (*extract.Table, error) {
	for _, name := range []string{base + ".csv", base + ".xlsx"} {
		path := filepath.Join(s.rawDir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		s.log.Info("reading input file", "path", path)
		return extract.ReadFile(path)
	}
	return nil, fmt.Errorf("input file not found: %s", filepath.Join(s.rawDir, base+".csv"))
}
