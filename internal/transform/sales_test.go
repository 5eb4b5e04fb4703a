package transform

import (
	"testing"

	"github.com/fleximart/retail-etl/internal/domain"
	"github.com/fleximart/retail-etl/internal/logger"
)

func salesKeyMaps(t *testing.T) (*domain.KeyMap, *domain.KeyMap) {
	t.Helper()
	customers := domain.NewKeyMap("customer")
	products := domain.NewKeyMap("product")
	for key, id := range map[string]int64{"C001": 1, "C002": 2} {
		if err := customers.Put(key, id); err != nil {
			t.Fatalf("put customer key: %v", err)
		}
	}
	for key, id := range map[string]int64{"P001": 10, "P002": 20} {
		if err := products.Put(key, id); err != nil {
			t.Fatalf("put product key: %v", err)
		}
	}
	customers.Freeze()
	products.Freeze()
	return customers, products
}

func TestSalesRequiresFrozenKeyMaps(t *testing.T) {
	table := loadTable(t, "sales_raw.csv",
		"transaction_id,customer_id,product_id,quantity,unit_price,transaction_date\nT001,C001,P001,1,10,2024-01-01\n")

	customers := domain.NewKeyMap("customer")
	products := domain.NewKeyMap("product")
	if _, err := Sales(table, customers, products, logger.Discard()); err == nil {
		t.Fatalf("expected error for unfrozen key maps")
	}
}

func TestSalesCleansResolvesAndCounts(t *testing.T) {
	table := loadTable(t, "sales_raw.csv",
		`transaction_id,customer_id,product_id,quantity,unit_price,transaction_date,status
T001,C001,P001,2,100,2024-01-10,Completed
T002,C001,P002,,100,2024-01-10,Completed
T003,C002,P001,1,abc,2024-01-11,Completed
T004,C001,P001,1,50,2024-01-12,
T001,C001,P002,5,10,2024-01-10,Completed
T005,C001,P001,0,50,2024-01-13,Completed
T006,C001,P001,1,-5,2024-01-13,Completed
T007,C999,P001,1,50,2024-01-14,Completed
T008,C001,P999,1,50,2024-01-14,Completed
T009,C002,P002,3,20,15/03/2024,Shipped
`)

	customers, products := salesKeyMaps(t)
	result, err := Sales(table, customers, products, logger.Discard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// T002 (missing quantity), T003 (bad price), T005/T006 (range), T007/T008
	// (unmapped keys) are missing-handled; the repeated T001 is a duplicate.
	if result.MissingHandled != 6 {
		t.Fatalf("expected 6 missing handled, got %d", result.MissingHandled)
	}
	if result.DuplicatesRemoved != 1 {
		t.Fatalf("expected 1 duplicate removed, got %d", result.DuplicatesRemoved)
	}
	if len(result.Sales) != 3 {
		t.Fatalf("expected 3 resolved sales, got %d", len(result.Sales))
	}

	first := result.Sales[0]
	if first.CustomerID != 1 || first.ProductID != 10 {
		t.Fatalf("expected resolved store ids, got %+v", first)
	}

	pending := result.Sales[1]
	if pending.TransactionID != "T004" || pending.Status != "Pending" {
		t.Fatalf("expected absent status defaulted to Pending, got %+v", pending)
	}

	heuristic := result.Sales[2]
	if heuristic.OrderDate != "2024-03-15" {
		t.Fatalf("expected heuristic date resolution, got %q", heuristic.OrderDate)
	}
}

func TestSalesFractionalQuantityTruncates(t *testing.T) {
	table := loadTable(t, "sales_raw.csv",
		"transaction_id,customer_id,product_id,quantity,unit_price,transaction_date\nT001,C001,P001,2.5,10,2024-01-01\n")

	customers, products := salesKeyMaps(t)
	result, err := Sales(table, customers, products, logger.Discard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Sales) != 1 {
		t.Fatalf("fractional quantity >= 1 must survive, got %d rows", len(result.Sales))
	}
	if result.Sales[0].Quantity != 2 {
		t.Fatalf("expected quantity truncated to 2, got %d", result.Sales[0].Quantity)
	}
}
