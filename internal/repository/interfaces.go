package repository

import (
	"context"

	"github.com/fleximart/retail-etl/internal/domain"
)

// CustomerRepository defines the store operations for customers. The store
// generates customer_id; callers never supply it.
type CustomerRepository interface {
	// UpsertAll inserts or updates every customer keyed by email inside one
	// transaction and returns source key -> persisted customer_id. Rerunning
	// with unchanged input yields the same identifiers and no new rows.
	UpsertAll(ctx context.Context, customers []domain.Customer) (map[string]int64, error)
}

// ProductRepository defines the store operations for products. Products have
// no natural uniqueness constraint, so identity is resolved by the
// (product_name, category) pair.
type ProductRepository interface {
	// ResolveAll looks up each product by (product_name, category), updating
	// the match (smallest product_id wins) or inserting a new row, inside one
	// transaction. Returns source key -> persisted product_id.
	ResolveAll(ctx context.Context, products []domain.Product) (map[string]int64, error)
}

// OrderRepository persists aggregated orders and their line items.
type OrderRepository interface {
	// InsertOrders writes every order and its items in one transaction:
	// either the whole batch lands or none of it. Orders without items are
	// skipped. Returns the number of orders and items inserted.
	InsertOrders(ctx context.Context, orders []domain.Order) (ordersInserted int, itemsInserted int, err error)
}
