package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fleximart/retail-etl/internal/db"
	"github.com/fleximart/retail-etl/internal/domain"
)

const (
	findProductSQL = `
SELECT product_id
FROM products
WHERE product_name = $1 AND category = $2
ORDER BY product_id
LIMIT 1`

	updateProductSQL = `
UPDATE products
SET price = $1,
    stock_quantity = $2
WHERE product_id = $3`

	insertProductSQL = `
INSERT INTO products (product_name, category, price, stock_quantity)
VALUES ($1, $2, $3, $4)
RETURNING product_id`
)

type productRepository struct {
	conn *db.Connection
}

// NewProductRepository creates a product repository backed by Postgres.
func NewProductRepository(conn *db.Connection) ProductRepository {
	return &productRepository{conn: conn}
}

func (r *productRepository) ResolveAll(ctx context.Context, products []domain.Product) (map[string]int64, error) {
	mapping := make(map[string]int64, len(products))

	err := r.conn.WithTx(ctx, func(tx pgx.Tx) error {
		for _, p := range products {
			var id int64
			err := tx.QueryRow(ctx, findProductSQL, p.ProductName, p.Category).Scan(&id)
			switch {
			case err == nil:
				if _, err := tx.Exec(ctx, updateProductSQL, p.Price, p.StockQuantity, id); err != nil {
					return fmt.Errorf("failed to update product %s: %w", p.ProductName, err)
				}
			case errors.Is(err, pgx.ErrNoRows):
				if err := tx.QueryRow(ctx, insertProductSQL,
					p.ProductName, p.Category, p.Price, p.StockQuantity,
				).Scan(&id); err != nil {
					return fmt.Errorf("failed to insert product %s: %w", p.ProductName, err)
				}
			default:
				return fmt.Errorf("failed to look up product %s: %w", p.ProductName, err)
			}

			mapping[p.SourceKey] = id
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return mapping, nil
}
