package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fleximart/retail-etl/internal/db"
	"github.com/fleximart/retail-etl/internal/domain"
)

const (
	insertOrderSQL = `
INSERT INTO orders (customer_id, order_date, total_amount, status)
VALUES ($1, $2, $3, $4)
RETURNING order_id`

	insertOrderItemSQL = `
INSERT INTO order_items (order_id, product_id, quantity, unit_price, subtotal)
VALUES ($1, $2, $3, $4, $5)`
)

type orderRepository struct {
	conn *db.Connection
}

// NewOrderRepository creates an order repository backed by Postgres.
func NewOrderRepository(conn *db.Connection) OrderRepository {
	return &orderRepository{conn: conn}
}

func (r *orderRepository) InsertOrders(ctx context.Context, orders []domain.Order) (int, int, error) {
	if len(orders) == 0 {
		return 0, 0, nil
	}

	var ordersInserted, itemsInserted int

	err := r.conn.WithTx(ctx, func(tx pgx.Tx) error {
		for _, o := range orders {
			if len(o.Items) == 0 {
				continue
			}

			orderDate, err := nullDate(o.OrderDate)
			if err != nil {
				return fmt.Errorf("order for customer %d: %w", o.CustomerID, err)
			}

			status := o.Status
			if status == "" {
				status = "Pending"
			}

			var orderID int64
			if err := tx.QueryRow(ctx, insertOrderSQL,
				o.CustomerID, orderDate, o.TotalAmount, status,
			).Scan(&orderID); err != nil {
				return fmt.Errorf("failed to insert order for customer %d: %w", o.CustomerID, err)
			}
			ordersInserted++

			for _, item := range o.Items {
				if _, err := tx.Exec(ctx, insertOrderItemSQL,
					orderID, item.ProductID, item.Quantity, item.UnitPrice, item.Subtotal,
				); err != nil {
					return fmt.Errorf("failed to insert order item for order %d: %w", orderID, err)
				}
				itemsInserted++
			}
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return ordersInserted, itemsInserted, nil
}
