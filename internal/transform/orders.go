package transform

import (
	"github.com/fleximart/retail-etl/internal/domain"
)

type orderKey struct {
	customerID int64
	orderDate  string
	status     string
}

// AggregateOrders groups resolved sales into one order per customer per
// calendar day per status. Same-day, same-status transactions collapse into
// a single order with one line item each, and the order total is the sum of
// its items' subtotals. Groups appear in first-seen input order.
func AggregateOrders(sales []domain.ResolvedSale) []domain.Order {
	index := make(map[orderKey]int)
	var orders []domain.Order

	for _, sale := range sales {
		item := domain.OrderItem{
			ProductID: sale.ProductID,
			Quantity:  sale.Quantity,
			UnitPrice: sale.UnitPrice,
			Subtotal:  float64(sale.Quantity) * sale.UnitPrice,
		}

		key := orderKey{sale.CustomerID, sale.OrderDate, sale.Status}
		if i, ok := index[key]; ok {
			orders[i].Items = append(orders[i].Items, item)
			orders[i].TotalAmount += item.Subtotal
			continue
		}

		index[key] = len(orders)
		orders = append(orders, domain.Order{
			CustomerID:  sale.CustomerID,
			OrderDate:   sale.OrderDate,
			Status:      sale.Status,
			TotalAmount: item.Subtotal,
			Items:       []domain.OrderItem{item},
		})
	}

	return orders
}
