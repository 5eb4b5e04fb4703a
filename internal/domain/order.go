package domain

// Order groups same-day, same-status transactions of one customer. It is
// uniquely identified in a run by (CustomerID, OrderDate, Status); the store
// generates order_id on insert.
type Order struct {
	CustomerID  int64       `json:"customer_id"`
	OrderDate   string      `json:"order_date"`
	Status      string      `json:"status"`
	TotalAmount float64     `json:"total_amount"`
	Items       []OrderItem `json:"items"`
}

// OrderItem is a single line of an order. Subtotal is always
// Quantity * UnitPrice, and an order's TotalAmount is the sum of its
// items' subtotals.
type OrderItem struct {
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}
