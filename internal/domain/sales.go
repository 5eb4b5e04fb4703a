package domain

// SalesTransaction is a cleaned transaction row whose foreign keys are still
// upstream source keys. Quantity stays fractional until an order item is
// materialized so that range validation sees the coerced value unchanged.
type SalesTransaction struct {
	TransactionID     string  `json:"transaction_id"`
	SourceCustomerKey string  `json:"source_customer_key"`
	SourceProductKey  string  `json:"source_product_key"`
	Quantity          float64 `json:"quantity"`
	UnitPrice         float64 `json:"unit_price"`
	OrderDate         string  `json:"order_date"`
	Status            string  `json:"status"`
}

// ResolvedSale is a transaction whose source keys have been mapped to
// store-generated identifiers.
type ResolvedSale struct {
	TransactionID string  `json:"transaction_id"`
	CustomerID    int64   `json:"customer_id"`
	ProductID     int64   `json:"product_id"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
	OrderDate     string  `json:"order_date"`
	Status        string  `json:"status"`
}
