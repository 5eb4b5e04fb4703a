package domain

// Product is a cleaned product row ready for loading. Price is always set
// after the median back-fill passes; rows that could not be filled never
// become a Product. SourceKey (e.g. "P001") feeds the key map only.
type Product struct {
	SourceKey     string  `json:"source_key"`
	ProductName   string  `json:"product_name"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
}
