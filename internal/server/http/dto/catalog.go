package dto

// ProductCreateRequest describes a new catalog entry.
type ProductCreateRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int64   `json:"stock"`
}

// ProductUpdateRequest describes name/price changes to an existing product.
type ProductUpdateRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// RestockRequest describes a stock adjustment.
type RestockRequest struct {
	Delta int64 `json:"delta"`
}

// ProductResponse represents one catalog entry.
type ProductResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int64   `json:"stock"`
}

// CartItemRequest describes a cart upsert payload.
type CartItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// CartItemResponse represents one cart row.
type CartItemResponse struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}
