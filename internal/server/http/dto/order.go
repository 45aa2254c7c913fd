package dto

import "time"

// CheckoutRequest carries the optional coupon code applied at checkout.
type CheckoutRequest struct {
	CouponCode *string `json:"coupon_code,omitempty"`
}

// StatusUpdateRequest describes an administrative status change.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// OrderLineResponse captures one purchased line with the price paid.
type OrderLineResponse struct {
	ProductID int64   `json:"product_id"`
	Quantity  int64   `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// OrderResponse represents an order with its lines.
type OrderResponse struct {
	ID        int64               `json:"id"`
	Status    string              `json:"status"`
	Total     float64             `json:"total"`
	CouponID  *int64              `json:"coupon_id,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
	Lines     []OrderLineResponse `json:"lines"`
}
