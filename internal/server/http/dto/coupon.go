package dto

import "time"

// CouponRequest describes a new coupon definition.
type CouponRequest struct {
	Code        string    `json:"code"`
	Kind        string    `json:"kind"`
	Value       float64   `json:"value"`
	MinPurchase *float64  `json:"min_purchase,omitempty"`
	MaxDiscount *float64  `json:"max_discount,omitempty"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	UsageLimit  *int64    `json:"usage_limit,omitempty"`
	Active      bool      `json:"active"`
}

// CouponResponse represents a coupon definition plus its usage counter.
type CouponResponse struct {
	ID          int64     `json:"id"`
	Code        string    `json:"code"`
	Kind        string    `json:"kind"`
	Value       float64   `json:"value"`
	MinPurchase *float64  `json:"min_purchase,omitempty"`
	MaxDiscount *float64  `json:"max_discount,omitempty"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	UsageLimit  *int64    `json:"usage_limit,omitempty"`
	UsedCount   int64     `json:"used_count"`
	Active      bool      `json:"active"`
}

// CouponValidateRequest asks for the discount a code would yield against a
// candidate subtotal, without consuming a use.
type CouponValidateRequest struct {
	Code     string  `json:"code"`
	Subtotal float64 `json:"subtotal"`
}

// CouponDiscountResponse carries the quoted discount amount.
type CouponDiscountResponse struct {
	Discount float64 `json:"discount"`
}
