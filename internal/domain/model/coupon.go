package model

import (
	"time"

	domainErrors "github.com/polkiloo/shopmart/internal/domain/errors"
)

// CouponKind distinguishes percentage and fixed-amount discounts.
type CouponKind string

const (
	CouponPercentage CouponKind = "percentage"
	CouponFixed      CouponKind = "fixed"
)

// Coupon is an administrative discount with a validity window, an optional
// minimum purchase, an optional discount cap and an optional usage limit.
type Coupon struct {
	ID          int64
	Code        string
	Kind        CouponKind
	Value       float64
	MinPurchase *float64
	MaxDiscount *float64
	StartsAt    time.Time
	EndsAt      time.Time
	UsageLimit  *int64
	UsedCount   int64
	Active      bool
}

// Validate checks the coupon against a candidate subtotal at the given moment.
// Validation alone never consumes a use; redemption is a separate step tied to
// order creation.
func (c *Coupon) Validate(subtotal float64, now time.Time) error {
	if !c.Active {
		return &domainErrors.CouponError{Code: c.Code, Reason: domainErrors.CouponInactive}
	}
	if now.Before(c.StartsAt) {
		return &domainErrors.CouponError{Code: c.Code, Reason: domainErrors.CouponNotStarted}
	}
	if now.After(c.EndsAt) {
		return &domainErrors.CouponError{Code: c.Code, Reason: domainErrors.CouponExpired}
	}
	if c.UsageLimit != nil && c.UsedCount >= *c.UsageLimit {
		return &domainErrors.CouponError{Code: c.Code, Reason: domainErrors.CouponLimitReached}
	}
	if c.MinPurchase != nil && subtotal < *c.MinPurchase {
		return &domainErrors.CouponError{Code: c.Code, Reason: domainErrors.CouponMinPurchase}
	}
	return nil
}

// Discount computes the discount amount for a subtotal. Percentage discounts
// are clamped to MaxDiscount when configured; fixed discounts are returned
// as-is and may exceed the subtotal, so callers floor the final total at zero.
func (c *Coupon) Discount(subtotal float64) float64 {
	switch c.Kind {
	case CouponPercentage:
		discount := subtotal * c.Value / 100
		if c.MaxDiscount != nil && discount > *c.MaxDiscount {
			discount = *c.MaxDiscount
		}
		return discount
	case CouponFixed:
		return c.Value
	}
	return 0
}
