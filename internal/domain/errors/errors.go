package errors

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidStatus      = errors.New("unknown order status")
	ErrIllegalTransition  = errors.New("illegal status transition")
)

// InsufficientStockError rejects a checkout whose requested quantity exceeds
// the current stock of a product. It always names the offending product.
type InsufficientStockError struct {
	ProductID int64
	Requested int64
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d: requested %d, available %d", e.ProductID, e.Requested, e.Available)
}

// CouponReason identifies why a coupon was rejected.
type CouponReason string

const (
	CouponNotFound     CouponReason = "not found"
	CouponInactive     CouponReason = "inactive"
	CouponNotStarted   CouponReason = "not started"
	CouponExpired      CouponReason = "expired"
	CouponLimitReached CouponReason = "usage limit reached"
	CouponMinPurchase  CouponReason = "subtotal below minimum purchase"
)

// CouponError rejects a coupon during validation or redemption.
type CouponError struct {
	Code   string
	Reason CouponReason
}

func (e *CouponError) Error() string {
	return fmt.Sprintf("coupon %q rejected: %s", e.Code, e.Reason)
}

// ConfigurationError reports invalid persisted configuration, such as a tier
// table without a default tier. It is fatal at startup and blocks checkout.
type ConfigurationError struct {
	Detail string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Detail
}

// TransientError marks store failures that are safe to retry as a whole
// transaction: serialization conflicts, lock timeouts, lost connections.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string { return "transient store error: " + e.Err.Error() }
func (e *TransientError) Unwrap() error { return e.Err }

// IsTransient reports whether err is retryable at the transaction level.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}
