package repository

import (
	"context"

	"github.com/polkiloo/shopmart/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	// Checkout converts the customer's cart into an order as one atomic unit:
	// stock verification and conditional decrement, order and line insertion
	// with captured unit prices, cart clearing, coupon redemption when a code
	// is supplied, and the loyalty job enqueue. Either all persist or none do.
	Checkout(ctx context.Context, userID int64, couponCode *string) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error)
}
