package usecase

import (
	"context"

	domainErrors "github.com/polkiloo/shopmart/internal/domain/errors"
	"github.com/polkiloo/shopmart/internal/domain/model"
	"github.com/polkiloo/shopmart/internal/domain/repository"
)

// OrderUseCase exposes order reads and the administrative status machine.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// ListByUser returns the customer's orders sorted by creation time.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// Get returns an order with its lines. Customers see only their own orders;
// administrators see all.
func (u *OrderUseCase) Get(ctx context.Context, principal *model.User, orderID int64) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !principal.IsAdmin() && order.UserID != principal.ID {
		return nil, domainErrors.ErrForbidden
	}
	return order, nil
}

// UpdateStatus transitions an order's fulfillment state. Values outside the
// fixed enumeration are rejected before touching the store; transition
// legality is enforced under a row lock in the repository.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
	if !model.ValidStatus(status) {
		return nil, domainErrors.ErrInvalidStatus
	}
	return u.orders.UpdateStatus(ctx, orderID, status)
}
