package usecase

import (
	"context"
	"log/slog"
	"strings"

	domainErrors "github.com/polkiloo/shopmart/internal/domain/errors"
	"github.com/polkiloo/shopmart/internal/domain/model"
	"github.com/polkiloo/shopmart/internal/domain/repository"
)

// checkoutAttempts bounds whole-transaction retries on transient store errors.
const checkoutAttempts = 3

// CheckoutUseCase orchestrates the cart-to-order conversion. The persistence
// of the order is one atomic unit inside the repository; this layer adds
// transient-failure retry of the whole transaction and the post-commit
// loyalty settlement.
type CheckoutUseCase struct {
	orders  repository.OrderRepository
	loyalty repository.LoyaltyRepository
	logger  *slog.Logger
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(orders repository.OrderRepository, loyalty repository.LoyaltyRepository, logger *slog.Logger) *CheckoutUseCase {
	return &CheckoutUseCase{orders: orders, loyalty: loyalty, logger: logger}
}

// Checkout converts the customer's cart into an order. Business rejections
// (empty cart, insufficient stock, coupon rejection) are never retried;
// transient store failures retry the whole transaction. After the order is
// durably created, loyalty earnings settle best-effort: a failure leaves the
// order standing and the settlement worker picks the job up later.
func (u *CheckoutUseCase) Checkout(ctx context.Context, userID int64, couponCode *string) (*model.Order, error) {
	if couponCode != nil {
		trimmed := strings.TrimSpace(*couponCode)
		if trimmed == "" {
			couponCode = nil
		} else {
			couponCode = &trimmed
		}
	}

	var order *model.Order
	var err error
	for attempt := 1; attempt <= checkoutAttempts; attempt++ {
		order, err = u.orders.Checkout(ctx, userID, couponCode)
		if err == nil {
			break
		}
		if !domainErrors.IsTransient(err) {
			return nil, err
		}
		u.logger.Warn("checkout transaction retry",
			slog.Int64("user_id", userID),
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()),
		)
	}
	if err != nil {
		return nil, err
	}

	if err := u.loyalty.Settle(ctx, order.ID); err != nil {
		u.logger.Warn("loyalty settlement deferred",
			slog.Int64("order_id", order.ID),
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()),
		)
	}

	return order, nil
}
