package handlers

import (
	"context"

	"github.com/polkiloo/shopmart/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password string) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (int64, model.Role, error)
}

// CatalogFacade exposes product catalog operations.
type CatalogFacade interface {
	Products(ctx context.Context) ([]model.Product, error)
	Product(ctx context.Context, id int64) (*model.Product, error)
	CreateProduct(ctx context.Context, name string, price float64, stock int64) (*model.Product, error)
	UpdateProduct(ctx context.Context, id int64, name string, price float64) (*model.Product, error)
	RestockProduct(ctx context.Context, id, delta int64) (*model.Product, error)
}

// CartFacade exposes per-user cart operations.
type CartFacade interface {
	CartItems(ctx context.Context, userID int64) ([]model.CartItem, error)
	PutCartItem(ctx context.Context, userID, productID, quantity int64) error
	RemoveCartItem(ctx context.Context, userID, productID int64) error
}

// CheckoutFacade converts a cart into an order.
type CheckoutFacade interface {
	Checkout(ctx context.Context, userID int64, couponCode *string) (*model.Order, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	Orders(ctx context.Context, userID int64) ([]model.Order, error)
	Order(ctx context.Context, principal *model.User, orderID int64) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error)
}

// CouponFacade exposes coupon administration and the customer-facing
// discount quote.
type CouponFacade interface {
	CreateCoupon(ctx context.Context, coupon *model.Coupon) (*model.Coupon, error)
	Coupons(ctx context.Context) ([]model.Coupon, error)
	UseCoupon(ctx context.Context, id int64) (*model.Coupon, error)
	ValidateCoupon(ctx context.Context, code string, subtotal float64) (float64, error)
}

// LoyaltyFacade exposes loyalty summary and administrative overrides.
type LoyaltyFacade interface {
	LoyaltySummary(ctx context.Context, userID int64) (*model.LoyaltySummary, error)
	SetPoints(ctx context.Context, userID, points int64) error
	SetTier(ctx context.Context, userID, tierID int64) error
}

// StoreFacade aggregates the full set of operations used across handlers.
type StoreFacade interface {
	AuthFacade
	CatalogFacade
	CartFacade
	CheckoutFacade
	OrderFacade
	CouponFacade
	LoyaltyFacade
}
