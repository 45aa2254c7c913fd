package app

import (
	"context"
	"errors"

	domainerrors "github.com/polkiloo/shopmart/internal/domain/errors"
	"github.com/polkiloo/shopmart/internal/domain/model"
	"github.com/polkiloo/shopmart/internal/usecase"
)

// StoreFacade aggregates the storefront use cases behind one surface used by
// the HTTP handlers, the middleware and the settlement worker.
type StoreFacade struct {
	auth     *usecase.AuthUseCase
	catalog  *usecase.CatalogUseCase
	carts    *usecase.CartUseCase
	coupons  *usecase.CouponUseCase
	checkout *usecase.CheckoutUseCase
	orders   *usecase.OrderUseCase
	loyalty  *usecase.LoyaltyUseCase
}

// NewStoreFacade constructs StoreFacade.
func NewStoreFacade(
	auth *usecase.AuthUseCase,
	catalog *usecase.CatalogUseCase,
	carts *usecase.CartUseCase,
	coupons *usecase.CouponUseCase,
	checkout *usecase.CheckoutUseCase,
	orders *usecase.OrderUseCase,
	loyalty *usecase.LoyaltyUseCase,
) *StoreFacade {
	return &StoreFacade{
		auth:     auth,
		catalog:  catalog,
		carts:    carts,
		coupons:  coupons,
		checkout: checkout,
		orders:   orders,
		loyalty:  loyalty,
	}
}

func (f *StoreFacade) Register(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password)
	return token, err
}

func (f *StoreFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *StoreFacade) ParseToken(token string) (int64, model.Role, error) {
	return f.auth.ParseToken(token)
}

func (f *StoreFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.catalog.List(ctx)
}

func (f *StoreFacade) Product(ctx context.Context, id int64) (*model.Product, error) {
	return f.catalog.PriceAndStock(ctx, id)
}

func (f *StoreFacade) CreateProduct(ctx context.Context, name string, price float64, stock int64) (*model.Product, error) {
	return f.catalog.Create(ctx, name, price, stock)
}

func (f *StoreFacade) UpdateProduct(ctx context.Context, id int64, name string, price float64) (*model.Product, error) {
	return f.catalog.Update(ctx, id, name, price)
}

func (f *StoreFacade) RestockProduct(ctx context.Context, id, delta int64) (*model.Product, error) {
	return f.catalog.Restock(ctx, id, delta)
}

func (f *StoreFacade) CartItems(ctx context.Context, userID int64) ([]model.CartItem, error) {
	return f.carts.Items(ctx, userID)
}

func (f *StoreFacade) PutCartItem(ctx context.Context, userID, productID, quantity int64) error {
	return f.carts.Put(ctx, userID, productID, quantity)
}

func (f *StoreFacade) RemoveCartItem(ctx context.Context, userID, productID int64) error {
	return f.carts.Remove(ctx, userID, productID)
}

func (f *StoreFacade) Checkout(ctx context.Context, userID int64, couponCode *string) (*model.Order, error) {
	return f.checkout.Checkout(ctx, userID, couponCode)
}

func (f *StoreFacade) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *StoreFacade) Order(ctx context.Context, principal *model.User, orderID int64) (*model.Order, error) {
	return f.orders.Get(ctx, principal, orderID)
}

func (f *StoreFacade) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, orderID, status)
}

func (f *StoreFacade) CreateCoupon(ctx context.Context, coupon *model.Coupon) (*model.Coupon, error) {
	return f.coupons.Create(ctx, coupon)
}

func (f *StoreFacade) Coupons(ctx context.Context) ([]model.Coupon, error) {
	return f.coupons.List(ctx)
}

func (f *StoreFacade) UseCoupon(ctx context.Context, id int64) (*model.Coupon, error) {
	return f.coupons.Use(ctx, id)
}

func (f *StoreFacade) ValidateCoupon(ctx context.Context, code string, subtotal float64) (float64, error) {
	return f.coupons.Validate(ctx, code, subtotal)
}

func (f *StoreFacade) LoyaltySummary(ctx context.Context, userID int64) (*model.LoyaltySummary, error) {
	return f.loyalty.Summary(ctx, userID)
}

func (f *StoreFacade) SetPoints(ctx context.Context, userID, points int64) error {
	return f.loyalty.SetPoints(ctx, userID, points)
}

func (f *StoreFacade) SetTier(ctx context.Context, userID, tierID int64) error {
	return f.loyalty.SetTier(ctx, userID, tierID)
}

func (f *StoreFacade) PendingEarnings(ctx context.Context, limit int) ([]model.EarningsJob, error) {
	return f.loyalty.PendingJobs(ctx, limit)
}

func (f *StoreFacade) SettleEarnings(ctx context.Context, orderID int64) error {
	return f.loyalty.Settle(ctx, orderID)
}

// EnsureReady enforces the startup invariants: the default membership tier
// and the seeded administrator account must exist before traffic is served.
func (f *StoreFacade) EnsureReady(ctx context.Context, adminLogin, adminPassword string) error {
	if _, err := f.loyalty.EnsureDefaultTier(ctx); err != nil {
		return err
	}
	return f.ensureAdmin(ctx, adminLogin, adminPassword)
}

func (f *StoreFacade) ensureAdmin(ctx context.Context, login, password string) error {
	_, _, err := f.auth.RegisterAdmin(ctx, login, password)
	if errors.Is(err, domainerrors.ErrAlreadyExists) {
		return nil
	}
	return err
}
