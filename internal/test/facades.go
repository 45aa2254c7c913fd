package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/polkiloo/shopmart/internal/domain/model"
)

// CatalogFacadeStub provides controllable behaviour for catalog endpoints.
type CatalogFacadeStub struct {
	ProductsFn func(context.Context) ([]model.Product, error)
	ProductFn  func(context.Context, int64) (*model.Product, error)
	CreateFn   func(context.Context, string, float64, int64) (*model.Product, error)
	UpdateFn   func(context.Context, int64, string, float64) (*model.Product, error)
	RestockFn  func(context.Context, int64, int64) (*model.Product, error)
}

// Products returns predefined catalog contents.
func (s CatalogFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return []model.Product{{ID: 1, Name: "widget", Price: 10, Stock: 5}}, nil
}

// Product returns a predefined catalog entry.
func (s CatalogFacadeStub) Product(ctx context.Context, id int64) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id, Name: "widget", Price: 10, Stock: 5}, nil
}

// CreateProduct delegates to the override or echoes the request.
func (s CatalogFacadeStub) CreateProduct(ctx context.Context, name string, price float64, stock int64) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, name, price, stock)
	}
	return &model.Product{ID: 1, Name: name, Price: price, Stock: stock}, nil
}

// UpdateProduct delegates to the override or echoes the request.
func (s CatalogFacadeStub) UpdateProduct(ctx context.Context, id int64, name string, price float64) (*model.Product, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, name, price)
	}
	return &model.Product{ID: id, Name: name, Price: price}, nil
}

// RestockProduct delegates to the override or echoes the request.
func (s CatalogFacadeStub) RestockProduct(ctx context.Context, id, delta int64) (*model.Product, error) {
	if s.RestockFn != nil {
		return s.RestockFn(ctx, id, delta)
	}
	return &model.Product{ID: id, Stock: delta}, nil
}

// CartFacadeStub simulates cart operations.
type CartFacadeStub struct {
	ItemsFn  func(context.Context, int64) ([]model.CartItem, error)
	PutFn    func(context.Context, int64, int64, int64) error
	RemoveFn func(context.Context, int64, int64) error
}

// CartItems returns predefined cart rows.
func (s CartFacadeStub) CartItems(ctx context.Context, userID int64) ([]model.CartItem, error) {
	if s.ItemsFn != nil {
		return s.ItemsFn(ctx, userID)
	}
	return []model.CartItem{{UserID: userID, ProductID: 1, Quantity: 2}}, nil
}

// PutCartItem executes configured handler.
func (s CartFacadeStub) PutCartItem(ctx context.Context, userID, productID, quantity int64) error {
	if s.PutFn != nil {
		return s.PutFn(ctx, userID, productID, quantity)
	}
	return nil
}

// RemoveCartItem executes configured handler.
func (s CartFacadeStub) RemoveCartItem(ctx context.Context, userID, productID int64) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, userID, productID)
	}
	return nil
}

// CheckoutFacadeStub simulates checkout.
type CheckoutFacadeStub struct {
	CheckoutFn func(context.Context, int64, *string) (*model.Order, error)
}

// Checkout delegates to provided function or returns a default pending order.
func (s CheckoutFacadeStub) Checkout(ctx context.Context, userID int64, couponCode *string) (*model.Order, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, userID, couponCode)
	}
	return &model.Order{ID: 1, UserID: userID, Status: model.OrderStatusPending}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	OrdersFn       func(context.Context, int64) ([]model.Order, error)
	OrderFn        func(context.Context, *model.User, int64) (*model.Order, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus) (*model.Order, error)
}

// Orders returns predefined orders for given user.
func (s OrderFacadeStub) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID)
	}
	return []model.Order{{ID: 1, UserID: userID, Status: model.OrderStatusPending}}, nil
}

// Order returns a predefined order.
func (s OrderFacadeStub) Order(ctx context.Context, principal *model.User, orderID int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, principal, orderID)
	}
	return &model.Order{ID: orderID, UserID: principal.ID, Status: model.OrderStatusPending}, nil
}

// UpdateOrderStatus delegates to the override or echoes the transition.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status)
	}
	return &model.Order{ID: orderID, Status: status}, nil
}

// CouponFacadeStub simulates coupon administration.
type CouponFacadeStub struct {
	CreateFn   func(context.Context, *model.Coupon) (*model.Coupon, error)
	ListFn     func(context.Context) ([]model.Coupon, error)
	UseFn      func(context.Context, int64) (*model.Coupon, error)
	ValidateFn func(context.Context, string, float64) (float64, error)
}

// CreateCoupon delegates to the override or echoes the coupon.
func (s CouponFacadeStub) CreateCoupon(ctx context.Context, coupon *model.Coupon) (*model.Coupon, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, coupon)
	}
	created := *coupon
	created.ID = 1
	return &created, nil
}

// Coupons returns predefined coupons.
func (s CouponFacadeStub) Coupons(ctx context.Context) ([]model.Coupon, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return []model.Coupon{{ID: 1, Code: "SAVE10", Kind: model.CouponPercentage, Value: 10, Active: true}}, nil
}

// UseCoupon delegates to the override or returns a bumped coupon.
func (s CouponFacadeStub) UseCoupon(ctx context.Context, id int64) (*model.Coupon, error) {
	if s.UseFn != nil {
		return s.UseFn(ctx, id)
	}
	return &model.Coupon{ID: id, Code: "SAVE10", UsedCount: 1, Active: true}, nil
}

// ValidateCoupon delegates to the override or quotes a flat discount.
func (s CouponFacadeStub) ValidateCoupon(ctx context.Context, code string, subtotal float64) (float64, error) {
	if s.ValidateFn != nil {
		return s.ValidateFn(ctx, code, subtotal)
	}
	return subtotal / 10, nil
}

// LoyaltyFacadeStub simulates loyalty operations.
type LoyaltyFacadeStub struct {
	SummaryFn   func(context.Context, int64) (*model.LoyaltySummary, error)
	SetPointsFn func(context.Context, int64, int64) error
	SetTierFn   func(context.Context, int64, int64) error
}

// LoyaltySummary returns stored summary or default data.
func (s LoyaltyFacadeStub) LoyaltySummary(ctx context.Context, userID int64) (*model.LoyaltySummary, error) {
	if s.SummaryFn != nil {
		return s.SummaryFn(ctx, userID)
	}
	return &model.LoyaltySummary{Points: 10, LifetimeSpend: 10.5, Tier: model.MembershipTier{ID: 1, Name: "Basic", IsDefault: true}}, nil
}

// SetPoints executes configured handler.
func (s LoyaltyFacadeStub) SetPoints(ctx context.Context, userID, points int64) error {
	if s.SetPointsFn != nil {
		return s.SetPointsFn(ctx, userID, points)
	}
	return nil
}

// SetTier executes configured handler.
func (s LoyaltyFacadeStub) SetTier(ctx context.Context, userID, tierID int64) error {
	if s.SetTierFn != nil {
		return s.SetTierFn(ctx, userID, tierID)
	}
	return nil
}

// StoreFacadeStub aggregates facade dependencies for HTTP layer tests.
type StoreFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	CartFacadeStub
	CheckoutFacadeStub
	OrderFacadeStub
	CouponFacadeStub
	LoyaltyFacadeStub
}

// WorkerFacadeStub mimics worker interactions with the settlement facade.
type WorkerFacadeStub struct {
	Batches   [][]model.EarningsJob
	PendingFn func(context.Context, int) ([]model.EarningsJob, error)
	SettleFn  func(context.Context, int64) error

	Settled []int64

	mu               sync.Mutex
	pendingCallCount int32
}

// Lock exposes internal mutex for external synchronization.
func (s *WorkerFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *WorkerFacadeStub) Unlock() { s.mu.Unlock() }

// PendingEarnings returns batches from configured queue.
func (s *WorkerFacadeStub) PendingEarnings(ctx context.Context, limit int) ([]model.EarningsJob, error) {
	if s.PendingFn != nil {
		return s.PendingFn(ctx, limit)
	}
	call := atomic.AddInt32(&s.pendingCallCount, 1)
	if int(call) <= len(s.Batches) {
		return s.Batches[call-1], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}

// SettleEarnings records settlement requests.
func (s *WorkerFacadeStub) SettleEarnings(ctx context.Context, orderID int64) error {
	if s.SettleFn != nil {
		return s.SettleFn(ctx, orderID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Settled = append(s.Settled, orderID)
	return nil
}
