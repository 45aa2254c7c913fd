package test

import (
	"context"

	domainErrors "github.com/polkiloo/shopmart/internal/domain/errors"
	"github.com/polkiloo/shopmart/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, login, passwordHash string, role model.Role) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Login: login, PasswordHash: passwordHash, Role: role, TierID: 1}
	s.Next++
	s.Users[login] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByLogin fetches user by login or returns not found.
func (s *UserRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[login]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ProductRepositoryStub stores products in-memory for tests.
type ProductRepositoryStub struct {
	Products map[int64]*model.Product
	Next     int64
	Err      error
}

// NewProductRepositoryStub constructs stub repository with initialized map.
func NewProductRepositoryStub() *ProductRepositoryStub {
	return &ProductRepositoryStub{Products: make(map[int64]*model.Product), Next: 1}
}

// Add seeds a product and returns its identifier.
func (s *ProductRepositoryStub) Add(name string, price float64, stock int64) int64 {
	if s.Products == nil {
		s.Products = make(map[int64]*model.Product)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	id := s.Next
	s.Next++
	s.Products[id] = &model.Product{ID: id, Name: name, Price: price, Stock: stock}
	return id
}

// GetByID fetches product or returns not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if p, ok := s.Products[id]; ok {
		return p, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns all stored products.
func (s *ProductRepositoryStub) List(ctx context.Context) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.Product, 0, len(s.Products))
	for _, p := range s.Products {
		out = append(out, *p)
	}
	return out, nil
}

// Create stores a new product.
func (s *ProductRepositoryStub) Create(ctx context.Context, name string, price float64, stock int64) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	id := s.Add(name, price, stock)
	return s.Products[id], nil
}

// Update mutates name and price of an existing product.
func (s *ProductRepositoryStub) Update(ctx context.Context, id int64, name string, price float64) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	p, ok := s.Products[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	p.Name = name
	p.Price = price
	return p, nil
}

// Restock adjusts stock of an existing product.
func (s *ProductRepositoryStub) Restock(ctx context.Context, id int64, delta int64) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	p, ok := s.Products[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	p.Stock += delta
	return p, nil
}

// CartRepositoryStub stores cart rows keyed by user.
type CartRepositoryStub struct {
	Items map[int64]map[int64]int64
	Err   error
}

// NewCartRepositoryStub constructs stub repository with initialized map.
func NewCartRepositoryStub() *CartRepositoryStub {
	return &CartRepositoryStub{Items: make(map[int64]map[int64]int64)}
}

// ListByUser returns the user's cart rows.
func (s *CartRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.CartItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.CartItem, 0, len(s.Items[userID]))
	for productID, quantity := range s.Items[userID] {
		out = append(out, model.CartItem{UserID: userID, ProductID: productID, Quantity: quantity})
	}
	return out, nil
}

// Put upserts a cart row.
func (s *CartRepositoryStub) Put(ctx context.Context, userID, productID, quantity int64) error {
	if s.Err != nil {
		return s.Err
	}
	if s.Items == nil {
		s.Items = make(map[int64]map[int64]int64)
	}
	if s.Items[userID] == nil {
		s.Items[userID] = make(map[int64]int64)
	}
	s.Items[userID][productID] = quantity
	return nil
}

// Remove deletes a cart row or reports not found.
func (s *CartRepositoryStub) Remove(ctx context.Context, userID, productID int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Items[userID][productID]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Items[userID], productID)
	return nil
}

// OrderRepositoryStub allows tests to customize behaviour.
type OrderRepositoryStub struct {
	CheckoutFn     func(context.Context, int64, *string) (*model.Order, error)
	GetByIDFn      func(context.Context, int64) (*model.Order, error)
	ListByUserFn   func(context.Context, int64) ([]model.Order, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus) (*model.Order, error)

	Checkouts []CheckoutCall
	Orders    []model.Order
	Updates   []StatusUpdateCall
}

// CheckoutCall stores information about Checkout invocations.
type CheckoutCall struct {
	UserID     int64
	CouponCode *string
}

// StatusUpdateCall stores information about UpdateStatus invocations.
type StatusUpdateCall struct {
	OrderID int64
	Status  model.OrderStatus
}

// Checkout tracks invocations and returns configured responses.
func (s *OrderRepositoryStub) Checkout(ctx context.Context, userID int64, couponCode *string) (*model.Order, error) {
	s.Checkouts = append(s.Checkouts, CheckoutCall{UserID: userID, CouponCode: couponCode})
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, userID, couponCode)
	}
	return &model.Order{ID: 1, UserID: userID, Status: model.OrderStatusPending}, nil
}

// GetByID returns matched order either via override or stored slice.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns orders from configured slice.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	out := make([]model.Order, 0)
	for _, o := range s.Orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

// UpdateStatus records the requested transition.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
	s.Updates = append(s.Updates, StatusUpdateCall{OrderID: orderID, Status: status})
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status)
	}
	for i := range s.Orders {
		if s.Orders[i].ID == orderID {
			if !model.CanTransition(s.Orders[i].Status, status) {
				return nil, domainErrors.ErrIllegalTransition
			}
			s.Orders[i].Status = status
			order := s.Orders[i]
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// CouponRepositoryStub stores coupons in-memory for tests.
type CouponRepositoryStub struct {
	Coupons map[int64]*model.Coupon
	Next    int64
	Err     error
	UseFn   func(context.Context, int64) (*model.Coupon, error)
}

// NewCouponRepositoryStub constructs stub repository with initialized map.
func NewCouponRepositoryStub() *CouponRepositoryStub {
	return &CouponRepositoryStub{Coupons: make(map[int64]*model.Coupon), Next: 1}
}

// Add seeds a coupon and returns it.
func (s *CouponRepositoryStub) Add(coupon model.Coupon) *model.Coupon {
	if s.Coupons == nil {
		s.Coupons = make(map[int64]*model.Coupon)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	coupon.ID = s.Next
	s.Next++
	s.Coupons[coupon.ID] = &coupon
	return &coupon
}

// GetByCode fetches coupon by code or returns not found.
func (s *CouponRepositoryStub) GetByCode(ctx context.Context, code string) (*model.Coupon, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, c := range s.Coupons {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches coupon or returns not found.
func (s *CouponRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Coupon, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if c, ok := s.Coupons[id]; ok {
		return c, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns all stored coupons.
func (s *CouponRepositoryStub) List(ctx context.Context) ([]model.Coupon, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.Coupon, 0, len(s.Coupons))
	for _, c := range s.Coupons {
		out = append(out, *c)
	}
	return out, nil
}

// Create stores a new coupon, rejecting duplicate codes.
func (s *CouponRepositoryStub) Create(ctx context.Context, coupon *model.Coupon) (*model.Coupon, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, c := range s.Coupons {
		if c.Code == coupon.Code {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	return s.Add(*coupon), nil
}

// Use bumps the usage counter honoring the configured limit.
func (s *CouponRepositoryStub) Use(ctx context.Context, id int64) (*model.Coupon, error) {
	if s.UseFn != nil {
		return s.UseFn(ctx, id)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	c, ok := s.Coupons[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if c.UsageLimit != nil && c.UsedCount >= *c.UsageLimit {
		return nil, &domainErrors.CouponError{Code: c.Code, Reason: domainErrors.CouponLimitReached}
	}
	c.UsedCount++
	return c, nil
}

// TierRepositoryStub serves a fixed tier table for tests.
type TierRepositoryStub struct {
	Tiers           []model.MembershipTier
	Err             error
	EnsureDefaultFn func(context.Context) (*model.MembershipTier, error)
}

// ListByThresholdDesc returns the configured tiers as-is; seed them sorted.
func (s *TierRepositoryStub) ListByThresholdDesc(ctx context.Context) ([]model.MembershipTier, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Tiers, nil
}

// GetByID fetches tier or returns not found.
func (s *TierRepositoryStub) GetByID(ctx context.Context, id int64) (*model.MembershipTier, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Tiers {
		if s.Tiers[i].ID == id {
			return &s.Tiers[i], nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// EnsureDefault returns the default tier, creating one when absent.
func (s *TierRepositoryStub) EnsureDefault(ctx context.Context) (*model.MembershipTier, error) {
	if s.EnsureDefaultFn != nil {
		return s.EnsureDefaultFn(ctx)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Tiers {
		if s.Tiers[i].IsDefault {
			return &s.Tiers[i], nil
		}
	}
	tier := model.MembershipTier{ID: 1, Name: "Basic", IsDefault: true}
	s.Tiers = append(s.Tiers, tier)
	return &s.Tiers[len(s.Tiers)-1], nil
}

// LoyaltyRepositoryStub allows tests to customize settlement behaviour.
type LoyaltyRepositoryStub struct {
	SettleFn    func(context.Context, int64) error
	PendingFn   func(context.Context, int) ([]model.EarningsJob, error)
	SummaryFn   func(context.Context, int64) (*model.LoyaltySummary, error)
	SetPointsFn func(context.Context, int64, int64) error
	SetTierFn   func(context.Context, int64, int64) error

	Settled   []int64
	Pending   []model.EarningsJob
	PointsSet []PointsCall
	TiersSet  []TierCall
}

// PointsCall stores information about SetPoints invocations.
type PointsCall struct {
	UserID int64
	Points int64
}

// TierCall stores information about SetTier invocations.
type TierCall struct {
	UserID int64
	TierID int64
}

// Settle records the settled order identifier.
func (s *LoyaltyRepositoryStub) Settle(ctx context.Context, orderID int64) error {
	s.Settled = append(s.Settled, orderID)
	if s.SettleFn != nil {
		return s.SettleFn(ctx, orderID)
	}
	return nil
}

// PendingJobs returns configured jobs honoring the limit.
func (s *LoyaltyRepositoryStub) PendingJobs(ctx context.Context, limit int) ([]model.EarningsJob, error) {
	if s.PendingFn != nil {
		return s.PendingFn(ctx, limit)
	}
	if limit > 0 && len(s.Pending) > limit {
		return s.Pending[:limit], nil
	}
	return s.Pending, nil
}

// Summary returns the configured summary or an empty default.
func (s *LoyaltyRepositoryStub) Summary(ctx context.Context, userID int64) (*model.LoyaltySummary, error) {
	if s.SummaryFn != nil {
		return s.SummaryFn(ctx, userID)
	}
	return &model.LoyaltySummary{Tier: model.MembershipTier{ID: 1, Name: "Basic", IsDefault: true}}, nil
}

// SetPoints records the override request.
func (s *LoyaltyRepositoryStub) SetPoints(ctx context.Context, userID, points int64) error {
	s.PointsSet = append(s.PointsSet, PointsCall{UserID: userID, Points: points})
	if s.SetPointsFn != nil {
		return s.SetPointsFn(ctx, userID, points)
	}
	return nil
}

// SetTier records the override request.
func (s *LoyaltyRepositoryStub) SetTier(ctx context.Context, userID, tierID int64) error {
	s.TiersSet = append(s.TiersSet, TierCall{UserID: userID, TierID: tierID})
	if s.SetTierFn != nil {
		return s.SetTierFn(ctx, userID, tierID)
	}
	return nil
}
