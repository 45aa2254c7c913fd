package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	domainErrors "github.com/polkiloo/shopmart/internal/domain/errors"
	"github.com/polkiloo/shopmart/internal/domain/model"
	"github.com/polkiloo/shopmart/internal/domain/repository"
)

// CouponUseCase validates coupons against candidate subtotals and carries the
// administrative coupon operations.
type CouponUseCase struct {
	coupons repository.CouponRepository
	now     func() time.Time
}

// NewCouponUseCase constructs CouponUseCase.
func NewCouponUseCase(coupons repository.CouponRepository) *CouponUseCase {
	return &CouponUseCase{coupons: coupons, now: time.Now}
}

// Validate checks a coupon code against a subtotal and returns the discount
// amount. Validation never consumes a use.
func (u *CouponUseCase) Validate(ctx context.Context, code string, subtotal float64) (float64, error) {
	code = strings.TrimSpace(code)
	coupon, err := u.coupons.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return 0, &domainErrors.CouponError{Code: code, Reason: domainErrors.CouponNotFound}
		}
		return 0, err
	}
	if err := coupon.Validate(subtotal, u.now()); err != nil {
		return 0, err
	}
	return coupon.Discount(subtotal), nil
}

// Create registers a new coupon.
func (u *CouponUseCase) Create(ctx context.Context, coupon *model.Coupon) (*model.Coupon, error) {
	coupon.Code = strings.TrimSpace(coupon.Code)
	if coupon.Code == "" || coupon.Value < 0 {
		return nil, domainErrors.ErrInvalidAmount
	}
	if coupon.Kind != model.CouponPercentage && coupon.Kind != model.CouponFixed {
		return nil, domainErrors.ErrInvalidAmount
	}
	if coupon.EndsAt.Before(coupon.StartsAt) {
		return nil, domainErrors.ErrInvalidAmount
	}
	return u.coupons.Create(ctx, coupon)
}

// List returns all coupons.
func (u *CouponUseCase) List(ctx context.Context) ([]model.Coupon, error) {
	return u.coupons.List(ctx)
}

// Use performs the standalone administrative increment of used_count.
// Deprecated in favor of redemption inside checkout; the increment still
// refuses to pass the usage limit.
func (u *CouponUseCase) Use(ctx context.Context, id int64) (*model.Coupon, error) {
	return u.coupons.Use(ctx, id)
}
