package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	domainErrors "github.com/polkiloo/shopmart/internal/domain/errors"
	"github.com/polkiloo/shopmart/internal/domain/model"
	testhelpers "github.com/polkiloo/shopmart/internal/test"
)

func fixedNow() time.Time {
	return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
}

func seedCoupon(repo *testhelpers.CouponRepositoryStub, mutate func(*model.Coupon)) *model.Coupon {
	coupon := model.Coupon{
		Code:     "SAVE10",
		Kind:     model.CouponPercentage,
		Value:    10,
		StartsAt: fixedNow().Add(-24 * time.Hour),
		EndsAt:   fixedNow().Add(24 * time.Hour),
		Active:   true,
	}
	if mutate != nil {
		mutate(&coupon)
	}
	return repo.Add(coupon)
}

func newCouponUseCase(repo *testhelpers.CouponRepositoryStub) *CouponUseCase {
	uc := NewCouponUseCase(repo)
	uc.now = fixedNow
	return uc
}

func TestCouponUseCaseValidateDiscount(t *testing.T) {
	repo := testhelpers.NewCouponRepositoryStub()
	seedCoupon(repo, nil)
	uc := newCouponUseCase(repo)

	discount, err := uc.Validate(context.Background(), " SAVE10 ", 200)
	if err != nil {
		t.Fatalf("validate returned error: %v", err)
	}
	if discount != 20 {
		t.Fatalf("expected discount 20, got %v", discount)
	}
}

func TestCouponUseCaseValidateRejections(t *testing.T) {
	min := 50.0
	cases := []struct {
		name   string
		mutate func(*model.Coupon)
		code   string
		reason domainErrors.CouponReason
	}{
		{"unknown code", nil, "MISSING", domainErrors.CouponNotFound},
		{"inactive", func(c *model.Coupon) { c.Active = false }, "SAVE10", domainErrors.CouponInactive},
		{"not started", func(c *model.Coupon) { c.StartsAt = fixedNow().Add(time.Hour) }, "SAVE10", domainErrors.CouponNotStarted},
		{"expired", func(c *model.Coupon) { c.EndsAt = fixedNow().Add(-time.Hour) }, "SAVE10", domainErrors.CouponExpired},
		{"limit reached", func(c *model.Coupon) { limit := int64(1); c.UsageLimit = &limit; c.UsedCount = 1 }, "SAVE10", domainErrors.CouponLimitReached},
		{"min purchase", func(c *model.Coupon) { c.MinPurchase = &min }, "SAVE10", domainErrors.CouponMinPurchase},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := testhelpers.NewCouponRepositoryStub()
			seedCoupon(repo, tc.mutate)
			uc := newCouponUseCase(repo)

			_, err := uc.Validate(context.Background(), tc.code, 40)
			var couponErr *domainErrors.CouponError
			if !errors.As(err, &couponErr) {
				t.Fatalf("expected coupon error, got %v", err)
			}
			if couponErr.Reason != tc.reason {
				t.Fatalf("expected reason %q, got %q", tc.reason, couponErr.Reason)
			}
		})
	}
}

func TestCouponUseCaseCreateValidation(t *testing.T) {
	repo := testhelpers.NewCouponRepositoryStub()
	uc := newCouponUseCase(repo)

	ctx := context.Background()
	invalid := []model.Coupon{
		{Code: "", Kind: model.CouponFixed, Value: 5, EndsAt: fixedNow().Add(time.Hour)},
		{Code: "NEG", Kind: model.CouponFixed, Value: -5, EndsAt: fixedNow().Add(time.Hour)},
		{Code: "KIND", Kind: "unknown", Value: 5, EndsAt: fixedNow().Add(time.Hour)},
		{Code: "WINDOW", Kind: model.CouponFixed, Value: 5, StartsAt: fixedNow(), EndsAt: fixedNow().Add(-time.Hour)},
	}
	for _, coupon := range invalid {
		c := coupon
		if _, err := uc.Create(ctx, &c); err != domainErrors.ErrInvalidAmount {
			t.Fatalf("expected ErrInvalidAmount for %q, got %v", coupon.Code, err)
		}
	}

	valid := model.Coupon{Code: "OK", Kind: model.CouponFixed, Value: 5, StartsAt: fixedNow(), EndsAt: fixedNow().Add(time.Hour), Active: true}
	created, err := uc.Create(ctx, &valid)
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected coupon to have ID assigned")
	}
}

func TestCouponUseCaseUse(t *testing.T) {
	repo := testhelpers.NewCouponRepositoryStub()
	limit := int64(1)
	coupon := seedCoupon(repo, func(c *model.Coupon) { c.UsageLimit = &limit })
	uc := newCouponUseCase(repo)

	ctx := context.Background()
	used, err := uc.Use(ctx, coupon.ID)
	if err != nil {
		t.Fatalf("use returned error: %v", err)
	}
	if used.UsedCount != 1 {
		t.Fatalf("expected used count 1, got %d", used.UsedCount)
	}

	_, err = uc.Use(ctx, coupon.ID)
	var couponErr *domainErrors.CouponError
	if !errors.As(err, &couponErr) || couponErr.Reason != domainErrors.CouponLimitReached {
		t.Fatalf("expected limit reached error, got %v", err)
	}
}
