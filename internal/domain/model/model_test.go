package model

import (
	"errors"
	"testing"
	"time"

	domainErrors "github.com/polkiloo/shopmart/internal/domain/errors"
)

func f64(v float64) *float64 { return &v }
func i64(v int64) *int64     { return &v }

func activeCoupon(kind CouponKind, value float64) *Coupon {
	now := time.Now()
	return &Coupon{
		Code:     "TEST",
		Kind:     kind,
		Value:    value,
		StartsAt: now.Add(-time.Hour),
		EndsAt:   now.Add(time.Hour),
		Active:   true,
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []OrderStatus{OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled} {
		if !ValidStatus(s) {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	if ValidStatus("refunded") {
		t.Fatal("out-of-enumeration status must be invalid")
	}
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		allowed  bool
	}{
		{OrderStatusPending, OrderStatusPaid, true},
		{OrderStatusPaid, OrderStatusShipped, true},
		{OrderStatusShipped, OrderStatusDelivered, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPaid, OrderStatusCancelled, true},
		{OrderStatusShipped, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusShipped, false},
		{OrderStatusPaid, OrderStatusDelivered, false},
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusPending, false},
		{OrderStatusDelivered, OrderStatusPaid, false},
		{OrderStatusShipped, OrderStatusPaid, false},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.allowed {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.allowed, got)
		}
	}
}

func TestCouponValidate(t *testing.T) {
	now := time.Now()

	t.Run("inactive", func(t *testing.T) {
		c := activeCoupon(CouponPercentage, 10)
		c.Active = false
		assertCouponReason(t, c.Validate(100, now), domainErrors.CouponInactive)
	})

	t.Run("not started", func(t *testing.T) {
		c := activeCoupon(CouponPercentage, 10)
		c.StartsAt = now.Add(time.Hour)
		assertCouponReason(t, c.Validate(100, now), domainErrors.CouponNotStarted)
	})

	t.Run("expired", func(t *testing.T) {
		c := activeCoupon(CouponPercentage, 10)
		c.EndsAt = now.Add(-time.Minute)
		assertCouponReason(t, c.Validate(100, now), domainErrors.CouponExpired)
	})

	t.Run("window boundaries inclusive", func(t *testing.T) {
		c := activeCoupon(CouponPercentage, 10)
		if err := c.Validate(100, c.StartsAt); err != nil {
			t.Fatalf("start boundary must be valid: %v", err)
		}
		if err := c.Validate(100, c.EndsAt); err != nil {
			t.Fatalf("end boundary must be valid: %v", err)
		}
	})

	t.Run("usage limit reached regardless of subtotal", func(t *testing.T) {
		c := activeCoupon(CouponPercentage, 10)
		c.UsageLimit = i64(1)
		c.UsedCount = 1
		assertCouponReason(t, c.Validate(1000000, now), domainErrors.CouponLimitReached)
	})

	t.Run("below minimum purchase", func(t *testing.T) {
		c := activeCoupon(CouponFixed, 5)
		c.MinPurchase = f64(50)
		assertCouponReason(t, c.Validate(49.99, now), domainErrors.CouponMinPurchase)
		if err := c.Validate(50, now); err != nil {
			t.Fatalf("minimum purchase boundary must pass: %v", err)
		}
	})

	t.Run("valid", func(t *testing.T) {
		c := activeCoupon(CouponPercentage, 10)
		if err := c.Validate(100, now); err != nil {
			t.Fatalf("unexpected rejection: %v", err)
		}
	})
}

func assertCouponReason(t *testing.T, err error, reason domainErrors.CouponReason) {
	t.Helper()
	var ce *domainErrors.CouponError
	if !errors.As(err, &ce) {
		t.Fatalf("expected coupon error, got %v", err)
	}
	if ce.Reason != reason {
		t.Fatalf("expected reason %q, got %q", reason, ce.Reason)
	}
}

func TestCouponDiscount(t *testing.T) {
	t.Run("percentage", func(t *testing.T) {
		c := activeCoupon(CouponPercentage, 10)
		if got := c.Discount(200); got != 20 {
			t.Fatalf("expected 20, got %v", got)
		}
	})

	t.Run("percentage clamped to cap", func(t *testing.T) {
		c := activeCoupon(CouponPercentage, 10)
		c.MaxDiscount = f64(50)
		if got := c.Discount(1000); got != 50 {
			t.Fatalf("expected clamp to 50, got %v", got)
		}
	})

	t.Run("fixed may exceed subtotal", func(t *testing.T) {
		c := activeCoupon(CouponFixed, 30)
		if got := c.Discount(20); got != 30 {
			t.Fatalf("fixed discount must not be clamped, got %v", got)
		}
	})
}

func TestResolveTier(t *testing.T) {
	tiers := []MembershipTier{
		{ID: 3, Name: "Gold", Threshold: 1000},
		{ID: 2, Name: "Silver", Threshold: 200},
		{ID: 1, Name: "Basic", Threshold: 0, IsDefault: true},
	}

	cases := []struct {
		spend float64
		want  int64
	}{
		{0, 1},
		{199.99, 1},
		{200, 2},
		{999, 2},
		{1000, 3},
		{50000, 3},
	}
	for _, tc := range cases {
		got := ResolveTier(tiers, tc.spend)
		if got == nil || got.ID != tc.want {
			t.Fatalf("spend %v: expected tier %d, got %+v", tc.spend, tc.want, got)
		}
	}

	// Idempotence: resolving twice with the same spend yields the same tier.
	first := ResolveTier(tiers, 250)
	second := ResolveTier(tiers, 250)
	if first.ID != second.ID {
		t.Fatal("tier resolution must be stable under recomputation")
	}

	if ResolveTier(nil, 10) != nil {
		t.Fatal("empty tier table resolves to nil")
	}
}

func TestPointsFor(t *testing.T) {
	cases := []struct {
		amount float64
		want   int64
	}{
		{0, 0},
		{-5, 0},
		{0.99, 0},
		{1, 1},
		{200, 200},
		{949.99, 949},
	}
	for _, tc := range cases {
		if got := PointsFor(tc.amount); got != tc.want {
			t.Fatalf("PointsFor(%v): expected %d, got %d", tc.amount, tc.want, got)
		}
	}
}
