package repository

import (
	"context"

	"github.com/polkiloo/shopmart/internal/domain/model"
)

// CouponRepository manages coupon administration and redemption.
type CouponRepository interface {
	GetByCode(ctx context.Context, code string) (*model.Coupon, error)
	GetByID(ctx context.Context, id int64) (*model.Coupon, error)
	List(ctx context.Context) ([]model.Coupon, error)
	Create(ctx context.Context, coupon *model.Coupon) (*model.Coupon, error)
	// Use increments used_count by one, refusing to pass the usage limit.
	Use(ctx context.Context, id int64) (*model.Coupon, error)
}

// TierRepository provides the membership tier table.
type TierRepository interface {
	// ListByThresholdDesc returns all tiers ordered by descending threshold.
	ListByThresholdDesc(ctx context.Context) ([]model.MembershipTier, error)
	GetByID(ctx context.Context, id int64) (*model.MembershipTier, error)
	// EnsureDefault guarantees a threshold-0 default tier exists, creating it
	// when absent, and returns it.
	EnsureDefault(ctx context.Context) (*model.MembershipTier, error)
}

// LoyaltyRepository maintains per-customer loyalty state and the settlement
// queue written by checkout.
type LoyaltyRepository interface {
	// Settle applies the earnings of a committed order exactly once: it
	// deletes the pending job and updates points, lifetime spend and tier in
	// one transaction. Settling an already-settled order is a no-op.
	Settle(ctx context.Context, orderID int64) error
	// PendingJobs claims up to limit unsettled jobs for processing.
	PendingJobs(ctx context.Context, limit int) ([]model.EarningsJob, error)
	Summary(ctx context.Context, userID int64) (*model.LoyaltySummary, error)
	SetPoints(ctx context.Context, userID, points int64) error
	SetTier(ctx context.Context, userID, tierID int64) error
}
