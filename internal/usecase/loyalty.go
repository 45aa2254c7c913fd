package usecase

import (
	"context"

	domainErrors "github.com/polkiloo/shopmart/internal/domain/errors"
	"github.com/polkiloo/shopmart/internal/domain/model"
	"github.com/polkiloo/shopmart/internal/domain/repository"
)

// LoyaltyUseCase is the loyalty ledger: earnings settlement, summary reads
// and the administrative overrides.
type LoyaltyUseCase struct {
	loyalty repository.LoyaltyRepository
	tiers   repository.TierRepository
	users   repository.UserRepository
}

// NewLoyaltyUseCase constructs LoyaltyUseCase.
func NewLoyaltyUseCase(loyalty repository.LoyaltyRepository, tiers repository.TierRepository, users repository.UserRepository) *LoyaltyUseCase {
	return &LoyaltyUseCase{loyalty: loyalty, tiers: tiers, users: users}
}

// Settle applies pending earnings for an order exactly once.
func (u *LoyaltyUseCase) Settle(ctx context.Context, orderID int64) error {
	return u.loyalty.Settle(ctx, orderID)
}

// PendingJobs returns unsettled earnings jobs for the background worker.
func (u *LoyaltyUseCase) PendingJobs(ctx context.Context, limit int) ([]model.EarningsJob, error) {
	return u.loyalty.PendingJobs(ctx, limit)
}

// Summary returns points, lifetime spend and current tier for a customer.
func (u *LoyaltyUseCase) Summary(ctx context.Context, userID int64) (*model.LoyaltySummary, error) {
	return u.loyalty.Summary(ctx, userID)
}

// SetPoints is the administrative points override. Points are informational;
// tier assignment keys off lifetime spend and is untouched here.
func (u *LoyaltyUseCase) SetPoints(ctx context.Context, userID, points int64) error {
	if points < 0 {
		return domainErrors.ErrInvalidAmount
	}
	if _, err := u.users.GetByID(ctx, userID); err != nil {
		return err
	}
	return u.loyalty.SetPoints(ctx, userID, points)
}

// SetTier is the administrative tier override.
func (u *LoyaltyUseCase) SetTier(ctx context.Context, userID, tierID int64) error {
	if _, err := u.users.GetByID(ctx, userID); err != nil {
		return err
	}
	if _, err := u.tiers.GetByID(ctx, tierID); err != nil {
		return err
	}
	return u.loyalty.SetTier(ctx, userID, tierID)
}

// EnsureDefaultTier verifies the threshold-0 tier exists, creating it when
// absent. Run before the service accepts traffic.
func (u *LoyaltyUseCase) EnsureDefaultTier(ctx context.Context) (*model.MembershipTier, error) {
	return u.tiers.EnsureDefault(ctx)
}
