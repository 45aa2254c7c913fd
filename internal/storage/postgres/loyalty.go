package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/shopmart/internal/domain/errors"
	"github.com/polkiloo/shopmart/internal/domain/model"
)

// --- TierRepository implementation ---

func (r *tierRepository) ListByThresholdDesc(ctx context.Context) ([]model.MembershipTier, error) {
	const query = `SELECT id, name, discount_percent, threshold, is_default
                   FROM membership_tiers ORDER BY threshold DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()
	return collectTiers(rows)
}

func collectTiers(rows pgx.Rows) ([]model.MembershipTier, error) {
	var result []model.MembershipTier
	for rows.Next() {
		var t model.MembershipTier
		if err := rows.Scan(&t.ID, &t.Name, &t.DiscountPercent, &t.Threshold, &t.IsDefault); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *tierRepository) GetByID(ctx context.Context, id int64) (*model.MembershipTier, error) {
	const query = `SELECT id, name, discount_percent, threshold, is_default
                   FROM membership_tiers WHERE id=$1`
	var t model.MembershipTier
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&t.ID, &t.Name, &t.DiscountPercent, &t.Threshold, &t.IsDefault)
	if err != nil {
		return nil, mapError(err)
	}
	return &t, nil
}

// EnsureDefault guarantees the threshold-0 default tier exists. Checkout and
// registration depend on it, so the application runs this before serving.
func (r *tierRepository) EnsureDefault(ctx context.Context) (*model.MembershipTier, error) {
	const selectQuery = `SELECT id, name, discount_percent, threshold, is_default
                         FROM membership_tiers WHERE is_default LIMIT 1`
	var t model.MembershipTier
	err := r.storage.pool.QueryRow(ctx, selectQuery).Scan(&t.ID, &t.Name, &t.DiscountPercent, &t.Threshold, &t.IsDefault)
	if err == nil {
		if t.Threshold != 0 {
			return nil, &domainErrors.ConfigurationError{Detail: "default membership tier has non-zero threshold"}
		}
		return &t, nil
	}
	if mapError(err) != domainErrors.ErrNotFound {
		return nil, mapError(err)
	}

	const insertQuery = `INSERT INTO membership_tiers (name, discount_percent, threshold, is_default)
                         VALUES ('Basic', 0, 0, TRUE)
                         RETURNING id, name, discount_percent, threshold, is_default`
	if err := r.storage.pool.QueryRow(ctx, insertQuery).Scan(&t.ID, &t.Name, &t.DiscountPercent, &t.Threshold, &t.IsDefault); err != nil {
		return nil, mapError(err)
	}
	return &t, nil
}

// --- LoyaltyRepository implementation ---

// Settle applies the earnings of a committed order exactly once. Deleting the
// job row claims it; when the row is already gone the order was settled and
// the call is a no-op, which makes post-commit retries safe.
func (r *loyaltyRepository) Settle(ctx context.Context, orderID int64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const claimJob = `DELETE FROM loyalty_jobs WHERE order_id=$1 RETURNING user_id, amount`
		var userID int64
		var amount float64
		err := tx.QueryRow(ctx, claimJob, orderID).Scan(&userID, &amount)
		if err != nil {
			if mapError(err) == domainErrors.ErrNotFound {
				return nil
			}
			return mapError(err)
		}

		const lockUser = `SELECT points, lifetime_spend FROM users WHERE id=$1 FOR UPDATE`
		var points int64
		var spend float64
		if err := tx.QueryRow(ctx, lockUser, userID).Scan(&points, &spend); err != nil {
			return mapError(err)
		}

		points += model.PointsFor(amount)
		spend += amount

		const tiersQuery = `SELECT id, name, discount_percent, threshold, is_default
                            FROM membership_tiers ORDER BY threshold DESC`
		rows, err := tx.Query(ctx, tiersQuery)
		if err != nil {
			return mapError(err)
		}
		tiers, err := collectTiers(rows)
		rows.Close()
		if err != nil {
			return err
		}

		tier := model.ResolveTier(tiers, spend)
		if tier == nil {
			return &domainErrors.ConfigurationError{Detail: "no default membership tier"}
		}

		const updateUser = `UPDATE users SET points=$2, lifetime_spend=$3, tier_id=$4 WHERE id=$1`
		if _, err := tx.Exec(ctx, updateUser, userID, points, spend, tier.ID); err != nil {
			return mapError(err)
		}
		return nil
	})
}

func (r *loyaltyRepository) PendingJobs(ctx context.Context, limit int) ([]model.EarningsJob, error) {
	const query = `SELECT order_id, user_id, amount, created_at
                   FROM loyalty_jobs ORDER BY created_at LIMIT $1`
	rows, err := r.storage.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var jobs []model.EarningsJob
	for rows.Next() {
		var job model.EarningsJob
		if err := rows.Scan(&job.OrderID, &job.UserID, &job.Amount, &job.CreatedAt); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *loyaltyRepository) Summary(ctx context.Context, userID int64) (*model.LoyaltySummary, error) {
	const query = `SELECT u.points, u.lifetime_spend, t.id, t.name, t.discount_percent, t.threshold, t.is_default
                   FROM users u JOIN membership_tiers t ON t.id = u.tier_id
                   WHERE u.id=$1`
	var s model.LoyaltySummary
	err := r.storage.pool.QueryRow(ctx, query, userID).Scan(
		&s.Points, &s.LifetimeSpend,
		&s.Tier.ID, &s.Tier.Name, &s.Tier.DiscountPercent, &s.Tier.Threshold, &s.Tier.IsDefault)
	if err != nil {
		return nil, mapError(err)
	}
	return &s, nil
}

// SetPoints is the administrative override. The canonical tier key is
// lifetime spend, so points changes do not retrigger tier recomputation.
func (r *loyaltyRepository) SetPoints(ctx context.Context, userID, points int64) error {
	const query = `UPDATE users SET points=$2 WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, userID, points)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *loyaltyRepository) SetTier(ctx context.Context, userID, tierID int64) error {
	const query = `UPDATE users SET tier_id=$2 WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, userID, tierID)
	if err != nil {
		if Classify(err) == ViolationForeignKey {
			return domainErrors.ErrNotFound
		}
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
