package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/shopmart/internal/domain/errors"
	"github.com/polkiloo/shopmart/internal/domain/model"
)

const couponColumns = `id, code, kind, value, min_purchase, max_discount, starts_at, ends_at, usage_limit, used_count, active`

func scanCoupon(row pgx.Row) (*model.Coupon, error) {
	var c model.Coupon
	err := row.Scan(&c.ID, &c.Code, &c.Kind, &c.Value, &c.MinPurchase, &c.MaxDiscount,
		&c.StartsAt, &c.EndsAt, &c.UsageLimit, &c.UsedCount, &c.Active)
	if err != nil {
		return nil, mapError(err)
	}
	return &c, nil
}

func (r *couponRepository) GetByCode(ctx context.Context, code string) (*model.Coupon, error) {
	const query = `SELECT ` + couponColumns + ` FROM coupons WHERE code=$1`
	return scanCoupon(r.storage.pool.QueryRow(ctx, query, code))
}

func (r *couponRepository) GetByID(ctx context.Context, id int64) (*model.Coupon, error) {
	const query = `SELECT ` + couponColumns + ` FROM coupons WHERE id=$1`
	return scanCoupon(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *couponRepository) List(ctx context.Context) ([]model.Coupon, error) {
	const query = `SELECT ` + couponColumns + ` FROM coupons ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var result []model.Coupon
	for rows.Next() {
		var c model.Coupon
		if err := rows.Scan(&c.ID, &c.Code, &c.Kind, &c.Value, &c.MinPurchase, &c.MaxDiscount,
			&c.StartsAt, &c.EndsAt, &c.UsageLimit, &c.UsedCount, &c.Active); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *couponRepository) Create(ctx context.Context, coupon *model.Coupon) (*model.Coupon, error) {
	const query = `INSERT INTO coupons (code, kind, value, min_purchase, max_discount, starts_at, ends_at, usage_limit, active)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
                   RETURNING id, used_count`
	created := *coupon
	err := r.storage.pool.QueryRow(ctx, query,
		coupon.Code, coupon.Kind, coupon.Value, coupon.MinPurchase, coupon.MaxDiscount,
		coupon.StartsAt, coupon.EndsAt, coupon.UsageLimit, coupon.Active,
	).Scan(&created.ID, &created.UsedCount)
	if err != nil {
		if Classify(err) == ViolationUnique {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, mapError(err)
	}
	return &created, nil
}

// Use increments used_count by one, conditionally against the usage limit.
// The increment never passes the ceiling; at the limit the coupon is rejected.
func (r *couponRepository) Use(ctx context.Context, id int64) (*model.Coupon, error) {
	const query = `UPDATE coupons SET used_count = used_count + 1
                   WHERE id=$1 AND (usage_limit IS NULL OR used_count < usage_limit)
                   RETURNING ` + couponColumns
	coupon, err := scanCoupon(r.storage.pool.QueryRow(ctx, query, id))
	if err == nil {
		return coupon, nil
	}
	if err != domainErrors.ErrNotFound {
		return nil, err
	}

	// Distinguish a missing coupon from one at its ceiling.
	existing, getErr := r.GetByID(ctx, id)
	if getErr != nil {
		return nil, getErr
	}
	return nil, &domainErrors.CouponError{Code: existing.Code, Reason: domainErrors.CouponLimitReached}
}
