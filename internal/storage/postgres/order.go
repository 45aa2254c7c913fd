package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/shopmart/internal/domain/errors"
	"github.com/polkiloo/shopmart/internal/domain/model"
)

type pricedLine struct {
	productID int64
	quantity  int64
	price     float64
	stock     int64
}

// Checkout converts the customer's cart into a durable order. Every write
// (the order, its lines with captured prices, conditional stock decrements,
// cart clearing, coupon redemption, the loyalty job) happens inside one
// serializable transaction, so concurrent checkouts cannot oversell stock or
// pass a coupon's usage limit.
func (r *orderRepository) Checkout(ctx context.Context, userID int64, couponCode *string) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinSerializableTransaction(ctx, func(tx pgx.Tx) error {
		lines, err := lockCartLines(ctx, tx, userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return domainErrors.ErrEmptyCart
		}

		for _, line := range lines {
			if line.quantity > line.stock {
				return &domainErrors.InsufficientStockError{
					ProductID: line.productID,
					Requested: line.quantity,
					Available: line.stock,
				}
			}
		}

		var subtotal float64
		for _, line := range lines {
			subtotal += line.price * float64(line.quantity)
		}

		var coupon *model.Coupon
		var discount float64
		if couponCode != nil {
			coupon, err = lockCoupon(ctx, tx, *couponCode)
			if err != nil {
				return err
			}
			if err := coupon.Validate(subtotal, time.Now()); err != nil {
				return err
			}
			discount = coupon.Discount(subtotal)
		}

		total := subtotal - discount
		if total < 0 {
			total = 0
		}

		order, err = insertOrder(ctx, tx, userID, total, coupon)
		if err != nil {
			return err
		}

		for _, line := range lines {
			if err := insertLineAndDecrement(ctx, tx, order, line); err != nil {
				return err
			}
		}

		if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE user_id=$1`, userID); err != nil {
			return mapError(err)
		}

		if coupon != nil {
			if err := redeemCoupon(ctx, tx, coupon); err != nil {
				return err
			}
		}

		const enqueueJob = `INSERT INTO loyalty_jobs (order_id, user_id, amount) VALUES ($1, $2, $3)`
		if _, err := tx.Exec(ctx, enqueueJob, order.ID, userID, total); err != nil {
			return mapError(err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// lockCartLines reads the cart joined with authoritative catalog prices and
// locks the product rows. Ordering by product id keeps lock acquisition
// deadlock-free between concurrent checkouts.
func lockCartLines(ctx context.Context, tx pgx.Tx, userID int64) ([]pricedLine, error) {
	const query = `SELECT ci.product_id, ci.quantity, p.price, p.stock
                   FROM cart_items ci
                   JOIN products p ON p.id = ci.product_id
                   WHERE ci.user_id=$1
                   ORDER BY ci.product_id
                   FOR UPDATE OF p`
	rows, err := tx.Query(ctx, query, userID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var lines []pricedLine
	for rows.Next() {
		var line pricedLine
		if err := rows.Scan(&line.productID, &line.quantity, &line.price, &line.stock); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return lines, nil
}

func lockCoupon(ctx context.Context, tx pgx.Tx, code string) (*model.Coupon, error) {
	const query = `SELECT ` + couponColumns + ` FROM coupons WHERE code=$1 FOR UPDATE`
	coupon, err := scanCoupon(tx.QueryRow(ctx, query, code))
	if err == domainErrors.ErrNotFound {
		return nil, &domainErrors.CouponError{Code: code, Reason: domainErrors.CouponNotFound}
	}
	return coupon, err
}

func insertOrder(ctx context.Context, tx pgx.Tx, userID int64, total float64, coupon *model.Coupon) (*model.Order, error) {
	const query = `INSERT INTO orders (user_id, total, status, coupon_id)
                   VALUES ($1, $2, $3, $4)
                   RETURNING id, created_at`
	order := &model.Order{UserID: userID, Total: total, Status: model.OrderStatusPending}
	var couponID *int64
	if coupon != nil {
		couponID = &coupon.ID
		order.CouponID = &coupon.ID
	}
	if err := tx.QueryRow(ctx, query, userID, total, model.OrderStatusPending, couponID).Scan(&order.ID, &order.CreatedAt); err != nil {
		return nil, mapError(err)
	}
	return order, nil
}

func insertLineAndDecrement(ctx context.Context, tx pgx.Tx, order *model.Order, line pricedLine) error {
	const insertLine = `INSERT INTO order_lines (order_id, product_id, quantity, unit_price)
                        VALUES ($1, $2, $3, $4)
                        RETURNING id`
	var lineID int64
	if err := tx.QueryRow(ctx, insertLine, order.ID, line.productID, line.quantity, line.price).Scan(&lineID); err != nil {
		return mapError(err)
	}
	order.Lines = append(order.Lines, model.OrderLine{
		ID:        lineID,
		OrderID:   order.ID,
		ProductID: line.productID,
		Quantity:  line.quantity,
		UnitPrice: line.price,
	})

	// Conditional decrement: succeeds only when resulting stock stays >= 0.
	const decrement = `UPDATE products SET stock = stock - $2 WHERE id=$1 AND stock >= $2`
	tag, err := tx.Exec(ctx, decrement, line.productID, line.quantity)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return &domainErrors.InsufficientStockError{
			ProductID: line.productID,
			Requested: line.quantity,
			Available: line.stock,
		}
	}
	return nil
}

func redeemCoupon(ctx context.Context, tx pgx.Tx, coupon *model.Coupon) error {
	const query = `UPDATE coupons SET used_count = used_count + 1
                   WHERE id=$1 AND (usage_limit IS NULL OR used_count < usage_limit)`
	tag, err := tx.Exec(ctx, query, coupon.ID)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return &domainErrors.CouponError{Code: coupon.Code, Reason: domainErrors.CouponLimitReached}
	}
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	const query = `SELECT id, user_id, total, status, coupon_id, created_at FROM orders WHERE id=$1`
	var order model.Order
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&order.ID, &order.UserID, &order.Total, &order.Status, &order.CouponID, &order.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}

	lines, err := r.listLines(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Lines = lines
	return &order, nil
}

func (r *orderRepository) listLines(ctx context.Context, orderID int64) ([]model.OrderLine, error) {
	const query = `SELECT id, order_id, product_id, quantity, unit_price
                   FROM order_lines WHERE order_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var lines []model.OrderLine
	for rows.Next() {
		var line model.OrderLine
		if err := rows.Scan(&line.ID, &line.OrderID, &line.ProductID, &line.Quantity, &line.UnitPrice); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	const query = `SELECT id, user_id, total, status, coupon_id, created_at
                   FROM orders WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Total, &o.Status, &o.CouponID, &o.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateStatus moves an order along the fulfillment state machine under a row
// lock, so concurrent transitions observe each other.
func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const selectQuery = `SELECT id, user_id, total, status, coupon_id, created_at
                             FROM orders WHERE id=$1 FOR UPDATE`
		var current model.Order
		err := tx.QueryRow(ctx, selectQuery, orderID).Scan(
			&current.ID, &current.UserID, &current.Total, &current.Status, &current.CouponID, &current.CreatedAt)
		if err != nil {
			return mapError(err)
		}

		if !model.CanTransition(current.Status, status) {
			return domainErrors.ErrIllegalTransition
		}

		const updateQuery = `UPDATE orders SET status=$2 WHERE id=$1`
		if _, err := tx.Exec(ctx, updateQuery, orderID, status); err != nil {
			return mapError(err)
		}
		current.Status = status
		order = &current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}
