package postgres

import (
	"context"

	domainErrors "github.com/polkiloo/shopmart/internal/domain/errors"
	"github.com/polkiloo/shopmart/internal/domain/model"
)

// --- ProductRepository implementation ---

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	const query = `SELECT id, name, price, stock FROM products WHERE id=$1`
	var p model.Product
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Price, &p.Stock)
	if err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	const query = `SELECT id, name, price, stock FROM products ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Stock); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) Create(ctx context.Context, name string, price float64, stock int64) (*model.Product, error) {
	const query = `INSERT INTO products (name, price, stock) VALUES ($1, $2, $3) RETURNING id`
	p := model.Product{Name: name, Price: price, Stock: stock}
	if err := r.storage.pool.QueryRow(ctx, query, name, price, stock).Scan(&p.ID); err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

func (r *productRepository) Update(ctx context.Context, id int64, name string, price float64) (*model.Product, error) {
	const query = `UPDATE products SET name=$2, price=$3 WHERE id=$1 RETURNING id, name, price, stock`
	var p model.Product
	err := r.storage.pool.QueryRow(ctx, query, id, name, price).Scan(&p.ID, &p.Name, &p.Price, &p.Stock)
	if err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

// Restock adjusts stock by delta, refusing to drive it negative.
func (r *productRepository) Restock(ctx context.Context, id int64, delta int64) (*model.Product, error) {
	const query = `UPDATE products SET stock = stock + $2
                   WHERE id=$1 AND stock + $2 >= 0
                   RETURNING id, name, price, stock`
	var p model.Product
	err := r.storage.pool.QueryRow(ctx, query, id, delta).Scan(&p.ID, &p.Name, &p.Price, &p.Stock)
	if err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

// --- CartRepository implementation ---

func (r *cartRepository) ListByUser(ctx context.Context, userID int64) ([]model.CartItem, error) {
	const query = `SELECT user_id, product_id, quantity FROM cart_items WHERE user_id=$1 ORDER BY product_id`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var result []model.CartItem
	for rows.Next() {
		var item model.CartItem
		if err := rows.Scan(&item.UserID, &item.ProductID, &item.Quantity); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *cartRepository) Put(ctx context.Context, userID, productID, quantity int64) error {
	const query = `INSERT INTO cart_items (user_id, product_id, quantity)
                   VALUES ($1, $2, $3)
                   ON CONFLICT (user_id, product_id) DO UPDATE SET quantity = EXCLUDED.quantity`
	if _, err := r.storage.pool.Exec(ctx, query, userID, productID, quantity); err != nil {
		if Classify(err) == ViolationForeignKey {
			return domainErrors.ErrNotFound
		}
		return mapError(err)
	}
	return nil
}

func (r *cartRepository) Remove(ctx context.Context, userID, productID int64) error {
	const query = `DELETE FROM cart_items WHERE user_id=$1 AND product_id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, userID, productID)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
