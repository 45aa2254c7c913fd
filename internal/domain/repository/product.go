package repository

import (
	"context"

	"github.com/polkiloo/shopmart/internal/domain/model"
)

// ProductRepository provides catalog access. Reads are authoritative for
// price and stock; stock mutation happens only through checkout or Restock.
type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	Create(ctx context.Context, name string, price float64, stock int64) (*model.Product, error)
	Update(ctx context.Context, id int64, name string, price float64) (*model.Product, error)
	Restock(ctx context.Context, id int64, delta int64) (*model.Product, error)
}

// CartRepository manages a customer's cart rows.
type CartRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]model.CartItem, error)
	Put(ctx context.Context, userID, productID, quantity int64) error
	Remove(ctx context.Context, userID, productID int64) error
}
