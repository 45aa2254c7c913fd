package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/polkiloo/shopmart/internal/domain/errors"
	"github.com/polkiloo/shopmart/internal/domain/model"
	"github.com/polkiloo/shopmart/internal/domain/repository"
)

// CatalogUseCase provides the read-only product view plus administrative
// catalog maintenance.
type CatalogUseCase struct {
	products repository.ProductRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products}
}

// PriceAndStock returns the authoritative price and stock for a product.
func (u *CatalogUseCase) PriceAndStock(ctx context.Context, productID int64) (*model.Product, error) {
	return u.products.GetByID(ctx, productID)
}

// List returns the full catalog.
func (u *CatalogUseCase) List(ctx context.Context) ([]model.Product, error) {
	return u.products.List(ctx)
}

// Create adds a catalog entry.
func (u *CatalogUseCase) Create(ctx context.Context, name string, price float64, stock int64) (*model.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" || price < 0 || stock < 0 {
		return nil, domainErrors.ErrInvalidAmount
	}
	return u.products.Create(ctx, name, price, stock)
}

// Update changes name and price of a catalog entry.
func (u *CatalogUseCase) Update(ctx context.Context, id int64, name string, price float64) (*model.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" || price < 0 {
		return nil, domainErrors.ErrInvalidAmount
	}
	return u.products.Update(ctx, id, name, price)
}

// Restock adds stock to a product. Negative adjustments are allowed for
// administrative correction but may not drive stock below zero.
func (u *CatalogUseCase) Restock(ctx context.Context, id int64, delta int64) (*model.Product, error) {
	if delta == 0 {
		return nil, domainErrors.ErrInvalidQuantity
	}
	return u.products.Restock(ctx, id, delta)
}

// CartUseCase manages a customer's cart.
type CartUseCase struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(carts repository.CartRepository, products repository.ProductRepository) *CartUseCase {
	return &CartUseCase{carts: carts, products: products}
}

// Items returns the cart content for a customer.
func (u *CartUseCase) Items(ctx context.Context, userID int64) ([]model.CartItem, error) {
	return u.carts.ListByUser(ctx, userID)
}

// Put sets the quantity of a product in the cart, verifying the product
// exists. Stock is not reserved here; checkout is the authority.
func (u *CartUseCase) Put(ctx context.Context, userID, productID, quantity int64) error {
	if quantity < 1 {
		return domainErrors.ErrInvalidQuantity
	}
	if _, err := u.products.GetByID(ctx, productID); err != nil {
		return err
	}
	return u.carts.Put(ctx, userID, productID, quantity)
}

// Remove deletes a product from the cart.
func (u *CartUseCase) Remove(ctx context.Context, userID, productID int64) error {
	return u.carts.Remove(ctx, userID, productID)
}
