package usecase

import (
	"context"
	"testing"

	domainErrors "github.com/polkiloo/shopmart/internal/domain/errors"
	testhelpers "github.com/polkiloo/shopmart/internal/test"
)

func TestCatalogUseCaseCreateAndRead(t *testing.T) {
	repo := testhelpers.NewProductRepositoryStub()
	uc := NewCatalogUseCase(repo)

	ctx := context.Background()
	created, err := uc.Create(ctx, " tea kettle ", 24.99, 3)
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if created.Name != "tea kettle" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}

	got, err := uc.PriceAndStock(ctx, created.ID)
	if err != nil {
		t.Fatalf("read returned error: %v", err)
	}
	if got.Price != 24.99 || got.Stock != 3 {
		t.Fatalf("unexpected product: %+v", got)
	}

	all, err := uc.List(ctx)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected one product, got %d", len(all))
	}
}

func TestCatalogUseCaseCreateValidation(t *testing.T) {
	uc := NewCatalogUseCase(testhelpers.NewProductRepositoryStub())

	ctx := context.Background()
	cases := []struct {
		name  string
		price float64
		stock int64
	}{
		{"", 10, 1},
		{"  ", 10, 1},
		{"mug", -1, 1},
		{"mug", 10, -1},
	}
	for _, tc := range cases {
		if _, err := uc.Create(ctx, tc.name, tc.price, tc.stock); err != domainErrors.ErrInvalidAmount {
			t.Fatalf("expected ErrInvalidAmount for %q/%v/%d, got %v", tc.name, tc.price, tc.stock, err)
		}
	}
}

func TestCatalogUseCaseRestock(t *testing.T) {
	repo := testhelpers.NewProductRepositoryStub()
	id := repo.Add("mug", 5, 2)
	uc := NewCatalogUseCase(repo)

	ctx := context.Background()
	if _, err := uc.Restock(ctx, id, 0); err != domainErrors.ErrInvalidQuantity {
		t.Fatalf("expected ErrInvalidQuantity for zero delta, got %v", err)
	}

	updated, err := uc.Restock(ctx, id, 8)
	if err != nil {
		t.Fatalf("restock returned error: %v", err)
	}
	if updated.Stock != 10 {
		t.Fatalf("expected stock 10, got %d", updated.Stock)
	}
}

func TestCartUseCasePut(t *testing.T) {
	products := testhelpers.NewProductRepositoryStub()
	productID := products.Add("mug", 5, 2)
	carts := testhelpers.NewCartRepositoryStub()
	uc := NewCartUseCase(carts, products)

	ctx := context.Background()
	if err := uc.Put(ctx, 1, productID, 0); err != domainErrors.ErrInvalidQuantity {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if err := uc.Put(ctx, 1, 999, 1); err != domainErrors.ErrNotFound {
		t.Fatalf("expected ErrNotFound for unknown product, got %v", err)
	}
	if err := uc.Put(ctx, 1, productID, 2); err != nil {
		t.Fatalf("put returned error: %v", err)
	}

	items, err := uc.Items(ctx, 1)
	if err != nil {
		t.Fatalf("items returned error: %v", err)
	}
	if len(items) != 1 || items[0].Quantity != 2 {
		t.Fatalf("unexpected cart contents: %+v", items)
	}
}

func TestCartUseCaseRemove(t *testing.T) {
	products := testhelpers.NewProductRepositoryStub()
	productID := products.Add("mug", 5, 2)
	carts := testhelpers.NewCartRepositoryStub()
	uc := NewCartUseCase(carts, products)

	ctx := context.Background()
	if err := uc.Remove(ctx, 1, productID); err != domainErrors.ErrNotFound {
		t.Fatalf("expected ErrNotFound removing absent row, got %v", err)
	}
	if err := uc.Put(ctx, 1, productID, 1); err != nil {
		t.Fatalf("put returned error: %v", err)
	}
	if err := uc.Remove(ctx, 1, productID); err != nil {
		t.Fatalf("remove returned error: %v", err)
	}
}
