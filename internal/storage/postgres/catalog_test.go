package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/polkiloo/shopmart/internal/domain/errors"
)

var productColumns = []string{"id", "name", "price", "stock"}

func TestProductRepository(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &productRepository{storage: storage}

	mock.ExpectQuery("SELECT id, name, price, stock FROM products WHERE id=").WithArgs(int64(1)).WillReturnRows(
		pgxmockv3.NewRows(productColumns).AddRow(int64(1), "widget", 9.99, int64(5)))
	product, err := repo.GetByID(context.Background(), 1)
	if err != nil || product.Name != "widget" || product.Stock != 5 {
		t.Fatalf("unexpected product: %+v err=%v", product, err)
	}

	mock.ExpectQuery("SELECT id, name, price, stock FROM products WHERE id=").WithArgs(int64(2)).WillReturnError(pgx.ErrNoRows)
	if _, err := repo.GetByID(context.Background(), 2); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectQuery("SELECT id, name, price, stock FROM products ORDER BY id").WillReturnRows(
		pgxmockv3.NewRows(productColumns).
			AddRow(int64(1), "widget", 9.99, int64(5)).
			AddRow(int64(2), "gadget", 19.99, int64(0)))
	products, err := repo.List(context.Background())
	if err != nil || len(products) != 2 || products[1].Name != "gadget" {
		t.Fatalf("unexpected result: %v err=%v", products, err)
	}

	mock.ExpectQuery("SELECT id, name, price, stock FROM products ORDER BY id").WillReturnError(errors.New("query"))
	if _, err := repo.List(context.Background()); err == nil {
		t.Fatal("expected error")
	}

	mock.ExpectQuery("SELECT id, name, price, stock FROM products ORDER BY id").WillReturnRows(
		pgxmockv3.NewRows(productColumns).AddRow("bad", "widget", 9.99, int64(5)))
	if _, err := repo.List(context.Background()); err == nil {
		t.Fatal("expected scan error")
	}

	mock.ExpectQuery("INSERT INTO products").WithArgs("widget", 9.99, int64(5)).WillReturnRows(
		pgxmockv3.NewRows([]string{"id"}).AddRow(int64(3)))
	product, err = repo.Create(context.Background(), "widget", 9.99, 5)
	if err != nil || product.ID != 3 || product.Price != 9.99 {
		t.Fatalf("unexpected product: %+v err=%v", product, err)
	}

	mock.ExpectQuery("INSERT INTO products").WithArgs("widget", 9.99, int64(5)).WillReturnError(errors.New("insert"))
	if _, err := repo.Create(context.Background(), "widget", 9.99, 5); err == nil {
		t.Fatal("expected error")
	}

	mock.ExpectQuery("UPDATE products SET name=").WithArgs(int64(1), "widget xl", 12.99).WillReturnRows(
		pgxmockv3.NewRows(productColumns).AddRow(int64(1), "widget xl", 12.99, int64(5)))
	product, err = repo.Update(context.Background(), 1, "widget xl", 12.99)
	if err != nil || product.Name != "widget xl" {
		t.Fatalf("unexpected product: %+v err=%v", product, err)
	}

	mock.ExpectQuery("UPDATE products SET name=").WithArgs(int64(9), "x", 1.0).WillReturnError(pgx.ErrNoRows)
	if _, err := repo.Update(context.Background(), 9, "x", 1.0); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestProductRepositoryRestock(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &productRepository{storage: storage}

	mock.ExpectQuery("UPDATE products SET stock = stock").WithArgs(int64(1), int64(4)).WillReturnRows(
		pgxmockv3.NewRows(productColumns).AddRow(int64(1), "widget", 9.99, int64(9)))
	product, err := repo.Restock(context.Background(), 1, 4)
	if err != nil || product.Stock != 9 {
		t.Fatalf("unexpected product: %+v err=%v", product, err)
	}

	// A decrement past zero matches no row, indistinguishable from a missing id.
	mock.ExpectQuery("UPDATE products SET stock = stock").WithArgs(int64(1), int64(-100)).WillReturnError(pgx.ErrNoRows)
	if _, err := repo.Restock(context.Background(), 1, -100); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestCartRepository(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &cartRepository{storage: storage}

	cartColumns := []string{"user_id", "product_id", "quantity"}

	mock.ExpectQuery("SELECT user_id, product_id, quantity FROM cart_items WHERE user_id=").WithArgs(int64(1)).WillReturnRows(
		pgxmockv3.NewRows(cartColumns).
			AddRow(int64(1), int64(5), int64(2)).
			AddRow(int64(1), int64(7), int64(1)))
	items, err := repo.ListByUser(context.Background(), 1)
	if err != nil || len(items) != 2 || items[0].ProductID != 5 {
		t.Fatalf("unexpected result: %v err=%v", items, err)
	}

	mock.ExpectQuery("SELECT user_id, product_id, quantity FROM cart_items WHERE user_id=").WithArgs(int64(2)).WillReturnError(errors.New("query"))
	if _, err := repo.ListByUser(context.Background(), 2); err == nil {
		t.Fatal("expected error")
	}

	mock.ExpectQuery("SELECT user_id, product_id, quantity FROM cart_items WHERE user_id=").WithArgs(int64(3)).WillReturnRows(
		pgxmockv3.NewRows(cartColumns).AddRow("bad", int64(5), int64(2)))
	if _, err := repo.ListByUser(context.Background(), 3); err == nil {
		t.Fatal("expected scan error")
	}

	mock.ExpectExec("INSERT INTO cart_items").WithArgs(int64(1), int64(5), int64(2)).
		WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
	if err := repo.Put(context.Background(), 1, 5, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec("INSERT INTO cart_items").WithArgs(int64(1), int64(99), int64(2)).
		WillReturnError(&pgconn.PgError{Code: "23503"})
	if err := repo.Put(context.Background(), 1, 99, 2); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for unknown product, got %v", err)
	}

	mock.ExpectExec("INSERT INTO cart_items").WithArgs(int64(1), int64(5), int64(2)).
		WillReturnError(errors.New("insert"))
	if err := repo.Put(context.Background(), 1, 5, 2); err == nil {
		t.Fatal("expected error")
	}

	mock.ExpectExec("DELETE FROM cart_items WHERE user_id=").WithArgs(int64(1), int64(5)).
		WillReturnResult(pgxmockv3.NewResult("DELETE", 1))
	if err := repo.Remove(context.Background(), 1, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec("DELETE FROM cart_items WHERE user_id=").WithArgs(int64(1), int64(5)).
		WillReturnResult(pgxmockv3.NewResult("DELETE", 0))
	if err := repo.Remove(context.Background(), 1, 5); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectExec("DELETE FROM cart_items WHERE user_id=").WithArgs(int64(1), int64(5)).
		WillReturnError(errors.New("delete"))
	if err := repo.Remove(context.Background(), 1, 5); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestCartRepositoryListRowsError(t *testing.T) {
	storage := &Storage{pool: &rowsErrorPool{rows: &errorRows{err: errors.New("rows err")}}}
	repo := &cartRepository{storage: storage}

	if _, err := repo.ListByUser(context.Background(), 1); err == nil || err.Error() != "rows err" {
		t.Fatalf("expected rows err, got %v", err)
	}
}
