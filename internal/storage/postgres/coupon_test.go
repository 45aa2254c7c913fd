package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/polkiloo/shopmart/internal/domain/errors"
	"github.com/polkiloo/shopmart/internal/domain/model"
)

var couponTestColumns = []string{
	"id", "code", "kind", "value", "min_purchase", "max_discount",
	"starts_at", "ends_at", "usage_limit", "used_count", "active",
}

func TestCouponRepositoryGet(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &couponRepository{storage: storage}

	now := time.Now()
	mock.ExpectQuery("SELECT id, code, kind, value, min_purchase, max_discount, starts_at, ends_at, usage_limit, used_count, active FROM coupons WHERE code=").
		WithArgs("SAVE10").
		WillReturnRows(pgxmockv3.NewRows(couponTestColumns).
			AddRow(int64(1), "SAVE10", model.CouponPercentage, 10.0, nil, nil, now, now.Add(time.Hour), nil, int64(0), true))
	coupon, err := repo.GetByCode(context.Background(), "SAVE10")
	if err != nil || coupon.Code != "SAVE10" || coupon.Kind != model.CouponPercentage {
		t.Fatalf("unexpected coupon: %+v err=%v", coupon, err)
	}

	mock.ExpectQuery("SELECT id, code, kind, value, min_purchase, max_discount, starts_at, ends_at, usage_limit, used_count, active FROM coupons WHERE code=").
		WithArgs("MISSING").WillReturnError(pgx.ErrNoRows)
	if _, err := repo.GetByCode(context.Background(), "MISSING"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectQuery("SELECT id, code, kind, value, min_purchase, max_discount, starts_at, ends_at, usage_limit, used_count, active FROM coupons WHERE id=").
		WithArgs(int64(1)).
		WillReturnRows(pgxmockv3.NewRows(couponTestColumns).
			AddRow(int64(1), "SAVE10", model.CouponPercentage, 10.0, nil, nil, now, now.Add(time.Hour), nil, int64(0), true))
	if _, err := repo.GetByID(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestCouponRepositoryList(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &couponRepository{storage: storage}

	now := time.Now()
	mock.ExpectQuery("SELECT id, code, kind, value, min_purchase, max_discount, starts_at, ends_at, usage_limit, used_count, active FROM coupons ORDER BY id").
		WillReturnRows(pgxmockv3.NewRows(couponTestColumns).
			AddRow(int64(1), "A", model.CouponPercentage, 10.0, nil, nil, now, now.Add(time.Hour), nil, int64(0), true).
			AddRow(int64(2), "B", model.CouponFixed, 5.0, nil, nil, now, now.Add(time.Hour), nil, int64(2), false))
	coupons, err := repo.List(context.Background())
	if err != nil || len(coupons) != 2 || coupons[1].Code != "B" {
		t.Fatalf("unexpected result: %v err=%v", coupons, err)
	}

	mock.ExpectQuery("SELECT id, code, kind, value, min_purchase, max_discount, starts_at, ends_at, usage_limit, used_count, active FROM coupons ORDER BY id").
		WillReturnError(errors.New("query"))
	if _, err := repo.List(context.Background()); err == nil {
		t.Fatal("expected error")
	}

	mock.ExpectQuery("SELECT id, code, kind, value, min_purchase, max_discount, starts_at, ends_at, usage_limit, used_count, active FROM coupons ORDER BY id").
		WillReturnRows(pgxmockv3.NewRows(couponTestColumns).
			AddRow("bad", "A", model.CouponPercentage, 10.0, nil, nil, now, now.Add(time.Hour), nil, int64(0), true))
	if _, err := repo.List(context.Background()); err == nil {
		t.Fatal("expected scan error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestCouponRepositoryCreate(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &couponRepository{storage: storage}

	now := time.Now()
	coupon := &model.Coupon{
		Code:     "SAVE10",
		Kind:     model.CouponPercentage,
		Value:    10,
		StartsAt: now,
		EndsAt:   now.Add(time.Hour),
		Active:   true,
	}

	mock.ExpectQuery("INSERT INTO coupons").
		WithArgs(coupon.Code, coupon.Kind, coupon.Value, coupon.MinPurchase, coupon.MaxDiscount,
			coupon.StartsAt, coupon.EndsAt, coupon.UsageLimit, coupon.Active).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "used_count"}).AddRow(int64(7), int64(0)))
	created, err := repo.Create(context.Background(), coupon)
	if err != nil || created.ID != 7 || created.Code != "SAVE10" {
		t.Fatalf("unexpected result: %+v err=%v", created, err)
	}

	mock.ExpectQuery("INSERT INTO coupons").
		WithArgs(coupon.Code, coupon.Kind, coupon.Value, coupon.MinPurchase, coupon.MaxDiscount,
			coupon.StartsAt, coupon.EndsAt, coupon.UsageLimit, coupon.Active).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	if _, err := repo.Create(context.Background(), coupon); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}

	mock.ExpectQuery("INSERT INTO coupons").
		WithArgs(coupon.Code, coupon.Kind, coupon.Value, coupon.MinPurchase, coupon.MaxDiscount,
			coupon.StartsAt, coupon.EndsAt, coupon.UsageLimit, coupon.Active).
		WillReturnError(errors.New("insert"))
	if _, err := repo.Create(context.Background(), coupon); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestCouponRepositoryUse(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &couponRepository{storage: storage}

	now := time.Now()
	limit := int64(3)

	mock.ExpectQuery("UPDATE coupons SET used_count = used_count").WithArgs(int64(1)).
		WillReturnRows(pgxmockv3.NewRows(couponTestColumns).
			AddRow(int64(1), "SAVE10", model.CouponPercentage, 10.0, nil, nil, now, now.Add(time.Hour), &limit, int64(1), true))
	coupon, err := repo.Use(context.Background(), 1)
	if err != nil || coupon.UsedCount != 1 {
		t.Fatalf("unexpected result: %+v err=%v", coupon, err)
	}

	// No row updated and the coupon exists: the ceiling was hit.
	mock.ExpectQuery("UPDATE coupons SET used_count = used_count").WithArgs(int64(1)).WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery("SELECT id, code, kind, value, min_purchase, max_discount, starts_at, ends_at, usage_limit, used_count, active FROM coupons WHERE id=").
		WithArgs(int64(1)).
		WillReturnRows(pgxmockv3.NewRows(couponTestColumns).
			AddRow(int64(1), "SAVE10", model.CouponPercentage, 10.0, nil, nil, now, now.Add(time.Hour), &limit, limit, true))
	var couponErr *domainErrors.CouponError
	if _, err := repo.Use(context.Background(), 1); !errors.As(err, &couponErr) || couponErr.Reason != domainErrors.CouponLimitReached {
		t.Fatalf("expected limit reached, got %v", err)
	}

	// No row updated and no such coupon at all.
	mock.ExpectQuery("UPDATE coupons SET used_count = used_count").WithArgs(int64(2)).WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery("SELECT id, code, kind, value, min_purchase, max_discount, starts_at, ends_at, usage_limit, used_count, active FROM coupons WHERE id=").
		WithArgs(int64(2)).WillReturnError(pgx.ErrNoRows)
	if _, err := repo.Use(context.Background(), 2); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectQuery("UPDATE coupons SET used_count = used_count").WithArgs(int64(3)).WillReturnError(errors.New("update"))
	if _, err := repo.Use(context.Background(), 3); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}
