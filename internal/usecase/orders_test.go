package usecase

import (
	"context"
	"testing"

	domainErrors "github.com/polkiloo/shopmart/internal/domain/errors"
	"github.com/polkiloo/shopmart/internal/domain/model"
	testhelpers "github.com/polkiloo/shopmart/internal/test"
)

func TestOrderUseCaseGetOwnership(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{
		Orders: []model.Order{{ID: 1, UserID: 10, Status: model.OrderStatusPending}},
	}
	uc := NewOrderUseCase(orders)

	ctx := context.Background()
	owner := &model.User{ID: 10, Role: model.RoleCustomer}
	if _, err := uc.Get(ctx, owner, 1); err != nil {
		t.Fatalf("owner read returned error: %v", err)
	}

	stranger := &model.User{ID: 11, Role: model.RoleCustomer}
	if _, err := uc.Get(ctx, stranger, 1); err != domainErrors.ErrForbidden {
		t.Fatalf("expected ErrForbidden for foreign order, got %v", err)
	}

	admin := &model.User{ID: 12, Role: model.RoleAdmin}
	if _, err := uc.Get(ctx, admin, 1); err != nil {
		t.Fatalf("admin read returned error: %v", err)
	}

	if _, err := uc.Get(ctx, owner, 99); err != domainErrors.ErrNotFound {
		t.Fatalf("expected ErrNotFound for unknown order, got %v", err)
	}
}

func TestOrderUseCaseUpdateStatusRejectsUnknownValue(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{}
	uc := NewOrderUseCase(orders)

	if _, err := uc.UpdateStatus(context.Background(), 1, "teleported"); err != domainErrors.ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if len(orders.Updates) != 0 {
		t.Fatalf("repository must not be reached for invalid status")
	}
}

func TestOrderUseCaseUpdateStatusTransitions(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{
		Orders: []model.Order{{ID: 1, UserID: 10, Status: model.OrderStatusPending}},
	}
	uc := NewOrderUseCase(orders)

	ctx := context.Background()
	updated, err := uc.UpdateStatus(ctx, 1, model.OrderStatusPaid)
	if err != nil {
		t.Fatalf("pending->paid returned error: %v", err)
	}
	if updated.Status != model.OrderStatusPaid {
		t.Fatalf("unexpected status %q", updated.Status)
	}

	if _, err := uc.UpdateStatus(ctx, 1, model.OrderStatusDelivered); err != domainErrors.ErrIllegalTransition {
		t.Fatalf("expected ErrIllegalTransition for paid->delivered, got %v", err)
	}

	if _, err := uc.UpdateStatus(ctx, 1, model.OrderStatusCancelled); err != nil {
		t.Fatalf("paid->cancelled returned error: %v", err)
	}
	if _, err := uc.UpdateStatus(ctx, 1, model.OrderStatusPaid); err != domainErrors.ErrIllegalTransition {
		t.Fatalf("expected ErrIllegalTransition leaving terminal state, got %v", err)
	}
}
