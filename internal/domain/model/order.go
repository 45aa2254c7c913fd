package model

import "time"

// OrderStatus describes fulfillment lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// ValidStatus reports whether s belongs to the fixed status enumeration.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether an order may move from one status to another.
// The forward chain is pending -> paid -> shipped -> delivered; cancellation is
// allowed from any non-terminal state. Delivered and cancelled are terminal.
func CanTransition(from, to OrderStatus) bool {
	if from == OrderStatusDelivered || from == OrderStatusCancelled {
		return false
	}
	if to == OrderStatusCancelled {
		return true
	}
	switch from {
	case OrderStatusPending:
		return to == OrderStatusPaid
	case OrderStatusPaid:
		return to == OrderStatusShipped
	case OrderStatusShipped:
		return to == OrderStatusDelivered
	}
	return false
}

// Order is the durable result of a checkout. Immutable except for Status.
type Order struct {
	ID        int64
	UserID    int64
	Total     float64
	Status    OrderStatus
	CouponID  *int64
	CreatedAt time.Time
	Lines     []OrderLine
}

// OrderLine captures quantity and the catalog unit price at checkout time.
// UnitPrice must never change even if the catalog price changes later.
type OrderLine struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int64
	UnitPrice float64
}
