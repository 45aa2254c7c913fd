package model

import (
	"math"
	"time"
)

// EarningsJob is one pending loyalty settlement produced by a committed
// checkout. The order id is unique, so settling is exactly-once: the job row
// is deleted in the same transaction that applies the earnings.
type EarningsJob struct {
	OrderID   int64
	UserID    int64
	Amount    float64
	CreatedAt time.Time
}

// PointsFor converts an amount spent into loyalty points: one point per whole
// currency unit.
func PointsFor(amount float64) int64 {
	if amount <= 0 {
		return 0
	}
	return int64(math.Floor(amount))
}
