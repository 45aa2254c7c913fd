package dto

// TierResponse describes a membership tier.
type TierResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	DiscountPercent float64 `json:"discount_percent"`
	Threshold       float64 `json:"threshold"`
}

// LoyaltySummaryResponse represents a customer's loyalty state.
type LoyaltySummaryResponse struct {
	Points        int64        `json:"points"`
	LifetimeSpend float64      `json:"lifetime_spend"`
	Tier          TierResponse `json:"tier"`
}

// PointsRequest describes an administrative points override.
type PointsRequest struct {
	Points int64 `json:"points"`
}

// LevelRequest describes an administrative tier assignment.
type LevelRequest struct {
	TierID int64 `json:"tier_id"`
}
