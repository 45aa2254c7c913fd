package model

// MembershipTier is a named discount bracket customers qualify for based on
// lifetime spend. Exactly one tier is the default (threshold 0) so every
// customer resolves to some tier, never to none.
type MembershipTier struct {
	ID              int64
	Name            string
	DiscountPercent float64
	Threshold       float64
	IsDefault       bool
}

// ResolveTier returns the highest tier whose threshold does not exceed the
// given lifetime spend. Tiers must be sorted by descending threshold. The
// result is a pure function of its inputs, so repeated recomputation is a
// no-op. Returns nil when tiers is empty.
func ResolveTier(tiers []MembershipTier, lifetimeSpend float64) *MembershipTier {
	for i := range tiers {
		if tiers[i].Threshold <= lifetimeSpend {
			return &tiers[i]
		}
	}
	return nil
}

// LoyaltySummary aggregates a customer's loyalty state for presentation.
type LoyaltySummary struct {
	Points        int64
	LifetimeSpend float64
	Tier          MembershipTier
}
