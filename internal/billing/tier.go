package billing

import (
	"github.com/shopspring/decimal"
)

// Loyalty tiers, highest threshold first; the first match wins.
var discountTiers = []struct {
	Threshold decimal.Decimal
	Rate      int
}{
	{decimal.NewFromInt(10000), 15},
	{decimal.NewFromInt(5000), 10},
	{decimal.NewFromInt(2000), 5},
}

// TierFor maps a monetary amount to a discount rate in percent. ok is false
// below the lowest threshold (no tier, no card).
func TierFor(amount decimal.Decimal) (rate int, ok bool) {
	for _, tier := range discountTiers {
		if amount.GreaterThanOrEqual(tier.Threshold) {
			return tier.Rate, true
		}
	}
	return 0, false
}

// ShouldIssueCard decides loyalty-card issuance: only a client without a card
// whose current invoice TTC reaches the lowest tier gets one. The decision is
// evaluated once per invoice and is never retroactive.
func ShouldIssueCard(clientHasCard bool, totalTTC decimal.Decimal) bool {
	if clientHasCard {
		return false
	}
	_, ok := TierFor(totalTTC)
	return ok
}
