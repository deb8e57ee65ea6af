package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTierForThresholds(t *testing.T) {
	cases := []struct {
		amount   int64
		wantRate int
		wantOK   bool
	}{
		{0, 0, false},
		{1999, 0, false},
		{2000, 5, true},
		{4999, 5, true},
		{5000, 10, true},
		{9999, 10, true},
		{10000, 15, true},
		{250000, 15, true},
	}

	for _, tc := range cases {
		rate, ok := TierFor(decimal.NewFromInt(tc.amount))
		assert.Equal(t, tc.wantOK, ok, "amount %d", tc.amount)
		assert.Equal(t, tc.wantRate, rate, "amount %d", tc.amount)
	}
}

func TestTierForFractionalBoundary(t *testing.T) {
	rate, ok := TierFor(decimal.RequireFromString("1999.99"))
	assert.False(t, ok)
	assert.Zero(t, rate)

	rate, ok = TierFor(decimal.RequireFromString("2000.00"))
	assert.True(t, ok)
	assert.Equal(t, 5, rate)
}

func TestShouldIssueCard(t *testing.T) {
	qualifying := decimal.NewFromInt(2360)
	small := decimal.NewFromInt(1888)

	assert.True(t, ShouldIssueCard(false, qualifying))
	assert.False(t, ShouldIssueCard(false, small), "below the lowest threshold")
	assert.False(t, ShouldIssueCard(true, qualifying), "a card holder never gets a second card")
	assert.False(t, ShouldIssueCard(true, decimal.NewFromInt(50000)), "not even for a larger invoice")
}
