// Package analytics holds the shared numeric helpers for dashboard rollups.
package analytics

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// GrowthPercent returns the period-over-period change from previous to
// current as a percentage rounded to two places:
// (current - previous) / previous * 100.
// A zero baseline cannot be divided through, so it maps to 0 when the
// current period is also zero and to 100 when the current period moved.
func GrowthPercent(current, previous int64) decimal.Decimal {
	if previous == 0 {
		if current == 0 {
			return decimal.Zero
		}
		return hundred
	}
	diff := decimal.NewFromInt(current - previous)
	return diff.Div(decimal.NewFromInt(previous)).Mul(hundred).Round(2)
}
