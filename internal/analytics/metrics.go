package analytics

import "atelie/internal/core"

// Ratio metrics are returned unrounded; the presentation layer picks the
// rounding (one decimal for delta indicators, none for headline numbers).
// Zero revenue is a defined zero-return branch, never NaN or a panic.

// ProfitMarginPercent is net profit over revenue, as a percentage.
func (s Summary) ProfitMarginPercent() float64 {
	if s.TotalRevenue.Cents <= 0 {
		return 0
	}
	return float64(s.NetProfit().Cents) / float64(s.TotalRevenue.Cents) * 100
}

// CashEfficiencyPercent is the share of revenue left after professional
// expenses: 100 - (expenses / revenue * 100).
func (s Summary) CashEfficiencyPercent() float64 {
	if s.TotalRevenue.Cents <= 0 {
		return 0
	}
	spent := float64(s.TotalByType[core.Professional].Cents)
	return 100 - spent/float64(s.TotalRevenue.Cents)*100
}

// FixedCostTarget is the month's fixed professional cost, the number the
// studio tries to keep revenue above.
func (s Summary) FixedCostTarget() core.Money {
	return s.TotalFixedByType[core.Professional]
}
