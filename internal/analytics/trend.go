package analytics

import "atelie/internal/core"

// DefaultTrendWindow is the number of months shown by the evolution chart.
const DefaultTrendWindow = 6

// TrendPoint is one month's totals positioned inside a rolling window.
type TrendPoint struct {
	Label   string // short month name
	Expense core.Money
	Revenue core.Money
	Profit  core.Money
}

// BuildTrend computes the rolling window ending at (month, year), oldest
// first. Each point re-runs the expander, the revenue selector and the
// aggregator for its month; O(window * len(transactions)) and fine for the
// bounded ledgers this serves. A window below 1 falls back to
// DefaultTrendWindow.
func BuildTrend(transactions []core.Transaction, revenues []core.Revenue, month, year, window int) []TrendPoint {
	if window < 1 {
		window = DefaultTrendWindow
	}
	points := make([]TrendPoint, 0, window)
	for i := window - 1; i >= 0; i-- {
		y, m := AddMonths(year, month, -i)
		summary := Aggregate(ExpandMonth(transactions, m, y), RevenuesInMonth(revenues, m, y))
		expense := summary.TotalByType[core.Professional]
		points = append(points, TrendPoint{
			Label:   core.MonthShortName(m),
			Expense: expense,
			Revenue: summary.TotalRevenue,
			Profit:  summary.TotalRevenue.Sub(expense),
		})
	}
	return points
}
