package analytics

import "atelie/internal/core"

// Report bundles everything the dashboard needs for one month: the expanded
// ledger, the month summary and the trend series ending at that month.
type Report struct {
	Year     int
	Month    int
	Expenses []core.MonthlyExpense
	Revenues []core.Revenue
	Summary  Summary
	Trend    []TrendPoint
}

// BuildReport runs the full pipeline for (month, year). It is as pure as its
// parts; the caller owns caching and invalidation.
func BuildReport(transactions []core.Transaction, revenues []core.Revenue, month, year, window int) Report {
	expenses := ExpandMonth(transactions, month, year)
	monthRevenues := RevenuesInMonth(revenues, month, year)
	return Report{
		Year:     year,
		Month:    month,
		Expenses: expenses,
		Revenues: monthRevenues,
		Summary:  Aggregate(expenses, monthRevenues),
		Trend:    BuildTrend(transactions, revenues, month, year, window),
	}
}
