package analytics

import (
	"strconv"

	"atelie/internal/core"
)

// ExpandMonth turns the transaction set into the monthly expense occurrences
// that fall inside (month, year). A transaction with Installments = N spawns
// one occurrence per consecutive calendar month starting at its date's month;
// at most one of those occurrences can land in the target month. Installments
// below 1 are treated as "no occurrences" rather than an error.
func ExpandMonth(transactions []core.Transaction, month, year int) []core.MonthlyExpense {
	var expenses []core.MonthlyExpense
	for _, tx := range transactions {
		for k := 0; k < tx.Installments; k++ {
			oy, om := AddMonths(tx.Date.Year(), tx.Date.Month(), k)
			if oy != year || om != month {
				continue
			}
			expenses = append(expenses, core.MonthlyExpense{
				ID:                 tx.ID + "-" + strconv.Itoa(k),
				OriginalID:         tx.ID,
				Description:        tx.Description,
				Amount:             tx.Amount,
				CurrentInstallment: k + 1,
				TotalInstallments:  tx.Installments,
				Bank:               tx.Bank,
				CustomBank:         tx.CustomBank,
				Category:           tx.Category,
				SubCategory:        tx.SubCategory,
				Type:               tx.Type,
				Date:               tx.Date,
			})
			// Occurrence months are consecutive, so no later k can match.
			break
		}
	}
	return expenses
}

// RevenuesInMonth filters revenues to those dated inside (month, year),
// preserving input order. Revenues are single-occurrence; no expansion.
func RevenuesInMonth(revenues []core.Revenue, month, year int) []core.Revenue {
	var selected []core.Revenue
	for _, r := range revenues {
		if r.Date.Year() == year && r.Date.Month() == month {
			selected = append(selected, r)
		}
	}
	return selected
}
