package analytics

import (
	"sort"

	"atelie/internal/core"
)

type (
	// SubCategoryAmount is one entry of the professional cost breakdown.
	SubCategoryAmount struct {
		SubCategory core.SubCategory
		Amount      core.Money
	}

	// Summary holds every scalar and grouped sum computed for one month.
	// All maps are fully keyed: both expense types and all three payment
	// methods are present even when no record contributed to them.
	Summary struct {
		TotalByType      map[core.ExpenseType]core.Money
		TotalFixedByType map[core.ExpenseType]core.Money
		TotalRevenue     core.Money
		RevenueByMethod  map[core.PaymentMethod]core.Money

		// BySubCategory covers professional expenses only, sorted by amount
		// descending. Equal amounts keep first-seen input order.
		BySubCategory []SubCategoryAmount
	}
)

// Aggregate computes the month summary from an expanded expense set and the
// month's revenues. Inputs are not mutated.
func Aggregate(expenses []core.MonthlyExpense, revenues []core.Revenue) Summary {
	s := Summary{
		TotalByType:      make(map[core.ExpenseType]core.Money, 2),
		TotalFixedByType: make(map[core.ExpenseType]core.Money, 2),
		RevenueByMethod:  make(map[core.PaymentMethod]core.Money, 3),
	}
	for _, t := range core.ExpenseTypes() {
		s.TotalByType[t] = core.Money{}
		s.TotalFixedByType[t] = core.Money{}
	}
	for _, m := range core.PaymentMethods() {
		s.RevenueByMethod[m] = core.Money{}
	}

	bySub := make(map[core.SubCategory]int64)
	var subOrder []core.SubCategory

	for _, e := range expenses {
		s.TotalByType[e.Type] = s.TotalByType[e.Type].Add(e.Amount)
		if e.Category == core.Fixed {
			s.TotalFixedByType[e.Type] = s.TotalFixedByType[e.Type].Add(e.Amount)
		}
		if e.Type == core.Professional {
			if _, seen := bySub[e.SubCategory]; !seen {
				subOrder = append(subOrder, e.SubCategory)
			}
			bySub[e.SubCategory] += e.Amount.Cents
		}
	}

	for _, r := range revenues {
		s.TotalRevenue = s.TotalRevenue.Add(r.Amount)
		s.RevenueByMethod[r.PaymentMethod] = s.RevenueByMethod[r.PaymentMethod].Add(r.Amount)
	}

	s.BySubCategory = make([]SubCategoryAmount, 0, len(subOrder))
	for _, sub := range subOrder {
		s.BySubCategory = append(s.BySubCategory, SubCategoryAmount{
			SubCategory: sub,
			Amount:      core.Money{Cents: bySub[sub]},
		})
	}
	sort.SliceStable(s.BySubCategory, func(i, j int) bool {
		return s.BySubCategory[i].Amount.Cents > s.BySubCategory[j].Amount.Cents
	})

	return s
}

// NetProfit is the month's revenue minus its professional expenses. Derived on
// demand, never stored; it can be negative.
func (s Summary) NetProfit() core.Money {
	return s.TotalRevenue.Sub(s.TotalByType[core.Professional])
}
