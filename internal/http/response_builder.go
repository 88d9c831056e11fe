package http

import (
	"atelie/internal/analytics"
	"atelie/internal/core"
)

// Response DTOs. Amounts are sent both as integer cents for arithmetic and as
// a formatted BRL string for display; enum fields carry their display label.

type moneyJSON struct {
	Cents     int64  `json:"cents"`
	Formatted string `json:"formatted"`
}

type monthlyExpenseJSON struct {
	ID                 string    `json:"id"`
	OriginalID         string    `json:"original_id"`
	Description        string    `json:"description"`
	Amount             moneyJSON `json:"amount"`
	CurrentInstallment int       `json:"current_installment"`
	TotalInstallments  int       `json:"total_installments"`
	Bank               string    `json:"bank"`
	BankLabel          string    `json:"bank_label"`
	Category           string    `json:"category"`
	SubCategory        string    `json:"sub_category"`
	SubCategoryLabel   string    `json:"sub_category_label"`
	Type               string    `json:"type"`
	Date               string    `json:"date"`
}

type revenueJSON struct {
	ID                 string    `json:"id"`
	Description        string    `json:"description"`
	Amount             moneyJSON `json:"amount"`
	PaymentMethod      string    `json:"payment_method"`
	PaymentMethodLabel string    `json:"payment_method_label"`
	Type               string    `json:"type"`
	Date               string    `json:"date"`
}

type subCategoryAmountJSON struct {
	SubCategory string    `json:"sub_category"`
	Label       string    `json:"label"`
	Amount      moneyJSON `json:"amount"`
}

type summaryJSON struct {
	TotalByType      map[string]moneyJSON    `json:"total_by_type"`
	TotalFixedByType map[string]moneyJSON    `json:"total_fixed_by_type"`
	TotalRevenue     moneyJSON               `json:"total_revenue"`
	RevenueByMethod  map[string]moneyJSON    `json:"revenue_by_method"`
	BySubCategory    []subCategoryAmountJSON `json:"by_sub_category"`

	NetProfit             moneyJSON `json:"net_profit"`
	ProfitMarginPercent   float64   `json:"profit_margin_percent"`
	CashEfficiencyPercent float64   `json:"cash_efficiency_percent"`
	FixedCostTarget       moneyJSON `json:"fixed_cost_target"`
}

type trendPointJSON struct {
	Label   string    `json:"label"`
	Expense moneyJSON `json:"expense"`
	Revenue moneyJSON `json:"revenue"`
	Profit  moneyJSON `json:"profit"`
}

type reportJSON struct {
	Year      int                  `json:"year"`
	Month     int                  `json:"month"`
	MonthName string               `json:"month_name"`
	Expenses  []monthlyExpenseJSON `json:"expenses"`
	Revenues  []revenueJSON        `json:"revenues"`
	Summary   summaryJSON          `json:"summary"`
	Trend     []trendPointJSON     `json:"trend"`
}

func toMoneyJSON(m core.Money) moneyJSON {
	return moneyJSON{Cents: m.Cents, Formatted: core.FormatBRL(m)}
}

func toMonthlyExpenseJSON(e core.MonthlyExpense) monthlyExpenseJSON {
	return monthlyExpenseJSON{
		ID:                 e.ID,
		OriginalID:         e.OriginalID,
		Description:        e.Description,
		Amount:             toMoneyJSON(e.Amount),
		CurrentInstallment: e.CurrentInstallment,
		TotalInstallments:  e.TotalInstallments,
		Bank:               string(e.Bank),
		BankLabel:          bankLabel(e.Bank, e.CustomBank),
		Category:           string(e.Category),
		SubCategory:        string(e.SubCategory),
		SubCategoryLabel:   e.SubCategory.Label(),
		Type:               string(e.Type),
		Date:               e.Date.Format(requestDateLayout),
	}
}

func toRevenueJSON(r core.Revenue) revenueJSON {
	return revenueJSON{
		ID:                 r.ID,
		Description:        r.Description,
		Amount:             toMoneyJSON(r.Amount),
		PaymentMethod:      string(r.PaymentMethod),
		PaymentMethodLabel: r.PaymentMethod.Label(),
		Type:               string(r.Type),
		Date:               r.Date.Format(requestDateLayout),
	}
}

func toSummaryJSON(s analytics.Summary) summaryJSON {
	out := summaryJSON{
		TotalByType:      make(map[string]moneyJSON, len(s.TotalByType)),
		TotalFixedByType: make(map[string]moneyJSON, len(s.TotalFixedByType)),
		TotalRevenue:     toMoneyJSON(s.TotalRevenue),
		RevenueByMethod:  make(map[string]moneyJSON, len(s.RevenueByMethod)),
		BySubCategory:    make([]subCategoryAmountJSON, 0, len(s.BySubCategory)),

		NetProfit:             toMoneyJSON(s.NetProfit()),
		ProfitMarginPercent:   s.ProfitMarginPercent(),
		CashEfficiencyPercent: s.CashEfficiencyPercent(),
		FixedCostTarget:       toMoneyJSON(s.FixedCostTarget()),
	}
	for t, m := range s.TotalByType {
		out.TotalByType[string(t)] = toMoneyJSON(m)
	}
	for t, m := range s.TotalFixedByType {
		out.TotalFixedByType[string(t)] = toMoneyJSON(m)
	}
	for pm, m := range s.RevenueByMethod {
		out.RevenueByMethod[string(pm)] = toMoneyJSON(m)
	}
	for _, sc := range s.BySubCategory {
		out.BySubCategory = append(out.BySubCategory, subCategoryAmountJSON{
			SubCategory: string(sc.SubCategory),
			Label:       sc.SubCategory.Label(),
			Amount:      toMoneyJSON(sc.Amount),
		})
	}
	return out
}

func toReportJSON(r analytics.Report) reportJSON {
	out := reportJSON{
		Year:      r.Year,
		Month:     r.Month,
		MonthName: core.MonthName(r.Month),
		Expenses:  make([]monthlyExpenseJSON, 0, len(r.Expenses)),
		Revenues:  make([]revenueJSON, 0, len(r.Revenues)),
		Summary:   toSummaryJSON(r.Summary),
		Trend:     make([]trendPointJSON, 0, len(r.Trend)),
	}
	for _, e := range r.Expenses {
		out.Expenses = append(out.Expenses, toMonthlyExpenseJSON(e))
	}
	for _, rev := range r.Revenues {
		out.Revenues = append(out.Revenues, toRevenueJSON(rev))
	}
	for _, p := range r.Trend {
		out.Trend = append(out.Trend, trendPointJSON{
			Label:   p.Label,
			Expense: toMoneyJSON(p.Expense),
			Revenue: toMoneyJSON(p.Revenue),
			Profit:  toMoneyJSON(p.Profit),
		})
	}
	return out
}

func bankLabel(b core.Bank, custom string) string {
	if b == core.BankOther && custom != "" {
		return custom
	}
	return b.Label()
}
