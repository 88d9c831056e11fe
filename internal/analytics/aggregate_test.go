package analytics

import (
	"testing"

	"atelie/internal/core"
)

func exp(id string, cents int64, typ core.ExpenseType, cat core.Category, sub core.SubCategory) core.MonthlyExpense {
	return core.MonthlyExpense{
		ID:                 id + "-0",
		OriginalID:         id,
		Description:        "desc " + id,
		Amount:             core.Money{Cents: cents},
		CurrentInstallment: 1,
		TotalInstallments:  1,
		Bank:               core.BankNubank,
		Category:           cat,
		SubCategory:        sub,
		Type:               typ,
		Date:               core.NewDate(2024, 2, 1),
	}
}

func TestAggregateTotalsByType(t *testing.T) {
	expenses := []core.MonthlyExpense{
		exp("a", 10000, core.Professional, core.Fixed, core.SubAluguel),
		exp("b", 5000, core.Professional, core.Variable, core.SubMaterial),
		exp("c", 7000, core.Personal, core.Fixed, core.SubMoradia),
		exp("d", 2000, core.Personal, core.Variable, core.SubLazer),
	}

	s := Aggregate(expenses, nil)

	if got := s.TotalByType[core.Professional].Cents; got != 15000 {
		t.Fatalf("professional total: got %d", got)
	}
	if got := s.TotalByType[core.Personal].Cents; got != 9000 {
		t.Fatalf("personal total: got %d", got)
	}
	if got := s.TotalFixedByType[core.Professional].Cents; got != 10000 {
		t.Fatalf("professional fixed: got %d", got)
	}
	if got := s.TotalFixedByType[core.Personal].Cents; got != 7000 {
		t.Fatalf("personal fixed: got %d", got)
	}

	// Additivity: the type partition covers the whole expense set.
	var all int64
	for _, e := range expenses {
		all += e.Amount.Cents
	}
	if got := s.TotalByType[core.Professional].Cents + s.TotalByType[core.Personal].Cents; got != all {
		t.Fatalf("partition does not add up: %d != %d", got, all)
	}
}

func TestAggregateRevenueByMethodAlwaysComplete(t *testing.T) {
	revenues := []core.Revenue{
		rev("r1", 100000, 2024, 2, 5, core.MethodPix),
		rev("r2", 50000, 2024, 2, 9, core.MethodCard),
	}

	s := Aggregate(nil, revenues)

	if s.TotalRevenue.Cents != 150000 {
		t.Fatalf("total revenue: got %d", s.TotalRevenue.Cents)
	}
	want := map[core.PaymentMethod]int64{
		core.MethodPix:  100000,
		core.MethodCard: 50000,
		core.MethodCash: 0,
	}
	if len(s.RevenueByMethod) != len(want) {
		t.Fatalf("expected %d method keys, got %d", len(want), len(s.RevenueByMethod))
	}
	for method, cents := range want {
		got, ok := s.RevenueByMethod[method]
		if !ok {
			t.Fatalf("method %s missing from result", method)
		}
		if got.Cents != cents {
			t.Fatalf("method %s: expected %d, got %d", method, cents, got.Cents)
		}
	}
}

func TestAggregateSubCategoryBreakdown(t *testing.T) {
	expenses := []core.MonthlyExpense{
		exp("a", 5000, core.Professional, core.Variable, core.SubMaterial),
		exp("b", 20000, core.Professional, core.Fixed, core.SubAluguel),
		exp("c", 5000, core.Professional, core.Variable, core.SubMarketing),
		exp("d", 3000, core.Professional, core.Variable, core.SubMaterial),
		// Personal expenses stay out of the professional breakdown.
		exp("e", 99000, core.Personal, core.Fixed, core.SubMoradia),
	}

	s := Aggregate(expenses, nil)

	if len(s.BySubCategory) != 3 {
		t.Fatalf("expected 3 sub-categories, got %d", len(s.BySubCategory))
	}
	if s.BySubCategory[0].SubCategory != core.SubAluguel || s.BySubCategory[0].Amount.Cents != 20000 {
		t.Fatalf("expected ALUGUEL 20000 first, got %s %d",
			s.BySubCategory[0].SubCategory, s.BySubCategory[0].Amount.Cents)
	}
	if s.BySubCategory[1].SubCategory != core.SubMaterial || s.BySubCategory[1].Amount.Cents != 8000 {
		t.Fatalf("expected MATERIAL 8000 second, got %s %d",
			s.BySubCategory[1].SubCategory, s.BySubCategory[1].Amount.Cents)
	}
	if s.BySubCategory[2].SubCategory != core.SubMarketing {
		t.Fatalf("expected MARKETING last, got %s", s.BySubCategory[2].SubCategory)
	}
}

func TestAggregateSubCategoryTiesKeepFirstSeenOrder(t *testing.T) {
	expenses := []core.MonthlyExpense{
		exp("a", 4000, core.Professional, core.Variable, core.SubCursos),
		exp("b", 4000, core.Professional, core.Variable, core.SubImpostos),
		exp("c", 4000, core.Professional, core.Variable, core.SubMarketing),
	}

	s := Aggregate(expenses, nil)

	wantOrder := []core.SubCategory{core.SubCursos, core.SubImpostos, core.SubMarketing}
	for i, want := range wantOrder {
		if s.BySubCategory[i].SubCategory != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, s.BySubCategory[i].SubCategory)
		}
	}
}

func TestAggregateEmptyInputs(t *testing.T) {
	s := Aggregate(nil, nil)

	if s.TotalRevenue.Cents != 0 {
		t.Fatalf("expected zero revenue, got %d", s.TotalRevenue.Cents)
	}
	for _, typ := range core.ExpenseTypes() {
		if s.TotalByType[typ].Cents != 0 || s.TotalFixedByType[typ].Cents != 0 {
			t.Fatalf("type %s not zero-initialized", typ)
		}
	}
	for _, method := range core.PaymentMethods() {
		if got, ok := s.RevenueByMethod[method]; !ok || got.Cents != 0 {
			t.Fatalf("method %s not zero-initialized", method)
		}
	}
	if len(s.BySubCategory) != 0 {
		t.Fatalf("expected empty breakdown, got %d entries", len(s.BySubCategory))
	}
	if s.NetProfit().Cents != 0 {
		t.Fatalf("expected zero net profit, got %d", s.NetProfit().Cents)
	}
}

func TestAggregateUnknownSubCategoryPassesThrough(t *testing.T) {
	expenses := []core.MonthlyExpense{
		exp("a", 1000, core.Professional, core.Variable, "RANDOM_CODE"),
	}
	s := Aggregate(expenses, nil)
	if len(s.BySubCategory) != 1 || s.BySubCategory[0].SubCategory != "RANDOM_CODE" {
		t.Fatalf("unknown code should aggregate opaquely, got %+v", s.BySubCategory)
	}
}

func TestNetProfit(t *testing.T) {
	expenses := []core.MonthlyExpense{
		exp("a", 120000, core.Professional, core.Variable, core.SubMaterial),
	}
	revenues := []core.Revenue{rev("r1", 100000, 2024, 2, 1, core.MethodPix)}

	s := Aggregate(expenses, revenues)
	if got := s.NetProfit().Cents; got != -20000 {
		t.Fatalf("expected net profit -20000, got %d", got)
	}
}
