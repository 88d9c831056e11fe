package analytics

import (
	"testing"

	"atelie/internal/core"
)

func tx(id string, cents int64, year, month, day, installments int) core.Transaction {
	return core.Transaction{
		ID:           id,
		Description:  "desc " + id,
		Amount:       core.Money{Cents: cents},
		Date:         core.NewDate(year, month, day),
		Type:         core.Professional,
		Category:     core.Variable,
		SubCategory:  core.SubMaterial,
		Bank:         core.BankNubank,
		Installments: installments,
	}
}

func rev(id string, cents int64, year, month, day int, method core.PaymentMethod) core.Revenue {
	return core.Revenue{
		ID:            id,
		Description:   "desc " + id,
		Amount:        core.Money{Cents: cents},
		Date:          core.NewDate(year, month, day),
		PaymentMethod: method,
		Type:          core.Professional,
	}
}

func TestExpandMonthSingleInstallment(t *testing.T) {
	txs := []core.Transaction{tx("a", 5000, 2024, 3, 10, 1)}

	got := ExpandMonth(txs, 3, 2024)
	if len(got) != 1 {
		t.Fatalf("expected 1 expense, got %d", len(got))
	}
	e := got[0]
	if e.ID != "a-0" || e.OriginalID != "a" {
		t.Fatalf("unexpected ids: %q / %q", e.ID, e.OriginalID)
	}
	if e.CurrentInstallment != 1 || e.TotalInstallments != 1 {
		t.Fatalf("unexpected installment counters: %d/%d", e.CurrentInstallment, e.TotalInstallments)
	}

	if got := ExpandMonth(txs, 4, 2024); len(got) != 0 {
		t.Fatalf("expected no expenses outside the span, got %d", len(got))
	}
}

// Installment conservation: N installments appear in exactly the N consecutive
// months from the start date, with distinct 1..N counters, and nowhere else.
func TestExpandMonthInstallmentConservation(t *testing.T) {
	const n = 5
	txs := []core.Transaction{tx("a", 9000, 2024, 9, 1, n)}

	seen := make(map[int]bool)
	matches := 0
	// Scan a window wider than the span on both sides.
	for offset := -3; offset < n+3; offset++ {
		y, m := AddMonths(2024, 9, offset)
		got := ExpandMonth(txs, m, y)
		if offset < 0 || offset >= n {
			if len(got) != 0 {
				t.Fatalf("offset %d: expected no occurrence, got %d", offset, len(got))
			}
			continue
		}
		if len(got) != 1 {
			t.Fatalf("offset %d: expected 1 occurrence, got %d", offset, len(got))
		}
		matches++
		cur := got[0].CurrentInstallment
		if cur != offset+1 {
			t.Fatalf("offset %d: expected installment %d, got %d", offset, offset+1, cur)
		}
		if seen[cur] {
			t.Fatalf("installment %d produced twice", cur)
		}
		seen[cur] = true
	}
	if matches != n {
		t.Fatalf("expected %d matches, got %d", n, matches)
	}
}

// Year rollover: Nov Y with 3 installments lands in Nov Y, Dec Y and Jan Y+1.
func TestExpandMonthYearRollover(t *testing.T) {
	txs := []core.Transaction{tx("a", 30000, 2024, 11, 15, 3)}

	cases := []struct {
		month, year, installment int
	}{
		{11, 2024, 1},
		{12, 2024, 2},
		{1, 2025, 3},
	}
	for _, tc := range cases {
		got := ExpandMonth(txs, tc.month, tc.year)
		if len(got) != 1 {
			t.Fatalf("%d/%d: expected 1 occurrence, got %d", tc.month, tc.year, len(got))
		}
		if got[0].CurrentInstallment != tc.installment {
			t.Fatalf("%d/%d: expected installment %d, got %d",
				tc.month, tc.year, tc.installment, got[0].CurrentInstallment)
		}
	}
	if got := ExpandMonth(txs, 2, 2025); len(got) != 0 {
		t.Fatalf("expected no occurrence past the span, got %d", len(got))
	}
	if got := ExpandMonth(txs, 11, 2025); len(got) != 0 {
		t.Fatalf("same month next year must not match, got %d", len(got))
	}
}

func TestExpandMonthScenarioFebruaryInstallment(t *testing.T) {
	aluguel := tx("t1", 30000, 2024, 1, 15, 3)
	aluguel.Category = core.Fixed
	aluguel.SubCategory = core.SubAluguel

	got := ExpandMonth([]core.Transaction{aluguel}, 2, 2024)
	if len(got) != 1 {
		t.Fatalf("expected 1 expense, got %d", len(got))
	}
	e := got[0]
	if e.CurrentInstallment != 2 || e.TotalInstallments != 3 {
		t.Fatalf("expected installment 2/3, got %d/%d", e.CurrentInstallment, e.TotalInstallments)
	}
	if e.Amount.Cents != 30000 {
		t.Fatalf("installments carry the full amount, got %d", e.Amount.Cents)
	}

	summary := Aggregate(got, nil)
	if summary.TotalFixedByType[core.Professional].Cents != 30000 {
		t.Fatalf("expected fixed professional total 30000, got %d",
			summary.TotalFixedByType[core.Professional].Cents)
	}
}

func TestExpandMonthNonPositiveInstallments(t *testing.T) {
	// Invalid input degrades to zero occurrences, silently.
	zero := tx("z", 1000, 2024, 5, 1, 0)
	negative := tx("n", 1000, 2024, 5, 1, -2)
	if got := ExpandMonth([]core.Transaction{zero, negative}, 5, 2024); len(got) != 0 {
		t.Fatalf("expected no expansion for installments <= 0, got %d", len(got))
	}
}

func TestExpandMonthDoesNotMutateInput(t *testing.T) {
	txs := []core.Transaction{tx("a", 5000, 2024, 3, 10, 2)}
	before := txs[0]
	_ = ExpandMonth(txs, 4, 2024)
	if txs[0] != before {
		t.Fatalf("input transaction was mutated")
	}
}

func TestRevenuesInMonth(t *testing.T) {
	revs := []core.Revenue{
		rev("r1", 1000, 2024, 2, 1, core.MethodPix),
		rev("r2", 2000, 2024, 3, 1, core.MethodCard),
		rev("r3", 3000, 2024, 2, 28, core.MethodCash),
		rev("r4", 4000, 2023, 2, 15, core.MethodPix),
	}

	got := RevenuesInMonth(revs, 2, 2024)
	if len(got) != 2 {
		t.Fatalf("expected 2 revenues, got %d", len(got))
	}
	// Input order preserved.
	if got[0].ID != "r1" || got[1].ID != "r3" {
		t.Fatalf("order not preserved: %q, %q", got[0].ID, got[1].ID)
	}

	if got := RevenuesInMonth(revs, 6, 2024); len(got) != 0 {
		t.Fatalf("expected empty selection, got %d", len(got))
	}
}
