package core

import (
	"errors"
	"testing"
	"time"
)

func validTransaction() Transaction {
	return Transaction{
		ID:           "t1",
		Description:  "Esmaltes",
		Amount:       Money{Cents: 12000},
		Date:         NewDate(2024, 1, 15),
		Type:         Professional,
		Category:     Variable,
		SubCategory:  SubMaterial,
		Bank:         BankNubank,
		Installments: 1,
	}
}

func validRevenue() Revenue {
	return Revenue{
		ID:            "r1",
		Description:   "Alongamento",
		Amount:        Money{Cents: 15000},
		Date:          NewDate(2024, 1, 20),
		PaymentMethod: MethodPix,
		Type:          Professional,
	}
}

func TestTransactionValidate(t *testing.T) {
	if err := validTransaction().Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Transaction)
		want   error
	}{
		{"empty id", func(tx *Transaction) { tx.ID = " " }, ErrEmptyID},
		{"empty description", func(tx *Transaction) { tx.Description = "" }, ErrEmptyDescription},
		{"zero amount", func(tx *Transaction) { tx.Amount = Money{} }, ErrInvalidAmount},
		{"zero date", func(tx *Transaction) { tx.Date = Date{Time: time.Time{}} }, ErrInvalidDate},
		{"bad type", func(tx *Transaction) { tx.Type = "BUSINESS" }, ErrInvalidType},
		{"bad category", func(tx *Transaction) { tx.Category = "flexible" }, ErrInvalidCategory},
		{"empty sub-category", func(tx *Transaction) { tx.SubCategory = "" }, ErrEmptySubCategory},
		{"bad bank", func(tx *Transaction) { tx.Bank = "ITAU" }, ErrInvalidBank},
		{"zero installments", func(tx *Transaction) { tx.Installments = 0 }, ErrInvalidInstallments},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tx := validTransaction()
			tc.mutate(&tx)
			if err := tx.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestTransactionValidateUnknownSubCategoryPasses(t *testing.T) {
	// Sub-category families are not cross-checked against the expense type;
	// a personal code on a professional transaction is accepted as-is.
	tx := validTransaction()
	tx.SubCategory = SubMoradia
	if err := tx.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	tx.SubCategory = "GARBAGE"
	if err := tx.Validate(); err != nil {
		t.Fatalf("expected ok for unknown code, got %v", err)
	}
}

func TestRevenueValidate(t *testing.T) {
	if err := validRevenue().Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Revenue)
		want   error
	}{
		{"empty id", func(r *Revenue) { r.ID = "" }, ErrEmptyID},
		{"empty description", func(r *Revenue) { r.Description = "  " }, ErrEmptyDescription},
		{"zero amount", func(r *Revenue) { r.Amount = Money{} }, ErrInvalidAmount},
		{"zero date", func(r *Revenue) { r.Date = Date{Time: time.Time{}} }, ErrInvalidDate},
		{"bad method", func(r *Revenue) { r.PaymentMethod = "BOLETO" }, ErrInvalidMethod},
		{"bad type", func(r *Revenue) { r.Type = "" }, ErrInvalidType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := validRevenue()
			tc.mutate(&r)
			if err := r.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestDateAccessors(t *testing.T) {
	d := NewDate(2024, 11, 5)
	if d.Year() != 2024 || d.Month() != 11 || d.Day() != 5 {
		t.Fatalf("unexpected date parts: %d-%d-%d", d.Year(), d.Month(), d.Day())
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := Money{Cents: 100000}
	b := Money{Cents: 120000}
	if got := a.Add(b).Cents; got != 220000 {
		t.Fatalf("add: got %d", got)
	}
	if got := a.Sub(b).Cents; got != -20000 {
		t.Fatalf("sub: got %d", got)
	}
}

func TestPaymentMethodsComplete(t *testing.T) {
	methods := PaymentMethods()
	if len(methods) != 3 {
		t.Fatalf("expected 3 methods, got %d", len(methods))
	}
	for _, m := range methods {
		if !m.IsValid() {
			t.Fatalf("method %s reported invalid", m)
		}
	}
}
