// Package memory is an in-memory ledger store. It backs tests and the
// zero-dependency demo mode, optionally seeded from JSON files in a data
// directory.
package memory

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"atelie/internal/core"
	"atelie/internal/ledger"
)

type Store struct {
	mu           sync.Mutex
	transactions []core.Transaction
	revenues     []core.Revenue
	version      int64
}

func New() *Store {
	return &Store{}
}

// NewFromFiles seeds a store from base/transactions.json and
// base/revenues.json when they exist. Missing or unreadable seed files leave
// the store empty; seeding is best-effort.
func NewFromFiles(base string) *Store {
	s := New()
	s.transactions = readTransactions(filepath.Join(base, "transactions.json"))
	s.revenues = readRevenues(filepath.Join(base, "revenues.json"))
	return s
}

func (s *Store) AppendTransaction(_ context.Context, t core.Transaction) error {
	if err := t.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append(s.transactions, t)
	s.version++
	return nil
}

func (s *Store) DeleteTransaction(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.transactions {
		if t.ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			s.version++
			return nil
		}
	}
	return ledger.ErrNotFound
}

func (s *Store) ListTransactions(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Transaction(nil), s.transactions...), nil
}

func (s *Store) AppendRevenue(_ context.Context, r core.Revenue) error {
	if err := r.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revenues = append(s.revenues, r)
	s.version++
	return nil
}

func (s *Store) DeleteRevenue(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.revenues {
		if r.ID == id {
			s.revenues = append(s.revenues[:i], s.revenues[i+1:]...)
			s.version++
			return nil
		}
	}
	return ledger.ErrNotFound
}

func (s *Store) ListRevenues(_ context.Context) ([]core.Revenue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Revenue(nil), s.revenues...), nil
}

func (s *Store) Version(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version, nil
}

// Seed file shapes: dates as "2006-01-02", amounts in cents.
type (
	seedTransaction struct {
		ID           string `json:"id"`
		Description  string `json:"description"`
		AmountCents  int64  `json:"amount_cents"`
		Date         string `json:"date"`
		Type         string `json:"type"`
		Category     string `json:"category"`
		SubCategory  string `json:"sub_category"`
		Bank         string `json:"bank"`
		CustomBank   string `json:"custom_bank"`
		Installments int    `json:"installments"`
	}

	seedRevenue struct {
		ID            string `json:"id"`
		Description   string `json:"description"`
		AmountCents   int64  `json:"amount_cents"`
		Date          string `json:"date"`
		PaymentMethod string `json:"payment_method"`
		Type          string `json:"type"`
	}
)

func readTransactions(path string) []core.Transaction {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var seeds []seedTransaction
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return nil
	}
	var out []core.Transaction
	for _, s := range seeds {
		date, err := time.Parse("2006-01-02", s.Date)
		if err != nil {
			continue
		}
		t := core.Transaction{
			ID:           s.ID,
			Description:  s.Description,
			Amount:       core.Money{Cents: s.AmountCents},
			Date:         core.Date{Time: date},
			Type:         core.ExpenseType(s.Type),
			Category:     core.Category(s.Category),
			SubCategory:  core.SubCategory(s.SubCategory),
			Bank:         core.Bank(s.Bank),
			CustomBank:   s.CustomBank,
			Installments: s.Installments,
		}
		if t.Validate() == nil {
			out = append(out, t)
		}
	}
	return out
}

func readRevenues(path string) []core.Revenue {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var seeds []seedRevenue
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return nil
	}
	var out []core.Revenue
	for _, s := range seeds {
		date, err := time.Parse("2006-01-02", s.Date)
		if err != nil {
			continue
		}
		r := core.Revenue{
			ID:            s.ID,
			Description:   s.Description,
			Amount:        core.Money{Cents: s.AmountCents},
			Date:          core.Date{Time: date},
			PaymentMethod: core.PaymentMethod(s.PaymentMethod),
			Type:          core.ExpenseType(s.Type),
		}
		if r.Validate() == nil {
			out = append(out, r)
		}
	}
	return out
}
