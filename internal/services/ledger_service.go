// Package services holds the orchestration layer between transport, storage
// and messaging. The analytics pipeline itself stays in internal/analytics.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"atelie/internal/amqp"
	"atelie/internal/analytics"
	"atelie/internal/core"
	"atelie/internal/ledger"
)

// ChangePublisher notifies interested parties that a month's figures moved.
// The AMQP client implements it; a nil publisher disables notifications.
type ChangePublisher interface {
	PublishLedgerChanged(ctx context.Context, year, month int, reason string) error
}

// LedgerService validates and persists ledger records and publishes change
// notifications. Publishing is best-effort: a broker outage never fails the
// write path, the periodic export catches up later.
type LedgerService struct {
	store     ledger.Store
	publisher ChangePublisher
}

func NewLedgerService(store ledger.Store, publisher ChangePublisher) *LedgerService {
	return &LedgerService{
		store:     store,
		publisher: publisher,
	}
}

// RecordTransaction stores a transaction, assigning an id when the caller did
// not provide one, and publishes one change per month the installment span
// touches.
func (s *LedgerService) RecordTransaction(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if err := s.store.AppendTransaction(ctx, t); err != nil {
		return core.Transaction{}, fmt.Errorf("save transaction: %w", err)
	}
	s.publishSpan(ctx, t, amqp.ReasonTransactionCreated)
	return t, nil
}

// DeleteTransaction removes a transaction and publishes a change for every
// month its installments had touched.
func (s *LedgerService) DeleteTransaction(ctx context.Context, id string) error {
	t, err := s.findTransaction(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.DeleteTransaction(ctx, id); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	s.publishSpan(ctx, t, amqp.ReasonTransactionDeleted)
	return nil
}

// RecordRevenue stores a revenue, assigning an id when needed.
func (s *LedgerService) RecordRevenue(ctx context.Context, r core.Revenue) (core.Revenue, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if err := s.store.AppendRevenue(ctx, r); err != nil {
		return core.Revenue{}, fmt.Errorf("save revenue: %w", err)
	}
	s.publish(ctx, r.Date.Year(), r.Date.Month(), amqp.ReasonRevenueCreated)
	return r, nil
}

// DeleteRevenue removes a revenue record.
func (s *LedgerService) DeleteRevenue(ctx context.Context, id string) error {
	revs, err := s.store.ListRevenues(ctx)
	if err != nil {
		return fmt.Errorf("list revenues: %w", err)
	}
	for _, r := range revs {
		if r.ID == id {
			if err := s.store.DeleteRevenue(ctx, id); err != nil {
				return fmt.Errorf("delete revenue: %w", err)
			}
			s.publish(ctx, r.Date.Year(), r.Date.Month(), amqp.ReasonRevenueDeleted)
			return nil
		}
	}
	return ledger.ErrNotFound
}

// MonthReport loads the full ledger and runs the analytics pipeline for
// (month, year). The returned version lets callers key their caches.
func (s *LedgerService) MonthReport(ctx context.Context, month, year, window int) (analytics.Report, int64, error) {
	version, err := s.store.Version(ctx)
	if err != nil {
		return analytics.Report{}, 0, fmt.Errorf("read version: %w", err)
	}
	txs, err := s.store.ListTransactions(ctx)
	if err != nil {
		return analytics.Report{}, 0, fmt.Errorf("list transactions: %w", err)
	}
	revs, err := s.store.ListRevenues(ctx)
	if err != nil {
		return analytics.Report{}, 0, fmt.Errorf("list revenues: %w", err)
	}
	return analytics.BuildReport(txs, revs, month, year, window), version, nil
}

// MonthlyExpenses returns the expanded expense occurrences for (month, year).
func (s *LedgerService) MonthlyExpenses(ctx context.Context, month, year int) ([]core.MonthlyExpense, error) {
	txs, err := s.store.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return analytics.ExpandMonth(txs, month, year), nil
}

// MonthlyRevenues returns the revenues dated inside (month, year).
func (s *LedgerService) MonthlyRevenues(ctx context.Context, month, year int) ([]core.Revenue, error) {
	revs, err := s.store.ListRevenues(ctx)
	if err != nil {
		return nil, fmt.Errorf("list revenues: %w", err)
	}
	return analytics.RevenuesInMonth(revs, month, year), nil
}

// Version exposes the store's change counter for cache keys.
func (s *LedgerService) Version(ctx context.Context) (int64, error) {
	return s.store.Version(ctx)
}

func (s *LedgerService) findTransaction(ctx context.Context, id string) (core.Transaction, error) {
	txs, err := s.store.ListTransactions(ctx)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("list transactions: %w", err)
	}
	for _, t := range txs {
		if t.ID == id {
			return t, nil
		}
	}
	return core.Transaction{}, ledger.ErrNotFound
}

// publishSpan emits one change message per month the transaction's
// installments cover.
func (s *LedgerService) publishSpan(ctx context.Context, t core.Transaction, reason string) {
	for k := 0; k < t.Installments; k++ {
		y, m := analytics.AddMonths(t.Date.Year(), t.Date.Month(), k)
		s.publish(ctx, y, m, reason)
	}
}

func (s *LedgerService) publish(ctx context.Context, year, month int, reason string) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishLedgerChanged(ctx, year, month, reason); err != nil {
		slog.ErrorContext(ctx, "Failed to publish ledger change",
			"error", err,
			"year", year,
			"month", month,
			"reason", reason)
	}
}
