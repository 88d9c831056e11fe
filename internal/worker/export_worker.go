// Package worker runs the background export of monthly reports to the
// configured spreadsheet.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"atelie/internal/amqp"
	"atelie/internal/analytics"
	"atelie/internal/ledger"
	"atelie/internal/sheets"
)

// ExportWorker rebuilds a month's report whenever the ledger changes and
// appends it to the report sheet. It remembers the ledger version it last
// exported per month so requeued or duplicate messages don't produce
// duplicate rows.
type ExportWorker struct {
	store    ledger.Store
	appender sheets.ReportAppender
	window   int

	mu       sync.Mutex
	exported map[monthKey]int64
}

type monthKey struct {
	year  int
	month int
}

func NewExportWorker(store ledger.Store, appender sheets.ReportAppender, window int) *ExportWorker {
	if window < 1 {
		window = analytics.DefaultTrendWindow
	}
	return &ExportWorker{
		store:    store,
		appender: appender,
		window:   window,
		exported: make(map[monthKey]int64),
	}
}

// HandleLedgerChanged processes a single change message. Returning an error
// makes the consumer requeue the delivery.
func (w *ExportWorker) HandleLedgerChanged(ctx context.Context, msg *amqp.LedgerChangedMessage) error {
	if msg.Month < 1 || msg.Month > 12 {
		return fmt.Errorf("invalid month in message: %d", msg.Month)
	}

	slog.InfoContext(ctx, "Processing ledger change",
		"year", msg.Year,
		"month", msg.Month,
		"reason", msg.Reason)

	return w.ExportMonth(ctx, msg.Year, msg.Month)
}

// ExportCurrentMonth exports the report for the wall-clock month. Used by the
// periodic tick as a safety net for lost messages.
func (w *ExportWorker) ExportCurrentMonth(ctx context.Context) error {
	now := time.Now()
	return w.ExportMonth(ctx, now.Year(), int(now.Month()))
}

// ExportMonth recomputes and appends the report for (month, year) unless the
// ledger has not changed since the month was last exported.
func (w *ExportWorker) ExportMonth(ctx context.Context, year, month int) error {
	version, err := w.store.Version(ctx)
	if err != nil {
		return fmt.Errorf("read ledger version: %w", err)
	}

	key := monthKey{year: year, month: month}
	w.mu.Lock()
	last, seen := w.exported[key]
	w.mu.Unlock()
	if seen && last == version {
		slog.DebugContext(ctx, "Report already exported at this version",
			"year", year,
			"month", month,
			"version", version)
		return nil
	}

	txs, err := w.store.ListTransactions(ctx)
	if err != nil {
		return fmt.Errorf("list transactions: %w", err)
	}
	revs, err := w.store.ListRevenues(ctx)
	if err != nil {
		return fmt.Errorf("list revenues: %w", err)
	}

	report := analytics.BuildReport(txs, revs, month, year, w.window)

	ref, err := w.appender.AppendMonthlyReport(ctx, report)
	if err != nil {
		return fmt.Errorf("append monthly report: %w", err)
	}

	w.mu.Lock()
	w.exported[key] = version
	w.mu.Unlock()

	slog.InfoContext(ctx, "Exported monthly report",
		"year", year,
		"month", month,
		"version", version,
		"sheets_ref", ref)

	return nil
}
