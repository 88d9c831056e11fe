package worker

import (
	"context"
	"errors"
	"testing"

	"atelie/internal/amqp"
	"atelie/internal/analytics"
	"atelie/internal/core"
	"atelie/internal/ledger/memory"
)

type fakeAppender struct {
	reports []analytics.Report
	err     error
}

func (f *fakeAppender) AppendMonthlyReport(_ context.Context, report analytics.Report) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.reports = append(f.reports, report)
	return "Relatórios!A2:I2", nil
}

func seedStore(t *testing.T) *memory.Store {
	t.Helper()
	ctx := context.Background()
	store := memory.New()

	err := store.AppendTransaction(ctx, core.Transaction{
		ID:           "t1",
		Description:  "Aluguel da sala",
		Amount:       core.Money{Cents: 80000},
		Date:         core.NewDate(2024, 2, 5),
		Type:         core.Professional,
		Category:     core.Fixed,
		SubCategory:  core.SubAluguel,
		Bank:         core.BankNubank,
		Installments: 1,
	})
	if err != nil {
		t.Fatalf("seed transaction: %v", err)
	}
	err = store.AppendRevenue(ctx, core.Revenue{
		ID:            "r1",
		Description:   "Sessões de fevereiro",
		Amount:        core.Money{Cents: 200000},
		Date:          core.NewDate(2024, 2, 10),
		PaymentMethod: core.MethodPix,
		Type:          core.Professional,
	})
	if err != nil {
		t.Fatalf("seed revenue: %v", err)
	}
	return store
}

func TestHandleLedgerChangedExportsReport(t *testing.T) {
	ctx := context.Background()
	store := seedStore(t)
	appender := &fakeAppender{}
	w := NewExportWorker(store, appender, 6)

	msg := amqp.NewLedgerChangedMessage(2024, 2, amqp.ReasonRevenueCreated)
	if err := w.HandleLedgerChanged(ctx, msg); err != nil {
		t.Fatalf("handle: %v", err)
	}

	if len(appender.reports) != 1 {
		t.Fatalf("expected 1 export, got %d", len(appender.reports))
	}
	report := appender.reports[0]
	if report.Year != 2024 || report.Month != 2 {
		t.Fatalf("wrong report coordinates: %d-%d", report.Year, report.Month)
	}
	if report.Summary.TotalRevenue.Cents != 200000 {
		t.Fatalf("unexpected revenue: %d", report.Summary.TotalRevenue.Cents)
	}
	if len(report.Trend) != 6 {
		t.Fatalf("expected 6 trend points, got %d", len(report.Trend))
	}
}

func TestHandleLedgerChangedRejectsBadMonth(t *testing.T) {
	w := NewExportWorker(memory.New(), &fakeAppender{}, 6)
	msg := amqp.NewLedgerChangedMessage(2024, 13, amqp.ReasonRevenueCreated)
	if err := w.HandleLedgerChanged(context.Background(), msg); err == nil {
		t.Fatalf("expected error for month 13")
	}
}

func TestDuplicateMessagesExportOnce(t *testing.T) {
	ctx := context.Background()
	store := seedStore(t)
	appender := &fakeAppender{}
	w := NewExportWorker(store, appender, 6)

	msg := amqp.NewLedgerChangedMessage(2024, 2, amqp.ReasonRevenueCreated)
	if err := w.HandleLedgerChanged(ctx, msg); err != nil {
		t.Fatalf("first handle: %v", err)
	}
	if err := w.HandleLedgerChanged(ctx, msg); err != nil {
		t.Fatalf("second handle: %v", err)
	}
	if len(appender.reports) != 1 {
		t.Fatalf("duplicate message must not export twice, got %d exports", len(appender.reports))
	}

	// A new write moves the version and re-enables the export.
	err := store.AppendRevenue(ctx, core.Revenue{
		ID:            "r2",
		Description:   "Drenagem avulsa",
		Amount:        core.Money{Cents: 15000},
		Date:          core.NewDate(2024, 2, 20),
		PaymentMethod: core.MethodCash,
		Type:          core.Professional,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := w.HandleLedgerChanged(ctx, msg); err != nil {
		t.Fatalf("third handle: %v", err)
	}
	if len(appender.reports) != 2 {
		t.Fatalf("expected re-export after version bump, got %d", len(appender.reports))
	}
}

func TestAppenderFailureDoesNotMarkExported(t *testing.T) {
	ctx := context.Background()
	store := seedStore(t)
	appender := &fakeAppender{err: errors.New("quota exceeded")}
	w := NewExportWorker(store, appender, 6)

	msg := amqp.NewLedgerChangedMessage(2024, 2, amqp.ReasonRevenueCreated)
	if err := w.HandleLedgerChanged(ctx, msg); err == nil {
		t.Fatalf("expected append error to surface")
	}

	// A retry after recovery must still export.
	appender.err = nil
	if err := w.HandleLedgerChanged(ctx, msg); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if len(appender.reports) != 1 {
		t.Fatalf("expected export after recovery, got %d", len(appender.reports))
	}
}
