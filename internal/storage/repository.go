// Package storage persists the ledger in SQLite. It implements the ledger
// ports; the analytics engine never sees this package, only the collections it
// loads.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"atelie/internal/core"
	"atelie/internal/ledger"

	_ "modernc.org/sqlite"
)

const dateLayout = "2006-01-02"

type SQLiteRepository struct {
	db *sql.DB
}

var _ ledger.Store = (*SQLiteRepository)(nil)

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// AppendTransaction implements ledger.TransactionStore.
func (r *SQLiteRepository) AppendTransaction(ctx context.Context, t core.Transaction) error {
	if err := t.Validate(); err != nil {
		return err
	}

	err := r.withVersionBump(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO transactions (id, description, amount_cents, date, type, category, sub_category, bank, custom_bank, installments)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, t.Description, t.Amount.Cents, t.Date.Format(dateLayout),
			string(t.Type), string(t.Category), string(t.SubCategory),
			string(t.Bank), t.CustomBank, t.Installments)
		return err
	})
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved",
		"transaction_id", t.ID,
		"description", t.Description,
		"amount_cents", t.Amount.Cents,
		"installments", t.Installments)
	return nil
}

// DeleteTransaction implements ledger.TransactionStore.
func (r *SQLiteRepository) DeleteTransaction(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "transactions", id)
}

// ListTransactions implements ledger.TransactionStore.
func (r *SQLiteRepository) ListTransactions(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, description, amount_cents, date, type, category, sub_category, bank, custom_bank, installments
		FROM transactions ORDER BY date, id`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var out []core.Transaction
	for rows.Next() {
		var (
			t       core.Transaction
			dateStr string
			typ, cat, sub, bank string
		)
		if err := rows.Scan(&t.ID, &t.Description, &t.Amount.Cents, &dateStr,
			&typ, &cat, &sub, &bank, &t.CustomBank, &t.Installments); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		date, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("parse transaction date %q: %w", dateStr, err)
		}
		t.Date = core.Date{Time: date}
		t.Type = core.ExpenseType(typ)
		t.Category = core.Category(cat)
		t.SubCategory = core.SubCategory(sub)
		t.Bank = core.Bank(bank)
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return out, nil
}

// AppendRevenue implements ledger.RevenueStore.
func (r *SQLiteRepository) AppendRevenue(ctx context.Context, rev core.Revenue) error {
	if err := rev.Validate(); err != nil {
		return err
	}

	err := r.withVersionBump(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO revenues (id, description, amount_cents, date, payment_method, type)
			VALUES (?, ?, ?, ?, ?, ?)`,
			rev.ID, rev.Description, rev.Amount.Cents, rev.Date.Format(dateLayout),
			string(rev.PaymentMethod), string(rev.Type))
		return err
	})
	if err != nil {
		return fmt.Errorf("insert revenue: %w", err)
	}

	slog.InfoContext(ctx, "Revenue saved",
		"revenue_id", rev.ID,
		"description", rev.Description,
		"amount_cents", rev.Amount.Cents,
		"payment_method", string(rev.PaymentMethod))
	return nil
}

// DeleteRevenue implements ledger.RevenueStore.
func (r *SQLiteRepository) DeleteRevenue(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "revenues", id)
}

// ListRevenues implements ledger.RevenueStore.
func (r *SQLiteRepository) ListRevenues(ctx context.Context) ([]core.Revenue, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, description, amount_cents, date, payment_method, type
		FROM revenues ORDER BY date, id`)
	if err != nil {
		return nil, fmt.Errorf("query revenues: %w", err)
	}
	defer rows.Close()

	var out []core.Revenue
	for rows.Next() {
		var (
			rev     core.Revenue
			dateStr string
			method, typ string
		)
		if err := rows.Scan(&rev.ID, &rev.Description, &rev.Amount.Cents, &dateStr, &method, &typ); err != nil {
			return nil, fmt.Errorf("scan revenue: %w", err)
		}
		date, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("parse revenue date %q: %w", dateStr, err)
		}
		rev.Date = core.Date{Time: date}
		rev.PaymentMethod = core.PaymentMethod(method)
		rev.Type = core.ExpenseType(typ)
		out = append(out, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate revenues: %w", err)
	}
	return out, nil
}

// Version implements ledger.Versioner.
func (r *SQLiteRepository) Version(ctx context.Context) (int64, error) {
	var v int64
	err := r.db.QueryRowContext(ctx, `SELECT version FROM ledger_version WHERE id = 1`).Scan(&v)
	if err != nil {
		return 0, fmt.Errorf("read ledger version: %w", err)
	}
	return v, nil
}

// withVersionBump runs fn and the version increment in one transaction, so a
// cached report key can never miss a write.
func (r *SQLiteRepository) withVersionBump(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `UPDATE ledger_version SET version = version + 1 WHERE id = 1`); err != nil {
		return fmt.Errorf("bump version: %w", err)
	}
	return tx.Commit()
}

func (r *SQLiteRepository) deleteByID(ctx context.Context, table, id string) error {
	err := r.withVersionBump(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = ?`, id)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			// Rolls back the version bump as well.
			return ledger.ErrNotFound
		}
		return nil
	})
	if err == ledger.ErrNotFound {
		return err
	}
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	return nil
}
