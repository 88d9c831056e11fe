// Package ledger defines the ports through which the application reaches its
// transaction and revenue records. The analytics engine itself never touches a
// store; callers load the full collections through these interfaces and hand
// them to the pure pipeline.
package ledger

import (
	"context"
	"errors"

	"atelie/internal/core"
)

// ErrNotFound is returned when a delete targets an id that does not exist.
var ErrNotFound = errors.New("record not found")

type (
	TransactionStore interface {
		AppendTransaction(ctx context.Context, t core.Transaction) error
		DeleteTransaction(ctx context.Context, id string) error
		// ListTransactions returns every stored transaction. The installment
		// expander needs the full set: a months-old purchase can still
		// contribute occurrences to the queried month.
		ListTransactions(ctx context.Context) ([]core.Transaction, error)
	}

	RevenueStore interface {
		AppendRevenue(ctx context.Context, r core.Revenue) error
		DeleteRevenue(ctx context.Context, id string) error
		ListRevenues(ctx context.Context) ([]core.Revenue, error)
	}

	// Versioner exposes a counter that moves on every write. Report caches
	// fold it into their keys so a stale entry can never outlive a change.
	Versioner interface {
		Version(ctx context.Context) (int64, error)
	}

	// Store is the full surface a backend implements.
	Store interface {
		TransactionStore
		RevenueStore
		Versioner
	}
)
