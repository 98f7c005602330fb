// Package service defines the interfaces between the CLI commands and
// the persistence layer.
package service

import (
	"context"
	"time"

	"github.com/paisatrack/paisatrack/internal/model"
)

// CategoryTotal is an aggregate row for the summary view.
type CategoryTotal struct {
	Category model.Category
	Total    float64
	Count    int
}

// TransactionStore persists enriched transactions.
type TransactionStore interface {
	// SaveTransactions stores transactions, silently skipping
	// duplicates (same hash). Returns the number actually inserted.
	SaveTransactions(ctx context.Context, txns []model.ParsedTransaction) (int, error)

	// GetTransactionByID fetches a single transaction.
	GetTransactionByID(ctx context.Context, id string) (*model.ParsedTransaction, error)

	// ListTransactions returns transactions ordered by date descending,
	// optionally bounded by the given range.
	ListTransactions(ctx context.Context, start, end *time.Time) ([]model.ParsedTransaction, error)

	// CategorySummary aggregates debit totals per category.
	CategorySummary(ctx context.Context, start, end *time.Time) ([]CategoryTotal, error)

	Close() error
}
