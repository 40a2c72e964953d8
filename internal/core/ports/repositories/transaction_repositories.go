package repositories

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// TransactionReader defines read operations for transactions
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by its ID.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions applies the filter conjunctively, ordered by date DESC, created_at DESC.
	// The returned token is non-nil only when a limit was given and more rows remain.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines write operations for transactions
type TransactionWriter interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction rewrites the mutable fields. The owner is never changed.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction returns apperrors.ErrNotFound when no row was removed.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionSummaryReader exposes the pre-aggregated summary queries.
type TransactionSummaryReader interface {
	// SummaryByUser aggregates one owner's transactions.
	SummaryByUser(ctx context.Context, userID string) (domain.Summary, error)

	// GlobalSummary aggregates every transaction and counts distinct owners.
	GlobalSummary(ctx context.Context) (domain.GlobalSummary, error)

	// CategorySummaryByUser groups one owner's transactions by (category, type),
	// ordered by type then total descending.
	CategorySummaryByUser(ctx context.Context, userID string) ([]domain.CategorySummary, error)

	// DailySummary buckets the last days calendar days, newest first.
	DailySummary(ctx context.Context, days int) ([]domain.DailySummary, error)
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
	TransactionSummaryReader
}
