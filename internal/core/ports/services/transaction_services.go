package services

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/dto"
)

// TransactionReaderSvc defines read operations on transactions.
type TransactionReaderSvc interface {
	// ListMine lists the caller's own transactions; any owner in params is ignored.
	ListMine(ctx context.Context, caller domain.Caller, params dto.ListTransactionsParams) (*domain.TransactionPage, error)
	// ListAll lists transactions across owners. Admin only.
	ListAll(ctx context.Context, caller domain.Caller, params dto.ListTransactionsParams) (*domain.TransactionPage, error)
	Get(ctx context.Context, caller domain.Caller, transactionID string) (*domain.Transaction, error)
}

// TransactionWriterSvc defines mutations on transactions.
type TransactionWriterSvc interface {
	Create(ctx context.Context, caller domain.Caller, req dto.TransactionRequest) (*domain.Transaction, error)
	Update(ctx context.Context, caller domain.Caller, transactionID string, req dto.TransactionRequest) (*domain.Transaction, error)
	Delete(ctx context.Context, caller domain.Caller, transactionID string) error
}

// TransactionReportingSvc defines the summary operations.
type TransactionReportingSvc interface {
	MySummary(ctx context.Context, caller domain.Caller) (*domain.Summary, error)
	MyCategorySummary(ctx context.Context, caller domain.Caller) ([]domain.CategorySummary, error)
	GlobalSummary(ctx context.Context, caller domain.Caller) (*domain.GlobalSummary, error)
	// DailySummary buckets the last days days; zero means the default window.
	DailySummary(ctx context.Context, caller domain.Caller, days int) ([]domain.DailySummary, error)
}

// TransactionSvcFacade combines all transaction service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
	TransactionReportingSvc
}
