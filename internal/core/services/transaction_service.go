package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/core/policy"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/utils"
	"github.com/SscSPs/finance_tracker/internal/utils/accounting"
	"github.com/google/uuid"
)

const (
	// DefaultDailySummaryDays is used when no window is requested.
	DefaultDailySummaryDays = 30
	// MaxDailySummaryDays bounds the requested window.
	MaxDailySummaryDays = 366
)

type transactionService struct {
	BaseService
	txnRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, activityRepo portsrepo.ActivityWriter) portssvc.TransactionSvcFacade {
	return &transactionService{
		BaseService: BaseService{ActivityLog: activityRepo},
		txnRepo:     txnRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// toFilter converts query parameters into an explicit filter. Absent parameters stay nil.
func toFilter(params dto.ListTransactionsParams) (domain.TransactionFilter, error) {
	if err := validateRequest(params); err != nil {
		return domain.TransactionFilter{}, err
	}
	f := domain.TransactionFilter{Limit: params.Limit}
	if params.Type != "" {
		t, err := domain.ParseTransactionType(params.Type)
		if err != nil {
			return domain.TransactionFilter{}, apperrors.NewValidationError("type", err.Error())
		}
		f.Type = &t
	}
	if c := strings.TrimSpace(params.Category); c != "" {
		f.Category = &c
	}
	if params.StartDate != "" {
		d, _ := time.Parse(domain.DateLayout, params.StartDate)
		f.DateFrom = &d
	}
	if params.EndDate != "" {
		d, _ := time.Parse(domain.DateLayout, params.EndDate)
		f.DateTo = &d
	}
	if f.DateFrom != nil && f.DateTo != nil && f.DateTo.Before(*f.DateFrom) {
		return domain.TransactionFilter{}, apperrors.NewValidationError("endDate", "endDate must not be before startDate")
	}
	if params.UserID != "" {
		owner := params.UserID
		f.OwnerID = &owner
	}
	if params.NextToken != "" {
		token := params.NextToken
		f.NextToken = &token
	}
	return f, nil
}

// parseTransactionRequest validates a create/update body and returns the typed fields.
// Text fields are trimmed and the amount rounded to cents before they are checked,
// so what is validated is exactly what gets stored.
func parseTransactionRequest(req dto.TransactionRequest) (domain.Transaction, error) {
	req.Category = strings.TrimSpace(req.Category)
	req.Description = strings.TrimSpace(req.Description)
	if err := validateRequest(req); err != nil {
		return domain.Transaction{}, err
	}
	amount := req.Amount.Round(2)
	if err := accounting.ValidateAmount(amount); err != nil {
		return domain.Transaction{}, apperrors.NewValidationError("amount", err.Error())
	}
	txnType, err := domain.ParseTransactionType(req.Type)
	if err != nil {
		return domain.Transaction{}, apperrors.NewValidationError("type", err.Error())
	}
	date, _ := time.Parse(domain.DateLayout, req.Date)
	return domain.Transaction{
		Date:        date,
		Type:        txnType,
		Category:    req.Category,
		Description: req.Description,
		Amount:      amount,
	}, nil
}

func (s *transactionService) list(ctx context.Context, caller domain.Caller, params dto.ListTransactionsParams, adminScope bool) (*domain.TransactionPage, error) {
	action := policy.ActionListOwnTransactions
	if adminScope {
		action = policy.ActionListAllTransactions
	}
	if err := s.Authorize(ctx, caller, action, policy.Authenticate(caller.Identity)); err != nil {
		return nil, err
	}
	requested, err := toFilter(params)
	if err != nil {
		return nil, err
	}
	filter, decision := policy.ScopeTransactionFilter(caller.Identity, requested, adminScope)
	if err := s.Authorize(ctx, caller, action, decision); err != nil {
		return nil, err
	}

	txns, nextToken, err := s.txnRepo.ListTransactions(ctx, filter)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return &domain.TransactionPage{
		Transactions: txns,
		Summary:      accounting.Summarize(txns),
		NextToken:    nextToken,
	}, nil
}

func (s *transactionService) ListMine(ctx context.Context, caller domain.Caller, params dto.ListTransactionsParams) (*domain.TransactionPage, error) {
	return s.list(ctx, caller, params, false)
}

func (s *transactionService) ListAll(ctx context.Context, caller domain.Caller, params dto.ListTransactionsParams) (*domain.TransactionPage, error) {
	return s.list(ctx, caller, params, true)
}

// loadAuthorized authenticates the caller, confirms the transaction exists and then checks ownership.
func (s *transactionService) loadAuthorized(ctx context.Context, caller domain.Caller, action policy.Action, transactionID string) (*domain.Transaction, error) {
	if err := s.Authorize(ctx, caller, action, policy.Authenticate(caller.Identity)); err != nil {
		return nil, err
	}
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("transaction not found")
		}
		s.LogError(ctx, err, "Failed to load transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to load transaction: %w", err)
	}
	if err := s.Authorize(ctx, caller, action, policy.Evaluate(caller.Identity, action, policy.OwnedBy(txn.UserID))); err != nil {
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) Get(ctx context.Context, caller domain.Caller, transactionID string) (*domain.Transaction, error) {
	return s.loadAuthorized(ctx, caller, policy.ActionReadTransaction, transactionID)
}

func (s *transactionService) Create(ctx context.Context, caller domain.Caller, req dto.TransactionRequest) (*domain.Transaction, error) {
	if err := s.Authorize(ctx, caller, policy.ActionCreateTransaction, policy.Evaluate(caller.Identity, policy.ActionCreateTransaction, policy.Resource{})); err != nil {
		return nil, err
	}
	txn, err := parseTransactionRequest(req)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	txn.TransactionID = uuid.NewString()
	txn.UserID = caller.UserID()
	txn.Timestamps = domain.Timestamps{CreatedAt: now, UpdatedAt: now}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction")
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.RecordActivity(ctx, txn.UserID, caller.IPAddress, domain.ActionCreateTransaction, describe("Created", txn))
	return &txn, nil
}

func (s *transactionService) Update(ctx context.Context, caller domain.Caller, transactionID string, req dto.TransactionRequest) (*domain.Transaction, error) {
	existing, err := s.loadAuthorized(ctx, caller, policy.ActionUpdateTransaction, transactionID)
	if err != nil {
		return nil, err
	}
	changes, err := parseTransactionRequest(req)
	if err != nil {
		return nil, err
	}

	updated := *existing
	updated.Date = changes.Date
	updated.Type = changes.Type
	updated.Category = changes.Category
	updated.Description = changes.Description
	updated.Amount = changes.Amount
	updated.UpdatedAt = time.Now().UTC()

	if err := s.txnRepo.UpdateTransaction(ctx, updated); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("transaction not found")
		}
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.RecordActivity(ctx, caller.UserID(), caller.IPAddress, domain.ActionUpdateTransaction, describe("Updated", updated))
	return &updated, nil
}

func (s *transactionService) Delete(ctx context.Context, caller domain.Caller, transactionID string) error {
	existing, err := s.loadAuthorized(ctx, caller, policy.ActionDeleteTransaction, transactionID)
	if err != nil {
		return err
	}
	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("transaction not found")
		}
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.RecordActivity(ctx, caller.UserID(), caller.IPAddress, domain.ActionDeleteTransaction, describe("Deleted", *existing))
	return nil
}

// describe renders e.g. "Created outflow: Food - Rp 50.000".
func describe(verb string, txn domain.Transaction) string {
	return fmt.Sprintf("%s %s: %s - %s", verb, txn.Type, txn.Category, utils.FormatRupiah(txn.Amount))
}

func (s *transactionService) MySummary(ctx context.Context, caller domain.Caller) (*domain.Summary, error) {
	if err := s.Authorize(ctx, caller, policy.ActionReadOwnSummary, policy.Evaluate(caller.Identity, policy.ActionReadOwnSummary, policy.Resource{})); err != nil {
		return nil, err
	}
	summary, err := s.txnRepo.SummaryByUser(ctx, caller.UserID())
	if err != nil {
		s.LogError(ctx, err, "Failed to compute summary")
		return nil, fmt.Errorf("failed to compute summary: %w", err)
	}
	return &summary, nil
}

func (s *transactionService) MyCategorySummary(ctx context.Context, caller domain.Caller) ([]domain.CategorySummary, error) {
	if err := s.Authorize(ctx, caller, policy.ActionReadOwnSummary, policy.Evaluate(caller.Identity, policy.ActionReadOwnSummary, policy.Resource{})); err != nil {
		return nil, err
	}
	summary, err := s.txnRepo.CategorySummaryByUser(ctx, caller.UserID())
	if err != nil {
		s.LogError(ctx, err, "Failed to compute category summary")
		return nil, fmt.Errorf("failed to compute category summary: %w", err)
	}
	return summary, nil
}

func (s *transactionService) GlobalSummary(ctx context.Context, caller domain.Caller) (*domain.GlobalSummary, error) {
	if err := s.Authorize(ctx, caller, policy.ActionReadGlobalSummary, policy.Evaluate(caller.Identity, policy.ActionReadGlobalSummary, policy.Resource{})); err != nil {
		return nil, err
	}
	summary, err := s.txnRepo.GlobalSummary(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute global summary")
		return nil, fmt.Errorf("failed to compute global summary: %w", err)
	}
	return &summary, nil
}

func (s *transactionService) DailySummary(ctx context.Context, caller domain.Caller, days int) ([]domain.DailySummary, error) {
	if err := s.Authorize(ctx, caller, policy.ActionReadDailySummary, policy.Evaluate(caller.Identity, policy.ActionReadDailySummary, policy.Resource{})); err != nil {
		return nil, err
	}
	if days == 0 {
		days = DefaultDailySummaryDays
	}
	if days < 0 || days > MaxDailySummaryDays {
		return nil, apperrors.NewValidationError("days", fmt.Sprintf("days must be between 1 and %d", MaxDailySummaryDays))
	}
	summary, err := s.txnRepo.DailySummary(ctx, days)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute daily summary")
		return nil, fmt.Errorf("failed to compute daily summary: %w", err)
	}
	return summary, nil
}
