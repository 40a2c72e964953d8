package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/finance_tracker/internal/models"
	"github.com/SscSPs/finance_tracker/internal/utils/mapping"
	"github.com/SscSPs/finance_tracker/internal/utils/pagination"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func scanTransaction(row rowScanner) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.UserID,
		&m.Date,
		&m.Type,
		&m.Category,
		&m.Description,
		&m.Amount,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.OwnerUsername,
		&m.OwnerFullName,
	)
	return m, err
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := transactionSelect + ` WHERE t.transaction_id = $1;`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// ListTransactions retrieves transactions matching the filter using token-based pagination.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, *string, error) {
	query, args, err := buildTransactionListQuery(filter)
	if err != nil {
		return nil, nil, err
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	modelTxns := []models.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		modelTxns = append(modelTxns, m)
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}

	var nextToken *string
	if filter.Limit > 0 && len(modelTxns) > filter.Limit {
		last := modelTxns[filter.Limit-1]
		token := pagination.EncodeCursor(pagination.Cursor{Date: last.Date, CreatedAt: last.CreatedAt, ID: last.TransactionID})
		nextToken = &token
		modelTxns = modelTxns[:filter.Limit]
	}
	return mapping.ToDomainTransactionSlice(modelTxns), nextToken, nil
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (transaction_id, user_id, date, type, category, description, amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.UserID,
		m.Date,
		m.Type,
		m.Category,
		m.Description,
		m.Amount,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		UPDATE transactions
		SET date = $1, type = $2, category = $3, description = $4, amount = $5, updated_at = $6
		WHERE transaction_id = $7;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, m.Date, m.Type, m.Category, m.Description, m.Amount, m.UpdatedAt, m.TransactionID)
	if err != nil {
		if isNoRows(err) {
			return fmt.Errorf("transaction %s not found: %w", txn.TransactionID, apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("transaction %s not found: %w", txn.TransactionID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		if isNoRows(err) {
			return fmt.Errorf("transaction %s not found: %w", transactionID, apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("transaction %s not found: %w", transactionID, apperrors.ErrNotFound)
	}
	return nil
}

const summaryColumns = `
	COALESCE(SUM(amount) FILTER (WHERE type = 'inflow'), 0),
	COALESCE(SUM(amount) FILTER (WHERE type = 'outflow'), 0),
	COUNT(*)`

func (r *PgxTransactionRepository) SummaryByUser(ctx context.Context, userID string) (domain.Summary, error) {
	query := `SELECT ` + summaryColumns + ` FROM transactions WHERE user_id = $1;`
	var s domain.Summary
	if err := r.Pool.QueryRow(ctx, query, userID).Scan(&s.TotalInflow, &s.TotalOutflow, &s.TransactionCount); err != nil {
		return domain.Summary{}, fmt.Errorf("failed to summarize transactions for user %s: %w", userID, err)
	}
	s.Balance = s.TotalInflow.Sub(s.TotalOutflow)
	return s, nil
}

func (r *PgxTransactionRepository) GlobalSummary(ctx context.Context) (domain.GlobalSummary, error) {
	query := `SELECT ` + summaryColumns + `, COUNT(DISTINCT user_id) FROM transactions;`
	var g domain.GlobalSummary
	err := r.Pool.QueryRow(ctx, query).Scan(&g.TotalInflow, &g.TotalOutflow, &g.TransactionCount, &g.TotalUsers)
	if err != nil {
		return domain.GlobalSummary{}, fmt.Errorf("failed to compute global summary: %w", err)
	}
	g.Balance = g.TotalInflow.Sub(g.TotalOutflow)
	return g, nil
}

func (r *PgxTransactionRepository) CategorySummaryByUser(ctx context.Context, userID string) ([]domain.CategorySummary, error) {
	query := `
		SELECT category, type, COUNT(*), SUM(amount) AS total
		FROM transactions
		WHERE user_id = $1
		GROUP BY category, type
		ORDER BY type, total DESC, category;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query category summary: %w", err)
	}
	defer rows.Close()

	out := []domain.CategorySummary{}
	for rows.Next() {
		var c domain.CategorySummary
		var typ string
		if err := rows.Scan(&c.Category, &typ, &c.Count, &c.Total); err != nil {
			return nil, fmt.Errorf("failed to scan category summary row: %w", err)
		}
		c.Type = domain.TransactionType(typ)
		out = append(out, c)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating category summary rows: %w", rows.Err())
	}
	return out, nil
}

func (r *PgxTransactionRepository) DailySummary(ctx context.Context, days int) ([]domain.DailySummary, error) {
	query := `
		SELECT date,
		       COUNT(*),
		       COALESCE(SUM(amount) FILTER (WHERE type = 'inflow'), 0),
		       COALESCE(SUM(amount) FILTER (WHERE type = 'outflow'), 0)
		FROM transactions
		WHERE date >= CURRENT_DATE - make_interval(days => $1)
		GROUP BY date
		ORDER BY date DESC;
	`
	rows, err := r.Pool.Query(ctx, query, days)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily summary: %w", err)
	}
	defer rows.Close()

	out := []domain.DailySummary{}
	for rows.Next() {
		var d domain.DailySummary
		if err := rows.Scan(&d.Date, &d.TransactionCount, &d.Inflow, &d.Outflow); err != nil {
			return nil, fmt.Errorf("failed to scan daily summary row: %w", err)
		}
		out = append(out, d)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating daily summary rows: %w", rows.Err())
	}
	return out, nil
}
