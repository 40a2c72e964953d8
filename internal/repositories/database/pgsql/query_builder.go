package pgsql

import (
	"fmt"
	"strings"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/utils/pagination"
)

// whereBuilder accumulates AND-ed conditions with positional pgx placeholders.
type whereBuilder struct {
	conds []string
	args  []any
}

// add appends a condition; each %d in cond receives the placeholder index of the matching arg.
func (b *whereBuilder) add(cond string, args ...any) {
	idx := make([]any, len(args))
	for i, a := range args {
		b.args = append(b.args, a)
		idx[i] = len(b.args)
	}
	b.conds = append(b.conds, fmt.Sprintf(cond, idx...))
}

// arg registers a bare argument and returns its placeholder.
func (b *whereBuilder) arg(a any) string {
	b.args = append(b.args, a)
	return fmt.Sprintf("$%d", len(b.args))
}

func (b *whereBuilder) clause() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

const transactionSelect = `
	SELECT t.transaction_id, t.user_id, t.date, t.type, t.category, t.description, t.amount,
	       t.created_at, t.updated_at, u.username, u.full_name
	FROM transactions t
	LEFT JOIN users u ON u.user_id = t.user_id`

// buildTransactionListQuery turns a filter into SQL. Only present fields constrain the result.
// When a limit is set one extra row is fetched so the caller can tell whether another page exists.
func buildTransactionListQuery(f domain.TransactionFilter) (string, []any, error) {
	var b whereBuilder
	if f.OwnerID != nil {
		b.add("t.user_id = $%d", *f.OwnerID)
	}
	if f.Type != nil {
		b.add("t.type = $%d", string(*f.Type))
	}
	if f.Category != nil {
		b.add("t.category = $%d", *f.Category)
	}
	if f.DateFrom != nil {
		b.add("t.date >= $%d", *f.DateFrom)
	}
	if f.DateTo != nil {
		b.add("t.date <= $%d", *f.DateTo)
	}
	if f.NextToken != nil && *f.NextToken != "" {
		last, err := pagination.DecodeCursor(*f.NextToken)
		if err != nil {
			return "", nil, apperrors.NewBadRequestError("invalid nextToken")
		}
		b.add("(t.date, t.created_at, t.transaction_id) < ($%d, $%d, $%d)", last.Date, last.CreatedAt, last.ID)
	}

	query := transactionSelect + b.clause() + " ORDER BY t.date DESC, t.created_at DESC, t.transaction_id DESC"
	if f.Limit > 0 {
		query += " LIMIT " + b.arg(f.Limit+1)
	}
	return query, b.args, nil
}

const activitySelect = `
	SELECT a.activity_id, a.user_id, a.action, a.description, a.ip_address, a.created_at,
	       u.username, u.full_name
	FROM activity_logs a
	LEFT JOIN users u ON u.user_id = a.user_id`

// buildActivityListQuery turns an activity filter into SQL, newest first.
// Date bounds compare calendar days of created_at.
func buildActivityListQuery(f domain.ActivityFilter) (string, []any) {
	var b whereBuilder
	if f.UserID != nil {
		b.add("a.user_id = $%d", *f.UserID)
	}
	if f.Action != nil {
		b.add("a.action = $%d", string(*f.Action))
	}
	if f.DateFrom != nil {
		b.add("a.created_at::date >= $%d", *f.DateFrom)
	}
	if f.DateTo != nil {
		b.add("a.created_at::date <= $%d", *f.DateTo)
	}

	query := activitySelect + b.clause() + " ORDER BY a.created_at DESC"
	if f.Limit > 0 {
		query += " LIMIT " + b.arg(f.Limit)
	}
	return query, b.args
}
