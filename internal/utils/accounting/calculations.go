// Package accounting holds the pure aggregation functions over transaction sets.
// All arithmetic is done in decimal; no function here returns an error for an empty input.
package accounting

import (
	"errors"
	"fmt"
	"sort"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedAmount returns the amount with its effect on the balance: inflow positive, outflow negative.
func SignedAmount(txn domain.Transaction) (decimal.Decimal, error) {
	switch txn.Type {
	case domain.Inflow:
		return txn.Amount, nil
	case domain.Outflow:
		return txn.Amount.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown transaction type '%s' for transaction ID %s", txn.Type, txn.TransactionID)
	}
}

// MaxAmount is the smallest value that no longer fits the NUMERIC(15,2) amount column.
var MaxAmount = decimal.New(1, 13)

var (
	ErrAmountNotPositive = errors.New("amount must be greater than 0")
	ErrAmountTooLarge    = errors.New("amount must be less than 10000000000000")
)

// ValidateAmount checks that an amount, already rounded to cents, is strictly positive
// and fits the amount column.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrAmountNotPositive
	}
	if amount.GreaterThanOrEqual(MaxAmount) {
		return ErrAmountTooLarge
	}
	return nil
}

// EmptySummary is the aggregate of no transactions.
func EmptySummary() domain.Summary {
	return domain.Summary{
		TotalInflow:  decimal.Zero,
		TotalOutflow: decimal.Zero,
		Balance:      decimal.Zero,
	}
}

// Summarize totals inflow and outflow and derives the balance as inflow minus outflow.
// Rows with an unknown type are counted but contribute nothing.
func Summarize(txns []domain.Transaction) domain.Summary {
	s := EmptySummary()
	for _, txn := range txns {
		switch txn.Type {
		case domain.Inflow:
			s.TotalInflow = s.TotalInflow.Add(txn.Amount)
		case domain.Outflow:
			s.TotalOutflow = s.TotalOutflow.Add(txn.Amount)
		}
		s.TransactionCount++
	}
	s.Balance = s.TotalInflow.Sub(s.TotalOutflow)
	return s
}

type categoryKey struct {
	category string
	txnType  domain.TransactionType
}

// SummarizeByCategory groups by (category, type), ordered by type, then total descending,
// then category name so that ties are stable.
func SummarizeByCategory(txns []domain.Transaction) []domain.CategorySummary {
	buckets := make(map[categoryKey]*domain.CategorySummary)
	for _, txn := range txns {
		k := categoryKey{category: txn.Category, txnType: txn.Type}
		b, ok := buckets[k]
		if !ok {
			b = &domain.CategorySummary{Category: txn.Category, Type: txn.Type, Total: decimal.Zero}
			buckets[k] = b
		}
		b.Count++
		b.Total = b.Total.Add(txn.Amount)
	}

	out := make([]domain.CategorySummary, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Type != out[j].Type {
			return out[i].Type < out[j].Type
		}
		if c := out[i].Total.Cmp(out[j].Total); c != 0 {
			return c > 0
		}
		return out[i].Category < out[j].Category
	})
	return out
}
