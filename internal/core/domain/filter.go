package domain

import "time"

// TransactionFilter is the explicit form of a transaction query.
// Nil fields impose no constraint; present fields are combined with AND.
// OwnerID is only honoured for admin-scoped queries.
type TransactionFilter struct {
	Type      *TransactionType
	Category  *string
	DateFrom  *time.Time
	DateTo    *time.Time
	OwnerID   *string
	Limit     int
	NextToken *string
}

// ActivityFilter narrows an activity log listing.
type ActivityFilter struct {
	UserID   *string
	Action   *ActivityAction
	DateFrom *time.Time
	DateTo   *time.Time
	Limit    int
}

// TransactionPage is one page of a transaction listing with the aggregates of that page.
type TransactionPage struct {
	Transactions []Transaction
	Summary      Summary
	NextToken    *string
}
