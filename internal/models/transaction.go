package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the transactions table row. OwnerUsername and OwnerFullName
// are only filled by queries that join users.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	UserID        string          `db:"user_id"`
	Date          time.Time       `db:"date"`
	Type          string          `db:"type"`
	Category      string          `db:"category"`
	Description   string          `db:"description"`
	Amount        decimal.Decimal `db:"amount"`
	Timestamps
	OwnerUsername *string `db:"username"`
	OwnerFullName *string `db:"full_name"`
}
