package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	Inflow  TransactionType = "inflow"
	Outflow TransactionType = "outflow"
)

// Legacy labels still sent by older clients.
const (
	legacyInflow  = "pemasukan"
	legacyOutflow = "pengeluaran"
)

// ParseTransactionType accepts the canonical tags and their legacy labels.
func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Inflow), legacyInflow:
		return Inflow, nil
	case string(Outflow), legacyOutflow:
		return Outflow, nil
	default:
		return "", fmt.Errorf("type must be %q or %q", Inflow, Outflow)
	}
}

// Transaction is a single income or expense entry owned by one user.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	UserID        string          `json:"userID"` // owner, immutable after creation
	Date          time.Time       `json:"date"`
	Type          TransactionType `json:"type"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"` // always > 0
	Timestamps

	// Populated on admin listings only.
	OwnerUsername string `json:"username,omitempty"`
	OwnerFullName string `json:"fullName,omitempty"`
}
