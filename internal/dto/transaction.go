package dto

import (
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionRequest is the body of create and update. Updates replace every mutable field.
type TransactionRequest struct {
	Date        string           `json:"date" validate:"required,datetime=2006-01-02"`
	Type        string           `json:"type" validate:"required,oneof=inflow outflow pemasukan pengeluaran"`
	Category    string           `json:"category" validate:"required,max=100"`
	Description string           `json:"description" validate:"max=1000"`
	Amount      *decimal.Decimal `json:"amount" validate:"required" swaggertype:"number"`
}

// ListTransactionsParams are the query parameters of the transaction listings.
// UserID is only honoured on the admin listing.
type ListTransactionsParams struct {
	Type      string `form:"type" validate:"omitempty,oneof=inflow outflow pemasukan pengeluaran"`
	Category  string `form:"category" validate:"omitempty,max=100"`
	StartDate string `form:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"endDate" validate:"omitempty,datetime=2006-01-02"`
	UserID    string `form:"userId" validate:"omitempty,uuid"`
	Limit     int    `form:"limit" validate:"omitempty,min=0"`
	NextToken string `form:"nextToken"`
}

// DailySummaryParams is the query of the daily summary endpoints.
type DailySummaryParams struct {
	Days int `form:"days" validate:"omitempty,min=1,max=366"`
}

type TransactionResponse struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	Date          string          `json:"date"`
	Type          string          `json:"type"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"number"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	OwnerUsername string          `json:"username,omitempty"`
	OwnerFullName string          `json:"fullName,omitempty"`
}

func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            t.TransactionID,
		UserID:        t.UserID,
		Date:          t.Date.Format(domain.DateLayout),
		Type:          string(t.Type),
		Category:      t.Category,
		Description:   t.Description,
		Amount:        t.Amount,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
		OwnerUsername: t.OwnerUsername,
		OwnerFullName: t.OwnerFullName,
	}
}

func ToTransactionResponseList(txns []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		out[i] = ToTransactionResponse(t)
	}
	return out
}

// TransactionListResponse carries a page of transactions and the aggregates of that page.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Summary      SummaryResponse       `json:"summary"`
}

func ToTransactionListResponse(p *domain.TransactionPage) TransactionListResponse {
	return TransactionListResponse{
		Transactions: ToTransactionResponseList(p.Transactions),
		Summary:      ToSummaryResponse(p.Summary),
	}
}
