package mapping

import (
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/models"
)

func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		UserID:        d.UserID,
		Date:          d.Date,
		Type:          string(d.Type),
		Category:      d.Category,
		Description:   d.Description,
		Amount:        d.Amount,
		Timestamps:    ToModelTimestamps(d.Timestamps),
	}
}

func ToDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		Date:          m.Date,
		Type:          domain.TransactionType(m.Type),
		Category:      m.Category,
		Description:   m.Description,
		Amount:        m.Amount,
		Timestamps:    ToDomainTimestamps(m.Timestamps),
	}
	if m.OwnerUsername != nil {
		d.OwnerUsername = *m.OwnerUsername
	}
	if m.OwnerFullName != nil {
		d.OwnerFullName = *m.OwnerFullName
	}
	return d
}

func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
