package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"maxios-backend/internal/database"
	"maxios-backend/internal/models"
	"time"
)

// TransactionFilter defines criteria for filtering ledger entries
type TransactionFilter struct {
	UserID    *uint
	Currency  *models.Currency
	Type      *models.TransactionType
	StartTime *time.Time
	EndTime   *time.Time
	MinAmount *float64
	MaxAmount *float64
	Page      int
	Limit     int
}

// FindTransactions retrieves a paginated list of ledger entries with filtering
func FindTransactions(filter TransactionFilter) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	query := database.DB.Model(&models.Transaction{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Currency != nil {
		query = query.Where("currency = ?", *filter.Currency)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}
	if filter.StartTime != nil {
		query = query.Where("created_at >= ?", *filter.StartTime)
	}
	if filter.EndTime != nil {
		query = query.Where("created_at <= ?", *filter.EndTime)
	}
	if filter.MinAmount != nil {
		query = query.Where("amount >= ?", *filter.MinAmount)
	}
	if filter.MaxAmount != nil {
		query = query.Where("amount <= ?", *filter.MaxAmount)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := query.Order("created_at desc").Limit(filter.Limit).Offset(offset).Find(&transactions).Error; err != nil {
		return nil, 0, err
	}

	return transactions, total, nil
}

// GenerateTransactionCSV generates a CSV file content for ledger entries
func GenerateTransactionCSV(transactions []models.Transaction) ([]byte, error) {
	b := &bytes.Buffer{}
	w := csv.NewWriter(b)

	// Write header
	header := []string{
		"ID", "Time", "User ID", "Type", "Currency", "Amount",
		"Balance Before", "Balance After", "Reason",
		"Operator", "IP Address", "Hash",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	// Write data
	for _, t := range transactions {
		record := []string{
			fmt.Sprintf("%d", t.ID),
			t.CreatedAt.Format(time.RFC3339Nano),
			fmt.Sprintf("%d", t.UserID),
			string(t.Type),
			string(t.Currency),
			fmt.Sprintf("%.8f", t.Amount),
			fmt.Sprintf("%.8f", t.BalanceBefore),
			fmt.Sprintf("%.8f", t.BalanceAfter),
			t.Reason,
			t.Operator,
			t.IPAddress,
			t.Hash,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}
