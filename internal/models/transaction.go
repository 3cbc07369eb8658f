package models

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

type TransactionType string

const (
	TransactionTypeAdminAdjust     TransactionType = "admin_adjustment"
	TransactionTypeMassAdjust      TransactionType = "mass_adjustment"
	TransactionTypeWithdrawReserve TransactionType = "withdrawal_reserve"
	TransactionTypeWithdrawRefund  TransactionType = "withdrawal_refund"
	TransactionTypeMiningPayout    TransactionType = "mining_payout"
)

// Transaction is the ledger audit row written for every balance mutation.
type Transaction struct {
	ID            uint            `gorm:"primarykey"`
	CreatedAt     time.Time       `gorm:"precision:3"` // Millisecond precision
	UserID        uint            `gorm:"index;not null"`
	Currency      Currency        `gorm:"type:varchar(8);index;not null"`
	Amount        float64         `gorm:"type:decimal(20,8);not null"`
	BalanceBefore float64         `gorm:"type:decimal(20,8);not null"`
	BalanceAfter  float64         `gorm:"type:decimal(20,8);not null"`
	Reason        string          `gorm:"type:text"`
	Operator      string          `gorm:"type:varchar(100)"` // Email or 'system'
	OperatorID    uint            `gorm:"index;default:0"`   // 0 for system, otherwise UserID
	Type          TransactionType `gorm:"type:varchar(50);index"`
	IPAddress     string          `gorm:"type:varchar(50)"`
	Hash          string          `gorm:"type:varchar(64);default:''"` // HMAC SHA256
}

// GenerateHash generates a tamper-proof hash for the transaction.
func (t *Transaction) GenerateHash(secret string) string {
	data := fmt.Sprintf("%d|%d|%s|%.8f|%.8f|%.8f|%s|%s|%s|%d",
		t.UserID, t.CreatedAt.UnixNano(), t.Currency, t.Amount, t.BalanceBefore, t.BalanceAfter,
		t.Reason, t.Operator, t.Type, t.OperatorID)

	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
