package models

import "time"

// Withdrawal statuses. The Spanish literals are the wire values the
// portal has always stored, so they stay as-is.
const (
	WithdrawalStatusPending   = "Pendiente"
	WithdrawalStatusCompleted = "Completado"
	WithdrawalStatusRejected  = "Rechazado"
)

const (
	WithdrawalMethodWallet     = "Wallet"
	WithdrawalMethodBinancePay = "Binance Pay"
)

// Withdrawal is a payout request. The amount is debited from the user's
// balance when the request is created (reservation), so a pending row
// always has its funds already held.
type Withdrawal struct {
	ID          uint      `gorm:"primarykey"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
	UserID      uint     `gorm:"index;not null"`
	UserEmail   string   `gorm:"type:varchar(255);not null"`
	Amount      float64  `gorm:"type:decimal(20,8);not null"`
	Currency    Currency `gorm:"type:varchar(8);not null"`
	Method      string   `gorm:"type:varchar(32);not null"`
	AddressOrID string   `gorm:"type:varchar(128);not null"`
	Status      string   `gorm:"type:varchar(16);index;default:'Pendiente'"`
	CompletedAt *time.Time
	CompletedBy uint `gorm:"default:0"`
}
