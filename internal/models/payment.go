package models

import "time"

// Payment is one mining payout credited to a user by the daily payout run.
type Payment struct {
	ID        uint      `gorm:"primarykey"`
	CreatedAt time.Time `gorm:"index"`
	UserID    uint      `gorm:"index;not null"`
	Amount    float64   `gorm:"type:decimal(20,8);not null"`
	Currency  Currency  `gorm:"type:varchar(8);not null"`
	Hashrate  float64   `gorm:"type:decimal(20,2);default:0"` // TH/s credited for
}
