package models

import "time"

type User struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	Role      string `gorm:"not null;default:'user'"`
	Version   int    `gorm:"default:1"`

	BalanceUSD  float64 `gorm:"column:balance_usd;type:decimal(20,8);default:0"`
	BalanceBTC  float64 `gorm:"column:balance_btc;type:decimal(20,8);default:0"`
	BalanceLTC  float64 `gorm:"column:balance_ltc;type:decimal(20,8);default:0"`
	BalanceDOGE float64 `gorm:"column:balance_doge;type:decimal(20,8);default:0"`

	BitcoinAddress  string `gorm:"type:varchar(128)"`
	LitecoinAddress string `gorm:"type:varchar(128)"`
	DogeAddress     string `gorm:"type:varchar(128)"`
	BinanceID       string `gorm:"type:varchar(128)"`

	ReceivePaymentNotifications bool `gorm:"default:false"`
	ReceiveLoginAlerts          bool `gorm:"default:false"`
	TwoFactorEnabled            bool `gorm:"default:false"`
}

// Balance returns the user's balance for the given currency.
func (u *User) Balance(c Currency) float64 {
	switch c {
	case CurrencyUSD:
		return u.BalanceUSD
	case CurrencyBTC:
		return u.BalanceBTC
	case CurrencyLTC:
		return u.BalanceLTC
	case CurrencyDOGE:
		return u.BalanceDOGE
	}
	return 0
}

// SetBalance assigns the balance for the given currency.
func (u *User) SetBalance(c Currency, v float64) {
	switch c {
	case CurrencyUSD:
		u.BalanceUSD = v
	case CurrencyBTC:
		u.BalanceBTC = v
	case CurrencyLTC:
		u.BalanceLTC = v
	case CurrencyDOGE:
		u.BalanceDOGE = v
	}
}
