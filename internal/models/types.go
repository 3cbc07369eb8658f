package models

// Currency identifies one of the per-user balance buckets.
type Currency string

const (
	CurrencyUSD  Currency = "USD"
	CurrencyBTC  Currency = "BTC"
	CurrencyLTC  Currency = "LTC"
	CurrencyDOGE Currency = "DOGE"
)

// Currencies lists every supported balance currency.
var Currencies = []Currency{CurrencyUSD, CurrencyBTC, CurrencyLTC, CurrencyDOGE}

// Valid reports whether c is a supported currency.
func (c Currency) Valid() bool {
	switch c {
	case CurrencyUSD, CurrencyBTC, CurrencyLTC, CurrencyDOGE:
		return true
	}
	return false
}

// BalanceColumn returns the users table column holding the balance for c.
func (c Currency) BalanceColumn() string {
	switch c {
	case CurrencyUSD:
		return "balance_usd"
	case CurrencyBTC:
		return "balance_btc"
	case CurrencyLTC:
		return "balance_ltc"
	case CurrencyDOGE:
		return "balance_doge"
	}
	return ""
}
