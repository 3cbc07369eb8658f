package services

import "math"

// ProfitabilityInput is what the visitor types into the calculator.
type ProfitabilityInput struct {
	Hashrate   float64 `json:"hashrate"`   // TH/s
	PowerWatts float64 `json:"powerWatts"` // W
	CostPerKWH float64 `json:"costPerKWH"` // USD/kWh
}

// ProfitabilityResult holds the estimated earnings over each period.
type ProfitabilityResult struct {
	DailyCoin         float64 `json:"dailyCoin"`
	DailyUSD          float64 `json:"dailyUsd"`
	WeeklyCoin        float64 `json:"weeklyCoin"`
	WeeklyUSD         float64 `json:"weeklyUsd"`
	MonthlyCoin       float64 `json:"monthlyCoin"`
	MonthlyUSD        float64 `json:"monthlyUsd"`
	AnnualCoin        float64 `json:"annualCoin"`
	AnnualUSD         float64 `json:"annualUsd"`
	DailyElectricCost float64 `json:"dailyElectricCost"`
	NetDailyGain      float64 `json:"netDailyGain"`
}

// CalculateProfitability is the closed-form earnings estimate. Fixed-rate
// mode pays a flat USD rate per TH/s per day; dynamic mode derives the
// expected coins per day from network difficulty and applies the pool
// commission. Periods are simple multiples, no compounding.
func CalculateProfitability(in ProfitabilityInput, cfg ProfitabilityConfig) ProfitabilityResult {
	var result ProfitabilityResult

	result.DailyElectricCost = (in.PowerWatts * 24 / 1000) * in.CostPerKWH

	if cfg.UseFixedRate {
		result.DailyUSD = in.Hashrate * cfg.FixedRatePerTHs
		if cfg.BTCPrice > 0 {
			result.DailyCoin = result.DailyUSD / cfg.BTCPrice
		}
	} else {
		coinPerDay := (86400 * in.Hashrate * 1e12) / (cfg.Difficulty * math.Pow(2, 32))
		result.DailyCoin = coinPerDay * (1 - cfg.FixedPoolCommission/100)
		result.DailyUSD = result.DailyCoin * cfg.BTCPrice
	}

	result.WeeklyCoin = result.DailyCoin * 7
	result.WeeklyUSD = result.DailyUSD * 7
	result.MonthlyCoin = result.DailyCoin * 30
	result.MonthlyUSD = result.DailyUSD * 30
	result.AnnualCoin = result.DailyCoin * 365
	result.AnnualUSD = result.DailyUSD * 365

	result.NetDailyGain = result.DailyUSD - result.DailyElectricCost

	return result
}

// EstimateProfitability runs the calculator with the operator-configured
// parameters.
func EstimateProfitability(in ProfitabilityInput) (ProfitabilityResult, error) {
	cfg, err := GetProfitabilityConfig()
	if err != nil {
		return ProfitabilityResult{}, err
	}
	return CalculateProfitability(in, cfg), nil
}
