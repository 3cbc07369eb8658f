package services

import (
	"fmt"
	"maxios-backend/internal/database"
	"maxios-backend/internal/models"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// PayoutResult reports one payout run. Like mass balance updates, a run
// is partial-failure tolerant: one user's failed credit never aborts the
// rest of the batch.
type PayoutResult struct {
	Credited int     `json:"credited"`
	Failed   int     `json:"failed"`
	TotalUSD float64 `json:"totalUsd"`
}

type minerEarnings struct {
	UserID   uint
	Hashrate float64
}

// RunDailyPayout credits every user with active workers their estimated
// daily earnings (hashrate x payment rate, minus pool commission) and
// records a payment row per credit.
func RunDailyPayout() (PayoutResult, error) {
	var result PayoutResult

	poolCfg, err := GetPoolConfig()
	if err != nil {
		return result, err
	}
	if poolCfg.PaymentRate <= 0 {
		return result, nil
	}

	var rows []minerEarnings
	err = database.DB.Model(&models.Miner{}).
		Select("user_id, COALESCE(SUM(current_hashrate), 0) as hashrate").
		Where("status = ?", models.MinerStatusActive).
		Group("user_id").
		Scan(&rows).Error
	if err != nil {
		return result, err
	}

	for _, row := range rows {
		earnings := row.Hashrate * poolCfg.PaymentRate * (1 - poolCfg.Commission/100)
		if earnings <= 0 {
			continue
		}

		_, err := AddBalance(row.UserID, models.CurrencyUSD, earnings, BalanceMeta{
			Reason:   fmt.Sprintf("Daily mining payout for %.2f TH/s", row.Hashrate),
			Operator: "system",
			Type:     models.TransactionTypeMiningPayout,
		})
		if err != nil {
			result.Failed++
			zap.L().Warn("payout credit failed",
				zap.Uint("user_id", row.UserID),
				zap.Error(err))
			continue
		}

		payment := models.Payment{
			UserID:   row.UserID,
			Amount:   earnings,
			Currency: models.CurrencyUSD,
			Hashrate: row.Hashrate,
		}
		if err := database.DB.Create(&payment).Error; err != nil {
			// The balance credit stands; only the history row is missing.
			zap.L().Error("payout recorded on ledger but payment row failed",
				zap.Uint("user_id", row.UserID),
				zap.Error(err))
		}

		result.Credited++
		result.TotalUSD += earnings
	}

	PublishChange("payments", "payout_run", 0, 0)
	return result, nil
}

// StartPayoutScheduler runs RunDailyPayout on the given cron spec.
func StartPayoutScheduler(spec string) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		start := time.Now()
		result, err := RunDailyPayout()
		if err != nil {
			zap.L().Error("daily payout run failed", zap.Error(err))
			return
		}
		zap.L().Info("daily payout run finished",
			zap.Int("credited", result.Credited),
			zap.Int("failed", result.Failed),
			zap.Float64("total_usd", result.TotalUSD),
			zap.Duration("took", time.Since(start)))
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}
