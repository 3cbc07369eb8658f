package services

import (
	"errors"
	"maxios-backend/internal/database"
	"maxios-backend/internal/models"
)

var (
	ErrMinerNotFound     = errors.New("miner not found")
	ErrInvalidWorkerName = errors.New("worker name must not be empty")
	ErrInvalidHashrate   = errors.New("hashrate must not be negative")
)

// AddMiner registers a worker for the user.
func AddMiner(userID uint, workerName string, hashrate float64) (*models.Miner, error) {
	if workerName == "" {
		return nil, ErrInvalidWorkerName
	}
	if hashrate < 0 {
		return nil, ErrInvalidHashrate
	}

	miner := &models.Miner{
		UserID:          userID,
		WorkerName:      workerName,
		CurrentHashrate: hashrate,
		Status:          models.MinerStatusActive,
	}
	if err := database.DB.Create(miner).Error; err != nil {
		return nil, err
	}

	PublishChange("miners", "created", miner.ID, userID)
	return miner, nil
}

func FindMinersByUser(userID uint) ([]models.Miner, error) {
	var miners []models.Miner
	err := database.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&miners).Error
	return miners, err
}

// DeleteMiner removes a worker. The delete is scoped to the owner, so a
// user can never delete someone else's miner.
func DeleteMiner(id, userID uint) error {
	result := database.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Miner{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMinerNotFound
	}

	PublishChange("miners", "deleted", id, userID)
	return nil
}

// PoolStats aggregates the public pool figures.
type PoolStats struct {
	TotalHashrate float64 `json:"totalHashrate"` // TH/s
	ActiveMiners  int64   `json:"activeMiners"`
	Users         int64   `json:"users"`
	Commission    float64 `json:"commission"`
	PaymentRate   float64 `json:"paymentRate"`
	BTCToUSDRate  float64 `json:"btcToUsdRate"`
}

func GetPoolStats() (PoolStats, error) {
	var stats PoolStats

	row := database.DB.Model(&models.Miner{}).
		Where("status = ?", models.MinerStatusActive).
		Select("COALESCE(SUM(current_hashrate), 0)").
		Row()
	if err := row.Scan(&stats.TotalHashrate); err != nil {
		return stats, err
	}

	if err := database.DB.Model(&models.Miner{}).
		Where("status = ?", models.MinerStatusActive).
		Count(&stats.ActiveMiners).Error; err != nil {
		return stats, err
	}

	if err := database.DB.Model(&models.User{}).Count(&stats.Users).Error; err != nil {
		return stats, err
	}

	poolCfg, err := GetPoolConfig()
	if err != nil {
		return stats, err
	}
	stats.Commission = poolCfg.Commission
	stats.PaymentRate = poolCfg.PaymentRate
	stats.BTCToUSDRate = poolCfg.BTCToUSDRate

	return stats, nil
}
