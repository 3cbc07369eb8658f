package services

import (
	"maxios-backend/internal/database"
	"maxios-backend/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPoolStats(t *testing.T) {
	setupTestDB()
	mr := setupTestRedis()
	defer mr.Close()

	user := seedUser(0, 0)

	_, err := AddMiner(user.ID, "rig01", 110)
	assert.NoError(t, err)
	_, err = AddMiner(user.ID, "rig02", 90)
	assert.NoError(t, err)

	inactive := models.Miner{UserID: user.ID, WorkerName: "rig03", CurrentHashrate: 500, Status: models.MinerStatusInactive}
	database.DB.Create(&inactive)

	stats, err := GetPoolStats()
	assert.NoError(t, err)
	assert.Equal(t, 200.0, stats.TotalHashrate)
	assert.Equal(t, int64(2), stats.ActiveMiners)
	assert.Equal(t, int64(1), stats.Users)
}

func TestDeleteMinerScopedToOwner(t *testing.T) {
	setupTestDB()
	mr := setupTestRedis()
	defer mr.Close()

	user := seedUser(0, 0)
	miner, err := AddMiner(user.ID, "rig01", 100)
	assert.NoError(t, err)

	err = DeleteMiner(miner.ID, user.ID+1)
	assert.ErrorIs(t, err, ErrMinerNotFound)

	assert.NoError(t, DeleteMiner(miner.ID, user.ID))
	err = DeleteMiner(miner.ID, user.ID)
	assert.ErrorIs(t, err, ErrMinerNotFound)
}

func TestRunDailyPayout(t *testing.T) {
	setupTestDB()
	mr := setupTestRedis()
	defer mr.Close()

	// Rate 0.06 USD per TH/s per day, 1% commission
	assert.NoError(t, SavePoolConfig(PoolConfig{PaymentRate: 0.06, Commission: 1}))

	user := seedUser(0, 0)
	_, err := AddMiner(user.ID, "rig01", 100)
	assert.NoError(t, err)
	_, err = AddMiner(user.ID, "rig02", 100)
	assert.NoError(t, err)

	// Inactive workers never earn
	database.DB.Create(&models.Miner{UserID: user.ID, WorkerName: "dead", CurrentHashrate: 999, Status: models.MinerStatusInactive})

	result, err := RunDailyPayout()
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Credited)
	assert.Equal(t, 0, result.Failed)

	// 200 TH/s x 0.06 x 0.99 = 11.88 USD
	assert.InDelta(t, 11.88, result.TotalUSD, 1e-9)

	var fresh models.User
	database.DB.First(&fresh, user.ID)
	assert.InDelta(t, 11.88, fresh.BalanceUSD, 1e-9)

	// Payout shows up in the payment history and on the ledger
	var payment models.Payment
	assert.NoError(t, database.DB.Where("user_id = ?", user.ID).First(&payment).Error)
	assert.InDelta(t, 11.88, payment.Amount, 1e-9)
	assert.Equal(t, 200.0, payment.Hashrate)

	var trans models.Transaction
	assert.NoError(t, database.DB.Where("user_id = ? AND type = ?", user.ID, models.TransactionTypeMiningPayout).First(&trans).Error)
}

func TestRunDailyPayoutNoRateConfigured(t *testing.T) {
	setupTestDB()
	mr := setupTestRedis()
	defer mr.Close()

	assert.NoError(t, SavePoolConfig(PoolConfig{PaymentRate: 0}))

	user := seedUser(0, 0)
	_, err := AddMiner(user.ID, "rig01", 100)
	assert.NoError(t, err)

	result, err := RunDailyPayout()
	assert.NoError(t, err)
	assert.Equal(t, 0, result.Credited)

	var fresh models.User
	database.DB.First(&fresh, user.ID)
	assert.Equal(t, 0.0, fresh.BalanceUSD)
}
