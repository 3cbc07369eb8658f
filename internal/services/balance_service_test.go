package services

import (
	"maxios-backend/internal/database"
	"maxios-backend/internal/models"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	db.Migrator().DropTable(
		&models.User{},
		&models.Transaction{},
		&models.Withdrawal{},
		&models.Miner{},
		&models.Payment{},
		&models.ContactRequest{},
		&models.News{},
		&models.ArbitragePool{},
		&models.Setting{},
	)
	err = db.AutoMigrate(
		&models.User{},
		&models.Transaction{},
		&models.Withdrawal{},
		&models.Miner{},
		&models.Payment{},
		&models.ContactRequest{},
		&models.News{},
		&models.ArbitragePool{},
		&models.Setting{},
	)
	if err != nil {
		panic("failed to migrate database")
	}

	database.DB = db
}

func setupTestRedis() *miniredis.Miniredis {
	mr, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	database.RedisClient = redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	return mr
}

func seedUser(balanceUSD, balanceBTC float64) models.User {
	user := models.User{
		Email:      "miner@example.com",
		Password:   "hashedpassword",
		Role:       "user",
		Version:    1,
		BalanceUSD: balanceUSD,
		BalanceBTC: balanceBTC,
	}
	database.DB.Create(&user)
	return user
}

func testMeta() BalanceMeta {
	return BalanceMeta{
		Reason:     "test adjustment",
		Operator:   "admin@example.com",
		OperatorID: 99,
		Type:       models.TransactionTypeAdminAdjust,
	}
}

func TestAddBalance(t *testing.T) {
	setupTestDB()
	mr := setupTestRedis()
	defer mr.Close()

	user := seedUser(100, 0)

	updated, err := AddBalance(user.ID, models.CurrencyUSD, 25.5, testMeta())
	assert.NoError(t, err)
	assert.Equal(t, 125.5, updated.BalanceUSD)

	// Ledger row records before and after
	var trans models.Transaction
	assert.NoError(t, database.DB.Where("user_id = ?", user.ID).First(&trans).Error)
	assert.Equal(t, models.CurrencyUSD, trans.Currency)
	assert.Equal(t, 25.5, trans.Amount)
	assert.Equal(t, 100.0, trans.BalanceBefore)
	assert.Equal(t, 125.5, trans.BalanceAfter)
	assert.Equal(t, "admin@example.com", trans.Operator)
	assert.NotEmpty(t, trans.Hash)

	// Other currency balances untouched
	var fresh models.User
	database.DB.First(&fresh, user.ID)
	assert.Equal(t, 0.0, fresh.BalanceBTC)
}

func TestAddBalanceRejectsInvalidInput(t *testing.T) {
	setupTestDB()

	user := seedUser(100, 0)

	_, err := AddBalance(user.ID, models.CurrencyUSD, 0, testMeta())
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = AddBalance(user.ID, models.CurrencyUSD, -5, testMeta())
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = AddBalance(user.ID, models.Currency("EUR"), 5, testMeta())
	assert.ErrorIs(t, err, ErrInvalidCurrency)

	// Nothing written
	var count int64
	database.DB.Model(&models.Transaction{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestSubtractBalanceInsufficient(t *testing.T) {
	setupTestDB()

	user := seedUser(10, 0)

	_, err := SubtractBalance(user.ID, models.CurrencyUSD, 10.01, testMeta())
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	// Balance unchanged and no ledger entry
	var fresh models.User
	database.DB.First(&fresh, user.ID)
	assert.Equal(t, 10.0, fresh.BalanceUSD)

	var count int64
	database.DB.Model(&models.Transaction{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestSubtractBalanceToExactlyZero(t *testing.T) {
	setupTestDB()

	user := seedUser(10, 0)

	updated, err := SubtractBalance(user.ID, models.CurrencyUSD, 10, testMeta())
	assert.NoError(t, err)
	assert.Equal(t, 0.0, updated.BalanceUSD)
}

func TestMassUpdateBalancesPartialFailure(t *testing.T) {
	setupTestDB()

	rich := seedUser(100, 0)
	poor := models.User{Email: "poor@example.com", Password: "x", Role: "user", Version: 1, BalanceUSD: 1}
	database.DB.Create(&poor)

	result, err := MassUpdateBalances([]uint{rich.ID, poor.ID}, models.CurrencyUSD, MassOpSubtract, 50, testMeta())
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 1, result.Failed)

	var freshRich, freshPoor models.User
	database.DB.First(&freshRich, rich.ID)
	database.DB.First(&freshPoor, poor.ID)
	assert.Equal(t, 50.0, freshRich.BalanceUSD)
	assert.Equal(t, 1.0, freshPoor.BalanceUSD) // skipped, untouched
}

func TestMassUpdateBalancesReset(t *testing.T) {
	setupTestDB()

	a := seedUser(42, 0.5)
	b := models.User{Email: "b@example.com", Password: "x", Role: "user", Version: 1, BalanceUSD: 7}
	database.DB.Create(&b)

	result, err := MassUpdateBalances([]uint{a.ID, b.ID}, models.CurrencyUSD, MassOpReset, 0, testMeta())
	assert.NoError(t, err)
	assert.Equal(t, 2, result.Updated)
	assert.Equal(t, 0, result.Failed)

	var freshA, freshB models.User
	database.DB.First(&freshA, a.ID)
	database.DB.First(&freshB, b.ID)
	assert.Equal(t, 0.0, freshA.BalanceUSD)
	assert.Equal(t, 0.0, freshB.BalanceUSD)
	// Reset only touches the requested currency
	assert.Equal(t, 0.5, freshA.BalanceBTC)

	// Write-off is on the ledger with the negative prior balance
	var trans models.Transaction
	assert.NoError(t, database.DB.Where("user_id = ?", a.ID).First(&trans).Error)
	assert.Equal(t, -42.0, trans.Amount)
	assert.Equal(t, 0.0, trans.BalanceAfter)
}

func TestMassUpdateBalancesUnknownOperation(t *testing.T) {
	setupTestDB()

	user := seedUser(10, 0)

	_, err := MassUpdateBalances([]uint{user.ID}, models.CurrencyUSD, "double", 1, testMeta())
	assert.ErrorIs(t, err, ErrUnknownOperation)
}

func TestTransactionHashIsStable(t *testing.T) {
	trans := models.Transaction{
		UserID:        1,
		Currency:      models.CurrencyBTC,
		Amount:        0.005,
		BalanceBefore: 0.01,
		BalanceAfter:  0.005,
		Reason:        "Withdrawal reservation",
		Operator:      "miner@example.com",
		Type:          models.TransactionTypeWithdrawReserve,
	}

	h1 := trans.GenerateHash("secret")
	h2 := trans.GenerateHash("secret")
	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, trans.GenerateHash("other-secret"))

	trans.Amount = 0.006
	assert.NotEqual(t, h1, trans.GenerateHash("secret"))
}
