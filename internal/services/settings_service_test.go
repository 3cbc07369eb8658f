package services

import (
	"maxios-backend/internal/database"
	"maxios-backend/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPaymentConfigCreatesDefaults(t *testing.T) {
	setupTestDB()

	// No settings row exists yet
	var count int64
	database.DB.Model(&models.Setting{}).Count(&count)
	assert.Equal(t, int64(0), count)

	cfg, err := GetPaymentConfig()
	assert.NoError(t, err)
	assert.Equal(t, 10.0, cfg.MinPaymentThresholdUSD)
	assert.Equal(t, 0.00000001, cfg.MinPaymentThresholdBTC)

	// The read materialized the document
	database.DB.Model(&models.Setting{}).Where("key = ?", models.SettingKeyPayment).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSaveAndReloadPoolConfig(t *testing.T) {
	setupTestDB()

	assert.NoError(t, SavePoolConfig(PoolConfig{
		URL:               "stratum+tcp://pool.example.com:3333",
		Port:              "3333",
		DefaultWorkerName: "rig01",
		Commission:        2.5,
		PaymentRate:       0.055,
		BTCToUSDRate:      95000,
	}))

	cfg, err := GetPoolConfig()
	assert.NoError(t, err)
	assert.Equal(t, "stratum+tcp://pool.example.com:3333", cfg.URL)
	assert.Equal(t, 2.5, cfg.Commission)
	assert.Equal(t, 0.055, cfg.PaymentRate)

	// Saving again overwrites in place, no second row
	assert.NoError(t, SavePoolConfig(cfg))
	var count int64
	database.DB.Model(&models.Setting{}).Where("key = ?", models.SettingKeyPool).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSettingsDocumentsAreIndependent(t *testing.T) {
	setupTestDB()

	assert.NoError(t, SaveSiteConfig(SiteConfig{SiteName: "Renamed Pool"}))
	assert.NoError(t, SaveContentConfig(ContentConfig{About: "about text"}))

	site, err := GetSiteConfig()
	assert.NoError(t, err)
	assert.Equal(t, "Renamed Pool", site.SiteName)

	content, err := GetContentConfig()
	assert.NoError(t, err)
	assert.Equal(t, "about text", content.About)

	// Payment thresholds still come back with defaults
	payment, err := GetPaymentConfig()
	assert.NoError(t, err)
	assert.Equal(t, 100.0, payment.MinPaymentThresholdDOGE)
}

func TestPaymentConfigThresholdLookup(t *testing.T) {
	cfg := PaymentConfig{
		MinPaymentThresholdUSD:  10,
		MinPaymentThresholdBTC:  0.0001,
		MinPaymentThresholdLTC:  0.01,
		MinPaymentThresholdDOGE: 100,
	}

	assert.Equal(t, 10.0, cfg.Threshold(models.CurrencyUSD))
	assert.Equal(t, 0.0001, cfg.Threshold(models.CurrencyBTC))
	assert.Equal(t, 0.01, cfg.Threshold(models.CurrencyLTC))
	assert.Equal(t, 100.0, cfg.Threshold(models.CurrencyDOGE))
	assert.Equal(t, 0.0, cfg.Threshold(models.Currency("EUR")))
}
