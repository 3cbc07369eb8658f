package services

import (
	"encoding/json"
	"errors"
	"maxios-backend/internal/database"
	"maxios-backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SiteConfig holds the public site identity settings.
type SiteConfig struct {
	SiteName        string `json:"siteName"`
	SupportEmail    string `json:"supportEmail"`
	MaintenanceMode bool   `json:"maintenanceMode"`
}

// PoolConfig holds the main pool connection info and payout parameters.
type PoolConfig struct {
	URL               string  `json:"url"`
	Port              string  `json:"port"`
	DefaultWorkerName string  `json:"defaultWorkerName"`
	Commission        float64 `json:"commission"`  // percent
	PaymentRate       float64 `json:"paymentRate"` // USD per TH/s per day
	BTCToUSDRate      float64 `json:"btcToUsdRate"`
}

// PaymentConfig holds the per-currency minimum withdrawal thresholds.
type PaymentConfig struct {
	MinPaymentThresholdUSD  float64 `json:"minPaymentThresholdUSD"`
	MinPaymentThresholdBTC  float64 `json:"minPaymentThresholdBTC"`
	MinPaymentThresholdLTC  float64 `json:"minPaymentThresholdLTC"`
	MinPaymentThresholdDOGE float64 `json:"minPaymentThresholdDOGE"`
}

// Threshold returns the minimum withdrawal amount for the given currency.
func (p PaymentConfig) Threshold(c models.Currency) float64 {
	switch c {
	case models.CurrencyUSD:
		return p.MinPaymentThresholdUSD
	case models.CurrencyBTC:
		return p.MinPaymentThresholdBTC
	case models.CurrencyLTC:
		return p.MinPaymentThresholdLTC
	case models.CurrencyDOGE:
		return p.MinPaymentThresholdDOGE
	}
	return 0
}

// ProfitabilityConfig holds the operator-tuned calculator parameters.
type ProfitabilityConfig struct {
	FixedRatePerTHs     float64 `json:"fixedRatePerTHs"`
	FixedPoolCommission float64 `json:"fixedPoolCommission"` // percent
	UseFixedRate        bool    `json:"useFixedRate"`
	BTCPrice            float64 `json:"btcPrice"`
	Difficulty          float64 `json:"difficulty"`
}

// ContentConfig holds the static page bodies editable from the back office.
type ContentConfig struct {
	About   string `json:"about"`
	Terms   string `json:"terms"`
	Privacy string `json:"privacy"`
}

var (
	defaultSiteConfig = SiteConfig{SiteName: "MaxiOs Pool"}
	defaultPoolConfig = PoolConfig{
		URL:               "stratum+tcp://bitcoinpool.com:4444",
		Port:              "4444",
		DefaultWorkerName: "worker1",
		Commission:        1,
		PaymentRate:       0.06,
		BTCToUSDRate:      20000,
	}
	defaultPaymentConfig = PaymentConfig{
		MinPaymentThresholdUSD:  10,
		MinPaymentThresholdBTC:  0.00000001,
		MinPaymentThresholdLTC:  0.01,
		MinPaymentThresholdDOGE: 100,
	}
	defaultProfitabilityConfig = ProfitabilityConfig{
		FixedRatePerTHs:     0.06,
		FixedPoolCommission: 1,
		UseFixedRate:        false,
		BTCPrice:            121692,
		Difficulty:          73197634206448,
	}
	defaultContentConfig = ContentConfig{}
)

// loadSetting reads the settings row for key into dest. A missing row is
// created with defaults first, so every read observes a fully formed
// document (create-if-absent).
func loadSetting(key string, dest interface{}, defaults interface{}) error {
	var s models.Setting
	err := database.DB.Where("key = ?", key).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := saveSetting(key, defaults); err != nil {
			return err
		}
		raw, err := json.Marshal(defaults)
		if err != nil {
			return err
		}
		return json.Unmarshal(raw, dest)
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(s.Value, dest)
}

// saveSetting upserts the settings row for key.
func saveSetting(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	var s models.Setting
	err = database.DB.Where("key = ?", key).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return database.DB.Create(&models.Setting{Key: key, Value: datatypes.JSON(raw)}).Error
	}
	if err != nil {
		return err
	}
	return database.DB.Model(&s).Update("value", datatypes.JSON(raw)).Error
}

func GetSiteConfig() (SiteConfig, error) {
	var cfg SiteConfig
	err := loadSetting(models.SettingKeySite, &cfg, defaultSiteConfig)
	return cfg, err
}

func SaveSiteConfig(cfg SiteConfig) error {
	return saveSetting(models.SettingKeySite, cfg)
}

func GetPoolConfig() (PoolConfig, error) {
	var cfg PoolConfig
	err := loadSetting(models.SettingKeyPool, &cfg, defaultPoolConfig)
	return cfg, err
}

func SavePoolConfig(cfg PoolConfig) error {
	return saveSetting(models.SettingKeyPool, cfg)
}

func GetPaymentConfig() (PaymentConfig, error) {
	var cfg PaymentConfig
	err := loadSetting(models.SettingKeyPayment, &cfg, defaultPaymentConfig)
	return cfg, err
}

func SavePaymentConfig(cfg PaymentConfig) error {
	return saveSetting(models.SettingKeyPayment, cfg)
}

func GetProfitabilityConfig() (ProfitabilityConfig, error) {
	var cfg ProfitabilityConfig
	err := loadSetting(models.SettingKeyProfitability, &cfg, defaultProfitabilityConfig)
	return cfg, err
}

func SaveProfitabilityConfig(cfg ProfitabilityConfig) error {
	return saveSetting(models.SettingKeyProfitability, cfg)
}

func GetContentConfig() (ContentConfig, error) {
	var cfg ContentConfig
	err := loadSetting(models.SettingKeyContent, &cfg, defaultContentConfig)
	return cfg, err
}

func SaveContentConfig(cfg ContentConfig) error {
	return saveSetting(models.SettingKeyContent, cfg)
}
