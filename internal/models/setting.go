package models

import (
	"time"

	"gorm.io/datatypes"
)

// Fixed keys for the settings singletons.
const (
	SettingKeySite          = "siteConfig"
	SettingKeyPool          = "poolConfig"
	SettingKeyPayment       = "paymentConfig"
	SettingKeyProfitability = "profitability"
	SettingKeyContent       = "content"
)

// Setting is a configuration singleton addressed by a stable key.
// One logical document per key; created lazily with defaults.
type Setting struct {
	ID        uint   `gorm:"primarykey"`
	Key       string `gorm:"uniqueIndex;type:varchar(64);not null"`
	Value     datatypes.JSON `gorm:"type:json;not null"`
	UpdatedAt time.Time
}
