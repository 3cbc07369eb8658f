package models

import "time"

// ArbitragePool is an alternative pool endpoint published by the operator.
// There is no referential integrity to miners; deleting one never cascades.
type ArbitragePool struct {
	ID                uint `gorm:"primarykey"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Name              string  `gorm:"type:varchar(100);not null"`
	Cryptocurrency    string  `gorm:"type:varchar(50)"`
	URL               string  `gorm:"type:varchar(255)"`
	Port              string  `gorm:"type:varchar(10)"`
	DefaultWorkerName string  `gorm:"type:varchar(100)"`
	Commission        float64 `gorm:"type:decimal(10,4);default:0"` // percent
	ThsRate           float64 `gorm:"type:decimal(20,8);default:0"` // USD per TH/s per day
	Description       string  `gorm:"type:text"`
	IsActive          bool    `gorm:"default:true"`
}
