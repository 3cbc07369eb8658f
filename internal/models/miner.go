package models

import "time"

const (
	MinerStatusActive   = "active"
	MinerStatusInactive = "inactive"
)

type Miner struct {
	ID              uint `gorm:"primarykey"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	UserID          uint    `gorm:"index;not null"`
	WorkerName      string  `gorm:"type:varchar(100);not null"`
	CurrentHashrate float64 `gorm:"type:decimal(20,2);default:0"` // TH/s
	Status          string  `gorm:"type:varchar(16);default:'active'"`
}
