package models

import "time"

type News struct {
	ID         uint `gorm:"primarykey"`
	CreatedAt  time.Time `gorm:"index"`
	UpdatedAt  time.Time
	Title      string `gorm:"type:varchar(255);not null"`
	Category   string `gorm:"type:varchar(100);default:'General'"`
	Content    string `gorm:"type:text;not null"`
	IsFeatured bool   `gorm:"default:false"`
}
