package services

import (
	"maxios-backend/internal/database"
	"maxios-backend/internal/models"
)

// FindPaymentsByUser returns the user's payout history, newest first.
func FindPaymentsByUser(userID uint, page, limit int) ([]models.Payment, int64, error) {
	var payments []models.Payment
	var total int64

	query := database.DB.Model(&models.Payment{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("created_at desc").Limit(limit).Offset(offset).Find(&payments).Error; err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}
