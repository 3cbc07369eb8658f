package services

import (
	"errors"
	"maxios-backend/internal/database"
	"maxios-backend/internal/models"

	"gorm.io/gorm"
)

var ErrNewsNotFound = errors.New("news item not found")

type NewsInput struct {
	Title      string
	Category   string
	Content    string
	IsFeatured bool
}

func CreateNews(in NewsInput) (*models.News, error) {
	item := &models.News{
		Title:      in.Title,
		Category:   in.Category,
		Content:    in.Content,
		IsFeatured: in.IsFeatured,
	}
	if item.Category == "" {
		item.Category = "General"
	}
	if err := database.DB.Create(item).Error; err != nil {
		return nil, err
	}

	PublishChange("news", "created", item.ID, 0)
	return item, nil
}

func UpdateNews(id uint, in NewsInput) (*models.News, error) {
	var item models.News
	if err := database.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNewsNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{
		"title":       in.Title,
		"category":    in.Category,
		"content":     in.Content,
		"is_featured": in.IsFeatured,
	}
	if err := database.DB.Model(&item).Updates(updates).Error; err != nil {
		return nil, err
	}

	database.DB.First(&item, id)
	PublishChange("news", "updated", item.ID, 0)
	return &item, nil
}

func DeleteNews(id uint) error {
	result := database.DB.Delete(&models.News{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNewsNotFound
	}

	PublishChange("news", "deleted", id, 0)
	return nil
}

// FindNews returns news items, newest first.
func FindNews(page, limit int) ([]models.News, int64, error) {
	var items []models.News
	var total int64

	if err := database.DB.Model(&models.News{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := database.DB.Order("created_at desc").Limit(limit).Offset(offset).Find(&items).Error
	return items, total, err
}
