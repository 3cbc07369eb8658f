package services

import (
	"errors"
	"maxios-backend/internal/database"
	"maxios-backend/internal/models"

	"gorm.io/gorm"
)

var ErrPoolNotFound = errors.New("arbitrage pool not found")

type ArbitragePoolInput struct {
	Name              string
	Cryptocurrency    string
	URL               string
	Port              string
	DefaultWorkerName string
	Commission        float64
	ThsRate           float64
	Description       string
	IsActive          bool
}

func CreateArbitragePool(in ArbitragePoolInput) (*models.ArbitragePool, error) {
	pool := &models.ArbitragePool{
		Name:              in.Name,
		Cryptocurrency:    in.Cryptocurrency,
		URL:               in.URL,
		Port:              in.Port,
		DefaultWorkerName: in.DefaultWorkerName,
		Commission:        in.Commission,
		ThsRate:           in.ThsRate,
		Description:       in.Description,
		IsActive:          in.IsActive,
	}
	if err := database.DB.Create(pool).Error; err != nil {
		return nil, err
	}

	PublishChange("arbitragePools", "created", pool.ID, 0)
	return pool, nil
}

func UpdateArbitragePool(id uint, in ArbitragePoolInput) (*models.ArbitragePool, error) {
	var pool models.ArbitragePool
	if err := database.DB.First(&pool, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPoolNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{
		"name":                in.Name,
		"cryptocurrency":      in.Cryptocurrency,
		"url":                 in.URL,
		"port":                in.Port,
		"default_worker_name": in.DefaultWorkerName,
		"commission":          in.Commission,
		"ths_rate":            in.ThsRate,
		"description":         in.Description,
		"is_active":           in.IsActive,
	}
	if err := database.DB.Model(&pool).Updates(updates).Error; err != nil {
		return nil, err
	}

	database.DB.First(&pool, id)
	PublishChange("arbitragePools", "updated", pool.ID, 0)
	return &pool, nil
}

func DeleteArbitragePool(id uint) error {
	result := database.DB.Delete(&models.ArbitragePool{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPoolNotFound
	}

	PublishChange("arbitragePools", "deleted", id, 0)
	return nil
}

// FindArbitragePools lists pools; onlyActive restricts to published ones.
func FindArbitragePools(onlyActive bool) ([]models.ArbitragePool, error) {
	var pools []models.ArbitragePool
	query := database.DB.Order("created_at desc")
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&pools).Error
	return pools, err
}
