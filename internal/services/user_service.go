package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"maxios-backend/internal/database"
	"maxios-backend/internal/models"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")
var ErrOptimisticLock = errors.New("data has been modified by another user, please refresh and try again")
var ErrReauthRequired = errors.New("current password is required for this change")
var ErrWrongPassword = errors.New("current password is incorrect")

func userCacheKey(userID uint) string {
	return fmt.Sprintf("user:%d", userID)
}

func invalidateUserCache(userID uint) {
	if database.RedisClient != nil {
		database.RedisClient.Del(database.Ctx, userCacheKey(userID))
	}
}

func FindUserByID(userID uint) (models.User, error) {
	// Try cache
	if database.RedisClient != nil {
		val, err := database.RedisClient.Get(database.Ctx, userCacheKey(userID)).Result()
		if err == nil {
			var user models.User
			if err := json.Unmarshal([]byte(val), &user); err == nil {
				return user, nil
			}
		}
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		return user, err
	}

	// Set cache
	if database.RedisClient != nil {
		if data, err := json.Marshal(user); err == nil {
			database.RedisClient.Set(database.Ctx, userCacheKey(userID), data, time.Hour)
		}
	}

	return user, nil
}

// FindUsers retrieves a paginated list of users.
func FindUsers(page, limit int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	offset := (page - 1) * limit

	if err := database.DB.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := database.DB.Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// UpdateUser updates a user with optimistic locking and selective fields.
func UpdateUser(id uint, updates map[string]interface{}, operator string) (*models.User, error) {
	tx := database.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var user models.User
	if err := tx.First(&user, id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// Password handling
	if password, ok := updates["password"].(string); ok && password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		updates["password"] = string(hashedPassword)
	}

	// Optimistic Lock Check
	currentVersion := user.Version
	updates["version"] = currentVersion + 1

	result := tx.Model(&user).Where("version = ?", currentVersion).Updates(updates)
	if result.Error != nil {
		tx.Rollback()
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return nil, ErrOptimisticLock
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	invalidateUserCache(id)

	zap.L().Info("user updated",
		zap.Uint("user_id", id),
		zap.String("operator", operator))

	// Fetch updated user to return full object
	database.DB.First(&user, id)

	return &user, nil
}

// ProfileUpdate carries the user-editable payout and notification settings.
type ProfileUpdate struct {
	BitcoinAddress              *string
	LitecoinAddress             *string
	DogeAddress                 *string
	BinanceID                   *string
	ReceivePaymentNotifications *bool
	ReceiveLoginAlerts          *bool
	TwoFactorEnabled            *bool
}

// UpdateProfile applies the user's own settings changes. Addresses are
// opaque strings; no format or chain validation happens here.
func UpdateProfile(userID uint, in ProfileUpdate) (*models.User, error) {
	updates := make(map[string]interface{})
	if in.BitcoinAddress != nil {
		updates["bitcoin_address"] = *in.BitcoinAddress
	}
	if in.LitecoinAddress != nil {
		updates["litecoin_address"] = *in.LitecoinAddress
	}
	if in.DogeAddress != nil {
		updates["doge_address"] = *in.DogeAddress
	}
	if in.BinanceID != nil {
		updates["binance_id"] = *in.BinanceID
	}
	if in.ReceivePaymentNotifications != nil {
		updates["receive_payment_notifications"] = *in.ReceivePaymentNotifications
	}
	if in.ReceiveLoginAlerts != nil {
		updates["receive_login_alerts"] = *in.ReceiveLoginAlerts
	}
	if in.TwoFactorEnabled != nil {
		updates["two_factor_enabled"] = *in.TwoFactorEnabled
	}

	if len(updates) == 0 {
		return nil, errors.New("no fields to update")
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := database.DB.Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}

	invalidateUserCache(userID)
	database.DB.First(&user, userID)
	return &user, nil
}

// UpdateAccount changes the user's email and/or password. Either change
// requires re-authentication with the current password.
func UpdateAccount(userID uint, currentPassword, newEmail, newPassword string) (*models.User, error) {
	if newEmail == "" && newPassword == "" {
		return nil, errors.New("no fields to update")
	}
	if currentPassword == "" {
		return nil, ErrReauthRequired
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return nil, ErrWrongPassword
	}

	updates := make(map[string]interface{})
	if newEmail != "" && newEmail != user.Email {
		var existing models.User
		if err := database.DB.Where("email = ?", newEmail).First(&existing).Error; err == nil {
			return nil, ErrUserAlreadyExists
		}
		updates["email"] = newEmail
	}
	if newPassword != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updates["password"] = string(hashedPassword)
	}

	if len(updates) > 0 {
		updates["version"] = user.Version + 1
		result := database.DB.Model(&user).Where("version = ?", user.Version).Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrOptimisticLock
		}
	}

	invalidateUserCache(userID)
	database.DB.First(&user, userID)
	return &user, nil
}
