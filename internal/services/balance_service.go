package services

import (
	"errors"
	"math"
	"maxios-backend/config"
	"maxios-backend/internal/database"
	"maxios-backend/internal/models"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrInvalidAmount       = errors.New("amount must be a positive number")
	ErrInvalidCurrency     = errors.New("unsupported currency")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrUnknownOperation    = errors.New("unknown mass operation")
)

// Mass operation kinds.
const (
	MassOpAdd      = "add"
	MassOpSubtract = "subtract"
	MassOpReset    = "reset"
)

// BalanceMeta describes who mutated a balance and why; it is copied onto
// the ledger audit row.
type BalanceMeta struct {
	Reason     string
	Operator   string
	OperatorID uint
	Type       models.TransactionType
	IPAddress  string
}

// MassUpdateResult reports the outcome of a batch balance operation.
// Partial failure is normal: Updated+Failed always equals the number of
// selected users.
type MassUpdateResult struct {
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
}

func ledgerSecret() string {
	cfg, err := config.LoadConfig()
	if err != nil {
		return ""
	}
	return cfg.LedgerSecret
}

func validAmount(amount float64) bool {
	return amount > 0 && !math.IsInf(amount, 0) && !math.IsNaN(amount)
}

// applyBalanceDelta mutates one currency balance inside tx and writes the
// ledger audit row. The balance is re-read inside the same transaction as
// the write, so concurrent mutations cannot lose updates. A negative delta
// that would take the balance below zero fails with ErrInsufficientBalance
// and writes nothing.
func applyBalanceDelta(tx *gorm.DB, userID uint, currency models.Currency, delta float64, meta BalanceMeta) (*models.User, error) {
	var user models.User
	if err := tx.Set("gorm:query_option", "FOR UPDATE").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	balanceBefore := user.Balance(currency)
	balanceAfter := balanceBefore + delta
	if balanceAfter < 0 {
		return nil, ErrInsufficientBalance
	}

	user.SetBalance(currency, balanceAfter)
	user.Version++
	updates := map[string]interface{}{
		currency.BalanceColumn(): balanceAfter,
		"version":                user.Version,
	}
	if err := tx.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
		return nil, err
	}

	trans := models.Transaction{
		CreatedAt:     time.Now(),
		UserID:        userID,
		Currency:      currency,
		Amount:        delta,
		BalanceBefore: balanceBefore,
		BalanceAfter:  balanceAfter,
		Reason:        meta.Reason,
		Operator:      meta.Operator,
		OperatorID:    meta.OperatorID,
		Type:          meta.Type,
		IPAddress:     meta.IPAddress,
	}
	trans.Hash = trans.GenerateHash(ledgerSecret())
	if err := tx.Create(&trans).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// AddBalance credits amount to the user's balance for the given currency.
func AddBalance(userID uint, currency models.Currency, amount float64, meta BalanceMeta) (*models.User, error) {
	if !validAmount(amount) {
		return nil, ErrInvalidAmount
	}
	if !currency.Valid() {
		return nil, ErrInvalidCurrency
	}

	var user *models.User
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		u, err := applyBalanceDelta(tx, userID, currency, amount, meta)
		user = u
		return err
	})
	if err != nil {
		return nil, err
	}

	invalidateUserCache(userID)
	PublishChange("users", "balance", userID, userID)
	return user, nil
}

// SubtractBalance debits amount from the user's balance for the given
// currency. Fails with ErrInsufficientBalance and no write when amount
// exceeds the current balance.
func SubtractBalance(userID uint, currency models.Currency, amount float64, meta BalanceMeta) (*models.User, error) {
	if !validAmount(amount) {
		return nil, ErrInvalidAmount
	}
	if !currency.Valid() {
		return nil, ErrInvalidCurrency
	}

	var user *models.User
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		u, err := applyBalanceDelta(tx, userID, currency, -amount, meta)
		user = u
		return err
	})
	if err != nil {
		return nil, err
	}

	invalidateUserCache(userID)
	PublishChange("users", "balance", userID, userID)
	return user, nil
}

// resetBalance zeroes the user's balance for the currency, whatever its
// prior value, and records the write-off on the ledger.
func resetBalance(userID uint, currency models.Currency, meta BalanceMeta) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Set("gorm:query_option", "FOR UPDATE").First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		balanceBefore := user.Balance(currency)
		updates := map[string]interface{}{
			currency.BalanceColumn(): 0.0,
			"version":                user.Version + 1,
		}
		if err := tx.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
			return err
		}

		trans := models.Transaction{
			CreatedAt:     time.Now(),
			UserID:        userID,
			Currency:      currency,
			Amount:        -balanceBefore,
			BalanceBefore: balanceBefore,
			BalanceAfter:  0,
			Reason:        meta.Reason,
			Operator:      meta.Operator,
			OperatorID:    meta.OperatorID,
			Type:          meta.Type,
			IPAddress:     meta.IPAddress,
		}
		trans.Hash = trans.GenerateHash(ledgerSecret())
		return tx.Create(&trans).Error
	})
}

// MassUpdateBalances applies one operation to every selected user. A user
// whose subtract would overdraw is skipped and counted as failed; the rest
// of the batch proceeds. Reset writes 0 unconditionally.
func MassUpdateBalances(userIDs []uint, currency models.Currency, operation string, amount float64, meta BalanceMeta) (MassUpdateResult, error) {
	var result MassUpdateResult

	if !currency.Valid() {
		return result, ErrInvalidCurrency
	}
	switch operation {
	case MassOpAdd, MassOpSubtract:
		if !validAmount(amount) {
			return result, ErrInvalidAmount
		}
	case MassOpReset:
	default:
		return result, ErrUnknownOperation
	}

	for _, userID := range userIDs {
		var err error
		switch operation {
		case MassOpAdd:
			_, err = AddBalance(userID, currency, amount, meta)
		case MassOpSubtract:
			_, err = SubtractBalance(userID, currency, amount, meta)
		case MassOpReset:
			err = resetBalance(userID, currency, meta)
			if err == nil {
				invalidateUserCache(userID)
			}
		}

		if err != nil {
			result.Failed++
			zap.L().Warn("mass balance update skipped user",
				zap.Uint("user_id", userID),
				zap.String("operation", operation),
				zap.Error(err))
			continue
		}
		result.Updated++
	}

	if result.Updated > 0 {
		PublishChange("users", "mass_balance", 0, 0)
	}
	return result, nil
}
