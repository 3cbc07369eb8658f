package services

import (
	"errors"
	"fmt"
	"maxios-backend/internal/database"
	"maxios-backend/internal/models"
	"time"

	"gorm.io/gorm"
)

var (
	ErrWithdrawalNotFound   = errors.New("withdrawal request not found")
	ErrWithdrawalNotPending = errors.New("withdrawal request already processed")
	ErrBelowMinThreshold    = errors.New("amount below minimum withdrawal threshold")
	ErrMissingDestination   = errors.New("payout destination is required")
	ErrInvalidMethod        = errors.New("unknown withdrawal method")
)

// CreateWithdrawalInput carries a user's payout request.
type CreateWithdrawalInput struct {
	Amount      float64
	Currency    models.Currency
	Method      string
	AddressOrID string
}

// CreateWithdrawal validates and files a payout request. The amount is
// debited from the user's balance in the same transaction that inserts the
// Pendiente row: funds are reserved at request time, so the request can
// never overdraw and an approved request needs no further debit.
func CreateWithdrawal(user *models.User, in CreateWithdrawalInput) (*models.Withdrawal, error) {
	if !validAmount(in.Amount) {
		return nil, ErrInvalidAmount
	}
	if !in.Currency.Valid() {
		return nil, ErrInvalidCurrency
	}
	if in.Method != models.WithdrawalMethodWallet && in.Method != models.WithdrawalMethodBinancePay {
		return nil, ErrInvalidMethod
	}
	if in.AddressOrID == "" {
		return nil, ErrMissingDestination
	}

	paymentCfg, err := GetPaymentConfig()
	if err != nil {
		return nil, err
	}
	if in.Amount < paymentCfg.Threshold(in.Currency) {
		return nil, ErrBelowMinThreshold
	}

	withdrawal := &models.Withdrawal{
		UserID:      user.ID,
		UserEmail:   user.Email,
		Amount:      in.Amount,
		Currency:    in.Currency,
		Method:      in.Method,
		AddressOrID: in.AddressOrID,
		Status:      models.WithdrawalStatusPending,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := applyBalanceDelta(tx, user.ID, in.Currency, -in.Amount, BalanceMeta{
			Reason:     "Withdrawal reservation",
			Operator:   user.Email,
			OperatorID: user.ID,
			Type:       models.TransactionTypeWithdrawReserve,
		}); err != nil {
			return err
		}
		return tx.Create(withdrawal).Error
	})
	if err != nil {
		return nil, err
	}

	invalidateUserCache(user.ID)
	PublishChange("withdrawals", "created", withdrawal.ID, user.ID)
	return withdrawal, nil
}

// CompleteWithdrawal marks a pending request paid out. The reservation
// taken at creation already holds the funds, so completion changes no
// balance: debiting here again would charge the user twice.
func CompleteWithdrawal(id uint, operatorID uint, operatorName string) (*models.Withdrawal, error) {
	var withdrawal models.Withdrawal
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Set("gorm:query_option", "FOR UPDATE").First(&withdrawal, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrWithdrawalNotFound
			}
			return err
		}
		if withdrawal.Status != models.WithdrawalStatusPending {
			return ErrWithdrawalNotPending
		}

		now := time.Now()
		withdrawal.Status = models.WithdrawalStatusCompleted
		withdrawal.CompletedAt = &now
		withdrawal.CompletedBy = operatorID
		return tx.Save(&withdrawal).Error
	})
	if err != nil {
		return nil, err
	}

	PublishChange("withdrawals", "completed", withdrawal.ID, withdrawal.UserID)
	return &withdrawal, nil
}

// RejectWithdrawal declines a pending request and returns the reserved
// amount to the user's balance in the same transaction.
func RejectWithdrawal(id uint, operatorID uint, operatorName string) (*models.Withdrawal, error) {
	var withdrawal models.Withdrawal
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Set("gorm:query_option", "FOR UPDATE").First(&withdrawal, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrWithdrawalNotFound
			}
			return err
		}
		if withdrawal.Status != models.WithdrawalStatusPending {
			return ErrWithdrawalNotPending
		}

		if _, err := applyBalanceDelta(tx, withdrawal.UserID, withdrawal.Currency, withdrawal.Amount, BalanceMeta{
			Reason:     fmt.Sprintf("Refund for rejected withdrawal %d", withdrawal.ID),
			Operator:   operatorName,
			OperatorID: operatorID,
			Type:       models.TransactionTypeWithdrawRefund,
		}); err != nil {
			return err
		}

		now := time.Now()
		withdrawal.Status = models.WithdrawalStatusRejected
		withdrawal.CompletedAt = &now
		withdrawal.CompletedBy = operatorID
		return tx.Save(&withdrawal).Error
	})
	if err != nil {
		return nil, err
	}

	invalidateUserCache(withdrawal.UserID)
	PublishChange("withdrawals", "rejected", withdrawal.ID, withdrawal.UserID)
	return &withdrawal, nil
}

// FindWithdrawalsByUser returns the user's requests, newest first.
func FindWithdrawalsByUser(userID uint, page, limit int) ([]models.Withdrawal, int64, error) {
	var withdrawals []models.Withdrawal
	var total int64

	query := database.DB.Model(&models.Withdrawal{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("created_at desc").Limit(limit).Offset(offset).Find(&withdrawals).Error; err != nil {
		return nil, 0, err
	}
	return withdrawals, total, nil
}

// FindWithdrawals returns all requests for the back office, optionally
// filtered by status, newest first.
func FindWithdrawals(status *string, page, limit int) ([]models.Withdrawal, int64, error) {
	var withdrawals []models.Withdrawal
	var total int64

	query := database.DB.Model(&models.Withdrawal{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("created_at desc").Limit(limit).Offset(offset).Find(&withdrawals).Error; err != nil {
		return nil, 0, err
	}
	return withdrawals, total, nil
}

// CountPendingWithdrawals backs the back-office badge counter.
func CountPendingWithdrawals() (int64, error) {
	var count int64
	err := database.DB.Model(&models.Withdrawal{}).
		Where("status = ?", models.WithdrawalStatusPending).
		Count(&count).Error
	return count, err
}
