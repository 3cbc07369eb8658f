package user

import "maxios-backend/internal/models"

// UserResponse is the public view of an account. The password hash and
// lock version never leave the server.
type UserResponse struct {
	ID                          uint    `json:"id"`
	Email                       string  `json:"email"`
	Role                        string  `json:"role"`
	Token                       string  `json:"token,omitempty"`
	BalanceUSD                  float64 `json:"balanceUsd"`
	BalanceBTC                  float64 `json:"balanceBtc"`
	BalanceLTC                  float64 `json:"balanceLtc"`
	BalanceDOGE                 float64 `json:"balanceDoge"`
	BitcoinAddress              string  `json:"bitcoinAddress"`
	LitecoinAddress             string  `json:"litecoinAddress"`
	DogeAddress                 string  `json:"dogeAddress"`
	BinanceID                   string  `json:"binanceId"`
	ReceivePaymentNotifications bool    `json:"receivePaymentNotifications"`
	ReceiveLoginAlerts          bool    `json:"receiveLoginAlerts"`
	TwoFactorEnabled            bool    `json:"twoFactorEnabled"`
}

// ToUserResponse converts a model into its API representation.
func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:                          u.ID,
		Email:                       u.Email,
		Role:                        u.Role,
		BalanceUSD:                  u.BalanceUSD,
		BalanceBTC:                  u.BalanceBTC,
		BalanceLTC:                  u.BalanceLTC,
		BalanceDOGE:                 u.BalanceDOGE,
		BitcoinAddress:              u.BitcoinAddress,
		LitecoinAddress:             u.LitecoinAddress,
		DogeAddress:                 u.DogeAddress,
		BinanceID:                   u.BinanceID,
		ReceivePaymentNotifications: u.ReceivePaymentNotifications,
		ReceiveLoginAlerts:          u.ReceiveLoginAlerts,
		TwoFactorEnabled:            u.TwoFactorEnabled,
	}
}

type UpdateProfileInput struct {
	BitcoinAddress              *string `json:"bitcoinAddress"`
	LitecoinAddress             *string `json:"litecoinAddress"`
	DogeAddress                 *string `json:"dogeAddress"`
	BinanceID                   *string `json:"binanceId"`
	ReceivePaymentNotifications *bool   `json:"receivePaymentNotifications"`
	ReceiveLoginAlerts          *bool   `json:"receiveLoginAlerts"`
	TwoFactorEnabled            *bool   `json:"twoFactorEnabled"`
}

type UpdateAccountInput struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	Email           string `json:"email" binding:"omitempty,email"`
	Password        string `json:"password" binding:"omitempty,min=6"`
}
