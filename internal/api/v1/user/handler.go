package user

import (
	"errors"
	"maxios-backend/internal/models"
	"maxios-backend/internal/services"
	"maxios-backend/internal/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

func currentUser(c *gin.Context) (models.User, bool) {
	value, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "User not found in context"))
		return models.User{}, false
	}
	user, ok := value.(models.User)
	if !ok {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Invalid user in context"))
		return models.User{}, false
	}
	return user, true
}

// GetProfile godoc
// @Summary Get the current user's profile
// @Description Returns the authenticated user's account, balances and settings
// @Tags user
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=UserResponse}
// @Failure 401 {object} utils.Response
// @Router /user/profile [get]
func GetProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Profile retrieved successfully", ToUserResponse(&user)))
}

// UpdateProfile godoc
// @Summary Update payout and notification settings
// @Description Updates the authenticated user's payout addresses and notification preferences
// @Tags user
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   input  body   UpdateProfileInput  true  "Profile fields to update"
// @Success 200 {object} utils.Response{data=UserResponse}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Router /user/profile [patch]
func UpdateProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input UpdateProfileInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	updated, err := services.UpdateProfile(user.ID, services.ProfileUpdate{
		BitcoinAddress:              input.BitcoinAddress,
		LitecoinAddress:             input.LitecoinAddress,
		DogeAddress:                 input.DogeAddress,
		BinanceID:                   input.BinanceID,
		ReceivePaymentNotifications: input.ReceivePaymentNotifications,
		ReceiveLoginAlerts:          input.ReceiveLoginAlerts,
		TwoFactorEnabled:            input.TwoFactorEnabled,
	})
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Profile updated successfully", ToUserResponse(updated)))
}

// UpdateAccount godoc
// @Summary Change email or password
// @Description Changes the authenticated user's email and/or password. Requires the current password.
// @Tags user
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   input  body   UpdateAccountInput  true  "Account fields to update"
// @Success 200 {object} utils.Response{data=UserResponse}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /user/account [patch]
func UpdateAccount(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input UpdateAccountInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	updated, err := services.UpdateAccount(user.ID, input.CurrentPassword, input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrWrongPassword), errors.Is(err, services.ErrReauthRequired):
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, err.Error()))
		case errors.Is(err, services.ErrUserAlreadyExists):
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
		case errors.Is(err, services.ErrOptimisticLock):
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
		default:
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Account updated successfully", ToUserResponse(updated)))
}
