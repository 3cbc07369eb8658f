package withdrawal

import (
	"errors"
	"maxios-backend/internal/models"
	"maxios-backend/internal/services"
	"maxios-backend/internal/utils"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CreateWithdrawalInput struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Currency    string  `json:"currency" binding:"required,oneof=USD BTC LTC DOGE"`
	Method      string  `json:"method" binding:"required"`
	AddressOrID string  `json:"addressOrId" binding:"required"`
}

type WithdrawalListResponse struct {
	Withdrawals []models.Withdrawal `json:"withdrawals"`
	Total       int64               `json:"total"`
	Page        int                 `json:"page"`
	Limit       int                 `json:"limit"`
}

// CreateWithdrawal godoc
// @Summary Request a payout
// @Description Files a withdrawal request. The amount is reserved from the user's balance immediately.
// @Tags withdrawal
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   input  body   CreateWithdrawalInput  true  "Withdrawal request"
// @Success 201 {object} utils.Response{data=models.Withdrawal}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 422 {object} utils.Response
// @Router /withdrawals [post]
func CreateWithdrawal(c *gin.Context) {
	user, ok := c.MustGet("user").(models.User)
	if !ok {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Invalid user in context"))
		return
	}

	var input CreateWithdrawalInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	withdrawal, err := services.CreateWithdrawal(&user, services.CreateWithdrawalInput{
		Amount:      input.Amount,
		Currency:    models.Currency(input.Currency),
		Method:      input.Method,
		AddressOrID: input.AddressOrID,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInsufficientBalance),
			errors.Is(err, services.ErrBelowMinThreshold):
			c.JSON(http.StatusUnprocessableEntity, utils.NewErrorResponse(http.StatusUnprocessableEntity, err.Error()))
		case errors.Is(err, services.ErrInvalidAmount),
			errors.Is(err, services.ErrInvalidCurrency),
			errors.Is(err, services.ErrInvalidMethod),
			errors.Is(err, services.ErrMissingDestination):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create withdrawal request"))
		}
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Withdrawal requested successfully", withdrawal))
}

// ListWithdrawals godoc
// @Summary List the user's withdrawal requests
// @Tags withdrawal
// @Produce  json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} utils.Response{data=WithdrawalListResponse}
// @Failure 401 {object} utils.Response
// @Router /withdrawals [get]
func ListWithdrawals(c *gin.Context) {
	user, ok := c.MustGet("user").(models.User)
	if !ok {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Invalid user in context"))
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid page number"))
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid limit number"))
		return
	}

	withdrawals, total, err := services.FindWithdrawalsByUser(user.ID, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch withdrawals"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Withdrawals retrieved successfully", WithdrawalListResponse{
		Withdrawals: withdrawals,
		Total:       total,
		Page:        page,
		Limit:       limit,
	}))
}
