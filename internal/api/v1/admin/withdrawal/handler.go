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

type WithdrawalListResponse struct {
	Withdrawals []models.Withdrawal `json:"withdrawals"`
	Total       int64               `json:"total"`
	Page        int                 `json:"page"`
	Limit       int                 `json:"limit"`
}

func operatorInfo(c *gin.Context) (string, uint) {
	if value, exists := c.Get("user"); exists {
		if admin, ok := value.(models.User); ok {
			return admin.Email, admin.ID
		}
	}
	return "admin", 0
}

func withdrawalError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrWithdrawalNotFound):
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
	case errors.Is(err, services.ErrWithdrawalNotPending):
		c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to process withdrawal"))
	}
}

// ListWithdrawals godoc
// @Summary List withdrawal requests
// @Description Lists all withdrawal requests, optionally filtered by status. Admin only.
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "Filter by status" Enums(Pendiente, Completado, Rechazado)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} utils.Response{data=WithdrawalListResponse}
// @Failure 400 {object} utils.Response
// @Router /admin/withdrawals [get]
func ListWithdrawals(c *gin.Context) {
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

	var status *string
	if s := c.Query("status"); s != "" {
		status = &s
	}

	withdrawals, total, err := services.FindWithdrawals(status, page, limit)
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

// CompleteWithdrawal godoc
// @Summary Mark a withdrawal as paid
// @Description Marks a pending request Completado. The funds were reserved at request time, so no balance changes. Admin only.
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Withdrawal ID"
// @Success 200 {object} utils.Response{data=models.Withdrawal}
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /admin/withdrawals/{id}/complete [post]
func CompleteWithdrawal(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid withdrawal ID"))
		return
	}

	operator, operatorID := operatorInfo(c)
	withdrawal, err := services.CompleteWithdrawal(uint(id), operatorID, operator)
	if err != nil {
		withdrawalError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Withdrawal completed successfully", withdrawal))
}

// RejectWithdrawal godoc
// @Summary Reject a withdrawal
// @Description Marks a pending request Rechazado and refunds the reserved amount. Admin only.
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Withdrawal ID"
// @Success 200 {object} utils.Response{data=models.Withdrawal}
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /admin/withdrawals/{id}/reject [post]
func RejectWithdrawal(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid withdrawal ID"))
		return
	}

	operator, operatorID := operatorInfo(c)
	withdrawal, err := services.RejectWithdrawal(uint(id), operatorID, operator)
	if err != nil {
		withdrawalError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Withdrawal rejected successfully", withdrawal))
}

// PendingCount godoc
// @Summary Count pending withdrawals
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response
// @Router /admin/withdrawals/pending-count [get]
func PendingCount(c *gin.Context) {
	count, err := services.CountPendingWithdrawals()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to count withdrawals"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Pending withdrawals counted", gin.H{"count": count}))
}
