package user

import (
	"errors"
	"maxios-backend/internal/models"
	"maxios-backend/internal/services"
	"maxios-backend/internal/utils"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type UserListItem struct {
	ID          uint      `json:"id"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	BalanceUSD  float64   `json:"balanceUsd"`
	BalanceBTC  float64   `json:"balanceBtc"`
	BalanceLTC  float64   `json:"balanceLtc"`
	BalanceDOGE float64   `json:"balanceDoge"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type UserListResponse struct {
	Users []UserListItem `json:"users"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

func toListItem(u models.User) UserListItem {
	return UserListItem{
		ID:          u.ID,
		Email:       u.Email,
		Role:        u.Role,
		BalanceUSD:  u.BalanceUSD,
		BalanceBTC:  u.BalanceBTC,
		BalanceLTC:  u.BalanceLTC,
		BalanceDOGE: u.BalanceDOGE,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// operatorInfo identifies the acting admin for the audit trail. Falls
// back to a generic label when the middleware did not load the account.
func operatorInfo(c *gin.Context) (string, uint) {
	if value, exists := c.Get("user"); exists {
		if admin, ok := value.(models.User); ok {
			return admin.Email, admin.ID
		}
	}
	return "admin", 0
}

// ListUsers godoc
// @Summary List all users
// @Description Get a paginated list of users. Admin only.
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} utils.Response{data=UserListResponse}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/users [get]
func ListUsers(c *gin.Context) {
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

	users, total, err := services.FindUsers(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch users"))
		return
	}

	var items []UserListItem
	for _, u := range users {
		items = append(items, toListItem(u))
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Users retrieved successfully", UserListResponse{
		Users: items,
		Total: total,
		Page:  page,
		Limit: limit,
	}))
}

// UpdateUserRequest represents the request body for updating a user
type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=6"`
	Role     *string `json:"role,omitempty" binding:"omitempty,oneof=admin user"`
}

// UpdateUser godoc
// @Summary Update a user
// @Description Update user details. Admin only.
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "User ID"
// @Param body body UpdateUserRequest true "User details to update"
// @Success 200 {object} utils.Response{data=UserListItem}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/users/{id} [patch]
func UpdateUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid user ID"))
		return
	}

	var req UpdateUserRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	updates := make(map[string]interface{})
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Password != nil {
		updates["password"] = *req.Password
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "No fields to update"))
		return
	}

	operator, _ := operatorInfo(c)
	updated, err := services.UpdateUser(uint(id), updates, operator)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		case errors.Is(err, services.ErrOptimisticLock):
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update user"))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("User updated successfully", toListItem(*updated)))
}

// AdjustBalanceRequest credits or debits one user's balance.
type AdjustBalanceRequest struct {
	Operation string  `json:"operation" binding:"required,oneof=add subtract"`
	Currency  string  `json:"currency" binding:"required,oneof=USD BTC LTC DOGE"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Reason    string  `json:"reason" binding:"required"`
}

// AdjustBalance godoc
// @Summary Adjust a user's balance
// @Description Credits or debits one user's balance and records the change on the audit ledger. Admin only.
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "User ID"
// @Param body body AdjustBalanceRequest true "Adjustment"
// @Success 200 {object} utils.Response{data=UserListItem}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 422 {object} utils.Response
// @Router /admin/users/{id}/balance [post]
func AdjustBalance(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid user ID"))
		return
	}

	var req AdjustBalanceRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	operator, operatorID := operatorInfo(c)
	meta := services.BalanceMeta{
		Reason:     req.Reason,
		Operator:   operator,
		OperatorID: operatorID,
		Type:       models.TransactionTypeAdminAdjust,
		IPAddress:  c.ClientIP(),
	}

	var updated *models.User
	if req.Operation == services.MassOpAdd {
		updated, err = services.AddBalance(uint(id), models.Currency(req.Currency), req.Amount, meta)
	} else {
		updated, err = services.SubtractBalance(uint(id), models.Currency(req.Currency), req.Amount, meta)
	}
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		case errors.Is(err, services.ErrInsufficientBalance):
			c.JSON(http.StatusUnprocessableEntity, utils.NewErrorResponse(http.StatusUnprocessableEntity, err.Error()))
		case errors.Is(err, services.ErrInvalidAmount), errors.Is(err, services.ErrInvalidCurrency):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to adjust balance"))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Balance adjusted successfully", toListItem(*updated)))
}

// MassBalanceRequest applies one operation to a set of users.
type MassBalanceRequest struct {
	UserIDs   []uint  `json:"userIds" binding:"required,min=1"`
	Operation string  `json:"operation" binding:"required,oneof=add subtract reset"`
	Currency  string  `json:"currency" binding:"required,oneof=USD BTC LTC DOGE"`
	Amount    float64 `json:"amount" binding:"omitempty,gt=0"`
	Reason    string  `json:"reason" binding:"required"`
}

// MassUpdateBalances godoc
// @Summary Batch balance operation
// @Description Applies add, subtract or reset to every selected user. Users whose subtract would overdraw are skipped and counted as failed. Admin only.
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body MassBalanceRequest true "Batch operation"
// @Success 200 {object} utils.Response{data=services.MassUpdateResult}
// @Failure 400 {object} utils.Response
// @Router /admin/users-balance/mass [post]
func MassUpdateBalances(c *gin.Context) {
	var req MassBalanceRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	operator, operatorID := operatorInfo(c)
	result, err := services.MassUpdateBalances(req.UserIDs, models.Currency(req.Currency), req.Operation, req.Amount, services.BalanceMeta{
		Reason:     req.Reason,
		Operator:   operator,
		OperatorID: operatorID,
		Type:       models.TransactionTypeMassAdjust,
		IPAddress:  c.ClientIP(),
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Mass balance update finished", result))
}
