package pool

import (
	"errors"
	"maxios-backend/internal/services"
	"maxios-backend/internal/utils"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ArbitragePoolInput struct {
	Name              string  `json:"name" binding:"required"`
	Cryptocurrency    string  `json:"cryptocurrency" binding:"required"`
	URL               string  `json:"url" binding:"required"`
	Port              string  `json:"port" binding:"required"`
	DefaultWorkerName string  `json:"defaultWorkerName"`
	Commission        float64 `json:"commission" binding:"gte=0,lte=100"`
	ThsRate           float64 `json:"thsRate" binding:"gte=0"`
	Description       string  `json:"description"`
	IsActive          bool    `json:"isActive"`
}

func (in ArbitragePoolInput) toService() services.ArbitragePoolInput {
	return services.ArbitragePoolInput{
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
}

// ListArbitragePools godoc
// @Summary List all arbitrage pools
// @Description Lists every configured arbitrage pool, active or not. Admin only.
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=[]models.ArbitragePool}
// @Router /admin/pools [get]
func ListArbitragePools(c *gin.Context) {
	pools, err := services.FindArbitragePools(false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch arbitrage pools"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Arbitrage pools retrieved successfully", pools))
}

// CreateArbitragePool godoc
// @Summary Create an arbitrage pool
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body ArbitragePoolInput true "Pool details"
// @Success 201 {object} utils.Response{data=models.ArbitragePool}
// @Failure 400 {object} utils.Response
// @Router /admin/pools [post]
func CreateArbitragePool(c *gin.Context) {
	var input ArbitragePoolInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	pool, err := services.CreateArbitragePool(input.toService())
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create arbitrage pool"))
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Arbitrage pool created successfully", pool))
}

// UpdateArbitragePool godoc
// @Summary Update an arbitrage pool
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Pool ID"
// @Param input body ArbitragePoolInput true "Pool details"
// @Success 200 {object} utils.Response{data=models.ArbitragePool}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/pools/{id} [put]
func UpdateArbitragePool(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid pool ID"))
		return
	}

	var input ArbitragePoolInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	pool, err := services.UpdateArbitragePool(uint(id), input.toService())
	if err != nil {
		if errors.Is(err, services.ErrPoolNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update arbitrage pool"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Arbitrage pool updated successfully", pool))
}

// DeleteArbitragePool godoc
// @Summary Delete an arbitrage pool
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Pool ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/pools/{id} [delete]
func DeleteArbitragePool(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid pool ID"))
		return
	}

	if err := services.DeleteArbitragePool(uint(id)); err != nil {
		if errors.Is(err, services.ErrPoolNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to delete arbitrage pool"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Arbitrage pool deleted successfully", nil))
}

// RunPayout godoc
// @Summary Trigger the daily mining payout
// @Description Runs the payout cycle immediately instead of waiting for the scheduler. Admin only.
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=services.PayoutResult}
// @Router /admin/pools/payout [post]
func RunPayout(c *gin.Context) {
	result, err := services.RunDailyPayout()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Payout run failed"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Payout run finished", result))
}
