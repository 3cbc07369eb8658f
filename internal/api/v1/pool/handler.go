package pool

import (
	"maxios-backend/internal/models"
	"maxios-backend/internal/services"
	"maxios-backend/internal/utils"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type NewsListResponse struct {
	News  []models.News `json:"news"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

// GetStats godoc
// @Summary Public pool statistics
// @Description Returns aggregate hashrate, active workers and user count
// @Tags pool
// @Produce  json
// @Success 200 {object} utils.Response{data=services.PoolStats}
// @Failure 500 {object} utils.Response
// @Router /pool/stats [get]
func GetStats(c *gin.Context) {
	stats, err := services.GetPoolStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to compute pool stats"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Pool stats retrieved successfully", stats))
}

// GetConfig godoc
// @Summary Public pool connection settings
// @Description Returns the stratum URL, port and default worker naming
// @Tags pool
// @Produce  json
// @Success 200 {object} utils.Response{data=services.PoolConfig}
// @Failure 500 {object} utils.Response
// @Router /pool/config [get]
func GetConfig(c *gin.Context) {
	cfg, err := services.GetPoolConfig()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to load pool config"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Pool config retrieved successfully", cfg))
}

// GetContent godoc
// @Summary Public site content
// @Tags pool
// @Produce  json
// @Success 200 {object} utils.Response{data=services.ContentConfig}
// @Failure 500 {object} utils.Response
// @Router /pool/content [get]
func GetContent(c *gin.Context) {
	cfg, err := services.GetContentConfig()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to load content"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Content retrieved successfully", cfg))
}

// Estimate godoc
// @Summary Profitability calculator
// @Description Estimates daily, weekly, monthly and annual earnings for a given hashrate and electricity cost
// @Tags pool
// @Accept  json
// @Produce  json
// @Param   input  body   services.ProfitabilityInput  true  "Calculator input"
// @Success 200 {object} utils.Response{data=services.ProfitabilityResult}
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /pool/profitability [post]
func Estimate(c *gin.Context) {
	var input services.ProfitabilityInput
	if !utils.BindAndValidate(c, &input) {
		return
	}
	if input.Hashrate < 0 || input.PowerWatts < 0 || input.CostPerKWH < 0 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Inputs must not be negative"))
		return
	}

	result, err := services.EstimateProfitability(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to estimate profitability"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Profitability estimated successfully", result))
}

// ListNews godoc
// @Summary Public news feed
// @Tags pool
// @Produce  json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} utils.Response{data=NewsListResponse}
// @Failure 500 {object} utils.Response
// @Router /pool/news [get]
func ListNews(c *gin.Context) {
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

	items, total, err := services.FindNews(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch news"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("News retrieved successfully", NewsListResponse{
		News:  items,
		Total: total,
		Page:  page,
		Limit: limit,
	}))
}

// ListArbitragePools godoc
// @Summary Published arbitrage pools
// @Tags pool
// @Produce  json
// @Success 200 {object} utils.Response{data=[]models.ArbitragePool}
// @Failure 500 {object} utils.Response
// @Router /pool/arbitrage [get]
func ListArbitragePools(c *gin.Context) {
	pools, err := services.FindArbitragePools(true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch arbitrage pools"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Arbitrage pools retrieved successfully", pools))
}
