package settings

import (
	"maxios-backend/internal/services"
	"maxios-backend/internal/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Each settings document has its own typed endpoint pair so a malformed
// save can never corrupt an unrelated section.

// GetSite godoc
// @Summary Get site settings
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=services.SiteConfig}
// @Router /admin/settings/site [get]
func GetSite(c *gin.Context) {
	cfg, err := services.GetSiteConfig()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to load site settings"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Site settings retrieved successfully", cfg))
}

// SaveSite godoc
// @Summary Save site settings
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body services.SiteConfig true "Site settings"
// @Success 200 {object} utils.Response{data=services.SiteConfig}
// @Failure 400 {object} utils.Response
// @Router /admin/settings/site [put]
func SaveSite(c *gin.Context) {
	var cfg services.SiteConfig
	if !utils.BindAndValidate(c, &cfg) {
		return
	}
	if err := services.SaveSiteConfig(cfg); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to save site settings"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Site settings saved successfully", cfg))
}

// GetPool godoc
// @Summary Get pool settings
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=services.PoolConfig}
// @Router /admin/settings/pool [get]
func GetPool(c *gin.Context) {
	cfg, err := services.GetPoolConfig()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to load pool settings"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Pool settings retrieved successfully", cfg))
}

// SavePool godoc
// @Summary Save pool settings
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body services.PoolConfig true "Pool settings"
// @Success 200 {object} utils.Response{data=services.PoolConfig}
// @Failure 400 {object} utils.Response
// @Router /admin/settings/pool [put]
func SavePool(c *gin.Context) {
	var cfg services.PoolConfig
	if !utils.BindAndValidate(c, &cfg) {
		return
	}
	if err := services.SavePoolConfig(cfg); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to save pool settings"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Pool settings saved successfully", cfg))
}

// GetPayment godoc
// @Summary Get payment settings
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=services.PaymentConfig}
// @Router /admin/settings/payment [get]
func GetPayment(c *gin.Context) {
	cfg, err := services.GetPaymentConfig()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to load payment settings"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Payment settings retrieved successfully", cfg))
}

// SavePayment godoc
// @Summary Save payment settings
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body services.PaymentConfig true "Payment settings"
// @Success 200 {object} utils.Response{data=services.PaymentConfig}
// @Failure 400 {object} utils.Response
// @Router /admin/settings/payment [put]
func SavePayment(c *gin.Context) {
	var cfg services.PaymentConfig
	if !utils.BindAndValidate(c, &cfg) {
		return
	}
	if err := services.SavePaymentConfig(cfg); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to save payment settings"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Payment settings saved successfully", cfg))
}

// GetProfitability godoc
// @Summary Get profitability calculator settings
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=services.ProfitabilityConfig}
// @Router /admin/settings/profitability [get]
func GetProfitability(c *gin.Context) {
	cfg, err := services.GetProfitabilityConfig()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to load profitability settings"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Profitability settings retrieved successfully", cfg))
}

// SaveProfitability godoc
// @Summary Save profitability calculator settings
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body services.ProfitabilityConfig true "Profitability settings"
// @Success 200 {object} utils.Response{data=services.ProfitabilityConfig}
// @Failure 400 {object} utils.Response
// @Router /admin/settings/profitability [put]
func SaveProfitability(c *gin.Context) {
	var cfg services.ProfitabilityConfig
	if !utils.BindAndValidate(c, &cfg) {
		return
	}
	if err := services.SaveProfitabilityConfig(cfg); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to save profitability settings"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Profitability settings saved successfully", cfg))
}

// GetContent godoc
// @Summary Get site content
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=services.ContentConfig}
// @Router /admin/settings/content [get]
func GetContent(c *gin.Context) {
	cfg, err := services.GetContentConfig()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to load content"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Content retrieved successfully", cfg))
}

// SaveContent godoc
// @Summary Save site content
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body services.ContentConfig true "Content"
// @Success 200 {object} utils.Response{data=services.ContentConfig}
// @Failure 400 {object} utils.Response
// @Router /admin/settings/content [put]
func SaveContent(c *gin.Context) {
	var cfg services.ContentConfig
	if !utils.BindAndValidate(c, &cfg) {
		return
	}
	if err := services.SaveContentConfig(cfg); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to save content"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Content saved successfully", cfg))
}
