package settings

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	settingsGroup := router.Group("/settings")
	{
		settingsGroup.GET("/site", GetSite)
		settingsGroup.PUT("/site", SaveSite)
		settingsGroup.GET("/pool", GetPool)
		settingsGroup.PUT("/pool", SavePool)
		settingsGroup.GET("/payment", GetPayment)
		settingsGroup.PUT("/payment", SavePayment)
		settingsGroup.GET("/profitability", GetProfitability)
		settingsGroup.PUT("/profitability", SaveProfitability)
		settingsGroup.GET("/content", GetContent)
		settingsGroup.PUT("/content", SaveContent)
	}
}
