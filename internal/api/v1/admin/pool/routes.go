package pool

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	poolGroup := router.Group("/pools")
	{
		poolGroup.GET("", ListArbitragePools)
		poolGroup.POST("", CreateArbitragePool)
		poolGroup.POST("/payout", RunPayout)
		poolGroup.PUT("/:id", UpdateArbitragePool)
		poolGroup.DELETE("/:id", DeleteArbitragePool)
	}
}
