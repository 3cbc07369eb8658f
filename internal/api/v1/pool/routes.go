package pool

import "github.com/gin-gonic/gin"

// RegisterRoutes wires the public, unauthenticated pool endpoints.
func RegisterRoutes(router *gin.RouterGroup) {
	poolGroup := router.Group("/pool")
	{
		poolGroup.GET("/stats", GetStats)
		poolGroup.GET("/config", GetConfig)
		poolGroup.GET("/content", GetContent)
		poolGroup.GET("/news", ListNews)
		poolGroup.GET("/arbitrage", ListArbitragePools)
		poolGroup.POST("/profitability", Estimate)
	}
}
