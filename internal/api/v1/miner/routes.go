package miner

import (
	"maxios-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup) {
	minerGroup := router.Group("/miners")
	minerGroup.Use(middleware.AuthMiddleware())
	{
		minerGroup.GET("", ListMiners)
		minerGroup.POST("", AddMiner)
		minerGroup.DELETE("/:id", DeleteMiner)
	}
}
