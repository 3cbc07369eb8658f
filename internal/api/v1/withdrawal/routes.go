package withdrawal

import (
	"maxios-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup) {
	withdrawalGroup := router.Group("/withdrawals")
	withdrawalGroup.Use(middleware.AuthMiddleware())
	{
		withdrawalGroup.GET("", ListWithdrawals)
		withdrawalGroup.POST("", CreateWithdrawal)
	}
}
