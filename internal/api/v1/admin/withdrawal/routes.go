package withdrawal

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	withdrawalGroup := router.Group("/withdrawals")
	{
		withdrawalGroup.GET("", ListWithdrawals)
		withdrawalGroup.GET("/pending-count", PendingCount)
		withdrawalGroup.POST("/:id/complete", CompleteWithdrawal)
		withdrawalGroup.POST("/:id/reject", RejectWithdrawal)
	}
}
