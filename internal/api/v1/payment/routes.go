package payment

import (
	"maxios-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup) {
	paymentGroup := router.Group("/payments")
	paymentGroup.Use(middleware.AuthMiddleware())
	{
		paymentGroup.GET("", ListPayments)
	}
}
