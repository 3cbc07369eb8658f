package user

import (
	"maxios-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup) {
	userGroup := router.Group("/user")
	userGroup.Use(middleware.AuthMiddleware())
	{
		userGroup.GET("/profile", GetProfile)
		userGroup.PATCH("/profile", UpdateProfile)
		userGroup.PATCH("/account", UpdateAccount)
	}
}
