package news

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	newsGroup := router.Group("/news")
	{
		newsGroup.POST("", CreateNews)
		newsGroup.PUT("/:id", UpdateNews)
		newsGroup.DELETE("/:id", DeleteNews)
	}
}
