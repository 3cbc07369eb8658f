package ticket

import (
	"maxios-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup) {
	ticketGroup := router.Group("/tickets")
	ticketGroup.Use(middleware.AuthMiddleware())
	{
		ticketGroup.GET("", ListTickets)
		ticketGroup.POST("", CreateTicket)
		ticketGroup.POST("/:id/reply", ReplyTicket)
		ticketGroup.POST("/:id/read", MarkRead)
	}
}
