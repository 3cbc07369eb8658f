package ticket

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	ticketGroup := router.Group("/tickets")
	{
		ticketGroup.GET("", ListTickets)
		ticketGroup.GET("/open-count", OpenCount)
		ticketGroup.POST("/:id/reply", ReplyTicket)
		ticketGroup.POST("/:id/close", CloseTicket)
	}
}
