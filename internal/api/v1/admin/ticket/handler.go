package ticket

import (
	"errors"
	"maxios-backend/internal/models"
	"maxios-backend/internal/services"
	"maxios-backend/internal/utils"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type TicketListResponse struct {
	Tickets []models.ContactRequest `json:"tickets"`
	Total   int64                   `json:"total"`
	Page    int                     `json:"page"`
	Limit   int                     `json:"limit"`
}

type ReplyInput struct {
	Message string `json:"message" binding:"required"`
}

func ticketError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTicketNotFound):
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
	case errors.Is(err, services.ErrTicketClosed), errors.Is(err, services.ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to process ticket"))
	}
}

// ListTickets godoc
// @Summary List all support tickets
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} utils.Response{data=TicketListResponse}
// @Failure 400 {object} utils.Response
// @Router /admin/tickets [get]
func ListTickets(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid page number"))
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid limit number"))
		return
	}

	tickets, total, err := services.FindTickets(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch tickets"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Tickets retrieved successfully", TicketListResponse{
		Tickets: tickets,
		Total:   total,
		Page:    page,
		Limit:   limit,
	}))
}

// ReplyTicket godoc
// @Summary Reply to a support ticket
// @Description Appends an operator message and marks the ticket Respondido. Admin only.
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Ticket ID"
// @Param input body ReplyInput true "Message"
// @Success 200 {object} utils.Response{data=models.ContactRequest}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/tickets/{id}/reply [post]
func ReplyTicket(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid ticket ID"))
		return
	}

	var input ReplyInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	ticket, err := services.AppendAdminReply(uint(id), input.Message)
	if err != nil {
		ticketError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Reply added successfully", ticket))
}

// CloseTicket godoc
// @Summary Close a support ticket
// @Description Moves the ticket to its terminal Cerrado state. Admin only.
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Ticket ID"
// @Success 200 {object} utils.Response{data=models.ContactRequest}
// @Failure 404 {object} utils.Response
// @Router /admin/tickets/{id}/close [post]
func CloseTicket(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid ticket ID"))
		return
	}

	ticket, err := services.CloseTicket(uint(id))
	if err != nil {
		ticketError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Ticket closed successfully", ticket))
}

// OpenCount godoc
// @Summary Count tickets needing attention
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response
// @Router /admin/tickets/open-count [get]
func OpenCount(c *gin.Context) {
	count, err := services.CountOpenTickets()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to count tickets"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Open tickets counted", gin.H{"count": count}))
}
