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

type CreateTicketInput struct {
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type ReplyInput struct {
	Message string `json:"message" binding:"required"`
}

func ticketError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTicketNotFound):
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
	case errors.Is(err, services.ErrTicketClosed),
		errors.Is(err, services.ErrEmptyMessage),
		errors.Is(err, services.ErrEmptySubject):
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to process ticket"))
	}
}

// CreateTicket godoc
// @Summary Open a support ticket
// @Tags ticket
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   input  body   CreateTicketInput  true  "Subject and first message"
// @Success 201 {object} utils.Response{data=models.ContactRequest}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Router /tickets [post]
func CreateTicket(c *gin.Context) {
	user, ok := c.MustGet("user").(models.User)
	if !ok {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Invalid user in context"))
		return
	}

	var input CreateTicketInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	ticket, err := services.CreateTicket(user.ID, user.Email, input.Subject, input.Message)
	if err != nil {
		ticketError(c, err)
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Ticket created successfully", ticket))
}

// ListTickets godoc
// @Summary List the user's support tickets
// @Tags ticket
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=[]models.ContactRequest}
// @Failure 401 {object} utils.Response
// @Router /tickets [get]
func ListTickets(c *gin.Context) {
	user, ok := c.MustGet("user").(models.User)
	if !ok {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Invalid user in context"))
		return
	}

	tickets, err := services.FindTicketsByUser(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to retrieve tickets"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Tickets retrieved successfully", tickets))
}

// ReplyTicket godoc
// @Summary Reply to a support ticket
// @Description Appends a user message to an open ticket
// @Tags ticket
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id     path   int         true  "Ticket ID"
// @Param   input  body   ReplyInput  true  "Message"
// @Success 200 {object} utils.Response{data=models.ContactRequest}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /tickets/{id}/reply [post]
func ReplyTicket(c *gin.Context) {
	user, ok := c.MustGet("user").(models.User)
	if !ok {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Invalid user in context"))
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid ticket ID"))
		return
	}

	var input ReplyInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	ticket, err := services.AppendUserMessage(uint(id), user.ID, input.Message)
	if err != nil {
		ticketError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Reply added successfully", ticket))
}

// MarkRead godoc
// @Summary Mark a ticket's admin replies as read
// @Tags ticket
// @Produce  json
// @Security ApiKeyAuth
// @Param   id  path   int  true  "Ticket ID"
// @Success 200 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /tickets/{id}/read [post]
func MarkRead(c *gin.Context) {
	user, ok := c.MustGet("user").(models.User)
	if !ok {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Invalid user in context"))
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid ticket ID"))
		return
	}

	if err := services.MarkConversationRead(uint(id), user.ID); err != nil {
		ticketError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Conversation marked as read", nil))
}
