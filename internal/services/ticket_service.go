package services

import (
	"encoding/json"
	"errors"
	"maxios-backend/internal/database"
	"maxios-backend/internal/models"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrTicketNotFound = errors.New("ticket not found")
	ErrTicketClosed   = errors.New("ticket is closed")
	ErrEmptyMessage   = errors.New("message must not be empty")
	ErrEmptySubject   = errors.New("subject must not be empty")
)

// Conversation decodes the ticket's message list.
func Conversation(t *models.ContactRequest) ([]models.TicketMessage, error) {
	if len(t.Conversation) == 0 {
		return nil, nil
	}
	var msgs []models.TicketMessage
	if err := json.Unmarshal(t.Conversation, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

func encodeConversation(msgs []models.TicketMessage) (datatypes.JSON, error) {
	raw, err := json.Marshal(msgs)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

// CreateTicket opens a new support request with the first user message.
func CreateTicket(userID uint, userEmail, subject, text string) (*models.ContactRequest, error) {
	if subject == "" {
		return nil, ErrEmptySubject
	}
	if text == "" {
		return nil, ErrEmptyMessage
	}

	conversation, err := encodeConversation([]models.TicketMessage{{
		Sender:    models.MessageSenderUser,
		Text:      text,
		Timestamp: time.Now(),
	}})
	if err != nil {
		return nil, err
	}

	ticket := &models.ContactRequest{
		UserID:       userID,
		UserEmail:    userEmail,
		Subject:      subject,
		Status:       models.TicketStatusOpen,
		Conversation: conversation,
	}
	if err := database.DB.Create(ticket).Error; err != nil {
		return nil, err
	}

	PublishChange("contactRequests", "created", ticket.ID, userID)
	return ticket, nil
}

// appendMessage adds one entry to the append-only conversation and moves
// the ticket to newStatus. Existing entries are never rewritten.
func appendMessage(ticketID uint, ownerID *uint, msg models.TicketMessage, newStatus string) (*models.ContactRequest, error) {
	var ticket models.ContactRequest
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		query := tx.Set("gorm:query_option", "FOR UPDATE")
		if ownerID != nil {
			query = query.Where("user_id = ?", *ownerID)
		}
		if err := query.First(&ticket, ticketID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTicketNotFound
			}
			return err
		}
		if ticket.Status == models.TicketStatusClosed {
			return ErrTicketClosed
		}

		msgs, err := Conversation(&ticket)
		if err != nil {
			return err
		}
		msgs = append(msgs, msg)
		conversation, err := encodeConversation(msgs)
		if err != nil {
			return err
		}

		return tx.Model(&ticket).Updates(map[string]interface{}{
			"conversation": conversation,
			"status":       newStatus,
			"updated_at":   time.Now(),
		}).Error
	})
	if err != nil {
		return nil, err
	}

	database.DB.First(&ticket, ticketID)
	PublishChange("contactRequests", "message", ticket.ID, ticket.UserID)
	return &ticket, nil
}

// AppendUserMessage adds a user reply; the ticket goes back to Pendiente
// so the back office sees it needs attention.
func AppendUserMessage(ticketID, userID uint, text string) (*models.ContactRequest, error) {
	if text == "" {
		return nil, ErrEmptyMessage
	}
	return appendMessage(ticketID, &userID, models.TicketMessage{
		Sender:    models.MessageSenderUser,
		Text:      text,
		Timestamp: time.Now(),
	}, models.TicketStatusPending)
}

// AppendAdminReply adds an operator reply and marks the ticket Respondido.
func AppendAdminReply(ticketID uint, text string) (*models.ContactRequest, error) {
	if text == "" {
		return nil, ErrEmptyMessage
	}
	return appendMessage(ticketID, nil, models.TicketMessage{
		Sender:    models.MessageSenderAdmin,
		Text:      text,
		Timestamp: time.Now(),
	}, models.TicketStatusAnswered)
}

// CloseTicket moves a ticket to its terminal Cerrado state.
func CloseTicket(ticketID uint) (*models.ContactRequest, error) {
	var ticket models.ContactRequest
	if err := database.DB.First(&ticket, ticketID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}

	if err := database.DB.Model(&ticket).Updates(map[string]interface{}{
		"status":     models.TicketStatusClosed,
		"updated_at": time.Now(),
	}).Error; err != nil {
		return nil, err
	}

	database.DB.First(&ticket, ticketID)
	PublishChange("contactRequests", "closed", ticket.ID, ticket.UserID)
	return &ticket, nil
}

// MarkConversationRead flags every admin message in the ticket as read by
// the user. Message text and order are untouched.
func MarkConversationRead(ticketID, userID uint) error {
	var ticket models.ContactRequest
	if err := database.DB.Where("user_id = ?", userID).First(&ticket, ticketID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTicketNotFound
		}
		return err
	}

	msgs, err := Conversation(&ticket)
	if err != nil {
		return err
	}

	changed := false
	for i := range msgs {
		if msgs[i].Sender == models.MessageSenderAdmin && !msgs[i].ReadByUser {
			msgs[i].ReadByUser = true
			changed = true
		}
	}
	if !changed {
		return nil
	}

	conversation, err := encodeConversation(msgs)
	if err != nil {
		return err
	}
	return database.DB.Model(&ticket).Update("conversation", conversation).Error
}

// FindTicketsByUser returns the user's tickets, newest first.
func FindTicketsByUser(userID uint) ([]models.ContactRequest, error) {
	var tickets []models.ContactRequest
	err := database.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&tickets).Error
	return tickets, err
}

// FindTickets returns all tickets for the back office, newest first.
func FindTickets(page, limit int) ([]models.ContactRequest, int64, error) {
	var tickets []models.ContactRequest
	var total int64

	if err := database.DB.Model(&models.ContactRequest{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := database.DB.Order("created_at desc").Limit(limit).Offset(offset).Find(&tickets).Error
	return tickets, total, err
}

// CountOpenTickets backs the back-office badge counter.
func CountOpenTickets() (int64, error) {
	var count int64
	err := database.DB.Model(&models.ContactRequest{}).
		Where("status IN ?", []string{models.TicketStatusOpen, models.TicketStatusPending}).
		Count(&count).Error
	return count, err
}
