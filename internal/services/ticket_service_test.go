package services

import (
	"maxios-backend/internal/database"
	"maxios-backend/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateTicket(t *testing.T) {
	setupTestDB()
	mr := setupTestRedis()
	defer mr.Close()

	ticket, err := CreateTicket(1, "miner@example.com", "Payout question", "Where is my payout?")
	assert.NoError(t, err)
	assert.Equal(t, models.TicketStatusOpen, ticket.Status)

	msgs, err := Conversation(ticket)
	assert.NoError(t, err)
	assert.Len(t, msgs, 1)
	assert.Equal(t, models.MessageSenderUser, msgs[0].Sender)
	assert.Equal(t, "Where is my payout?", msgs[0].Text)
	assert.False(t, msgs[0].ReadByUser)
}

func TestCreateTicketValidation(t *testing.T) {
	setupTestDB()

	_, err := CreateTicket(1, "miner@example.com", "", "text")
	assert.ErrorIs(t, err, ErrEmptySubject)

	_, err = CreateTicket(1, "miner@example.com", "subject", "")
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestTicketConversationIsAppendOnly(t *testing.T) {
	setupTestDB()
	mr := setupTestRedis()
	defer mr.Close()

	ticket, err := CreateTicket(1, "miner@example.com", "Help", "first message")
	assert.NoError(t, err)

	// Operator answers, ticket becomes Respondido
	ticket, err = AppendAdminReply(ticket.ID, "we are looking into it")
	assert.NoError(t, err)
	assert.Equal(t, models.TicketStatusAnswered, ticket.Status)

	// User follows up, ticket goes back to Pendiente
	ticket, err = AppendUserMessage(ticket.ID, 1, "any update?")
	assert.NoError(t, err)
	assert.Equal(t, models.TicketStatusPending, ticket.Status)

	msgs, err := Conversation(ticket)
	assert.NoError(t, err)
	assert.Len(t, msgs, 3)
	// Earlier entries are untouched, order preserved
	assert.Equal(t, "first message", msgs[0].Text)
	assert.Equal(t, "we are looking into it", msgs[1].Text)
	assert.Equal(t, models.MessageSenderAdmin, msgs[1].Sender)
	assert.Equal(t, "any update?", msgs[2].Text)
}

func TestUserCannotTouchOthersTicket(t *testing.T) {
	setupTestDB()
	mr := setupTestRedis()
	defer mr.Close()

	ticket, err := CreateTicket(1, "miner@example.com", "Help", "first message")
	assert.NoError(t, err)

	_, err = AppendUserMessage(ticket.ID, 2, "not my ticket")
	assert.ErrorIs(t, err, ErrTicketNotFound)

	err = MarkConversationRead(ticket.ID, 2)
	assert.ErrorIs(t, err, ErrTicketNotFound)
}

func TestClosedTicketRejectsMessages(t *testing.T) {
	setupTestDB()
	mr := setupTestRedis()
	defer mr.Close()

	ticket, err := CreateTicket(1, "miner@example.com", "Help", "first message")
	assert.NoError(t, err)

	closed, err := CloseTicket(ticket.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.TicketStatusClosed, closed.Status)

	_, err = AppendUserMessage(ticket.ID, 1, "one more thing")
	assert.ErrorIs(t, err, ErrTicketClosed)

	_, err = AppendAdminReply(ticket.ID, "too late")
	assert.ErrorIs(t, err, ErrTicketClosed)
}

func TestMarkConversationRead(t *testing.T) {
	setupTestDB()
	mr := setupTestRedis()
	defer mr.Close()

	ticket, err := CreateTicket(1, "miner@example.com", "Help", "first message")
	assert.NoError(t, err)

	_, err = AppendAdminReply(ticket.ID, "answer one")
	assert.NoError(t, err)
	_, err = AppendAdminReply(ticket.ID, "answer two")
	assert.NoError(t, err)

	assert.NoError(t, MarkConversationRead(ticket.ID, 1))

	var fresh models.ContactRequest
	database.DB.First(&fresh, ticket.ID)
	msgs, err := Conversation(&fresh)
	assert.NoError(t, err)
	for _, m := range msgs {
		if m.Sender == models.MessageSenderAdmin {
			assert.True(t, m.ReadByUser)
		}
	}
	// Text and order survive the read flag update
	assert.Equal(t, "first message", msgs[0].Text)
	assert.Len(t, msgs, 3)
}

func TestCountOpenTickets(t *testing.T) {
	setupTestDB()
	mr := setupTestRedis()
	defer mr.Close()

	open, _ := CreateTicket(1, "a@example.com", "s1", "m1")
	_, err := CreateTicket(2, "b@example.com", "s2", "m2")
	assert.NoError(t, err)
	answered, _ := CreateTicket(3, "c@example.com", "s3", "m3")

	_, err = AppendAdminReply(answered.ID, "done")
	assert.NoError(t, err)
	_, err = CloseTicket(open.ID)
	assert.NoError(t, err)

	// Only the untouched Abierto ticket still needs attention
	count, err := CountOpenTickets()
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
