package models

import (
	"time"

	"gorm.io/datatypes"
)

// Support ticket statuses, stored verbatim.
const (
	TicketStatusOpen     = "Abierto"
	TicketStatusPending  = "Pendiente"
	TicketStatusAnswered = "Respondido"
	TicketStatusClosed   = "Cerrado"
)

const (
	MessageSenderUser  = "user"
	MessageSenderAdmin = "admin"
)

// TicketMessage is one entry of a ticket's append-only conversation.
type TicketMessage struct {
	Sender     string    `json:"sender"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
	ReadByUser bool      `json:"readByUser"`
}

// ContactRequest is a support ticket. Conversation holds the serialized
// []TicketMessage; entries are only ever appended or flagged read.
type ContactRequest struct {
	ID           uint `gorm:"primarykey"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	UserID       uint           `gorm:"index;not null"`
	UserEmail    string         `gorm:"type:varchar(255);not null"`
	Subject      string         `gorm:"type:varchar(255);not null"`
	Status       string         `gorm:"type:varchar(16);index;default:'Abierto'"`
	Conversation datatypes.JSON `gorm:"type:json;not null"`
}
