package models

import (
	"time"

	"github.com/google/uuid"
)

// Sender tags who authored a message
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message represents a single chat entry. Values are copied out of the
// conversation store, so a Message never changes once created.
type Message struct {
	ID        string
	Text      string
	Sender    Sender
	CreatedAt time.Time
}

// NewUserMessage creates a user-authored message
func NewUserMessage(text string) Message {
	return newMessage(text, SenderUser)
}

// NewBotMessage creates a bot-authored message
func NewBotMessage(text string) Message {
	return newMessage(text, SenderBot)
}

func newMessage(text string, sender Sender) Message {
	return Message{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    sender,
		CreatedAt: time.Now(),
	}
}

// IsUser reports whether the message was typed by the user
func (m Message) IsUser() bool {
	return m.Sender == SenderUser
}
