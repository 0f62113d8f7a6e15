package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChatSender identifies which side of the conversation a message belongs to.
type ChatSender string

const (
	SenderUser ChatSender = "user"
	SenderBot  ChatSender = "bot"
)

// ChatMessage is one entry in the client-local chat transcript.
// The transcript is append-only and ordered by submission time;
// nothing here is persisted server-side.
type ChatMessage struct {
	ID      uuid.UUID  `json:"id"`
	Sender  ChatSender `json:"sender"`
	Text    string     `json:"text"`
	SentAt  time.Time  `json:"timestamp"`
	IsError bool       `json:"is_error,omitempty"`
}

// NewUserMessage builds a transcript entry for text the guest typed.
func NewUserMessage(text string) ChatMessage {
	return ChatMessage{ID: uuid.New(), Sender: SenderUser, Text: text, SentAt: time.Now()}
}

// NewBotMessage builds a transcript entry for a chatbot reply.
func NewBotMessage(text string) ChatMessage {
	return ChatMessage{ID: uuid.New(), Sender: SenderBot, Text: text, SentAt: time.Now()}
}

// NewBotError builds a synthetic bot-side entry carrying a diagnostic.
// Used when a chat request fails or cannot be attempted.
func NewBotError(text string) ChatMessage {
	m := NewBotMessage(text)
	m.IsError = true
	return m
}
