package model

import "time"

// Chat message senders.
const (
	ChatSenderVisitor = "visitor"
	ChatSenderSupport = "support"
)

// ChatMessage is one message relayed over the realtime chat channel.
// Messages are not persisted; the relay only fans them out.
type ChatMessage struct {
	Sender string    `json:"sender"` // "visitor" | "support"
	Text   string    `json:"text"`
	SentAt time.Time `json:"sentAt"`
}
