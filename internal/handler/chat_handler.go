package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/folio/backend/internal/model"
)

// ChatPublisher fans a chat message out to the realtime channel.
type ChatPublisher interface {
	Publish(ctx context.Context, msg model.ChatMessage) error
}

// ChatHandler handles POST /api/chat. A nil publisher means the relay
// is not configured; the endpoint then reports unavailable.
type ChatHandler struct {
	relay ChatPublisher
}

// NewChatHandler creates a ChatHandler over the given publisher.
func NewChatHandler(relay ChatPublisher) *ChatHandler {
	return &ChatHandler{relay: relay}
}

type chatRequest struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// Send publishes one visitor message for fan-out. Messages are not
// persisted; a dropped message is a dropped message.
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	if h.relay == nil {
		writeError(w, http.StatusServiceUnavailable, "Chat is not available")
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, msgMissingFields)
		return
	}

	sender := req.Sender
	if sender == "" {
		sender = model.ChatSenderVisitor
	}

	msg := model.ChatMessage{Sender: sender, Text: req.Text}
	if err := h.relay.Publish(r.Context(), msg); err != nil {
		slog.Error("chat publish failed", "error", err)
		writeError(w, http.StatusBadGateway, "Failed to deliver chat message")
		return
	}

	writeSuccess(w, "Message sent", nil)
}
