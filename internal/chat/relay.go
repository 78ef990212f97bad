// Package chat relays portfolio chat messages over NATS. Messages are
// fanned out to subscribers and never persisted.
package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/folio/backend/internal/model"
	"github.com/nats-io/nats.go"
)

// Subjects for the two directions of the chat channel.
const (
	SubjectVisitor = "portfolio.chat.visitor"
	SubjectSupport = "portfolio.chat.support"
)

// publishTimeout bounds each publish so a hung broker cannot hang the
// HTTP request that triggered it.
const publishTimeout = 5 * time.Second

// Conn is the subset of *nats.Conn the relay uses.
type Conn interface {
	Publish(subj string, data []byte) error
	Subscribe(subj string, cb nats.MsgHandler) (*nats.Subscription, error)
	FlushWithContext(ctx context.Context) error
	Drain() error
}

// Relay publishes visitor messages and delivers support replies.
type Relay struct {
	conn Conn
}

// Connect dials the NATS server and returns a Relay over the connection.
func Connect(url string) (*Relay, error) {
	conn, err := nats.Connect(url,
		nats.Name("portfolio-chat"),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("chat: connect: %w", err)
	}
	return &Relay{conn: conn}, nil
}

// NewRelay wraps an existing connection; used by tests.
func NewRelay(conn Conn) *Relay {
	return &Relay{conn: conn}
}

// Publish fans the message out on the subject matching its sender.
// The flush is bounded by publishTimeout regardless of ctx.
func (r *Relay) Publish(ctx context.Context, msg model.ChatMessage) error {
	if msg.SentAt.IsZero() {
		msg.SentAt = time.Now().UTC()
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("chat: marshal: %w", err)
	}

	subject := SubjectVisitor
	if msg.Sender == model.ChatSenderSupport {
		subject = SubjectSupport
	}

	if err := r.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("chat: publish: %w", err)
	}

	flushCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	if err := r.conn.FlushWithContext(flushCtx); err != nil {
		return fmt.Errorf("chat: flush: %w", err)
	}
	return nil
}

// SubscribeReplies delivers support-sender messages to handler.
// Malformed payloads are dropped.
func (r *Relay) SubscribeReplies(handler func(model.ChatMessage)) (*nats.Subscription, error) {
	sub, err := r.conn.Subscribe(SubjectSupport, func(m *nats.Msg) {
		var msg model.ChatMessage
		if err := json.Unmarshal(m.Data, &msg); err != nil {
			return
		}
		handler(msg)
	})
	if err != nil {
		return nil, fmt.Errorf("chat: subscribe: %w", err)
	}
	return sub, nil
}

// Close drains the connection, letting in-flight messages settle.
func (r *Relay) Close() error {
	return r.conn.Drain()
}
