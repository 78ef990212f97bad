// Package notify sends transactional email through an ordered list of
// delivery channels. The first channel that accepts the message wins;
// later channels are only tried when an earlier one fails.
package notify

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotConfigured is returned by a channel whose credentials are absent.
// The chain treats it like any other send failure.
var ErrNotConfigured = errors.New("notify: not configured")

// Email is one message to deliver. HTML is the rendered body.
type Email struct {
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

// Channel is a single email delivery mechanism.
type Channel interface {
	// Name identifies the channel in logs ("resend", "smtp").
	Name() string
	// Send delivers the email or returns an error.
	Send(ctx context.Context, email Email) error
}

// Chain tries channels in fixed order until one succeeds.
type Chain struct {
	channels []Channel
}

// NewChain creates a Chain over the given channels. Order is delivery
// preference: channels[0] is the primary provider.
func NewChain(channels ...Channel) *Chain {
	return &Chain{channels: channels}
}

// Channels returns the names of the configured channels, in order.
func (c *Chain) Channels() []string {
	names := make([]string, len(c.channels))
	for i, ch := range c.channels {
		names[i] = ch.Name()
	}
	return names
}

// Send attempts delivery through each channel in order and returns the
// name of the channel that succeeded. If every channel fails, the
// returned error joins all per-channel errors.
func (c *Chain) Send(ctx context.Context, email Email) (string, error) {
	if len(c.channels) == 0 {
		return "", errors.New("notify: no channels configured")
	}

	var errs []error
	for _, ch := range c.channels {
		if err := ch.Send(ctx, email); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", ch.Name(), err))
			continue
		}
		return ch.Name(), nil
	}
	return "", errors.Join(errs...)
}
