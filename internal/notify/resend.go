package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// resendEndpoint is the Resend send-email API.
const resendEndpoint = "https://api.resend.com/emails"

// ResendChannel delivers email through the Resend HTTP API.
// Uses raw HTTP calls (no SDK) to minimize external dependencies.
type ResendChannel struct {
	apiKey     string
	from       string
	endpoint   string
	httpClient *http.Client
}

// NewResendChannel creates a ResendChannel. An empty apiKey produces a
// channel whose Send always returns ErrNotConfigured.
func NewResendChannel(apiKey, from string) *ResendChannel {
	return &ResendChannel{
		apiKey:     apiKey,
		from:       from,
		endpoint:   resendEndpoint,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *ResendChannel) Name() string { return "resend" }

// Send posts the email to the Resend API.
func (c *ResendChannel) Send(ctx context.Context, email Email) error {
	if c.apiKey == "" {
		return ErrNotConfigured
	}

	body := map[string]any{
		"from":    c.from,
		"to":      []string{email.To},
		"subject": email.Subject,
		"html":    email.HTML,
	}
	if email.ReplyTo != "" {
		body["reply_to"] = email.ReplyTo
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint,
		bytes.NewReader(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var result struct {
		ID      string `json:"id"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		if result.Message != "" {
			return fmt.Errorf("resend send: %s", result.Message)
		}
		return fmt.Errorf("resend send: status %d", resp.StatusCode)
	}
	if result.ID == "" {
		return errors.New("resend send: empty message ID in response")
	}
	return nil
}
