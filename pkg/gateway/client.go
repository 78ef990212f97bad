// Package gateway is an HTTP client for the portfolio form gateway.
// Uses raw HTTP calls against the gateway's JSON envelope.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/folio/backend/pkg/form"
)

// Client talks to a running gateway instance.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the given base URL (e.g.
// "http://localhost:8080").
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// envelope mirrors the gateway's response shape.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Submit posts the form as multipart data, attaching the files at the
// given local paths. It satisfies form.Submitter.
func (c *Client) Submit(ctx context.Context, fields form.Fields, attachmentPaths []string) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	values := map[string]string{
		"name":             fields.Name,
		"email":            fields.Email,
		"phone":            fields.Phone,
		"subject":          fields.Subject,
		"message":          fields.Message,
		"preferredContact": fields.PreferredContact,
		"hearAbout":        fields.HearAbout,
		"subscribe":        strconv.FormatBool(fields.Subscribe),
		"saveInfo":         strconv.FormatBool(fields.SaveInfo),
		"location":         fields.Location,
	}
	for k, v := range values {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("gateway: write field: %w", err)
		}
	}

	for _, path := range attachmentPaths {
		if err := attachFile(w, path); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("gateway: close multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/contact", &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	_, err = c.do(req)
	return err
}

// Meeting is the request body for ScheduleMeeting.
type Meeting struct {
	Date  string `json:"date"`
	Time  string `json:"time"`
	Type  string `json:"type"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// ScheduledMeeting is the gateway's echo of the persisted request.
type ScheduledMeeting struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	MeetingLink string `json:"meetingLink"`
}

// ScheduleMeeting posts a meeting request and returns the persisted
// record with its synthesized join link.
func (c *Client) ScheduleMeeting(ctx context.Context, m Meeting) (*ScheduledMeeting, error) {
	body, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/meeting", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	data, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var scheduled ScheduledMeeting
	if err := json.Unmarshal(data, &scheduled); err != nil {
		return nil, fmt.Errorf("gateway: decode meeting: %w", err)
	}
	return &scheduled, nil
}

// SendChat posts one chat message for fan-out.
func (c *Client) SendChat(ctx context.Context, text string) error {
	body, err := json.Marshal(map[string]string{"sender": "visitor", "text": text})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	_, err = c.do(req)
	return err
}

// Online reports whether the gateway is reachable. Used as the
// connectivity gate for form submission.
func (c *Client) Online() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/api/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// do runs the request and unwraps the gateway envelope.
func (c *Client) do(req *http.Request) (json.RawMessage, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("gateway: decode response: %w", err)
	}
	if !env.Success {
		if env.Message != "" {
			return nil, fmt.Errorf("gateway: %s", env.Message)
		}
		return nil, fmt.Errorf("gateway: status %d", resp.StatusCode)
	}
	return env.Data, nil
}

func attachFile(w *multipart.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("gateway: open attachment: %w", err)
	}
	defer f.Close()

	fw, err := w.CreateFormFile("files", filepath.Base(path))
	if err != nil {
		return fmt.Errorf("gateway: create form file: %w", err)
	}
	if _, err := io.Copy(fw, f); err != nil {
		return fmt.Errorf("gateway: copy attachment: %w", err)
	}
	return nil
}
