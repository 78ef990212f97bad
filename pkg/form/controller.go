// Package form owns client-side contact form state: field values,
// validation, debounced draft persistence, saved contact info,
// connectivity gating and the submission lifecycle. The axes the UI
// used to juggle as loose flags are explicit here: a submission state
// machine, a draft timer, and an online gate.
package form

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// State is the submission axis of the controller.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSubmitted
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSubmitted:
		return "submitted"
	case StateError:
		return "error"
	}
	return "unknown"
}

// ErrOffline is returned when a submission is attempted while offline.
// No network call is made in that case.
var ErrOffline = errors.New("form: offline, submission not attempted")

// ErrInvalid is returned when validation blocks a submission; call
// Validate for the field-level detail.
var ErrInvalid = errors.New("form: validation failed")

// Fields is the full form snapshot, the unit of draft persistence.
type Fields struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Subject          string `json:"subject"`
	Message          string `json:"message"`
	PreferredContact string `json:"preferredContact"`
	HearAbout        string `json:"hearAbout"`
	Subscribe        bool   `json:"subscribe"`
	SaveInfo         bool   `json:"saveInfo"`
	Location         string `json:"location"`
}

// SavedInfo is the subset retained across sessions when the user opts in.
type SavedInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Submitter delivers a completed form to the gateway.
type Submitter interface {
	Submit(ctx context.Context, fields Fields, attachmentPaths []string) error
}

// Config tunes the controller's timers. Zero values take the defaults
// matching the original UI behavior.
type Config struct {
	// Debounce is the quiet period before a draft write (default 500ms).
	Debounce time.Duration
	// SavedFlash is how long the "saved" indicator stays on (default 2s).
	SavedFlash time.Duration
	// SuccessHold is how long StateSubmitted lasts before the form
	// returns to a blank StateIdle (default 3s).
	SuccessHold time.Duration
	// Online reports connectivity; nil means always online.
	Online func() bool
}

func (c *Config) withDefaults() {
	if c.Debounce == 0 {
		c.Debounce = 500 * time.Millisecond
	}
	if c.SavedFlash == 0 {
		c.SavedFlash = 2 * time.Second
	}
	if c.SuccessHold == 0 {
		c.SuccessHold = 3 * time.Second
	}
	if c.Online == nil {
		c.Online = func() bool { return true }
	}
}

// Controller owns all form state. Methods are safe for concurrent use;
// timers fire on background goroutines.
type Controller struct {
	mu          sync.Mutex
	fields      Fields
	attachments []string
	state       State
	lastErr     error

	store      Store
	gateway    Submitter
	cfg        Config
	draft      *time.Timer
	flash      *time.Timer
	hold       *time.Timer
	draftSaved bool
}

// NewController creates a Controller over the given store and gateway.
func NewController(store Store, gateway Submitter, cfg Config) *Controller {
	cfg.withDefaults()
	return &Controller{store: store, gateway: gateway, cfg: cfg}
}

// Load restores persisted state: saved contact info first, then the
// draft, so the draft wins for overlapping fields.
func (c *Controller) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var info SavedInfo
	if ok, err := c.store.Get(SavedInfoKey, &info); err != nil {
		return err
	} else if ok {
		c.fields.Name = info.Name
		c.fields.Email = info.Email
		c.fields.Phone = info.Phone
	}

	var draft Fields
	if ok, err := c.store.Get(DraftKey, &draft); err != nil {
		return err
	} else if ok {
		c.fields = draft
	}
	return nil
}

// Fields returns a copy of the current field values.
func (c *Controller) Fields() Fields {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fields
}

// State returns the current submission state and the error that caused
// it when the state is StateError.
func (c *Controller) State() (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state, c.lastErr
}

// DraftSaved reports whether the "saved" indicator is currently shown.
func (c *Controller) DraftSaved() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draftSaved
}

// Update applies a field mutation and (re)schedules the debounced draft
// write: many edits inside the quiet period collapse into one write.
func (c *Controller) Update(mutate func(*Fields)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	mutate(&c.fields)

	if c.draft != nil {
		c.draft.Stop()
	}
	c.draft = time.AfterFunc(c.cfg.Debounce, c.writeDraft)
}

// writeDraft persists the snapshot and flashes the saved indicator.
func (c *Controller) writeDraft() {
	c.mu.Lock()
	snapshot := c.fields
	c.mu.Unlock()

	if err := c.store.Set(DraftKey, snapshot); err != nil {
		slog.Warn("draft save failed", "error", err)
		return
	}

	c.mu.Lock()
	c.draftSaved = true
	if c.flash != nil {
		c.flash.Stop()
	}
	c.flash = time.AfterFunc(c.cfg.SavedFlash, func() {
		c.mu.Lock()
		c.draftSaved = false
		c.mu.Unlock()
	})
	c.mu.Unlock()
}

// AddAttachment queues a local file path for upload on submit.
func (c *Controller) AddAttachment(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.attachments = append(c.attachments, path)
}

// Attachments returns the queued attachment paths.
func (c *Controller) Attachments() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.attachments...)
}

// Validate returns field-level errors for the current values. An empty
// map means the form may be submitted.
func (c *Controller) Validate() map[string]string {
	c.mu.Lock()
	f := c.fields
	c.mu.Unlock()

	errs := map[string]string{}
	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = "Name is required"
	}
	switch {
	case strings.TrimSpace(f.Email) == "":
		errs["email"] = "Email is required"
	case !strings.Contains(f.Email, "@"):
		errs["email"] = "Email is invalid"
	}
	if strings.TrimSpace(f.Subject) == "" {
		errs["subject"] = "Subject is required"
	}
	if strings.TrimSpace(f.Message) == "" {
		errs["message"] = "Message is required"
	}
	return errs
}

// Submit runs the submission state machine once. The attempt is gated
// on connectivity and validation before any network call. On success
// the form resets, the draft is deleted and saved info is written or
// removed according to the SaveInfo flag; the submitted state
// auto-clears after the configured hold.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.state == StateSubmitting {
		c.mu.Unlock()
		return errors.New("form: submission already in progress")
	}

	if !c.cfg.Online() {
		c.state = StateError
		c.lastErr = ErrOffline
		c.mu.Unlock()
		return ErrOffline
	}

	fields := c.fields
	attachments := append([]string(nil), c.attachments...)
	c.mu.Unlock()

	if len(c.Validate()) > 0 {
		c.mu.Lock()
		c.state = StateError
		c.lastErr = ErrInvalid
		c.mu.Unlock()
		return ErrInvalid
	}

	c.mu.Lock()
	c.state = StateSubmitting
	c.lastErr = nil
	c.mu.Unlock()

	if err := c.gateway.Submit(ctx, fields, attachments); err != nil {
		c.mu.Lock()
		c.state = StateError
		c.lastErr = err
		c.mu.Unlock()
		return err
	}

	c.finishSuccess(fields)
	return nil
}

// finishSuccess resets the form after a confirmed submission.
func (c *Controller) finishSuccess(submitted Fields) {
	if submitted.SaveInfo {
		info := SavedInfo{Name: submitted.Name, Email: submitted.Email, Phone: submitted.Phone}
		if err := c.store.Set(SavedInfoKey, info); err != nil {
			slog.Warn("saved info write failed", "error", err)
		}
	} else {
		if err := c.store.Delete(SavedInfoKey); err != nil {
			slog.Warn("saved info delete failed", "error", err)
		}
	}
	if err := c.store.Delete(DraftKey); err != nil {
		slog.Warn("draft delete failed", "error", err)
	}

	c.mu.Lock()
	// Cancel any pending draft write so the cleared draft stays cleared.
	if c.draft != nil {
		c.draft.Stop()
	}
	c.fields = Fields{}
	c.attachments = nil
	c.state = StateSubmitted
	if c.hold != nil {
		c.hold.Stop()
	}
	c.hold = time.AfterFunc(c.cfg.SuccessHold, func() {
		c.mu.Lock()
		if c.state == StateSubmitted {
			c.state = StateIdle
		}
		c.mu.Unlock()
	})
	c.mu.Unlock()
}
