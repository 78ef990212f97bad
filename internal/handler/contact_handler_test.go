package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/folio/backend/internal/model"
)

// ---------------------------------------------------------------------------
// Mocks
// ---------------------------------------------------------------------------

type mockSubmissionService struct {
	submitFunc func(ctx context.Context, sub *model.ContactSubmission) error
	listFunc   func(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, error)
}

func (m *mockSubmissionService) Submit(ctx context.Context, sub *model.ContactSubmission) error {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, sub)
	}
	return nil
}

func (m *mockSubmissionService) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

type mockAttachments struct {
	calls int
	urls  []string
}

func (m *mockAttachments) SaveAll(ctx context.Context, files []*multipart.FileHeader) []string {
	m.calls++
	if m.urls != nil {
		return m.urls
	}
	return []string{}
}

// contactForm builds a multipart request body from field values.
func contactForm(t *testing.T, fields map[string]string, fileNames ...string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	for _, name := range fileNames {
		fw, err := w.CreateFormFile("files", name)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write([]byte("content")); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	w.Close()
	return &buf, w.FormDataContentType()
}

func requiredFields() map[string]string {
	return map[string]string{
		"name":    "Alice",
		"email":   "alice@example.com",
		"subject": "Work inquiry",
		"message": "Hi, I have a project.",
	}
}

// ---------------------------------------------------------------------------
// POST /api/contact tests
// ---------------------------------------------------------------------------

func TestContactHandler_Submit_Success(t *testing.T) {
	var captured *model.ContactSubmission
	svc := &mockSubmissionService{
		submitFunc: func(ctx context.Context, sub *model.ContactSubmission) error {
			captured = sub
			return nil
		},
	}
	h := NewContactHandler(svc, &mockAttachments{})

	fields := requiredFields()
	fields["phone"] = "+81-90-0000-0000"
	fields["preferredContact"] = "whatsapp"
	fields["subscribe"] = "true"
	fields["location"] = "Tokyo, Japan"
	body, ct := contactForm(t, fields)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success bool                    `json:"success"`
		Data    model.ContactSubmission `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Error("expected success=true")
	}
	if resp.Data.Email != "alice@example.com" {
		t.Errorf("expected the persisted record echoed back, got %+v", resp.Data)
	}

	if captured == nil {
		t.Fatal("expected Submit to be called")
	}
	if !captured.Subscribe {
		t.Error("expected subscribe=true")
	}
	if captured.PreferredContact != "whatsapp" {
		t.Errorf("expected preferredContact=whatsapp, got %q", captured.PreferredContact)
	}
	if captured.Location != "Tokyo, Japan" {
		t.Errorf("expected location passed through, got %q", captured.Location)
	}
}

// Optional fields absent must still succeed.
func TestContactHandler_Submit_RequiredOnly(t *testing.T) {
	svc := &mockSubmissionService{}
	h := NewContactHandler(svc, &mockAttachments{})

	body, ct := contactForm(t, requiredFields())
	req := httptest.NewRequest(http.MethodPost, "/api/contact", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
}

// Each missing required field yields 400 with no persistence and no
// upload attempts.
func TestContactHandler_Submit_MissingRequiredField(t *testing.T) {
	for _, missing := range []string{"name", "email", "subject", "message"} {
		t.Run(missing, func(t *testing.T) {
			submitted := false
			svc := &mockSubmissionService{
				submitFunc: func(ctx context.Context, sub *model.ContactSubmission) error {
					submitted = true
					return nil
				},
			}
			saver := &mockAttachments{}
			h := NewContactHandler(svc, saver)

			fields := requiredFields()
			delete(fields, missing)
			body, ct := contactForm(t, fields, "cv.pdf")

			req := httptest.NewRequest(http.MethodPost, "/api/contact", body)
			req.Header.Set("Content-Type", ct)
			rec := httptest.NewRecorder()
			h.Submit(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
			var resp apiResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp.Success || resp.Message != msgMissingFields {
				t.Errorf("unexpected failure payload %+v", resp)
			}
			if submitted {
				t.Error("expected no persistence attempt")
			}
			if saver.calls != 0 {
				t.Error("expected no upload attempt")
			}
		})
	}
}

func TestContactHandler_Submit_FileURLsAttached(t *testing.T) {
	var captured *model.ContactSubmission
	svc := &mockSubmissionService{
		submitFunc: func(ctx context.Context, sub *model.ContactSubmission) error {
			captured = sub
			return nil
		},
	}
	saver := &mockAttachments{urls: []string{"/uploads/attachments/1-cv.pdf"}}
	h := NewContactHandler(svc, saver)

	body, ct := contactForm(t, requiredFields(), "cv.pdf")
	req := httptest.NewRequest(http.MethodPost, "/api/contact", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if saver.calls != 1 {
		t.Errorf("expected one SaveAll call, got %d", saver.calls)
	}
	if len(captured.FileURLs) != 1 || captured.FileURLs[0] != "/uploads/attachments/1-cv.pdf" {
		t.Errorf("expected collected file URLs on the record, got %v", captured.FileURLs)
	}
}

func TestContactHandler_Submit_PersistenceFailure(t *testing.T) {
	svc := &mockSubmissionService{
		submitFunc: func(ctx context.Context, sub *model.ContactSubmission) error {
			return errors.New("insert failed")
		},
	}
	h := NewContactHandler(svc, &mockAttachments{})

	body, ct := contactForm(t, requiredFields())
	req := httptest.NewRequest(http.MethodPost, "/api/contact", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

func TestContactHandler_Submit_NotMultipart(t *testing.T) {
	h := NewContactHandler(&mockSubmissionService{}, &mockAttachments{})

	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader([]byte("{}")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for non-multipart body, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// GET /api/admin/contacts tests
// ---------------------------------------------------------------------------

func TestContactHandler_AdminList_DefaultsAndClamps(t *testing.T) {
	var captured model.ContactListOptions
	svc := &mockSubmissionService{
		listFunc: func(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, error) {
			captured = opts
			return nil, nil
		},
	}
	h := NewContactHandler(svc, &mockAttachments{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/contacts?limit=500&offset=-2&subscribe=yes", nil)
	rec := httptest.NewRecorder()
	h.AdminList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if captured.Limit != 20 {
		t.Errorf("out-of-range limit should keep default 20, got %d", captured.Limit)
	}
	if captured.Offset != 0 {
		t.Errorf("negative offset should keep default 0, got %d", captured.Offset)
	}
	if captured.Subscribe != "yes" {
		t.Errorf("expected subscribe filter forwarded, got %q", captured.Subscribe)
	}
}

func TestContactHandler_AdminList_EmptyIsArray(t *testing.T) {
	h := NewContactHandler(&mockSubmissionService{}, &mockAttachments{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/contacts", nil)
	rec := httptest.NewRecorder()
	h.AdminList(rec, req)

	var resp struct {
		Data []any `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data == nil {
		t.Error("expected data to be [] not null")
	}
}
