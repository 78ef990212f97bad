package handler

import (
	"context"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/service"
)

// maxMultipartMemory bounds how much of the multipart body is held in
// memory while parsing; larger parts spill to temp files.
const maxMultipartMemory = 32 << 20

// Attachments uploads the submitted files and returns their public URLs.
type Attachments interface {
	SaveAll(ctx context.Context, files []*multipart.FileHeader) []string
}

// ContactHandler handles contact form submission and admin listing.
type ContactHandler struct {
	submissions service.SubmissionService
	attachments Attachments
}

// NewContactHandler creates a ContactHandler with the given service and
// attachment saver.
func NewContactHandler(submissions service.SubmissionService, attachments Attachments) *ContactHandler {
	return &ContactHandler{submissions: submissions, attachments: attachments}
}

// Submit handles POST /api/contact. The body is multipart form data;
// name, email, subject and message are required, everything else is
// optional. Attachments over the size limit are skipped, not rejected.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	name := r.FormValue("name")
	email := r.FormValue("email")
	subject := r.FormValue("subject")
	message := r.FormValue("message")
	if name == "" || email == "" || subject == "" || message == "" {
		writeError(w, http.StatusBadRequest, msgMissingFields)
		return
	}

	var files []*multipart.FileHeader
	if r.MultipartForm != nil {
		files = r.MultipartForm.File["files"]
	}
	fileURLs := h.attachments.SaveAll(r.Context(), files)

	sub := &model.ContactSubmission{
		Name:             name,
		Email:            email,
		Phone:            r.FormValue("phone"),
		Subject:          subject,
		Message:          message,
		PreferredContact: r.FormValue("preferredContact"),
		HearAbout:        r.FormValue("hearAbout"),
		Subscribe:        parseBool(r.FormValue("subscribe")),
		SaveInfo:         parseBool(r.FormValue("saveInfo")),
		FileURLs:         fileURLs,
		Location:         r.FormValue("location"),
	}

	if err := h.submissions.Submit(r.Context(), sub); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to submit contact form")
		return
	}

	writeSuccess(w, "Contact form submitted successfully", sub)
}

// AdminList handles GET /api/admin/contacts. Admin auth is enforced by
// middleware. Supports query params: subscribe (all/yes/no), limit, offset.
func (h *ContactHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	opts := model.ContactListOptions{
		Subscribe: r.URL.Query().Get("subscribe"),
		Limit:     20,
		Offset:    0,
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 100 {
			opts.Limit = n
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if n, err := strconv.Atoi(o); err == nil && n >= 0 {
			opts.Offset = n
		}
	}

	subs, err := h.submissions.List(r.Context(), opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, msgServerError)
		return
	}

	// Return [] not null for empty lists
	if subs == nil {
		subs = []*model.ContactSubmission{}
	}
	writeSuccess(w, "", subs)
}

// parseBool accepts the spellings browsers and form encoders produce for
// checkbox values.
func parseBool(s string) bool {
	switch s {
	case "true", "on", "1", "yes":
		return true
	}
	return false
}
