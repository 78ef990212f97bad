package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/service"
)

// MeetingHandler handles meeting scheduling and admin listing.
type MeetingHandler struct {
	meetings service.MeetingService
}

// NewMeetingHandler creates a MeetingHandler with the given service.
func NewMeetingHandler(meetings service.MeetingService) *MeetingHandler {
	return &MeetingHandler{meetings: meetings}
}

// scheduleRequest is the expected JSON body for POST /api/meeting.
type scheduleRequest struct {
	Date  string `json:"date"`
	Time  string `json:"time"`
	Type  string `json:"type"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Schedule handles POST /api/meeting. All five fields are required;
// beyond presence there is no format validation.
func (h *MeetingHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if req.Date == "" || req.Time == "" || req.Type == "" || req.Email == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, msgMissingFields)
		return
	}

	m := &model.MeetingRequest{
		Date:  req.Date,
		Time:  req.Time,
		Type:  req.Type,
		Email: req.Email,
		Name:  req.Name,
	}

	if err := h.meetings.Schedule(r.Context(), m); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to schedule meeting")
		return
	}

	writeSuccess(w, "Meeting scheduled successfully", m)
}

// AdminList handles GET /api/admin/meetings. Admin auth is enforced by
// middleware.
func (h *MeetingHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	opts := model.MeetingListOptions{Limit: 20, Offset: 0}
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

	meetings, err := h.meetings.List(r.Context(), opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, msgServerError)
		return
	}

	if meetings == nil {
		meetings = []*model.MeetingRequest{}
	}
	writeSuccess(w, "", meetings)
}
