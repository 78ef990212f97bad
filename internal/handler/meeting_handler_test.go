package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/folio/backend/internal/model"
)

// ---------------------------------------------------------------------------
// Mock MeetingService
// ---------------------------------------------------------------------------

type mockMeetingService struct {
	scheduleFunc func(ctx context.Context, m *model.MeetingRequest) error
	listFunc     func(ctx context.Context, opts model.MeetingListOptions) ([]*model.MeetingRequest, error)
}

func (s *mockMeetingService) Schedule(ctx context.Context, m *model.MeetingRequest) error {
	if s.scheduleFunc != nil {
		return s.scheduleFunc(ctx, m)
	}
	return nil
}

func (s *mockMeetingService) List(ctx context.Context, opts model.MeetingListOptions) ([]*model.MeetingRequest, error) {
	if s.listFunc != nil {
		return s.listFunc(ctx, opts)
	}
	return nil, nil
}

// ---------------------------------------------------------------------------
// POST /api/meeting tests
// ---------------------------------------------------------------------------

func TestMeetingHandler_Schedule_Success(t *testing.T) {
	svc := &mockMeetingService{
		scheduleFunc: func(ctx context.Context, m *model.MeetingRequest) error {
			// The service assigns these before persisting.
			m.ID = "m1"
			m.Status = model.MeetingStatusScheduled
			m.MeetingLink = "https://meet.jit.si/portfolio-1-abc"
			return nil
		},
	}
	h := NewMeetingHandler(svc)

	body := `{"date":"2026-09-15","time":"14:00","type":"video","email":"bob@example.com","name":"Bob"}`
	req := httptest.NewRequest(http.MethodPost, "/api/meeting", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Schedule(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success bool                 `json:"success"`
		Data    model.MeetingRequest `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Error("expected success=true")
	}
	if resp.Data.Status != "scheduled" {
		t.Errorf("expected status=scheduled in echo, got %q", resp.Data.Status)
	}
	if resp.Data.MeetingLink == "" {
		t.Error("expected meetingLink in response data")
	}
}

func TestMeetingHandler_Schedule_MissingField(t *testing.T) {
	fields := map[string]string{
		"date": "2026-09-15", "time": "14:00", "type": "video",
		"email": "bob@example.com", "name": "Bob",
	}
	for missing := range fields {
		t.Run(missing, func(t *testing.T) {
			scheduled := false
			svc := &mockMeetingService{
				scheduleFunc: func(ctx context.Context, m *model.MeetingRequest) error {
					scheduled = true
					return nil
				},
			}
			h := NewMeetingHandler(svc)

			partial := map[string]string{}
			for k, v := range fields {
				if k != missing {
					partial[k] = v
				}
			}
			body, _ := json.Marshal(partial)
			req := httptest.NewRequest(http.MethodPost, "/api/meeting", strings.NewReader(string(body)))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			h.Schedule(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
			if scheduled {
				t.Error("expected no schedule attempt")
			}
		})
	}
}

func TestMeetingHandler_Schedule_InvalidJSON(t *testing.T) {
	h := NewMeetingHandler(&mockMeetingService{})

	req := httptest.NewRequest(http.MethodPost, "/api/meeting", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.Schedule(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestMeetingHandler_Schedule_PersistenceFailure(t *testing.T) {
	svc := &mockMeetingService{
		scheduleFunc: func(ctx context.Context, m *model.MeetingRequest) error {
			return errors.New("insert failed")
		},
	}
	h := NewMeetingHandler(svc)

	body := `{"date":"d","time":"t","type":"video","email":"e@e.com","name":"N"}`
	req := httptest.NewRequest(http.MethodPost, "/api/meeting", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Schedule(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}
