package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/folio/backend/internal/model"
)

// ---------------------------------------------------------------------------
// mockMeetingRepo
// ---------------------------------------------------------------------------

type mockMeetingRepo struct {
	saveFunc func(ctx context.Context, m *model.MeetingRequest) error
	listFunc func(ctx context.Context, opts model.MeetingListOptions) ([]*model.MeetingRequest, error)
}

func (r *mockMeetingRepo) Save(ctx context.Context, m *model.MeetingRequest) error {
	if r.saveFunc != nil {
		return r.saveFunc(ctx, m)
	}
	return nil
}

func (r *mockMeetingRepo) List(ctx context.Context, opts model.MeetingListOptions) ([]*model.MeetingRequest, error) {
	if r.listFunc != nil {
		return r.listFunc(ctx, opts)
	}
	return nil, nil
}

// ---------------------------------------------------------------------------
// Schedule tests
// ---------------------------------------------------------------------------

func TestMeetingService_Schedule_SetsStatusAndLink(t *testing.T) {
	var saved *model.MeetingRequest
	repo := &mockMeetingRepo{
		saveFunc: func(ctx context.Context, m *model.MeetingRequest) error {
			saved = m
			return nil
		},
	}
	svc := NewMeetingService(repo, &mockNotifier{}, "owner@example.com").(*meetingServiceImpl)
	svc.now = func() time.Time { return time.Unix(1700000000, 0) }

	m := &model.MeetingRequest{
		Date: "2026-09-15", Time: "14:00", Type: "video",
		Email: "bob@example.com", Name: "Bob",
	}
	if err := svc.Schedule(context.Background(), m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if saved.Status != model.MeetingStatusScheduled {
		t.Errorf("expected status=scheduled, got %q", saved.Status)
	}
	if !strings.HasPrefix(saved.MeetingLink, "https://meet.jit.si/portfolio-1700000000-") {
		t.Errorf("unexpected meeting link %q", saved.MeetingLink)
	}
}

func TestMeetingService_Schedule_SendsConfirmationAndNotice(t *testing.T) {
	mailer := &mockNotifier{}
	svc := NewMeetingService(&mockMeetingRepo{}, mailer, "owner@example.com")

	m := &model.MeetingRequest{
		Date: "2026-09-15", Time: "14:00", Type: "video",
		Email: "bob@example.com", Name: "Bob",
	}
	if err := svc.Schedule(context.Background(), m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mailer.sent) != 2 {
		t.Fatalf("expected 2 emails (confirmation + notice), got %d", len(mailer.sent))
	}
	if mailer.sent[0].To != "bob@example.com" {
		t.Errorf("confirmation should go to requester, got %q", mailer.sent[0].To)
	}
	if mailer.sent[1].To != "owner@example.com" {
		t.Errorf("notice should go to owner, got %q", mailer.sent[1].To)
	}
	if !strings.Contains(mailer.sent[0].HTML, m.MeetingLink) {
		t.Error("confirmation body should contain the meeting link")
	}
}

func TestMeetingService_Schedule_PersistenceFailureAborts(t *testing.T) {
	repo := &mockMeetingRepo{
		saveFunc: func(ctx context.Context, m *model.MeetingRequest) error {
			return errors.New("insert failed")
		},
	}
	mailer := &mockNotifier{}
	svc := NewMeetingService(repo, mailer, "owner@example.com")

	m := &model.MeetingRequest{Date: "d", Time: "t", Type: "video", Email: "e@e.com", Name: "N"}
	if err := svc.Schedule(context.Background(), m); err == nil {
		t.Fatal("expected persistence error to propagate")
	}
	if len(mailer.sent) != 0 {
		t.Errorf("expected no emails after failed insert, got %d", len(mailer.sent))
	}
}
