package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/notify"
	"github.com/folio/backend/internal/repository"
	"github.com/google/uuid"
)

// meetingServiceImpl is the production implementation of MeetingService.
type meetingServiceImpl struct {
	repo    repository.MeetingRepository
	mailer  Notifier
	ownerTo string
	// now is swappable in tests.
	now func() time.Time
}

// NewMeetingService creates a MeetingService backed by the given
// repository and notification chain.
func NewMeetingService(repo repository.MeetingRepository, mailer Notifier, ownerTo string) MeetingService {
	return &meetingServiceImpl{repo: repo, mailer: mailer, ownerTo: ownerTo, now: time.Now}
}

// Schedule fixes the status, synthesizes the meeting link, persists the
// request, then sends the confirmation and owner notice through the
// channel chain. As with submissions, only persistence failure is fatal.
func (s *meetingServiceImpl) Schedule(ctx context.Context, m *model.MeetingRequest) error {
	m.Status = model.MeetingStatusScheduled
	m.MeetingLink = s.meetingLink()

	if err := s.repo.Save(ctx, m); err != nil {
		return err
	}

	if email, err := notify.MeetingConfirmation(m); err != nil {
		slog.Error("render meeting confirmation", "error", err)
	} else {
		s.deliver(ctx, "meeting confirmation", email, m.ID)
	}

	if email, err := notify.MeetingNotification(s.ownerTo, m); err != nil {
		slog.Error("render meeting notification", "error", err)
	} else {
		s.deliver(ctx, "meeting notification", email, m.ID)
	}

	return nil
}

// List returns meeting requests according to the given pagination options.
func (s *meetingServiceImpl) List(ctx context.Context, opts model.MeetingListOptions) ([]*model.MeetingRequest, error) {
	return s.repo.List(ctx, opts)
}

// meetingLink synthesizes a room URL from the current time and a random
// suffix. The room is not provisioned anywhere; it materializes when the
// first participant opens the link.
func (s *meetingServiceImpl) meetingLink() string {
	return fmt.Sprintf("https://meet.jit.si/portfolio-%d-%s",
		s.now().Unix(), uuid.NewString()[:8])
}

func (s *meetingServiceImpl) deliver(ctx context.Context, kind string, email notify.Email, id string) {
	channel, err := s.mailer.Send(ctx, email)
	if err != nil {
		slog.Warn("email delivery failed on every channel",
			"kind", kind, "meeting_id", id, "error", err)
		return
	}
	slog.Info("email delivered", "kind", kind, "meeting_id", id, "channel", channel)
}
