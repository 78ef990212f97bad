package service

import (
	"context"
	"log/slog"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/notify"
	"github.com/folio/backend/internal/repository"
)

// Notifier is the slice of notify.Chain the services depend on.
type Notifier interface {
	Send(ctx context.Context, email notify.Email) (string, error)
}

// submissionServiceImpl is the production implementation of SubmissionService.
type submissionServiceImpl struct {
	repo    repository.ContactSubmissionRepository
	mailer  Notifier
	ownerTo string
}

// NewSubmissionService creates a SubmissionService backed by the given
// repository and notification chain. ownerTo is the address that
// receives new-submission notices.
func NewSubmissionService(repo repository.ContactSubmissionRepository, mailer Notifier, ownerTo string) SubmissionService {
	return &submissionServiceImpl{repo: repo, mailer: mailer, ownerTo: ownerTo}
}

// Submit persists the submission, then attempts the owner notification
// and the auto-reply, each through the full channel chain. Persistence
// failure aborts; email failure never does. A submitter can therefore
// get a success response without any email having been sent — that is
// the documented policy: the record is durable, notification is
// best effort.
func (s *submissionServiceImpl) Submit(ctx context.Context, sub *model.ContactSubmission) error {
	if sub.FileURLs == nil {
		sub.FileURLs = []string{}
	}
	if err := s.repo.Save(ctx, sub); err != nil {
		return err
	}

	if email, err := notify.SubmissionNotification(s.ownerTo, sub); err != nil {
		slog.Error("render submission notification", "error", err)
	} else {
		s.deliver(ctx, "submission notification", email, sub.ID)
	}

	if email, err := notify.SubmissionAutoReply(sub); err != nil {
		slog.Error("render submission auto-reply", "error", err)
	} else {
		s.deliver(ctx, "submission auto-reply", email, sub.ID)
	}

	return nil
}

// List returns submissions according to the given filter/pagination options.
func (s *submissionServiceImpl) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, error) {
	return s.repo.List(ctx, opts)
}

// deliver runs one email through the chain and logs the outcome.
func (s *submissionServiceImpl) deliver(ctx context.Context, kind string, email notify.Email, id string) {
	channel, err := s.mailer.Send(ctx, email)
	if err != nil {
		slog.Warn("email delivery failed on every channel",
			"kind", kind, "submission_id", id, "error", err)
		return
	}
	slog.Info("email delivered", "kind", kind, "submission_id", id, "channel", channel)
}
