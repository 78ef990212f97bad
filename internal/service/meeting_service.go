package service

import (
	"context"

	"github.com/folio/backend/internal/model"
)

// MeetingService defines the business logic for meeting scheduling.
type MeetingService interface {
	// Schedule persists a new meeting request with status "scheduled"
	// and a synthesized meeting link, then emails a confirmation to the
	// requester and a notice to the site owner on a best-effort basis.
	Schedule(ctx context.Context, m *model.MeetingRequest) error

	// List returns persisted meeting requests, newest first.
	List(ctx context.Context, opts model.MeetingListOptions) ([]*model.MeetingRequest, error)
}
