package service

import (
	"context"

	"github.com/folio/backend/internal/model"
)

// SubmissionService defines the business logic for contact form submissions.
type SubmissionService interface {
	// Submit persists a new submission and then notifies by email on a
	// best-effort basis. The sub.ID and CreatedAt are populated by the
	// implementation. Only a persistence failure is returned as an
	// error; notification failures are logged and absorbed.
	Submit(ctx context.Context, sub *model.ContactSubmission) error

	// List returns persisted submissions according to the given options.
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, error)
}
