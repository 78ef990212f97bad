package repository

import (
	"context"

	"github.com/folio/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MeetingRepository defines the persistence interface for meeting requests.
type MeetingRepository interface {
	Save(ctx context.Context, m *model.MeetingRequest) error
	List(ctx context.Context, opts model.MeetingListOptions) ([]*model.MeetingRequest, error)
}

// PgMeetingRepository is the PostgreSQL implementation of MeetingRepository.
type PgMeetingRepository struct {
	pool *pgxpool.Pool
}

// NewPgMeetingRepository creates a repository backed by the given pool.
func NewPgMeetingRepository(pool *pgxpool.Pool) *PgMeetingRepository {
	return &PgMeetingRepository{pool: pool}
}

var _ MeetingRepository = (*PgMeetingRepository)(nil)

// Save inserts a new meeting_requests row and populates m.ID and
// m.CreatedAt from the database RETURNING clause.
func (r *PgMeetingRepository) Save(ctx context.Context, m *model.MeetingRequest) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO meeting_requests
		   (meeting_date, meeting_time, meeting_type, email, name, status, meeting_link)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		m.Date, m.Time, m.Type, m.Email, m.Name, m.Status, m.MeetingLink,
	).Scan(&m.ID, &m.CreatedAt)
}

// List returns meeting requests ordered by creation time, newest first.
func (r *PgMeetingRepository) List(ctx context.Context, opts model.MeetingListOptions) ([]*model.MeetingRequest, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, meeting_date, meeting_time, meeting_type, email, name,
		        status, meeting_link, created_at
		 FROM meeting_requests
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		opts.Limit, opts.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meetings []*model.MeetingRequest
	for rows.Next() {
		var m model.MeetingRequest
		if err := rows.Scan(&m.ID, &m.Date, &m.Time, &m.Type, &m.Email,
			&m.Name, &m.Status, &m.MeetingLink, &m.CreatedAt); err != nil {
			return nil, err
		}
		meetings = append(meetings, &m)
	}
	return meetings, rows.Err()
}
