package repository

import (
	"context"
	"strconv"
	"strings"

	"github.com/folio/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContactSubmissionRepository defines the persistence interface for
// contact submissions. It is defined here (in repository) to avoid an
// import cycle with service.
type ContactSubmissionRepository interface {
	Save(ctx context.Context, sub *model.ContactSubmission) error
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, error)
}

// PgContactSubmissionRepository is the PostgreSQL implementation of
// ContactSubmissionRepository.
type PgContactSubmissionRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactSubmissionRepository creates a repository backed by the given pool.
func NewPgContactSubmissionRepository(pool *pgxpool.Pool) *PgContactSubmissionRepository {
	return &PgContactSubmissionRepository{pool: pool}
}

// Ensure PgContactSubmissionRepository implements the interface at compile time.
var _ ContactSubmissionRepository = (*PgContactSubmissionRepository)(nil)

// Save inserts a new contact_submissions row and populates sub.ID and
// sub.CreatedAt from the database RETURNING clause.
func (r *PgContactSubmissionRepository) Save(ctx context.Context, sub *model.ContactSubmission) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contact_submissions
		   (name, email, phone, subject, message, preferred_contact,
		    hear_about, subscribe, save_info, file_urls, location)
		 VALUES ($1, $2, NULLIF($3, ''), $4, $5, NULLIF($6, ''),
		         NULLIF($7, ''), $8, $9, $10, NULLIF($11, ''))
		 RETURNING id, created_at`,
		sub.Name, sub.Email, sub.Phone, sub.Subject, sub.Message,
		sub.PreferredContact, sub.HearAbout, sub.Subscribe, sub.SaveInfo,
		sub.FileURLs, sub.Location,
	).Scan(&sub.ID, &sub.CreatedAt)
}

// List returns submissions filtered by subscribe opt-in and paginated by
// limit/offset. Subscribe "" or "all" returns every submission.
func (r *PgContactSubmissionRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, error) {
	var conditions []string
	var args []any

	switch strings.TrimSpace(opts.Subscribe) {
	case "", "all":
	case "yes":
		conditions = append(conditions, "subscribe = TRUE")
	case "no":
		conditions = append(conditions, "subscribe = FALSE")
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	limitArg := len(args) + 1
	offsetArg := len(args) + 2
	args = append(args, opts.Limit, opts.Offset)

	query := `SELECT id, name, email, COALESCE(phone, ''), subject, message,
	                 COALESCE(preferred_contact, ''), COALESCE(hear_about, ''),
	                 subscribe, save_info, file_urls, COALESCE(location, ''),
	                 created_at
	          FROM contact_submissions ` + where +
		` ORDER BY created_at DESC
		  LIMIT $` + strconv.Itoa(limitArg) + ` OFFSET $` + strconv.Itoa(offsetArg)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*model.ContactSubmission
	for rows.Next() {
		var s model.ContactSubmission
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Subject,
			&s.Message, &s.PreferredContact, &s.HearAbout, &s.Subscribe,
			&s.SaveInfo, &s.FileURLs, &s.Location, &s.CreatedAt); err != nil {
			return nil, err
		}
		if s.FileURLs == nil {
			s.FileURLs = []string{}
		}
		subs = append(subs, &s)
	}
	return subs, rows.Err()
}
