package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gerogew22122/BuiltBetterHomes/internal/model"
)

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

// CreateContactSubmission inserts a contact_submissions row. ID and
// submitted_at come from the column defaults via RETURNING.
func (r *PgContactRepository) CreateContactSubmission(ctx context.Context, in model.ContactSubmissionInput) (*model.ContactSubmission, error) {
	sub := &model.ContactSubmission{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Budget:  in.Budget,
		Area:    in.Area,
		Message: in.Message,
	}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO contact_submissions (name, email, phone, budget, area, message)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, submitted_at`,
		sub.Name, sub.Email, sub.Phone, sub.Budget, sub.Area, sub.Message,
	).Scan(&sub.ID, &sub.SubmittedAt)
	if err != nil {
		return nil, pgErr(err)
	}
	return sub, nil
}

// ListContactSubmissions returns all submissions, newest first.
func (r *PgContactRepository) ListContactSubmissions(ctx context.Context) ([]*model.ContactSubmission, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, phone, budget, area, message, submitted_at
		 FROM contact_submissions
		 ORDER BY submitted_at DESC, seq DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subs := []*model.ContactSubmission{}
	for rows.Next() {
		var s model.ContactSubmission
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Budget, &s.Area, &s.Message, &s.SubmittedAt); err != nil {
			return nil, err
		}
		subs = append(subs, &s)
	}
	return subs, rows.Err()
}
