package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gerogew22122/BuiltBetterHomes/internal/model"
)

// PgUserRepository is the PostgreSQL implementation of UserRepository.
type PgUserRepository struct {
	pool *pgxpool.Pool
}

// NewPgUserRepository creates a PgUserRepository backed by the given pool.
func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

var _ UserRepository = (*PgUserRepository)(nil)

const userSelectCols = `id, username, password_hash`

func scanUser(scan func(...any) error) (*model.User, error) {
	var u model.User
	if err := scan(&u.ID, &u.Username, &u.PasswordHash); err != nil {
		return nil, pgErr(err)
	}
	return &u, nil
}

// CreateUser inserts a users row and populates user.ID from RETURNING.
func (r *PgUserRepository) CreateUser(ctx context.Context, user *model.User) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (username, password_hash) VALUES ($1, $2) RETURNING id`,
		user.Username, user.PasswordHash,
	).Scan(&user.ID)
	return pgErr(err)
}

// GetUser looks a user up by ID.
func (r *PgUserRepository) GetUser(ctx context.Context, id string) (*model.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userSelectCols+` FROM users WHERE id = $1`, id)
	return scanUser(row.Scan)
}

// GetUserByUsername looks a user up by username.
func (r *PgUserRepository) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userSelectCols+` FROM users WHERE username = $1`, username)
	return scanUser(row.Scan)
}
