package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gerogew22122/BuiltBetterHomes/internal/model"
)

// PgStore is the durable PostgreSQL Store. The schema is managed by cmd/migrate.
type PgStore struct {
	*PgUserRepository
	*PgContactRepository
	*PgSettingsRepository
	pool *pgxpool.Pool
}

var _ Store = (*PgStore)(nil)

// NewPgStore assembles the PostgreSQL repositories around a shared pool.
func NewPgStore(pool *pgxpool.Pool, defaults model.SettingsInput) *PgStore {
	return &PgStore{
		PgUserRepository:     NewPgUserRepository(pool),
		PgContactRepository:  NewPgContactRepository(pool),
		PgSettingsRepository: NewPgSettingsRepository(pool, defaults),
		pool:                 pool,
	}
}

// Ping checks the database connection.
func (s *PgStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close releases the pool.
func (s *PgStore) Close() error {
	s.pool.Close()
	return nil
}
