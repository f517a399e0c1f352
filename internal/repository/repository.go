package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gerogew22122/BuiltBetterHomes/internal/model"
)

// NewPool opens a PostgreSQL connection pool and verifies connectivity.
func NewPool(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// Open selects a Store from databaseURL:
//
//	""                         in-memory store (lost on restart)
//	postgres://, postgresql:// PostgreSQL store
//	sqlite:<path>, file:<path> SQLite store
//
// defaults seed the settings record the first time it is read.
func Open(ctx context.Context, databaseURL string, defaults model.SettingsInput) (Store, error) {
	switch {
	case databaseURL == "":
		return NewMemoryStore(defaults), nil
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		pool, err := NewPool(ctx, databaseURL)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		return NewPgStore(pool, defaults), nil
	case strings.HasPrefix(databaseURL, "sqlite:"), strings.HasPrefix(databaseURL, "file:"):
		return OpenSQLite(ctx, sqlitePath(databaseURL), defaults)
	default:
		return nil, fmt.Errorf("unsupported database url scheme: %q", databaseURL)
	}
}

// sqlitePath strips the sqlite: scheme. file: URLs are passed through to the driver.
func sqlitePath(databaseURL string) string {
	if rest, ok := strings.CutPrefix(databaseURL, "sqlite://"); ok {
		return rest
	}
	if rest, ok := strings.CutPrefix(databaseURL, "sqlite:"); ok {
		return rest
	}
	return databaseURL
}
