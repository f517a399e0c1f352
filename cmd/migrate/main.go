// Command migrate applies the PostgreSQL schema in migrations/ to DATABASE_URL.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gerogew22122/BuiltBetterHomes/internal/config"
	"github.com/gerogew22122/BuiltBetterHomes/internal/logging"
	"github.com/gerogew22122/BuiltBetterHomes/internal/repository"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate [command]

Commands:
  (default)   apply pending migrations
  status      list applied and pending migrations
  reset       drop every table and recreate from the consolidated schema
  fresh       drop every table and apply all migrations in order`)
	os.Exit(1)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	if !isPostgresURL(cfg.DatabaseURL) {
		logging.Fatal("DATABASE_URL must be a postgres:// URL; the SQLite store migrates itself on open")
	}

	ctx := context.Background()
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("connect failed", "error", err)
	}
	defer pool.Close()

	migrationDir := findMigrationDir()

	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "":
		err = runIncremental(ctx, pool, migrationDir)
	case "status":
		err = runStatus(ctx, pool, migrationDir)
	case "reset":
		if err = runDropAll(ctx, pool, migrationDir); err == nil {
			err = runConsolidated(ctx, pool, migrationDir)
		}
	case "fresh":
		if err = runDropAll(ctx, pool, migrationDir); err == nil {
			err = runIncremental(ctx, pool, migrationDir)
		}
	default:
		usage()
	}
	if err != nil {
		logging.Fatal("migrate failed", "command", cmd, "error", err)
	}
}

func isPostgresURL(s string) bool {
	return strings.HasPrefix(s, "postgres://") || strings.HasPrefix(s, "postgresql://")
}

func findMigrationDir() string {
	dir := "migrations"
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		dir = "../../migrations"
	}
	return dir
}

// collectUpFiles returns the .up.sql file names in dir, sorted.
func collectUpFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".up.sql") {
			files = append(files, e.Name())
		}
	}
	if len(files) == 0 {
		return nil, errors.New("no .up.sql files in " + dir)
	}
	sort.Strings(files)
	return files, nil
}

func migrationName(filename string) string {
	return strings.TrimSuffix(filename, ".up.sql")
}

func ensureSchemaMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		name TEXT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`)
	if err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}
	return nil
}

func appliedMigrations(ctx context.Context, pool *pgxpool.Pool) (map[string]bool, error) {
	rows, err := pool.Query(ctx, "SELECT name FROM schema_migrations")
	if err != nil {
		return nil, fmt.Errorf("list applied migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		applied[name] = true
	}
	return applied, rows.Err()
}

// runIncremental applies each pending migration in its own transaction.
func runIncremental(ctx context.Context, pool *pgxpool.Pool, dir string) error {
	if err := ensureSchemaMigrations(ctx, pool); err != nil {
		return err
	}
	upFiles, err := collectUpFiles(dir)
	if err != nil {
		return err
	}
	applied, err := appliedMigrations(ctx, pool)
	if err != nil {
		return err
	}

	count := 0
	for _, filename := range upFiles {
		name := migrationName(filename)
		if applied[name] {
			continue
		}
		sql, err := os.ReadFile(filepath.Join(dir, filename))
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}

		tx, err := pool.Begin(ctx)
		if err != nil {
			return fmt.Errorf("begin %s: %w", name, err)
		}
		if _, err := tx.Exec(ctx, string(sql)); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("apply %s: %w", name, err)
		}
		if _, err := tx.Exec(ctx, "INSERT INTO schema_migrations (name) VALUES ($1)", name); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("record %s: %w", name, err)
		}
		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("commit %s: %w", name, err)
		}
		count++
		slog.Info("migration applied", "migration", name)
	}

	if count == 0 {
		slog.Info("all migrations already applied")
	} else {
		slog.Info("migrations completed", "count", count)
	}
	return nil
}

func runStatus(ctx context.Context, pool *pgxpool.Pool, dir string) error {
	if err := ensureSchemaMigrations(ctx, pool); err != nil {
		return err
	}
	upFiles, err := collectUpFiles(dir)
	if err != nil {
		return err
	}
	applied, err := appliedMigrations(ctx, pool)
	if err != nil {
		return err
	}
	for _, filename := range upFiles {
		name := migrationName(filename)
		state := "pending"
		if applied[name] {
			state = "applied"
		}
		fmt.Printf("%-8s %s\n", state, name)
	}
	return nil
}

func runDropAll(ctx context.Context, pool *pgxpool.Pool, dir string) error {
	slog.Info("dropping all tables")
	sql, err := os.ReadFile(filepath.Join(dir, "000_drop_all.sql"))
	if err != nil {
		return fmt.Errorf("read 000_drop_all.sql: %w", err)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("drop all: %w", err)
	}
	slog.Info("all tables dropped")
	return nil
}

// runConsolidated creates the schema in one shot and marks every
// migration as applied.
func runConsolidated(ctx context.Context, pool *pgxpool.Pool, dir string) error {
	slog.Info("applying consolidated schema")
	sql, err := os.ReadFile(filepath.Join(dir, "000_consolidated.sql"))
	if err != nil {
		return fmt.Errorf("read 000_consolidated.sql: %w", err)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("apply consolidated schema: %w", err)
	}

	if err := ensureSchemaMigrations(ctx, pool); err != nil {
		return err
	}
	upFiles, err := collectUpFiles(dir)
	if err != nil {
		return err
	}
	for _, filename := range upFiles {
		if _, err := pool.Exec(ctx, "INSERT INTO schema_migrations (name) VALUES ($1) ON CONFLICT DO NOTHING", migrationName(filename)); err != nil {
			return fmt.Errorf("mark %s: %w", filename, err)
		}
	}
	slog.Info("consolidated schema applied", "migrations_marked", len(upFiles))
	return nil
}
