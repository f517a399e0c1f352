package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/gerogew22122/BuiltBetterHomes/internal/model"
)

// SQLiteStore is a durable single-file Store. Timestamps are stored as Unix
// nanoseconds so ordering survives the round trip exactly.
type SQLiteStore struct {
	db       *sqlx.DB
	defaults model.SettingsInput
	now      func() time.Time
}

var _ Store = (*SQLiteStore)(nil)

type sqliteSubmissionRow struct {
	model.ContactSubmission
	SubmittedAt int64 `db:"submitted_at"`
}

type sqliteSettingsRow struct {
	ID                string `db:"id"`
	ResendAPIKey      string `db:"resend_api_key"`
	NotificationEmail string `db:"notification_email"`
	UpdatedAt         int64  `db:"updated_at"`
}

func (r sqliteSettingsRow) settings() *model.Settings {
	return &model.Settings{
		ID:                r.ID,
		ResendAPIKey:      r.ResendAPIKey,
		NotificationEmail: r.NotificationEmail,
		UpdatedAt:         time.Unix(0, r.UpdatedAt).UTC(),
	}
}

// OpenSQLite opens (creating if needed) the database at path and applies migrations.
func OpenSQLite(ctx context.Context, path string, defaults model.SettingsInput) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	dsn := path + sep + "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)"
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// One connection serializes writers and keeps ":memory:" databases shared.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applySQLiteMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &SQLiteStore{db: db, defaults: defaults, now: time.Now}, nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func sqliteErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return ErrNotFound
	case strings.Contains(err.Error(), "UNIQUE constraint failed"):
		return ErrConflict
	default:
		return err
	}
}

func (s *SQLiteStore) CreateUser(ctx context.Context, user *model.User) error {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, username, password_hash) VALUES (?, ?, ?)`,
		id, user.Username, user.PasswordHash)
	if err != nil {
		return sqliteErr(err)
	}
	user.ID = id
	return nil
}

func (s *SQLiteStore) GetUser(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	err := s.db.GetContext(ctx, &u, `SELECT id, username, password_hash FROM users WHERE id = ?`, id)
	if err != nil {
		return nil, sqliteErr(err)
	}
	return &u, nil
}

func (s *SQLiteStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := s.db.GetContext(ctx, &u, `SELECT id, username, password_hash FROM users WHERE username = ?`, username)
	if err != nil {
		return nil, sqliteErr(err)
	}
	return &u, nil
}

func (s *SQLiteStore) CreateContactSubmission(ctx context.Context, in model.ContactSubmissionInput) (*model.ContactSubmission, error) {
	sub := &model.ContactSubmission{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Budget:      in.Budget,
		Area:        in.Area,
		Message:     in.Message,
		SubmittedAt: s.now().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO contact_submissions (id, name, email, phone, budget, area, message, submitted_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sub.ID, sub.Name, sub.Email, sub.Phone, sub.Budget, sub.Area, sub.Message, sub.SubmittedAt.UnixNano())
	if err != nil {
		return nil, sqliteErr(err)
	}
	return sub, nil
}

func (s *SQLiteStore) ListContactSubmissions(ctx context.Context) ([]*model.ContactSubmission, error) {
	var rows []sqliteSubmissionRow
	err := s.db.SelectContext(ctx, &rows,
		`SELECT id, name, email, phone, budget, area, message, submitted_at
		 FROM contact_submissions
		 ORDER BY submitted_at DESC, seq DESC`)
	if err != nil {
		return nil, err
	}
	subs := make([]*model.ContactSubmission, len(rows))
	for i := range rows {
		sub := rows[i].ContactSubmission
		sub.SubmittedAt = time.Unix(0, rows[i].SubmittedAt).UTC()
		subs[i] = &sub
	}
	return subs, nil
}

// GetSettings returns the settings row, inserting the default row if none exists.
func (s *SQLiteStore) GetSettings(ctx context.Context) (*model.Settings, error) {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settings (id, resend_api_key, notification_email, updated_at)
		 VALUES (?, NULLIF(?, ''), NULLIF(?, ''), ?)
		 ON CONFLICT (singleton) DO NOTHING`,
		uuid.NewString(), s.defaults.ResendAPIKey, s.defaults.NotificationEmail, s.now().UTC().UnixNano())
	if err != nil {
		return nil, err
	}
	var row sqliteSettingsRow
	err = s.db.GetContext(ctx, &row,
		`SELECT id, COALESCE(resend_api_key, '') AS resend_api_key,
		        COALESCE(notification_email, '') AS notification_email, updated_at
		 FROM settings WHERE singleton = 1`)
	if err != nil {
		return nil, sqliteErr(err)
	}
	return row.settings(), nil
}

// UpsertSettings writes both fields in one statement; updated_at never moves backwards.
func (s *SQLiteStore) UpsertSettings(ctx context.Context, in model.SettingsInput) (*model.Settings, error) {
	var row sqliteSettingsRow
	err := s.db.GetContext(ctx, &row,
		`INSERT INTO settings (id, resend_api_key, notification_email, updated_at)
		 VALUES (?, NULLIF(?, ''), NULLIF(?, ''), ?)
		 ON CONFLICT (singleton) DO UPDATE SET
		   resend_api_key = excluded.resend_api_key,
		   notification_email = excluded.notification_email,
		   updated_at = MAX(excluded.updated_at, settings.updated_at + 1)
		 RETURNING id, COALESCE(resend_api_key, '') AS resend_api_key,
		           COALESCE(notification_email, '') AS notification_email, updated_at`,
		uuid.NewString(), in.ResendAPIKey, in.NotificationEmail, s.now().UTC().UnixNano())
	if err != nil {
		return nil, sqliteErr(err)
	}
	return row.settings(), nil
}
