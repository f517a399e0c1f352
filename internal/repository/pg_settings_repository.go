package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gerogew22122/BuiltBetterHomes/internal/model"
)

// PgSettingsRepository is the PostgreSQL implementation of SettingsRepository.
// The settings table carries a unique singleton column so that every write
// targets the same row.
type PgSettingsRepository struct {
	pool     *pgxpool.Pool
	defaults model.SettingsInput
}

// NewPgSettingsRepository creates a PgSettingsRepository. defaults fill the row
// created on first read.
func NewPgSettingsRepository(pool *pgxpool.Pool, defaults model.SettingsInput) *PgSettingsRepository {
	return &PgSettingsRepository{pool: pool, defaults: defaults}
}

var _ SettingsRepository = (*PgSettingsRepository)(nil)

const settingsReturning = `RETURNING id, COALESCE(resend_api_key, ''), COALESCE(notification_email, ''), updated_at`

func scanSettings(scan func(...any) error) (*model.Settings, error) {
	var s model.Settings
	if err := scan(&s.ID, &s.ResendAPIKey, &s.NotificationEmail, &s.UpdatedAt); err != nil {
		return nil, pgErr(err)
	}
	return &s, nil
}

// GetSettings returns the settings row, inserting the default row if the table is empty.
func (r *PgSettingsRepository) GetSettings(ctx context.Context) (*model.Settings, error) {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO settings (resend_api_key, notification_email)
		 VALUES (NULLIF($1, ''), NULLIF($2, ''))
		 ON CONFLICT (singleton) DO NOTHING`,
		r.defaults.ResendAPIKey, r.defaults.NotificationEmail)
	if err != nil {
		return nil, err
	}
	row := r.pool.QueryRow(ctx,
		`SELECT id, COALESCE(resend_api_key, ''), COALESCE(notification_email, ''), updated_at
		 FROM settings WHERE singleton`)
	return scanSettings(row.Scan)
}

// UpsertSettings writes both fields in a single statement. updated_at always
// moves forward, even when two writes land within the same clock tick.
func (r *PgSettingsRepository) UpsertSettings(ctx context.Context, in model.SettingsInput) (*model.Settings, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO settings (resend_api_key, notification_email)
		 VALUES (NULLIF($1, ''), NULLIF($2, ''))
		 ON CONFLICT (singleton) DO UPDATE SET
		   resend_api_key = EXCLUDED.resend_api_key,
		   notification_email = EXCLUDED.notification_email,
		   updated_at = GREATEST(NOW(), settings.updated_at + INTERVAL '1 microsecond')
		 `+settingsReturning,
		in.ResendAPIKey, in.NotificationEmail)
	return scanSettings(row.Scan)
}
