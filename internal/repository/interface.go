package repository

import (
	"context"

	"github.com/gerogew22122/BuiltBetterHomes/internal/model"
)

// DB checks that the backing store is reachable.
type DB interface {
	Ping(ctx context.Context) error
}

// UserRepository persists operator accounts.
type UserRepository interface {
	// CreateUser stores user and populates user.ID. A taken username yields ErrConflict.
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
}

// ContactRepository persists contact form submissions.
type ContactRepository interface {
	// CreateContactSubmission assigns an ID and SubmittedAt and stores the submission.
	CreateContactSubmission(ctx context.Context, in model.ContactSubmissionInput) (*model.ContactSubmission, error)
	// ListContactSubmissions returns every submission, newest first.
	ListContactSubmissions(ctx context.Context) ([]*model.ContactSubmission, error)
}

// SettingsRepository persists the settings singleton.
type SettingsRepository interface {
	GetSettings(ctx context.Context) (*model.Settings, error)
	// UpsertSettings replaces both fields of the single settings record.
	// Empty input fields clear the stored value.
	UpsertSettings(ctx context.Context, in model.SettingsInput) (*model.Settings, error)
}

// Store is the full storage capability set. The process opens one Store at
// startup and shares it across requests.
type Store interface {
	DB
	UserRepository
	ContactRepository
	SettingsRepository
	Close() error
}
