package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gerogew22122/BuiltBetterHomes/internal/model"
	"github.com/gerogew22122/BuiltBetterHomes/internal/notify"
)

// NotifyPolicy decides whether a failed owner notification fails the submission.
type NotifyPolicy string

const (
	// NotifyLenient sends notifications in the background and only logs failures.
	NotifyLenient NotifyPolicy = "lenient"
	// NotifyStrict sends inline and returns failures to the caller. The
	// submission is stored either way.
	NotifyStrict NotifyPolicy = "strict"
)

// ParseNotifyPolicy accepts "lenient" or "strict".
func ParseNotifyPolicy(s string) (NotifyPolicy, error) {
	switch p := NotifyPolicy(s); p {
	case NotifyLenient, NotifyStrict:
		return p, nil
	default:
		return "", fmt.Errorf("unknown notify policy %q", s)
	}
}

// ErrNotificationNotConfigured is returned when the API key or recipient is missing.
var ErrNotificationNotConfigured = errors.New("notification credentials not configured")

// Notifier delivers the owner notification for a stored submission.
type Notifier interface {
	Notify(ctx context.Context, sub *model.ContactSubmission, creds notify.Credentials) error
}

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit stores a validated submission and notifies the owner according
	// to the configured policy. Under NotifyStrict the stored submission is
	// returned together with any notification error.
	Submit(ctx context.Context, in model.ContactSubmissionInput) (*model.ContactSubmission, error)

	// List returns all submissions, newest first.
	List(ctx context.Context) ([]*model.ContactSubmission, error)

	// Wait blocks until background notifications have finished.
	Wait()
}
