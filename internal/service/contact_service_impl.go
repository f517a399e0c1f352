package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gerogew22122/BuiltBetterHomes/internal/model"
	"github.com/gerogew22122/BuiltBetterHomes/internal/notify"
	"github.com/gerogew22122/BuiltBetterHomes/internal/repository"
)

const defaultNotifyTimeout = 10 * time.Second

// ContactOptions configures notification behaviour.
type ContactOptions struct {
	Policy  NotifyPolicy
	Timeout time.Duration
}

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	contacts repository.ContactRepository
	settings repository.SettingsRepository
	notifier Notifier
	policy   NotifyPolicy
	timeout  time.Duration
	wg       sync.WaitGroup
}

// NewContactService creates a ContactService. Credentials are read from the
// settings repository on every submission so updates apply immediately.
func NewContactService(contacts repository.ContactRepository, settings repository.SettingsRepository, notifier Notifier, opts ContactOptions) ContactService {
	if opts.Policy == "" {
		opts.Policy = NotifyLenient
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultNotifyTimeout
	}
	return &contactServiceImpl{
		contacts: contacts,
		settings: settings,
		notifier: notifier,
		policy:   opts.Policy,
		timeout:  opts.Timeout,
	}
}

// Submit persists the submission first; notification never rolls it back.
func (s *contactServiceImpl) Submit(ctx context.Context, in model.ContactSubmissionInput) (*model.ContactSubmission, error) {
	sub, err := s.contacts.CreateContactSubmission(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("store contact submission: %w", err)
	}

	if s.policy == NotifyStrict {
		ctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()
		if err := s.notify(ctx, sub); err != nil {
			slog.Error("notification failed", "submission_id", sub.ID, "error", err)
			return sub, err
		}
		return sub, nil
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		defer cancel()
		err := s.notify(ctx, sub)
		switch {
		case err == nil:
		case errors.Is(err, ErrNotificationNotConfigured):
			slog.Warn("notification skipped", "submission_id", sub.ID, "reason", err)
		default:
			slog.Error("notification failed", "submission_id", sub.ID, "error", err)
		}
	}()
	return sub, nil
}

func (s *contactServiceImpl) notify(ctx context.Context, sub *model.ContactSubmission) error {
	settings, err := s.settings.GetSettings(ctx)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("load settings: %w", err)
	}
	if !settings.NotificationsEnabled() {
		return ErrNotificationNotConfigured
	}
	err = s.notifier.Notify(ctx, sub, notify.Credentials{
		APIKey:    settings.ResendAPIKey,
		Recipient: settings.NotificationEmail,
	})
	if err != nil {
		return err
	}
	slog.Info("notification sent", "submission_id", sub.ID)
	return nil
}

// List returns all submissions, newest first.
func (s *contactServiceImpl) List(ctx context.Context) ([]*model.ContactSubmission, error) {
	return s.contacts.ListContactSubmissions(ctx)
}

func (s *contactServiceImpl) Wait() {
	s.wg.Wait()
}
