package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gerogew22122/BuiltBetterHomes/internal/model"
	"github.com/gerogew22122/BuiltBetterHomes/internal/repository"
)

func TestSettingsService_Get_EmptyWhenAbsent(t *testing.T) {
	repo := &mockSettingsRepository{getFunc: func(context.Context) (*model.Settings, error) {
		return nil, repository.ErrNotFound
	}}
	got, err := NewSettingsService(repo).Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ResendAPIKey != "" || got.NotificationEmail != "" {
		t.Errorf("expected empty settings, got %+v", got)
	}
}

func TestSettingsService_Get_PropagatesError(t *testing.T) {
	repo := &mockSettingsRepository{getFunc: func(context.Context) (*model.Settings, error) {
		return nil, errors.New("db read failed")
	}}
	if _, err := NewSettingsService(repo).Get(context.Background()); err == nil {
		t.Error("expected error from repository")
	}
}

func TestSettingsService_Save_UpsertsAgainstMemoryStore(t *testing.T) {
	store := repository.NewMemoryStore(model.SettingsInput{ResendAPIKey: "re_seed"})
	svc := NewSettingsService(store)
	ctx := context.Background()

	first, err := svc.Save(ctx, model.SettingsInput{ResendAPIKey: "re_1", NotificationEmail: "a@example.com"})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	second, err := svc.Save(ctx, model.SettingsInput{NotificationEmail: "b@example.com"})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("expected a single settings record, got ids %s and %s", first.ID, second.ID)
	}

	got, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ResendAPIKey != "" || got.NotificationEmail != "b@example.com" {
		t.Errorf("expected second write to replace both fields, got %+v", got)
	}
}
