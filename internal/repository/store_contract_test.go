package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/gerogew22122/BuiltBetterHomes/internal/model"
)

// storeFactory returns a fresh, empty Store seeded with the given settings defaults.
type storeFactory func(t *testing.T, defaults model.SettingsInput) Store

func sampleSubmission(n int) model.ContactSubmissionInput {
	return model.ContactSubmissionInput{
		Name:    fmt.Sprintf("Jane %d", n),
		Email:   fmt.Sprintf("jane%d@x.com", n),
		Phone:   "555",
		Budget:  "5k",
		Area:    "NW",
		Message: "Hi",
	}
}

// runStoreContract checks the behaviour every Store variant must share.
func runStoreContract(t *testing.T, newStore storeFactory) {
	ctx := context.Background()
	defaults := model.SettingsInput{ResendAPIKey: "re_default", NotificationEmail: "owner@example.com"}

	t.Run("CreateContactSubmission copies fields and stamps id and time", func(t *testing.T) {
		s := newStore(t, defaults)
		start := time.Now().Truncate(time.Microsecond)
		in := sampleSubmission(1)

		sub, err := s.CreateContactSubmission(ctx, in)
		if err != nil {
			t.Fatalf("CreateContactSubmission: %v", err)
		}
		if sub.ID == "" {
			t.Error("expected generated id")
		}
		if sub.SubmittedAt.Before(start) {
			t.Errorf("SubmittedAt %v is before test start %v", sub.SubmittedAt, start)
		}
		if sub.Name != in.Name || sub.Email != in.Email || sub.Phone != in.Phone ||
			sub.Budget != in.Budget || sub.Area != in.Area || sub.Message != in.Message {
			t.Errorf("fields not stored verbatim: got %+v want %+v", sub, in)
		}

		other, err := s.CreateContactSubmission(ctx, in)
		if err != nil {
			t.Fatalf("second CreateContactSubmission: %v", err)
		}
		if other.ID == sub.ID {
			t.Error("expected distinct ids for distinct submissions")
		}
	})

	t.Run("ListContactSubmissions is newest first", func(t *testing.T) {
		s := newStore(t, defaults)
		list, err := s.ListContactSubmissions(ctx)
		if err != nil {
			t.Fatalf("ListContactSubmissions on empty store: %v", err)
		}
		if len(list) != 0 {
			t.Fatalf("expected empty list, got %d", len(list))
		}

		var ids []string
		for i := 0; i < 5; i++ {
			sub, err := s.CreateContactSubmission(ctx, sampleSubmission(i))
			if err != nil {
				t.Fatalf("CreateContactSubmission %d: %v", i, err)
			}
			ids = append(ids, sub.ID)
		}

		list, err = s.ListContactSubmissions(ctx)
		if err != nil {
			t.Fatalf("ListContactSubmissions: %v", err)
		}
		if len(list) != len(ids) {
			t.Fatalf("expected %d submissions, got %d", len(ids), len(list))
		}
		for i, sub := range list {
			if want := ids[len(ids)-1-i]; sub.ID != want {
				t.Errorf("position %d: expected %s, got %s", i, want, sub.ID)
			}
			if i > 0 && sub.SubmittedAt.After(list[i-1].SubmittedAt) {
				t.Errorf("position %d is newer than position %d", i, i-1)
			}
		}
	})

	t.Run("GetSettings returns seeded defaults", func(t *testing.T) {
		s := newStore(t, defaults)
		got, err := s.GetSettings(ctx)
		if err != nil {
			t.Fatalf("GetSettings: %v", err)
		}
		if got.ID == "" {
			t.Error("expected settings id")
		}
		if got.ResendAPIKey != defaults.ResendAPIKey || got.NotificationEmail != defaults.NotificationEmail {
			t.Errorf("expected defaults %+v, got %+v", defaults, got)
		}

		again, err := s.GetSettings(ctx)
		if err != nil {
			t.Fatalf("second GetSettings: %v", err)
		}
		if again.ID != got.ID {
			t.Errorf("settings id changed between reads: %s -> %s", got.ID, again.ID)
		}
	})

	t.Run("UpsertSettings keeps a single record", func(t *testing.T) {
		s := newStore(t, defaults)
		before, err := s.GetSettings(ctx)
		if err != nil {
			t.Fatalf("GetSettings: %v", err)
		}

		first, err := s.UpsertSettings(ctx, model.SettingsInput{ResendAPIKey: "re_one", NotificationEmail: "one@example.com"})
		if err != nil {
			t.Fatalf("first UpsertSettings: %v", err)
		}
		second, err := s.UpsertSettings(ctx, model.SettingsInput{ResendAPIKey: "re_two"})
		if err != nil {
			t.Fatalf("second UpsertSettings: %v", err)
		}

		if first.ID != before.ID || second.ID != before.ID {
			t.Errorf("upsert created a new record: %s, %s, %s", before.ID, first.ID, second.ID)
		}
		if !second.UpdatedAt.After(first.UpdatedAt) {
			t.Errorf("UpdatedAt did not increase: %v then %v", first.UpdatedAt, second.UpdatedAt)
		}
		if second.ResendAPIKey != "re_two" {
			t.Errorf("expected api key re_two, got %q", second.ResendAPIKey)
		}
		if second.NotificationEmail != "" {
			t.Errorf("absent notification email should be cleared, got %q", second.NotificationEmail)
		}

		got, err := s.GetSettings(ctx)
		if err != nil {
			t.Fatalf("GetSettings after upsert: %v", err)
		}
		if got.ID != second.ID || got.ResendAPIKey != "re_two" || got.NotificationEmail != "" {
			t.Errorf("GetSettings does not reflect last upsert: %+v", got)
		}
	})

	t.Run("UpsertSettings before first read", func(t *testing.T) {
		s := newStore(t, defaults)
		up, err := s.UpsertSettings(ctx, model.SettingsInput{NotificationEmail: "ops@example.com"})
		if err != nil {
			t.Fatalf("UpsertSettings: %v", err)
		}
		got, err := s.GetSettings(ctx)
		if err != nil {
			t.Fatalf("GetSettings: %v", err)
		}
		if got.ID != up.ID || got.NotificationEmail != "ops@example.com" || got.ResendAPIKey != "" {
			t.Errorf("lazy default overwrote upserted settings: %+v", got)
		}
	})

	t.Run("users", func(t *testing.T) {
		s := newStore(t, defaults)
		u := &model.User{Username: "admin", PasswordHash: "hash"}
		if err := s.CreateUser(ctx, u); err != nil {
			t.Fatalf("CreateUser: %v", err)
		}
		if u.ID == "" {
			t.Fatal("expected ID to be set after CreateUser")
		}

		byID, err := s.GetUser(ctx, u.ID)
		if err != nil {
			t.Fatalf("GetUser: %v", err)
		}
		if byID.Username != "admin" || byID.PasswordHash != "hash" {
			t.Errorf("unexpected user %+v", byID)
		}

		byName, err := s.GetUserByUsername(ctx, "admin")
		if err != nil {
			t.Fatalf("GetUserByUsername: %v", err)
		}
		if byName.ID != u.ID {
			t.Errorf("expected id %s, got %s", u.ID, byName.ID)
		}

		if _, err := s.GetUserByUsername(ctx, "nobody"); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
		if _, err := s.GetUser(ctx, "00000000-0000-0000-0000-000000000000"); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
		if err := s.CreateUser(ctx, &model.User{Username: "admin", PasswordHash: "x"}); !errors.Is(err, ErrConflict) {
			t.Errorf("expected ErrConflict for duplicate username, got %v", err)
		}
	})

	t.Run("Ping", func(t *testing.T) {
		s := newStore(t, defaults)
		if err := s.Ping(ctx); err != nil {
			t.Errorf("Ping: %v", err)
		}
	})
}
