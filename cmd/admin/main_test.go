package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/gerogew22122/BuiltBetterHomes/internal/model"
	"github.com/gerogew22122/BuiltBetterHomes/internal/repository"
	"github.com/gerogew22122/BuiltBetterHomes/internal/service"
)

func TestCreateUser_ReadsPasswordFromInput(t *testing.T) {
	store := repository.NewMemoryStore(model.SettingsInput{})
	users := service.NewUserService(store)
	var out bytes.Buffer

	if err := createUser(context.Background(), users, "owner", strings.NewReader("long-password\n"), &out); err != nil {
		t.Fatalf("createUser: %v", err)
	}
	if !strings.HasPrefix(out.String(), "created user owner") {
		t.Errorf("unexpected output %q", out.String())
	}
	if _, err := users.Authenticate(context.Background(), "owner", "long-password"); err != nil {
		t.Errorf("expected password to authenticate: %v", err)
	}
}

func TestCreateUser_ShortPassword(t *testing.T) {
	store := repository.NewMemoryStore(model.SettingsInput{})
	err := createUser(context.Background(), service.NewUserService(store), "owner", strings.NewReader("short"), &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected error for short password")
	}
}

func TestCheckUser(t *testing.T) {
	store := repository.NewMemoryStore(model.SettingsInput{})
	users := service.NewUserService(store)
	ctx := context.Background()
	if err := createUser(ctx, users, "owner", strings.NewReader("long-password\n"), &bytes.Buffer{}); err != nil {
		t.Fatalf("createUser: %v", err)
	}

	var out bytes.Buffer
	if err := checkUser(ctx, users, "owner", strings.NewReader("long-password\r\n"), &out); err != nil {
		t.Fatalf("checkUser: %v", err)
	}
	if !strings.HasPrefix(out.String(), "password ok for owner") {
		t.Errorf("unexpected output %q", out.String())
	}

	err := checkUser(ctx, users, "owner", strings.NewReader("wrong-password\n"), &bytes.Buffer{})
	if !errors.Is(err, service.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestListSubmissions(t *testing.T) {
	store := repository.NewMemoryStore(model.SettingsInput{})
	ctx := context.Background()
	for _, name := range []string{"Ann", "Bob"} {
		in := model.ContactSubmissionInput{Name: name, Email: strings.ToLower(name) + "@x.com", Phone: "1", Budget: "b", Area: "a", Message: "m"}
		if _, err := store.CreateContactSubmission(ctx, in); err != nil {
			t.Fatal(err)
		}
	}

	contacts := service.NewContactService(store, store, nil, service.ContactOptions{})

	var table bytes.Buffer
	if err := listSubmissions(ctx, contacts, false, &table); err != nil {
		t.Fatalf("listSubmissions: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(table.String()), "\n")
	if len(lines) != 3 || !strings.Contains(lines[1], "Bob") || !strings.Contains(lines[2], "Ann") {
		t.Errorf("expected header then newest first, got:\n%s", table.String())
	}

	var raw bytes.Buffer
	if err := listSubmissions(ctx, contacts, true, &raw); err != nil {
		t.Fatalf("listSubmissions json: %v", err)
	}
	var subs []model.ContactSubmission
	if err := json.Unmarshal(raw.Bytes(), &subs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(subs) != 2 || subs[0].Name != "Bob" {
		t.Errorf("unexpected json listing %+v", subs)
	}
}

func TestListSubmissions_EmptyJSON(t *testing.T) {
	var out bytes.Buffer
	store := repository.NewMemoryStore(model.SettingsInput{})
	contacts := service.NewContactService(store, store, nil, service.ContactOptions{})
	if err := listSubmissions(context.Background(), contacts, true, &out); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out.String()) != "[]" {
		t.Errorf("expected empty array, got %q", out.String())
	}
}
