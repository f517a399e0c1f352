package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestCollectUpFiles_SortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"002_create_contact_submissions.up.sql",
		"001_create_users.up.sql",
		"001_create_users.down.sql",
		"000_drop_all.sql",
		"README.md",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("--"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := collectUpFiles(dir)
	if err != nil {
		t.Fatalf("collectUpFiles: %v", err)
	}
	want := []string{"001_create_users.up.sql", "002_create_contact_submissions.up.sql"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCollectUpFiles_Empty(t *testing.T) {
	if _, err := collectUpFiles(t.TempDir()); err == nil {
		t.Error("expected error for a directory without migrations")
	}
}

func TestRepositoryMigrations(t *testing.T) {
	files, err := collectUpFiles("../../migrations")
	if err != nil {
		t.Fatalf("collectUpFiles: %v", err)
	}
	for _, f := range files {
		down := filepath.Join("../../migrations", migrationName(f)+".down.sql")
		if _, err := os.Stat(down); err != nil {
			t.Errorf("%s has no matching down migration", f)
		}
	}
}

func TestIsPostgresURL(t *testing.T) {
	for in, want := range map[string]bool{
		"postgres://u:p@localhost/db":   true,
		"postgresql://u:p@localhost/db": true,
		"sqlite:data/app.db":            false,
		"":                              false,
	} {
		if got := isPostgresURL(in); got != want {
			t.Errorf("isPostgresURL(%q) = %v, want %v", in, got, want)
		}
	}
}
