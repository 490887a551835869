package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func resetProfileFlag(t *testing.T) {
	t.Helper()
	old := profilePath
	t.Cleanup(func() { profilePath = old })
	profilePath = ""
}

func TestLoadRecord_Default(t *testing.T) {
	resetProfileFlag(t)
	t.Setenv("CV_PROFILE", "")

	record, err := loadRecord()
	if err != nil {
		t.Fatalf("loadRecord failed: %v", err)
	}
	if record.Name != "Ban Nguyen" {
		t.Errorf("Name = %q, want the built-in record", record.Name)
	}
}

func TestLoadRecord_FromEnv(t *testing.T) {
	resetProfileFlag(t)
	path := writeDoc(t, "env.json", `{"name": "Env Person"}`)
	t.Setenv("CV_PROFILE", path)

	record, err := loadRecord()
	if err != nil {
		t.Fatalf("loadRecord failed: %v", err)
	}
	if record.Name != "Env Person" {
		t.Errorf("Name = %q, want the document from CV_PROFILE", record.Name)
	}
}

func TestLoadRecord_FlagWinsOverEnv(t *testing.T) {
	resetProfileFlag(t)
	flagDoc := writeDoc(t, "flag.json", `{"name": "Flag Person"}`)
	envDoc := writeDoc(t, "env.json", `{"name": "Env Person"}`)
	t.Setenv("CV_PROFILE", envDoc)
	profilePath = flagDoc

	record, err := loadRecord()
	if err != nil {
		t.Fatalf("loadRecord failed: %v", err)
	}
	if record.Name != "Flag Person" {
		t.Errorf("Name = %q, want the --profile document", record.Name)
	}
}

func TestLoadRecord_MissingFile(t *testing.T) {
	resetProfileFlag(t)
	profilePath = filepath.Join(t.TempDir(), "missing.json")

	if _, err := loadRecord(); err == nil {
		t.Fatal("expected an error for a missing document")
	}
}

func TestRunCheck_DefaultRecord(t *testing.T) {
	resetProfileFlag(t)
	t.Setenv("CV_PROFILE", "")

	if err := runCheck(checkCmd, nil); err != nil {
		t.Fatalf("check failed: %v", err)
	}
}

func TestRunCheck_InvalidDocument(t *testing.T) {
	resetProfileFlag(t)
	profilePath = writeDoc(t, "bad.json", `{"name": ""}`)

	if err := runCheck(checkCmd, nil); err == nil {
		t.Fatal("expected an error for an empty name")
	}
}
