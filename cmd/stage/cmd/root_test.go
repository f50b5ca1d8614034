package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseDumpArgs(t *testing.T) {
	dumper, path, err := parseDumpArgs([]string{"--color", "--flags", "scene.yaml"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "scene.yaml" {
		t.Errorf("expected path scene.yaml, got %q", path)
	}
	if !dumper.Color || !dumper.ShowFlags {
		t.Error("expected both flags enabled")
	}
}

func TestParseDumpArgs_Errors(t *testing.T) {
	if _, _, err := parseDumpArgs(nil); err == nil {
		t.Error("expected error for missing path")
	}
	if _, _, err := parseDumpArgs([]string{"a.yaml", "b.yaml"}); err == nil {
		t.Error("expected error for multiple paths")
	}
	if _, _, err := parseDumpArgs([]string{"--bogus", "a.yaml"}); err == nil {
		t.Error("expected error for unknown flag")
	}
}

func TestRunValidate(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(good, []byte("version: v1\nroot: {label: a}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte("version: v9\nroot: {label: a}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := runValidate([]string{good}); err != nil {
		t.Errorf("expected valid document to pass, got %v", err)
	}
	if err := runValidate([]string{good, bad}); err == nil {
		t.Error("expected failure when any document is invalid")
	}
	if err := runValidate(nil); err == nil {
		t.Error("expected error for empty argument list")
	}
}
