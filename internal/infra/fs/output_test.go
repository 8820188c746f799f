package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveBytesCreatesParent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.bin")

	if err := SaveBytes(path, []byte("data")); err != nil {
		t.Fatalf("SaveBytes failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}
	if string(got) != "data" {
		t.Errorf("content = %q, want %q", got, "data")
	}
}

func TestVerifyArtifact(t *testing.T) {
	dir := t.TempDir()

	full := filepath.Join(dir, "full.png")
	if err := os.WriteFile(full, []byte{1, 2, 3}, 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := VerifyArtifact(full); err != nil {
		t.Errorf("VerifyArtifact(full file) = %v", err)
	}

	empty := filepath.Join(dir, "empty.png")
	if err := os.WriteFile(empty, nil, 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := VerifyArtifact(empty); err == nil {
		t.Errorf("VerifyArtifact accepted empty file")
	}

	if err := VerifyArtifact(filepath.Join(dir, "missing.png")); err == nil {
		t.Errorf("VerifyArtifact accepted missing file")
	}

	if err := VerifyArtifact(dir); err == nil {
		t.Errorf("VerifyArtifact accepted a directory")
	}
}
