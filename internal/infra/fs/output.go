package fs

// Output artifact helpers: create the target directory, write the bytes,
// verify the result is a non-empty regular file

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return nil
}

// SaveBytes writes data to path, creating the parent directory first.
func SaveBytes(path string, data []byte) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// VerifyArtifact confirms path is a non-empty regular file. Renderers
// call this after saving so a silent zero-byte write is caught here.
func VerifyArtifact(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("output file not found: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("output path %s is a directory", path)
	}
	if info.Size() == 0 {
		return fmt.Errorf("output file %s is empty", path)
	}
	return nil
}
