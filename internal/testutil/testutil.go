// Package testutil provides filesystem helpers for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// MemFS returns an in-memory filesystem with dirs created.
func MemFS(t *testing.T, dirs ...string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for _, dir := range dirs {
		if err := fsys.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("failed to create dir %s: %v", dir, err)
		}
	}
	return fsys
}

// WriteFile writes content to path on fsys, creating parent directories.
func WriteFile(t *testing.T, fsys afero.Fs, path, content string) string {
	t.Helper()
	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := afero.WriteFile(fsys, path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of path on fsys.
func ReadFile(t *testing.T, fsys afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", path, err)
	}
	return string(data)
}

// Snapshot maps every path below root to its content. Directories map to "<dir>".
func Snapshot(t *testing.T, fsys afero.Fs, root string) map[string]string {
	t.Helper()
	snap := make(map[string]string)
	err := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			snap[path] = "<dir>"
			return nil
		}
		data, err := afero.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		snap[path] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("failed to walk %s: %v", root, err)
	}
	return snap
}
