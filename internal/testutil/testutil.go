// Package testutil provides shared test helpers for setting up content
// directories and index databases.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/sowilo/internal/index"
	"github.com/starford/sowilo/internal/storage"
)

// TestDB creates a temporary SQLite database that is automatically cleaned up.
func TestDB(t *testing.T) *index.DB {
	t.Helper()
	dbFile, err := os.CreateTemp("", "sowilo-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := index.Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestContentDir creates a temporary content directory with a storage.Source.
func TestContentDir(t *testing.T) (string, storage.Source) {
	t.Helper()
	dir := t.TempDir()
	src, err := storage.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, src
}

// WriteFile writes a content file (creating parent directories) relative
// to the content root.
func WriteFile(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
