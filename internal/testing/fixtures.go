package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// WriteTree creates files below root. Keys are slash-separated paths
// relative to root; parent directories are created as needed.
func WriteTree(t *testing.T, fs afero.Fs, root string, files map[string]string) {
	t.Helper()

	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := fs.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatalf("Failed to create directory for %s: %v", rel, err)
		}
		if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write fixture %s: %v", rel, err)
		}
	}
}

// ReadFileString returns the content of a file below root.
func ReadFileString(t *testing.T, fs afero.Fs, root, rel string) string {
	t.Helper()

	data, err := afero.ReadFile(fs, filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("Failed to read %s: %v", rel, err)
	}
	return string(data)
}
