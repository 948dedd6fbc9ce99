package models

import (
	"path/filepath"
	"testing"
)

// GetFixturePath resolves a file under the repository's testdata directory to
// an absolute path. Tests run with their package directory as the working
// directory, two levels below the repository root.
func GetFixturePath(t *testing.T, name string) string {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join("..", "..", "testdata", name))
	if err != nil {
		t.Fatalf("could not resolve testdata/%s: %v", name, err)
	}

	return absPath
}
