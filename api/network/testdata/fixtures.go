// Package testdata provides test fixtures for Network API tests.
// The JSON files mirror responses captured from UniFi consoles.
package testdata

import (
	"embed"
	"encoding/json"
	"io/fs"
	"path"
	"testing"
)

// FS embeds all JSON fixture files.
//
//go:embed **/*.json
var FS embed.FS

// LoadFixture reads and returns fixture content as string.
// The path should be relative to testdata directory (e.g., "sites/list_success.json").
func LoadFixture(t *testing.T, name string) string {
	t.Helper()

	data, err := FS.ReadFile(path.Clean(name))
	if err != nil {
		t.Fatalf("failed to load fixture %s: %v", name, err)
	}

	return string(data)
}

// LoadFixtureJSON reads fixture and unmarshals into provided value.
func LoadFixtureJSON(t *testing.T, name string, v any) {
	t.Helper()

	data := LoadFixture(t, name)
	if err := json.Unmarshal([]byte(data), v); err != nil {
		t.Fatalf("failed to unmarshal fixture %s: %v", name, err)
	}
}

// List returns the names of all fixtures under dir.
func List(t *testing.T, dir string) []string {
	t.Helper()

	var names []string
	err := fs.WalkDir(FS, dir, func(name string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() && path.Ext(name) == ".json" {
			names = append(names, name)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("failed to list fixtures in %s: %v", dir, err)
	}

	return names
}
