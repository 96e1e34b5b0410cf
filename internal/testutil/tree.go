package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// MakeTree creates the directory layout described by entries under a fresh
// temp directory and returns its path. An entry ending in "/" becomes a
// directory; any other entry becomes an empty file. Parent directories are
// created as needed, so "a/b/yarn.lock" is enough to build the whole chain.
func MakeTree(t *testing.T, entries ...string) string {
	t.Helper()
	root := t.TempDir()

	for _, entry := range entries {
		path := filepath.Join(root, filepath.FromSlash(strings.TrimSuffix(entry, "/")))
		if strings.HasSuffix(entry, "/") {
			if err := os.MkdirAll(path, 0755); err != nil {
				t.Fatal(err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, nil, 0644); err != nil { //nolint:gosec // test file
			t.Fatal(err)
		}
	}
	return root
}

// UnsetEnv removes key for the duration of the test. The t.Setenv call
// registers restoration of the original value at cleanup and opts the test
// out of t.Parallel.
func UnsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatal(err)
	}
}
