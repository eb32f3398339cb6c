package testutil

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"
)

// NoCacheHeaders are the values every devserve response must carry.
var NoCacheHeaders = map[string]string{
	"Cache-Control": "no-store, no-cache, must-revalidate, max-age=0",
	"Pragma":        "no-cache",
	"Expires":       "0",
}

func AssertNoCache(t *testing.T, label string, h http.Header) {
	t.Helper()
	for name, want := range NoCacheHeaders {
		got := h.Values(name)
		if len(got) != 1 || got[0] != want {
			t.Errorf("%s: %s = %q, want [%q]", label, name, got, want)
		}
	}
}

// WriteTree creates files under a fresh temp dir and returns its path.
// Keys are slash-separated paths relative to the root.
func WriteTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return root
}
