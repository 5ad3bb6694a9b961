package assets_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/basewarphq/bwsite/cmd/internal/assets"
	"github.com/basewarphq/bwsite/cmd/internal/testutil"
	"github.com/cockroachdb/errors"
)

func TestScan(t *testing.T) {
	t.Parallel()

	dir := testutil.Setup(t, map[string]string{
		"index.html":            "<!DOCTYPE html><html><body>hi</body></html>",
		"about/index.html":      "<!DOCTYPE html><html></html>",
		"node_modules/x/readme": "plain text",
		"assets/data.json":      `{"a": 1}`,
	})

	m, err := assets.Scan(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantKeys := []string{"about/index.html", "assets/data.json", "index.html", "node_modules/x/readme"}
	if got := m.Keys(); !slices.Equal(got, wantKeys) {
		t.Errorf("Keys() = %v, want %v", got, wantKeys)
	}

	for _, f := range m.Files {
		if f.Key == "index.html" && !strings.HasPrefix(f.ContentType, "text/html") {
			t.Errorf("index.html content type = %q, want text/html", f.ContentType)
		}
		if f.Key == "assets/data.json" && !strings.HasPrefix(f.ContentType, "application/json") {
			t.Errorf("data.json content type = %q, want application/json", f.ContentType)
		}
	}

	if m.TotalSize() == 0 {
		t.Error("TotalSize() should be positive")
	}
}

func TestScan_MissingIndex(t *testing.T) {
	t.Parallel()

	dir := testutil.Setup(t, map[string]string{"about/index.html": "<html></html>"})

	_, err := assets.Scan(dir)
	if !errors.Is(err, assets.ErrMissingIndex) {
		t.Fatalf("expected ErrMissingIndex, got %v", err)
	}
}

func TestScan_MissingDir(t *testing.T) {
	t.Parallel()

	_, err := assets.Scan("/nonexistent/dist")
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, assets.ErrMissingIndex) {
		t.Error("a missing directory is not a missing index")
	}
}
