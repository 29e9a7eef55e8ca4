package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/swatchfile/swatch/internal/color"
	"github.com/swatchfile/swatch/internal/config"
	"github.com/swatchfile/swatch/internal/model"
)

// TestRecords returns a small collection with sensible test defaults.
func TestRecords() []model.ColorRecord {
	return []model.ColorRecord{
		{Index: 0, Name: "Coral", RGB: color.RGB{R: 255, G: 127, B: 80}},
		{Index: 1, Name: "Teal", RGB: color.RGB{R: 0, G: 128, B: 128}},
		{Index: 2, Name: "Slate", RGB: color.RGB{R: 112, G: 128, B: 144}},
	}
}

// TempDataDir creates a temporary data directory and returns a Paths
// resolver rooted in it, plus a cleanup function.
func TempDataDir(t *testing.T) (*config.Paths, func()) {
	t.Helper()

	dir, err := os.MkdirTemp("", "swatch-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	cleanup := func() {
		os.RemoveAll(dir)
	}

	return config.NewPaths(dir), cleanup
}

// WriteColors writes a collection to the colors file under paths,
// bypassing the store.
func WriteColors(t *testing.T, paths *config.Paths, records []model.ColorRecord) {
	t.Helper()

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		t.Fatalf("failed to encode records: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(paths.ColorsPath()), 0755); err != nil {
		t.Fatalf("failed to create data dir: %v", err)
	}
	if err := os.WriteFile(paths.ColorsPath(), data, 0644); err != nil {
		t.Fatalf("failed to write colors file: %v", err)
	}
}
