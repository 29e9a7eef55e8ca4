package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/swatchfile/swatch/internal/config"
	"github.com/swatchfile/swatch/internal/model"
	"github.com/swatchfile/swatch/testutil"
)

func setupTestManager(t *testing.T, retention int) (*Manager, *config.Paths, func()) {
	t.Helper()
	paths, cleanup := testutil.TempDataDir(t)
	return NewManager(paths, retention), paths, cleanup
}

func TestCreateWritesBackupFile(t *testing.T) {
	mgr, paths, cleanup := setupTestManager(t, 10)
	defer cleanup()

	records := testutil.TestRecords()
	path, err := mgr.Create(records, "before upgrade")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	name := filepath.Base(path)
	if !strings.HasPrefix(name, "colors-backup-") || !strings.HasSuffix(name, ".json") {
		t.Errorf("unexpected backup filename %q", name)
	}
	if !strings.Contains(name, "before-upgrade") {
		t.Errorf("reason tag missing from filename %q", name)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var bf model.BackupFile
	if err := json.Unmarshal(data, &bf); err != nil {
		t.Fatalf("backup is not valid JSON: %v", err)
	}
	if bf.Metadata.ColorCount != len(records) {
		t.Errorf("colorCount = %d, want %d", bf.Metadata.ColorCount, len(records))
	}
	if bf.Metadata.OriginalFilePath != paths.ColorsPath() {
		t.Errorf("originalFilePath = %q, want %q", bf.Metadata.OriginalFilePath, paths.ColorsPath())
	}
	if len(bf.Colors) != len(records) {
		t.Errorf("backup holds %d colors, want %d", len(bf.Colors), len(records))
	}
}

func TestCreateFilenameCarriesMilliseconds(t *testing.T) {
	mgr, _, cleanup := setupTestManager(t, 10)
	defer cleanup()

	// A zero millisecond component also matches second-granularity
	// naming, so sample until we land on a non-zero one.
	for i := 0; i < 5; i++ {
		path, err := mgr.Create(testutil.TestRecords(), "")
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		var bf model.BackupFile
		if err := json.Unmarshal(data, &bf); err != nil {
			t.Fatal(err)
		}

		millis := bf.Metadata.TimestampMillis % 1000
		if millis == 0 {
			time.Sleep(time.Millisecond)
			continue
		}

		want := fmt.Sprintf("-%03dZ", millis)
		if !strings.Contains(filepath.Base(path), want) {
			t.Errorf("filename %q does not carry milliseconds %q", filepath.Base(path), want)
		}
		return
	}
	t.Fatal("never observed a non-zero millisecond timestamp")
}

func TestRapidSameReasonBackupsDoNotCollide(t *testing.T) {
	const count = 4
	mgr, _, cleanup := setupTestManager(t, 10)
	defer cleanup()

	paths := make(map[string]bool)
	for i := 0; i < count; i++ {
		path, err := mgr.Create(testutil.TestRecords(), "auto-edit")
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if paths[path] {
			t.Fatalf("backup %d reused path %s", i, path)
		}
		paths[path] = true
		time.Sleep(2 * time.Millisecond)
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != count {
		t.Errorf("List returned %d backups, want %d distinct files", len(backups), count)
	}
}

func TestListNewestFirst(t *testing.T) {
	mgr, _, cleanup := setupTestManager(t, 10)
	defer cleanup()

	records := testutil.TestRecords()
	for i := 0; i < 3; i++ {
		if _, err := mgr.Create(records, fmt.Sprintf("snap-%d", i)); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("List returned %d backups, want 3", len(backups))
	}
	for i := 1; i < len(backups); i++ {
		if backups[i].Metadata.TimestampMillis > backups[i-1].Metadata.TimestampMillis {
			t.Errorf("backups out of order at %d: %d after %d",
				i, backups[i].Metadata.TimestampMillis, backups[i-1].Metadata.TimestampMillis)
		}
	}
}

func TestListEmptyWhenNoDirectory(t *testing.T) {
	mgr, _, cleanup := setupTestManager(t, 10)
	defer cleanup()

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("List returned %d backups for a missing directory", len(backups))
	}
}

func TestListSkipsMalformedFiles(t *testing.T) {
	mgr, paths, cleanup := setupTestManager(t, 10)
	defer cleanup()

	if _, err := mgr.Create(testutil.TestRecords(), "good"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	bad := filepath.Join(paths.BackupsDir(), "colors-backup-garbage.json")
	if err := os.WriteFile(bad, []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}
	unrelated := filepath.Join(paths.BackupsDir(), "notes.txt")
	if err := os.WriteFile(unrelated, []byte("hi"), 0644); err != nil {
		t.Fatal(err)
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != 1 {
		t.Errorf("List returned %d backups, want only the valid one", len(backups))
	}
}

func TestPruneKeepsRetentionLimit(t *testing.T) {
	const retention = 3
	mgr, _, cleanup := setupTestManager(t, retention)
	defer cleanup()

	for i := 0; i < retention+4; i++ {
		if _, err := mgr.Create(testutil.TestRecords(), fmt.Sprintf("snap-%d", i)); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != retention {
		t.Errorf("prune left %d backups, want %d", len(backups), retention)
	}
}

func TestRestore(t *testing.T) {
	mgr, _, cleanup := setupTestManager(t, 10)
	defer cleanup()

	records := testutil.TestRecords()
	path, err := mgr.Create(records, "")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	restored, err := mgr.Restore(path)
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if len(restored) != len(records) {
		t.Fatalf("Restore returned %d records, want %d", len(restored), len(records))
	}
	for i := range records {
		if restored[i] != records[i] {
			t.Errorf("record %d = %+v, want %+v", i, restored[i], records[i])
		}
	}
}

func TestRestoreRejectsIncompleteBackup(t *testing.T) {
	mgr, paths, cleanup := setupTestManager(t, 10)
	defer cleanup()

	if err := os.MkdirAll(paths.BackupsDir(), 0755); err != nil {
		t.Fatal(err)
	}

	cases := map[string]string{
		"missing colors":   `{"metadata": {"timestamp": 1, "version": "1.0.0", "colorCount": 0, "originalFilePath": "x"}}`,
		"missing metadata": `{"colors": []}`,
		"not json":         `oops`,
	}
	for label, content := range cases {
		path := filepath.Join(paths.BackupsDir(), "colors-backup-bad.json")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := mgr.Restore(path); err == nil {
			t.Errorf("Restore succeeded on backup with %s", label)
		}
	}

	if _, err := mgr.Restore(filepath.Join(paths.BackupsDir(), "nope.json")); err == nil {
		t.Error("Restore succeeded on a missing file")
	}
}

func TestCreateAutoNeverFails(t *testing.T) {
	// Point the data dir at a regular file so MkdirAll fails with ENOTDIR.
	file, err := os.CreateTemp("", "swatch-not-a-dir-*")
	if err != nil {
		t.Fatal(err)
	}
	file.Close()
	defer os.Remove(file.Name())

	mgr := NewManager(config.NewPaths(file.Name()), 10)
	mgr.CreateAuto(testutil.TestRecords(), "edit")
}
