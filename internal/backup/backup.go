package backup

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/swatchfile/swatch/internal/config"
	swerr "github.com/swatchfile/swatch/internal/errors"
	"github.com/swatchfile/swatch/internal/model"
	"github.com/swatchfile/swatch/internal/util"
	"github.com/swatchfile/swatch/internal/version"
)

const (
	filePrefix = "colors-backup-"
	fileSuffix = ".json"

	// ISO 8601 with millisecond precision. Colons become hyphens in the
	// layout; the fractional-second dot must stay a dot here (anything
	// else is a literal) and is swapped for a hyphen after formatting.
	timestampLayout = "2006-01-02T15-04-05.000Z"
)

// Info pairs a backup file's path with its parsed metadata.
type Info struct {
	Path     string
	Metadata model.BackupMetadata
}

// Manager writes point-in-time snapshots of the collection into a
// backups/ directory beside the main store, pruning old files beyond the
// retention limit. Backups survive process restart, unlike undo history.
type Manager struct {
	paths     *config.Paths
	retention int
}

// NewManager creates a backup manager keeping at most retention files.
func NewManager(paths *config.Paths, retention int) *Manager {
	if retention <= 0 {
		retention = model.DefaultBackupRetention
	}
	return &Manager{paths: paths, retention: retention}
}

// Create writes a timestamped backup of records, tagged with an optional
// reason, then prunes. Returns the path of the file written.
func (m *Manager) Create(records []model.ColorRecord, reason string) (string, error) {
	dir := m.paths.BackupsDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", swerr.FileOperation("create directory", dir, err)
	}

	now := time.Now().UTC()
	name := filePrefix + strings.ReplaceAll(now.Format(timestampLayout), ".", "-")
	if tag := util.Slug(reason); tag != "" {
		name += "-" + tag
	}
	name += fileSuffix
	path := filepath.Join(dir, name)

	payload := model.BackupFile{
		Metadata: model.BackupMetadata{
			TimestampMillis:  now.UnixMilli(),
			Version:          version.Version,
			ColorCount:       len(records),
			OriginalFilePath: m.paths.ColorsPath(),
		},
		Colors: model.CloneRecords(records),
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", swerr.FileOperation("encode", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return "", swerr.FileOperation("write", path, err)
	}

	if err := m.prune(); err != nil {
		log.Printf("Warning: failed to prune old backups: %v", err)
	}

	return path, nil
}

// CreateAuto writes a backup tagged auto-<operation>. It is a safety net
// around risky mutations and must never block them: failures are logged
// and swallowed.
func (m *Manager) CreateAuto(records []model.ColorRecord, operation string) {
	if _, err := m.Create(records, "auto-"+operation); err != nil {
		log.Printf("Warning: automatic backup before %s failed: %v", operation, err)
	}
}

// List enumerates backups, newest first. Unreadable files are skipped
// with a warning rather than failing the listing.
func (m *Manager) List() ([]Info, error) {
	dir := m.paths.BackupsDir()

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Info{}, nil
		}
		return nil, swerr.FileOperation("read", dir, err)
	}

	backups := []Info{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}

		path := filepath.Join(dir, name)
		bf, err := readBackupFile(path)
		if err != nil {
			log.Printf("Warning: skipping unreadable backup %s: %v", name, err)
			continue
		}

		backups = append(backups, Info{Path: path, Metadata: bf.Metadata})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Metadata.TimestampMillis > backups[j].Metadata.TimestampMillis
	})

	return backups, nil
}

// Restore reads one backup file and returns its colors.
func (m *Manager) Restore(path string) ([]model.ColorRecord, error) {
	bf, err := readBackupFile(path)
	if err != nil {
		return nil, err
	}
	return bf.Colors, nil
}

// prune deletes the oldest backups beyond the retention limit.
func (m *Manager) prune() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	if len(backups) <= m.retention {
		return nil
	}

	// List is newest-first; everything past the retention cutoff goes.
	for _, b := range backups[m.retention:] {
		if err := os.Remove(b.Path); err != nil {
			return err
		}
	}
	return nil
}

// readBackupFile parses a backup and validates that both the metadata and
// the colors array are present.
func readBackupFile(path string) (*model.BackupFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, swerr.FileOperation("read", path, err)
	}

	var parsed struct {
		Metadata *model.BackupMetadata `json:"metadata"`
		Colors   *[]model.ColorRecord  `json:"colors"`
	}
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, swerr.FileOperation("parse", path, err)
	}
	if parsed.Metadata == nil || parsed.Colors == nil {
		return nil, swerr.FileOperation("parse", path, fmt.Errorf("missing metadata or colors"))
	}

	return &model.BackupFile{Metadata: *parsed.Metadata, Colors: *parsed.Colors}, nil
}
