package store

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/swatchfile/swatch/internal/color"
	"github.com/swatchfile/swatch/internal/config"
	swerr "github.com/swatchfile/swatch/internal/errors"
	"github.com/swatchfile/swatch/internal/model"
)

// FileColorStore implements ColorStore on a single JSON file, with an
// in-process cache keyed by the file's fingerprint.
type FileColorStore struct {
	paths *config.Paths
	cache *Cache
}

// NewColorStore creates a new color store.
func NewColorStore(paths *config.Paths) *FileColorStore {
	return &FileColorStore{paths: paths, cache: NewCache()}
}

// Path returns the location of the persisted collection.
func (s *FileColorStore) Path() string {
	return s.paths.ColorsPath()
}

// Cache exposes the store's cache, mainly so tests and the serve layer
// can force a cold read.
func (s *FileColorStore) Cache() *Cache {
	return s.cache
}

// EnsureFile creates the data directory and writes the built-in defaults
// if the colors file does not exist yet. Existing files are left alone,
// whatever they contain.
func (s *FileColorStore) EnsureFile() error {
	path := s.paths.ColorsPath()
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return swerr.FileOperation("stat", path, err)
	}

	return s.write(path, model.DefaultColors())
}

// Load returns the current collection. It consults the cache first,
// revalidates against the file fingerprint, and degrades to the built-in
// defaults on any failure rather than returning an error.
func (s *FileColorStore) Load() []model.ColorRecord {
	path := s.paths.ColorsPath()

	if cached, ok := s.cache.Records(); ok {
		fp, err := ReadFingerprint(path)
		if err == nil && !s.cache.HasChanged(fp) {
			return cached
		}
	}

	if err := s.EnsureFile(); err != nil {
		log.Printf("Warning: could not create colors file: %v", err)
		return model.DefaultColors()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Warning: could not read %s: %v", path, err)
		return model.DefaultColors()
	}

	records := decodeRecords(data)
	if len(records) == 0 {
		// A present-but-empty (or entirely invalid) file is answered with
		// in-memory defaults without rewriting it. Only a missing file gets
		// defaults persisted, via EnsureFile.
		return model.DefaultColors()
	}

	if len(records) > model.MaxColors {
		records = records[:model.MaxColors]
	}

	if fp, err := ReadFingerprint(path); err == nil {
		s.cache.Set(records, fp)
	}

	return model.CloneRecords(records)
}

// decodeRecords parses the file content entry by entry, dropping anything
// that is not a structurally valid record. A non-array payload yields nil.
func decodeRecords(data []byte) []model.ColorRecord {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Printf("Warning: colors file is not a JSON array: %v", err)
		return nil
	}

	var records []model.ColorRecord
	for _, entry := range raw {
		var rec model.ColorRecord
		if err := json.Unmarshal(entry, &rec); err != nil {
			continue
		}
		if !rec.IsValid() {
			continue
		}
		records = append(records, rec)
	}
	return records
}

// Save filters out structurally invalid records, truncates to MaxColors,
// re-indexes by array position, and overwrites the file in one write. The
// cache is refreshed with the new content and fingerprint.
func (s *FileColorStore) Save(records []model.ColorRecord) ([]model.ColorRecord, error) {
	valid := make([]model.ColorRecord, 0, len(records))
	for _, rec := range records {
		if rec.IsValid() {
			valid = append(valid, rec)
		}
	}
	if len(valid) > model.MaxColors {
		valid = valid[:model.MaxColors]
	}
	valid = model.Reindex(valid)

	path := s.paths.ColorsPath()
	if err := s.write(path, valid); err != nil {
		return nil, err
	}

	if fp, err := ReadFingerprint(path); err == nil {
		s.cache.Set(valid, fp)
	}

	return valid, nil
}

// Add appends a new record with a trimmed name and clamped channels.
func (s *FileColorStore) Add(name string, rgb color.RGB) ([]model.ColorRecord, error) {
	current := s.Load()

	for _, rec := range current {
		if rec.NameEquals(name) {
			return nil, swerr.DuplicateName(strings.TrimSpace(name))
		}
	}
	if len(current) >= model.MaxColors {
		return nil, swerr.MaxColorsReached(model.MaxColors)
	}

	current = append(current, model.ColorRecord{
		Index: len(current),
		Name:  strings.TrimSpace(name),
		RGB:   rgb.Clamped(),
	})

	return s.Save(current)
}

// Edit replaces the record at index, keeping its position.
func (s *FileColorStore) Edit(index int, name string, rgb color.RGB) ([]model.ColorRecord, error) {
	current := s.Load()

	if index < 0 || index >= len(current) {
		return nil, swerr.IndexOutOfRange(index, len(current))
	}
	for i, rec := range current {
		if i != index && rec.NameEquals(name) {
			return nil, swerr.DuplicateName(strings.TrimSpace(name))
		}
	}

	current[index] = model.ColorRecord{
		Index: index,
		Name:  strings.TrimSpace(name),
		RGB:   rgb.Clamped(),
	}

	return s.Save(current)
}

// Delete removes the record at index; the remainder is re-indexed by Save.
func (s *FileColorStore) Delete(index int) ([]model.ColorRecord, error) {
	current := s.Load()

	if index < 0 || index >= len(current) {
		return nil, swerr.IndexOutOfRange(index, len(current))
	}

	current = append(current[:index], current[index+1:]...)

	return s.Save(current)
}

// Move removes the record at from and reinserts it at to.
func (s *FileColorStore) Move(from, to int) ([]model.ColorRecord, error) {
	current := s.Load()

	if from < 0 || from >= len(current) {
		return nil, swerr.IndexOutOfRange(from, len(current))
	}
	if to < 0 || to >= len(current) {
		return nil, swerr.IndexOutOfRange(to, len(current))
	}

	rec := current[from]
	current = append(current[:from], current[from+1:]...)
	current = append(current[:to], append([]model.ColorRecord{rec}, current[to:]...)...)

	return s.Save(current)
}

// write serializes the collection as pretty JSON and overwrites path,
// creating the parent directory first.
func (s *FileColorStore) write(path string, records []model.ColorRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return swerr.FileOperation("create directory for", path, err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return swerr.FileOperation("encode", path, err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return swerr.FileOperation("write", path, err)
	}
	return nil
}
