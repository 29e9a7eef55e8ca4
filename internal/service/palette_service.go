package service

import (
	"fmt"

	"github.com/swatchfile/swatch/internal/backup"
	"github.com/swatchfile/swatch/internal/color"
	"github.com/swatchfile/swatch/internal/history"
	"github.com/swatchfile/swatch/internal/model"
	"github.com/swatchfile/swatch/internal/store"
	"github.com/swatchfile/swatch/internal/util"
)

// PaletteService coordinates the color store with undo history and
// backups. Every successful mutation records exactly one history action
// carrying full before/after snapshots, and returns the resulting
// collection so the caller can re-render without a second load.
type PaletteService struct {
	store   store.ColorStore
	history *history.Manager
	backups *backup.Manager
}

// NewPaletteService creates a new palette service.
func NewPaletteService(colorStore store.ColorStore, hist *history.Manager, backups *backup.Manager) *PaletteService {
	return &PaletteService{
		store:   colorStore,
		history: hist,
		backups: backups,
	}
}

// Load returns the current collection.
func (s *PaletteService) Load() []model.ColorRecord {
	return s.store.Load()
}

// Add validates and appends a new swatch.
func (s *PaletteService) Add(name string, rgb color.RGB) ([]model.ColorRecord, error) {
	trimmed, err := color.ValidateName(name)
	if err != nil {
		return nil, err
	}

	before := s.store.Load()
	after, err := s.store.Add(trimmed, rgb)
	if err != nil {
		return nil, err
	}

	s.record(model.ActionAdd, before, after, fmt.Sprintf("added %q", trimmed))
	return after, nil
}

// Edit replaces the swatch at index. An automatic backup is taken first.
func (s *PaletteService) Edit(index int, name string, rgb color.RGB) ([]model.ColorRecord, error) {
	trimmed, err := color.ValidateName(name)
	if err != nil {
		return nil, err
	}

	before := s.store.Load()
	if s.backups != nil {
		s.backups.CreateAuto(before, "edit")
	}

	after, err := s.store.Edit(index, trimmed, rgb)
	if err != nil {
		return nil, err
	}

	s.record(model.ActionEdit, before, after, fmt.Sprintf("edited %q", trimmed))
	return after, nil
}

// Delete removes the swatch at index. An automatic backup is taken first.
func (s *PaletteService) Delete(index int) ([]model.ColorRecord, error) {
	before := s.store.Load()
	if s.backups != nil {
		s.backups.CreateAuto(before, "delete")
	}

	after, err := s.store.Delete(index)
	if err != nil {
		return nil, err
	}

	s.record(model.ActionDelete, before, after, fmt.Sprintf("deleted color at index %d", index))
	return after, nil
}

// Move reorders the collection by moving the swatch at from to position to.
func (s *PaletteService) Move(from, to int) ([]model.ColorRecord, error) {
	before := s.store.Load()

	after, err := s.store.Move(from, to)
	if err != nil {
		return nil, err
	}

	s.record(model.ActionReorder, before, after, fmt.Sprintf("moved color from %d to %d", from, to))
	return after, nil
}

// Undo reverses the most recent mutation by persisting its before
// snapshot. Returns the resulting collection and false when there was
// nothing to undo.
func (s *PaletteService) Undo() ([]model.ColorRecord, bool, error) {
	action, ok := s.history.Undo()
	if !ok {
		return s.store.Load(), false, nil
	}

	saved, err := s.store.Save(action.Previous)
	if err != nil {
		// Persisting failed: put the action back so the stacks still
		// match what is on disk.
		s.history.Redo()
		return nil, false, err
	}
	return saved, true, nil
}

// Redo reapplies the most recently undone mutation.
func (s *PaletteService) Redo() ([]model.ColorRecord, bool, error) {
	action, ok := s.history.Redo()
	if !ok {
		return s.store.Load(), false, nil
	}

	saved, err := s.store.Save(action.Next)
	if err != nil {
		s.history.Undo()
		return nil, false, err
	}
	return saved, true, nil
}

// CanUndo reports whether an undo is available.
func (s *PaletteService) CanUndo() bool {
	return s.history.CanUndo()
}

// CanRedo reports whether a redo is available.
func (s *PaletteService) CanRedo() bool {
	return s.history.CanRedo()
}

// CreateBackup snapshots the current collection with an optional reason.
func (s *PaletteService) CreateBackup(reason string) (string, error) {
	return s.backups.Create(s.store.Load(), reason)
}

// ListBackups returns available backups, newest first.
func (s *PaletteService) ListBackups() ([]backup.Info, error) {
	return s.backups.List()
}

// RestoreFromBackup replaces the collection with the contents of a backup
// file, taking an automatic backup of the current state first.
func (s *PaletteService) RestoreFromBackup(path string) ([]model.ColorRecord, error) {
	colors, err := s.backups.Restore(path)
	if err != nil {
		return nil, err
	}

	before := s.store.Load()
	s.backups.CreateAuto(before, "restore")

	after, err := s.store.Save(colors)
	if err != nil {
		return nil, err
	}

	s.record(model.ActionEdit, before, after, fmt.Sprintf("restored from %s", path))
	return after, nil
}

func (s *PaletteService) record(actionType model.ActionType, before, after []model.ColorRecord, description string) {
	s.history.Record(model.HistoryAction{
		Type:            actionType,
		Previous:        before,
		Next:            after,
		TimestampMillis: util.NowMillis(),
		Description:     description,
	})
}
