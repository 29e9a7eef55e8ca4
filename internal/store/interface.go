package store

import (
	"github.com/swatchfile/swatch/internal/color"
	"github.com/swatchfile/swatch/internal/model"
)

// ColorStore handles collection persistence. Load never fails: every read
// path degrades to the built-in defaults. Mutations return the full
// resulting collection so callers can re-render without a second fetch.
type ColorStore interface {
	EnsureFile() error
	Load() []model.ColorRecord
	Save(records []model.ColorRecord) ([]model.ColorRecord, error)
	Add(name string, rgb color.RGB) ([]model.ColorRecord, error)
	Edit(index int, name string, rgb color.RGB) ([]model.ColorRecord, error)
	Delete(index int) ([]model.ColorRecord, error)
	Move(from, to int) ([]model.ColorRecord, error)
	Path() string
}

// ConfigStore handles global config persistence.
type ConfigStore interface {
	Load() (*model.GlobalConfig, error)
	Save(cfg *model.GlobalConfig) error
}
