package config

import (
	"os"
	"path/filepath"
)

const (
	AppDirName     = "swatch"
	ColorsFileName = "colors.json"
	BackupsDirName = "backups"
	ConfigFileName = "config.toml"
)

// Paths provides path resolution for swatch data files.
type Paths struct {
	dataDir string // Custom data dir from config, empty for default
}

// NewPaths creates a new Paths resolver. dataDir overrides the default
// OS-specific application-support location when non-empty.
func NewPaths(dataDir string) *Paths {
	return &Paths{dataDir: dataDir}
}

// DataDir returns the directory holding the colors file and backups.
func (p *Paths) DataDir() string {
	if p.dataDir != "" {
		return p.dataDir
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return AppDirName
	}
	return filepath.Join(base, AppDirName)
}

// ColorsPath returns the path of the persisted collection.
func (p *Paths) ColorsPath() string {
	return filepath.Join(p.DataDir(), ColorsFileName)
}

// BackupsDir returns the directory backups are written to, beside the
// colors file.
func (p *Paths) BackupsDir() string {
	return filepath.Join(p.DataDir(), BackupsDirName)
}

// GlobalConfigPath returns the path to the global config file.
func GlobalConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, AppDirName, ConfigFileName)
}
