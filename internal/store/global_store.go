package store

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/swatchfile/swatch/internal/config"
	"github.com/swatchfile/swatch/internal/model"
)

// FileConfigStore implements ConfigStore using the filesystem.
type FileConfigStore struct{}

// NewConfigStore creates a new global config store.
func NewConfigStore() *FileConfigStore {
	return &FileConfigStore{}
}

// Load reads the global config from disk.
// Returns an empty config if the file doesn't exist.
func (s *FileConfigStore) Load() (*model.GlobalConfig, error) {
	path := config.GlobalConfigPath()
	if path == "" {
		return &model.GlobalConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &model.GlobalConfig{}, nil
		}
		return nil, err
	}

	var cfg model.GlobalConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the global config to disk.
func (s *FileConfigStore) Save(cfg *model.GlobalConfig) error {
	path := config.GlobalConfigPath()
	if path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
