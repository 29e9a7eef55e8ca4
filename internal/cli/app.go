package cli

import (
	"fmt"
	"os"

	"github.com/swatchfile/swatch/internal/backup"
	"github.com/swatchfile/swatch/internal/config"
	"github.com/swatchfile/swatch/internal/history"
	"github.com/swatchfile/swatch/internal/model"
	"github.com/swatchfile/swatch/internal/prompt"
	"github.com/swatchfile/swatch/internal/service"
	"github.com/swatchfile/swatch/internal/store"
)

// App holds all the dependencies for the CLI.
// Uses interfaces for testability.
type App struct {
	ConfigStore store.ConfigStore
	Paths       *config.Paths
	ColorStore  store.ColorStore
	History     *history.Manager
	Backups     *backup.Manager
	Palette     *service.PaletteService
	Prompter    prompt.Prompter
}

// NewApp creates a new App with all dependencies wired up.
// If interactive is false, uses NoopPrompter that fails on prompts.
func NewApp(interactive bool) (*App, error) {
	configStore := store.NewConfigStore()

	cfg, err := configStore.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load global config: %v\n", err)
		cfg = &model.GlobalConfig{}
	}

	paths := config.NewPaths(cfg.DataDir)
	colorStore := store.NewColorStore(paths)
	hist := history.NewManager(cfg.EffectiveHistoryDepth())
	backups := backup.NewManager(paths, cfg.EffectiveBackupRetention())
	palette := service.NewPaletteService(colorStore, hist, backups)

	var prompter prompt.Prompter
	if interactive {
		prompter = prompt.NewHuhPrompter()
	} else {
		prompter = &prompt.NoopPrompter{}
	}

	return &App{
		ConfigStore: configStore,
		Paths:       paths,
		ColorStore:  colorStore,
		History:     hist,
		Backups:     backups,
		Palette:     palette,
		Prompter:    prompter,
	}, nil
}

// Fatal prints an error and exits.
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
