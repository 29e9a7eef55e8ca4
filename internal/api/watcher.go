package api

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/swatchfile/swatch/internal/config"
)

// ChangeType indicates what type of change occurred.
type ChangeType string

const (
	ChangeCreated  ChangeType = "created"
	ChangeModified ChangeType = "modified"
	ChangeDeleted  ChangeType = "deleted"
)

// ChangeKind indicates what kind of file changed.
type ChangeKind string

const (
	ChangeKindColors  ChangeKind = "colors"
	ChangeKindBackup  ChangeKind = "backup"
	ChangeKindUnknown ChangeKind = "unknown"
)

// PaletteChange represents a data-file change notification. It only feeds
// the live web view; store freshness itself is fingerprint-based.
type PaletteChange struct {
	Type ChangeType `json:"type"`
	Kind ChangeKind `json:"kind"`
	Path string     `json:"path"` // Relative path from the data dir
}

// WatcherSubscriber receives palette change notifications.
type WatcherSubscriber interface {
	OnPaletteChange(change PaletteChange)
}

// Watcher watches the data directory for external changes to the colors
// file or backups and notifies subscribers.
type Watcher struct {
	watcher     *fsnotify.Watcher
	dataDir     string
	backupsDir  string
	mu          sync.RWMutex
	subscribers []WatcherSubscriber
	debounce    map[string]*time.Timer
	debounceMu  sync.Mutex
	stopCh      chan struct{}
	stopped     bool // Once stopped, cannot restart
	running     bool
}

// NewWatcher creates a new watcher for the swatch data directory.
func NewWatcher(paths *config.Paths) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		watcher:    watcher,
		dataDir:    paths.DataDir(),
		backupsDir: paths.BackupsDir(),
		debounce:   make(map[string]*time.Timer),
		stopCh:     make(chan struct{}),
	}, nil
}

// Subscribe adds a subscriber to receive change notifications.
func (w *Watcher) Subscribe(sub WatcherSubscriber) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.subscribers = append(w.subscribers, sub)
}

// Start begins watching the data directory for changes.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	if w.stopped {
		w.mu.Unlock()
		return fmt.Errorf("watcher cannot be restarted after stop")
	}
	w.running = true
	w.mu.Unlock()

	if err := w.watcher.Add(w.dataDir); err != nil {
		return err
	}
	// The backups dir may not exist until the first backup is written.
	if err := w.watcher.Add(w.backupsDir); err != nil {
		log.Printf("Warning: failed to watch %s: %v", w.backupsDir, err)
	}

	go w.run()
	return nil
}

// Stop stops watching for changes.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running || w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.running = false
	w.stopped = true
	w.mu.Unlock()

	// Cancel pending debounce timers so they cannot fire after stop
	w.debounceMu.Lock()
	for path, timer := range w.debounce {
		timer.Stop()
		delete(w.debounce, path)
	}
	w.debounceMu.Unlock()

	close(w.stopCh)
	return w.watcher.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error: %v", err)

		case <-w.stopCh:
			return
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	// Skip temporary and hidden files
	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, ".") || strings.HasSuffix(base, "~") {
		return
	}

	// Start watching the backups dir once something creates it
	if event.Op&fsnotify.Create != 0 && event.Name == w.backupsDir {
		w.watcher.Add(w.backupsDir)
		return
	}

	// Debounce: wait 100ms before emitting to coalesce rapid changes
	w.debounceMu.Lock()
	if timer, exists := w.debounce[event.Name]; exists {
		timer.Stop()
	}
	w.debounce[event.Name] = time.AfterFunc(100*time.Millisecond, func() {
		w.emitChange(event)
		w.debounceMu.Lock()
		delete(w.debounce, event.Name)
		w.debounceMu.Unlock()
	})
	w.debounceMu.Unlock()
}

func (w *Watcher) emitChange(event fsnotify.Event) {
	// The debounce timer may fire after Stop
	w.mu.RLock()
	if w.stopped {
		w.mu.RUnlock()
		return
	}
	subs := make([]WatcherSubscriber, len(w.subscribers))
	copy(subs, w.subscribers)
	w.mu.RUnlock()

	change := w.classifyChange(event)
	if change.Kind == ChangeKindUnknown {
		return
	}

	for _, sub := range subs {
		sub.OnPaletteChange(change)
	}
}

func (w *Watcher) classifyChange(event fsnotify.Event) PaletteChange {
	relPath, err := filepath.Rel(w.dataDir, event.Name)
	if err != nil {
		return PaletteChange{Kind: ChangeKindUnknown}
	}

	change := PaletteChange{Path: relPath}

	switch {
	case event.Op&fsnotify.Create != 0:
		change.Type = ChangeCreated
	case event.Op&fsnotify.Write != 0:
		change.Type = ChangeModified
	case event.Op&fsnotify.Remove != 0:
		change.Type = ChangeDeleted
	case event.Op&fsnotify.Rename != 0:
		change.Type = ChangeDeleted // Rename source is effectively deleted
	default:
		return PaletteChange{Kind: ChangeKindUnknown}
	}

	switch {
	case relPath == config.ColorsFileName:
		change.Kind = ChangeKindColors
	case strings.HasPrefix(relPath, config.BackupsDirName+string(filepath.Separator)):
		change.Kind = ChangeKindBackup
	default:
		return PaletteChange{Kind: ChangeKindUnknown}
	}

	return change
}
