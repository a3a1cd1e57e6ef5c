// Package watch follows a save directory and reports each save file the game
// writes, taking a backup of it as it appears.
package watch

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/segmentio/ksuid"

	"github.com/ssargent/ftlsave/pkg/savefile"
	"github.com/ssargent/ftlsave/pkg/savegame"
)

// SaveExt is the extension of files the watcher reacts to
const SaveExt = ".sav"

// Saves is the subset of savefile.Service the watcher uses
type Saves interface {
	Load(path string) (*savegame.SavedGameState, error)
	Snapshot(path string) (ksuid.KSUID, error)
}

// Result reports one processed save file. Err is set when the file could
// not be decoded; Backup is ksuid.Nil when no snapshot was taken.
type Result struct {
	Path    string
	Summary *savegame.Summary
	Backup  ksuid.KSUID
	Err     error
}

// Watcher reports writes to save files in a directory. Bursts of writes to
// the same file within the debounce window are handled once.
type Watcher struct {
	dir      string
	debounce time.Duration
	saves    Saves
	logger   *slog.Logger

	watcher *fsnotify.Watcher
	results chan Result
	ready   chan string
	done    chan struct{}
	wg      sync.WaitGroup

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// New creates a watcher for dir. Start must be called before results arrive.
func New(dir string, saves Saves, debounce time.Duration, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		dir:      dir,
		debounce: debounce,
		saves:    saves,
		logger:   logger,
		results:  make(chan Result, 16),
		ready:    make(chan string),
		done:     make(chan struct{}),
		timers:   map[string]*time.Timer{},
	}
}

// Results returns the channel processed saves are delivered on. It is
// closed by Stop.
func (w *Watcher) Results() <-chan Result {
	return w.results
}

// Start begins watching the directory
func (w *Watcher) Start() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(w.dir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}
	w.watcher = watcher

	w.wg.Add(1)
	go w.loop()
	w.logger.Info("watching save directory", "path", w.dir, "debounce", w.debounce)
	return nil
}

// Stop ends watching and closes the results channel
func (w *Watcher) Stop() error {
	close(w.done)

	w.mu.Lock()
	for path, t := range w.timers {
		t.Stop()
		delete(w.timers, path)
	}
	w.mu.Unlock()

	var err error
	if w.watcher != nil {
		err = w.watcher.Close()
	}
	w.wg.Wait()
	close(w.results)
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				if strings.EqualFold(filepath.Ext(event.Name), SaveExt) {
					w.schedule(event.Name)
				}
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watcher error", "path", w.dir, "error", err)
		case path := <-w.ready:
			w.deliver(w.handle(path))
		}
	}
}

// schedule (re)starts the debounce timer for path
func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.timers[path]; ok {
		t.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, path)
		w.mu.Unlock()

		select {
		case w.ready <- path:
		case <-w.done:
		}
	})
}

func (w *Watcher) handle(path string) Result {
	state, err := w.saves.Load(path)
	if err != nil {
		w.logger.Warn("failed to decode save", "path", path, "error", err)
		return Result{Path: path, Err: err}
	}

	summary := savegame.Summarize(state)
	w.logger.Info("save updated",
		"path", path,
		"format", summary.Format,
		"ship", summary.ShipName,
		"sector", summary.Sector,
		"hull", summary.Hull,
		"scrap", summary.Scrap,
	)

	result := Result{Path: path, Summary: &summary}
	id, err := w.saves.Snapshot(path)
	switch {
	case errors.Is(err, savefile.ErrNoBackupStore):
	case err != nil:
		w.logger.Error("failed to back up save", "path", path, "error", err)
	default:
		result.Backup = id
	}
	return result
}

func (w *Watcher) deliver(r Result) {
	select {
	case w.results <- r:
	case <-w.done:
	}
}
