// Package watch runs a callback whenever files under a directory change.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"
)

// DefaultDebounce is used when Config.Debounce is zero.
const DefaultDebounce = 300 * time.Millisecond

// ChangeFunc handles one batch of changed paths. Batches never overlap.
type ChangeFunc func(ctx context.Context, changed []string) error

// Config configures a Watcher.
type Config struct {
	Dir      string
	Debounce time.Duration
	Logger   *slog.Logger
	OnChange ChangeFunc
}

// Watcher watches a directory tree.
type Watcher struct {
	dir      string
	debounce time.Duration
	logger   *slog.Logger
	onChange ChangeFunc
}

// New creates a watcher for cfg.Dir.
func New(cfg Config) (*Watcher, error) {
	if cfg.Dir == "" {
		return nil, errors.New("watch directory is required")
	}
	if cfg.OnChange == nil {
		return nil, errors.New("change handler is required")
	}

	w := &Watcher{
		dir:      cfg.Dir,
		debounce: cfg.Debounce,
		logger:   cfg.Logger,
		onChange: cfg.OnChange,
	}
	if w.debounce <= 0 {
		w.debounce = DefaultDebounce
	}
	if w.logger == nil {
		w.logger = slog.New(slog.DiscardHandler)
	}
	return w, nil
}

// Run watches until ctx is done. Handler errors are logged and do not stop
// the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = fw.Close() }()

	if err := addRecursive(fw, w.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}

	eg, egctx := errgroup.WithContext(ctx)
	batches := make(chan []string)

	eg.Go(func() error {
		defer close(batches)
		return w.collect(egctx, fw, batches)
	})

	eg.Go(func() error {
		for changed := range batches {
			w.logger.Debug("change detected", "files", len(changed))
			if err := w.onChange(egctx, changed); err != nil {
				w.logger.Error("change handler failed", "error", err)
			}
		}
		return nil
	})

	return eg.Wait()
}

// collect gathers events into batches separated by a quiet period.
func (w *Watcher) collect(ctx context.Context, fw *fsnotify.Watcher, out chan<- []string) error {
	pending := make(map[string]struct{})
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if event.Op == fsnotify.Chmod {
				continue
			}
			if event.Has(fsnotify.Create) {
				// New directories are not watched automatically.
				if err := addRecursive(fw, event.Name); err != nil && !errors.Is(err, fs.ErrNotExist) {
					w.logger.Warn("failed to watch new path", "path", event.Name, "error", err)
				}
			}
			pending[event.Name] = struct{}{}
			timer.Reset(w.debounce)

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			batch := make([]string, 0, len(pending))
			for name := range pending {
				batch = append(batch, name)
			}
			sort.Strings(batch)
			clear(pending)

			select {
			case out <- batch:
			case <-ctx.Done():
				return nil
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", "error", err)
		}
	}
}

// addRecursive adds dir and its subdirectories, skipping hidden ones.
// Paths that are not directories are ignored.
func addRecursive(fw *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return fw.Add(path)
	})
}
