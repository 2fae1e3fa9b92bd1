package file

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/sommelier/internal/logger"
)

// defaultDebounce coalesces the burst of events editors emit on save.
const defaultDebounce = 100 * time.Millisecond

// Watcher reports changes to a single config file.
// It watches the parent directory so atomic rename-on-save is seen.
type Watcher struct {
	path     string
	debounce time.Duration
}

// NewWatcher creates a watcher for the file at path.
func NewWatcher(path string) *Watcher {
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: defaultDebounce,
	}
}

// WithDebounce overrides the debounce interval.
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	w.debounce = d
	return w
}

// Start begins watching and returns once the watch is registered.
// onChange runs on the watcher goroutine after each debounced change.
// Watching stops when ctx is cancelled.
func (w *Watcher) Start(ctx context.Context, onChange func()) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		fw.Close() //nolint:errcheck
		return err
	}

	go w.loop(ctx, fw, onChange)
	return nil
}

func (w *Watcher) loop(ctx context.Context, fw *fsnotify.Watcher, onChange func()) {
	defer fw.Close() //nolint:errcheck

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("Config event: %s", ev)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			logger.Warn("Config watcher error: %v", err)

		case <-fire:
			fire = nil
			onChange()
		}
	}
}
