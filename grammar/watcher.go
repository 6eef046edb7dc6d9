package grammar

import (
	"log/slog"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
)

// Watcher marks a grammar source stale when its file is rewritten on
// disk. It complements the content-hash check in Grammar.Modified for
// callers that want to avoid rehashing the source on every access.
type Watcher struct {
	path  string
	fsw   *fsnotify.Watcher
	stale atomic.Bool
	done  chan struct{}
}

// Watch starts watching the grammar source file. The parent directory is
// watched so that editors that replace the file (write to temp, rename)
// are still observed.
func Watch(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{path: path, fsw: fsw, done: make(chan struct{})}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
				slog.Debug("grammar source changed", "path", w.path, "op", event.Op.String())
				w.stale.Store(true)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			slog.Warn("grammar watcher error", "path", w.path, "err", err)
		}
	}
}

// Stale reports whether a change was observed since the last Reset.
func (w *Watcher) Stale() bool {
	return w.stale.Load()
}

// Reset clears the staleness flag, typically after a rebuild.
func (w *Watcher) Reset() {
	w.stale.Store(false)
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	return err
}
