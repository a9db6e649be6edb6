// SPDX-License-Identifier: MIT
// Package: gdwg/fixture
//
// watcher.go - hot reload of a fixture file.

package fixture

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher holds the latest successfully loaded document of one file.
type Watcher struct {
	path     string
	logger   *slog.Logger
	mu       sync.RWMutex
	current  *Document
	onChange []func(*Document)
}

// NewWatcher creates a Watcher and performs the initial load.
// A nil logger falls back to slog.Default().
func NewWatcher(path string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	w := &Watcher{path: filepath.Clean(path), logger: logger}
	doc, err := Load(w.path)
	if err != nil {
		return nil, err
	}
	w.current = doc

	return w, nil
}

// Document returns the latest document.
func (w *Watcher) Document() *Document {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.current
}

// OnChange registers a callback invoked after every successful reload.
func (w *Watcher) OnChange(fn func(*Document)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = append(w.onChange, fn)
}

// Watch starts a goroutine that reloads the document whenever the file is
// written or replaced. The parent directory is watched so that editors
// saving through rename are seen. A reload that fails is logged and the
// previous document is kept. Call stop to end watching.
func (w *Watcher) Watch() (stop func(), err error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("fixture watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("fixture watcher add %s: %w", w.path, err)
	}

	done := make(chan struct{})
	go func() {
		defer fw.Close()
		for {
			select {
			case ev, ok := <-fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != w.path {
					continue
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					if _, err := w.Reload(); err != nil {
						w.logger.Warn("Fixture reload failed, keeping previous document.", "path", w.path, "error", err)
					}
				}
			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				w.logger.Warn("Fixture watcher error.", "path", w.path, "error", err)
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() { once.Do(func() { close(done) }) }, nil
}

// Reload forces an immediate re-read of the file.
func (w *Watcher) Reload() (*Document, error) {
	doc, err := Load(w.path)
	if err != nil {
		return nil, err
	}
	w.mu.Lock()
	w.current = doc
	callbacks := make([]func(*Document), len(w.onChange))
	copy(callbacks, w.onChange)
	w.mu.Unlock()

	w.logger.Debug("Fixture reloaded.", "path", w.path, "nodes", len(doc.Nodes), "edges", len(doc.Edges))
	for _, fn := range callbacks {
		fn(doc)
	}

	return doc, nil
}
