// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultReloadDebounce coalesces editor save bursts into one reload.
const DefaultReloadDebounce = 200 * time.Millisecond

// =============================================================================
// CONFIG WATCHER
// =============================================================================

// Watcher reloads a config file whenever it changes on disk.
//
// The parent directory is watched rather than the file itself so that
// editors which replace the file via rename keep triggering reloads.
type Watcher struct {
	path     string
	onChange func(*Config, error)
	watcher  *fsnotify.Watcher
	debounce time.Duration

	mu      sync.Mutex
	pending time.Time

	ctx    context.Context
	cancel context.CancelFunc
	done   sync.WaitGroup
}

// Watch starts watching path and calls onChange with the freshly loaded
// config (or the load error) after each debounced change.
func Watch(path string, onChange func(*Config, error)) (*Watcher, error) {
	return WatchWithDebounce(path, DefaultReloadDebounce, onChange)
}

// WatchWithDebounce is Watch with a custom debounce interval.
func WatchWithDebounce(path string, debounce time.Duration, onChange func(*Config, error)) (*Watcher, error) {
	if onChange == nil {
		return nil, fmt.Errorf("config watch: nil callback")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config watch: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config watch: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("config watch %s: %w", filepath.Dir(abs), err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     abs,
		onChange: onChange,
		watcher:  fsw,
		debounce: debounce,
		ctx:      ctx,
		cancel:   cancel,
	}

	w.done.Add(2)
	go w.processEvents()
	go w.processPending()
	return w, nil
}

// Path returns the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops watching and waits for the event goroutines to exit.
func (w *Watcher) Close() error {
	w.cancel()
	err := w.watcher.Close()
	w.done.Wait()
	return err
}

func (w *Watcher) processEvents() {
	defer w.done.Done()
	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.mu.Lock()
			w.pending = time.Now()
			w.mu.Unlock()

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// processPending fires the reload once the file has been quiet for the
// debounce interval.
func (w *Watcher) processPending() {
	defer w.done.Done()

	tick := w.debounce / 2
	if tick <= 0 {
		tick = 10 * time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			w.mu.Lock()
			ready := !w.pending.IsZero() && time.Since(w.pending) >= w.debounce
			if ready {
				w.pending = time.Time{}
			}
			w.mu.Unlock()

			if ready {
				w.onChange(LoadFromPath(w.path))
			}
		}
	}
}
