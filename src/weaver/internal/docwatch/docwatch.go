// Package docwatch notifies subscribers when a watched document on disk is
// rewritten, so imported files can be re-synced into an open project.
package docwatch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// Callback is invoked with the path of a document that changed on disk.
type Callback func(path string)

// DocWatch tracks documents on disk and invokes a callback when one changes.
type DocWatch interface {
	Watch(path string, fn Callback) error
	Unwatch(path string) error
}

// Params define values to be used by DocWatch.
type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Logger    *zap.SugaredLogger
}

type module struct {
	watcher   *fsnotify.Watcher
	logger    *zap.SugaredLogger
	callbacks map[string]Callback
	dirs      map[string]int
	mu        sync.Mutex
	done      chan struct{}
}

// New creates a DocWatch whose event loop runs between the fx start and stop hooks.
func New(p Params) (DocWatch, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	m := &module{
		watcher:   watcher,
		logger:    p.Logger,
		callbacks: make(map[string]Callback),
		dirs:      make(map[string]int),
		done:      make(chan struct{}),
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: m.OnStart,
		OnStop:  m.OnStop,
	})

	return m, nil
}

func (m *module) OnStart(ctx context.Context) error {
	go m.run()
	return nil
}

func (m *module) OnStop(ctx context.Context) error {
	err := m.watcher.Close()
	<-m.done
	return err
}

// Watch registers a callback for path. Watching an already watched path
// replaces its callback. The parent directory is watched rather than the file
// itself, so editors that replace the file on save are still observed.
func (m *module) Watch(path string, fn Callback) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	dir := filepath.Dir(abs)
	if _, watched := m.callbacks[abs]; !watched {
		if m.dirs[dir] == 0 {
			if err := m.watcher.Add(dir); err != nil {
				return fmt.Errorf("watching %s: %w", dir, err)
			}
		}
		m.dirs[dir]++
	}
	m.callbacks[abs] = fn
	return nil
}

// Unwatch stops tracking path. Unwatching an untracked path is a no-op.
func (m *module) Unwatch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, watched := m.callbacks[abs]; !watched {
		return nil
	}
	delete(m.callbacks, abs)

	dir := filepath.Dir(abs)
	m.dirs[dir]--
	if m.dirs[dir] <= 0 {
		delete(m.dirs, dir)
		if err := m.watcher.Remove(dir); err != nil {
			return fmt.Errorf("unwatching %s: %w", dir, err)
		}
	}
	return nil
}

func (m *module) run() {
	defer close(m.done)
	for {
		select {
		case event, ok := <-m.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			m.dispatch(event.Name)
		case err, ok := <-m.watcher.Errors:
			if !ok {
				return
			}
			m.logger.Errorw("document watcher error", zap.Error(err))
		}
	}
}

func (m *module) dispatch(name string) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return
	}

	m.mu.Lock()
	fn := m.callbacks[abs]
	m.mu.Unlock()

	if fn != nil {
		fn(abs)
	}
}
