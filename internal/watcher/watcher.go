package watcher

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/pixdir/internal/imagefs"
	"github.com/nguyentantai21042004/pixdir/internal/logger"
	"github.com/nguyentantai21042004/pixdir/internal/metrics"
)

type implWatcher struct {
	root      string
	notify    Notifier
	logger    logger.Logger
	metrics   *metrics.Metrics
	watcher   *fsnotify.Watcher
	done      chan struct{}
	closed    atomic.Bool
	closeOnce sync.Once
	closeErr  error
}

func (w *implWatcher) Root() string {
	return w.root
}

// Close releases the fsnotify watcher and waits for the event loop to exit.
// No notification is delivered after Close returns.
func (w *implWatcher) Close() error {
	w.closeOnce.Do(func() {
		w.closed.Store(true)
		w.closeErr = w.watcher.Close()
		<-w.done
	})
	return w.closeErr
}

// run forwards every native event to notify until the fsnotify channels close.
// Delivery errors are logged and never end the watch.
func (w *implWatcher) run(ctx context.Context) {
	defer close(w.done)

	w.logger.Info(ctx, "Directory watcher started. Monitoring: %s", w.root)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				w.logger.Info(ctx, "Directory watcher stopped: %s", w.root)
				return
			}
			w.handleEvent(ctx, event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				w.logger.Info(ctx, "Directory watcher stopped: %s", w.root)
				return
			}
			w.metrics.WatchError()
			w.logger.Error(ctx, "Watcher error on %s: %v", w.root, err)
		}
	}
}

func (w *implWatcher) handleEvent(ctx context.Context, event fsnotify.Event) {
	if w.closed.Load() {
		return
	}

	// New subdirectories join the watch so the subscription stays recursive.
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addTree(ctx, event.Name, false); err != nil {
				w.logger.Warn(ctx, "Failed to watch new directory %s: %v", event.Name, err)
			}
		}
	}

	if imagefs.IsImage(event.Name) {
		w.logger.Debug(ctx, "Image change detected: %s", event)
	} else {
		w.logger.Debug(ctx, "Change detected: %s", event)
	}

	w.metrics.WatchEvent()
	w.deliver(ctx)
}

func (w *implWatcher) deliver(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Error(ctx, "Change notifier panicked: %v", r)
		}
	}()
	w.notify()
}

// addTree watches dir and every readable directory beneath it. With strict set,
// a failure on dir itself or a non-permission failure below it is returned;
// otherwise failures are logged and the directory is skipped.
func (w *implWatcher) addTree(ctx context.Context, dir string, strict bool) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir && strict {
				return err
			}
			w.logger.Debug(ctx, "Skipping unreadable directory %s: %v", path, err)
			if d != nil && d.IsDir() && path != dir {
				return fs.SkipDir
			}
			return nil
		}

		if !d.IsDir() {
			return nil
		}

		if err := w.watcher.Add(path); err != nil {
			if strict && (path == dir || !skippable(err)) {
				return err
			}
			w.logger.Warn(ctx, "Cannot watch %s: %v", path, err)
			return fs.SkipDir
		}
		return nil
	})
}

// skippable reports whether a subdirectory add failure only affects that directory.
func skippable(err error) bool {
	return errors.Is(err, fs.ErrPermission) || errors.Is(err, fs.ErrNotExist)
}
