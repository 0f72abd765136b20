package watcher

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/pixdir/internal/logger"
	"github.com/nguyentantai21042004/pixdir/internal/metrics"
)

// ErrWatchStart is returned when a watch cannot be established.
var ErrWatchStart = errors.New("watch cannot be established")

// New creates a recursive Watcher on root and starts delivering events to notify.
func New(ctx context.Context, root string, notify Notifier, log logger.Logger, m *metrics.Metrics) (Watcher, error) {
	if root == "" {
		return nil, fmt.Errorf("%w: empty path", ErrWatchStart)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWatchStart, err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWatchStart, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrWatchStart, absRoot)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("%w: create watcher: %w", ErrWatchStart, err)
	}

	w := &implWatcher{
		root:    absRoot,
		notify:  notify,
		logger:  log,
		metrics: m,
		watcher: watcher,
		done:    make(chan struct{}),
	}

	if err := w.addTree(ctx, walkPath(absRoot), true); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("%w: add watch path: %w", ErrWatchStart, err)
	}

	go w.run(ctx)

	return w, nil
}

// NewManager creates a Manager with no active watch.
func NewManager(log logger.Logger, m *metrics.Metrics) Manager {
	return &implManager{
		logger:  log,
		metrics: m,
	}
}

// walkPath appends a separator to a symlinked root so WalkDir descends into it.
func walkPath(root string) string {
	info, err := os.Lstat(root)
	if err == nil && info.Mode()&fs.ModeSymlink != 0 {
		return root + string(filepath.Separator)
	}
	return root
}
