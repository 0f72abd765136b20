package watcher

import (
	"context"
	"sync"

	"github.com/nguyentantai21042004/pixdir/internal/logger"
	"github.com/nguyentantai21042004/pixdir/internal/metrics"
)

type implManager struct {
	mu      sync.Mutex
	current Watcher
	logger  logger.Logger
	metrics *metrics.Metrics
}

// Start installs a watch on root, tearing down the previous one. If the new
// watch cannot be established the previous one stays active.
func (m *implManager) Start(ctx context.Context, root string, notify Notifier) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	next, err := New(ctx, root, notify, m.logger, m.metrics)
	if err != nil {
		return err
	}

	if m.current != nil {
		m.logger.Info(ctx, "Replacing watch on %s with %s", m.current.Root(), next.Root())
		if err := m.current.Close(); err != nil {
			m.logger.Warn(ctx, "Failed to close previous watch on %s: %v", m.current.Root(), err)
		}
	}

	m.current = next
	m.metrics.WatchStarted()
	return nil
}

func (m *implManager) Root() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return ""
	}
	return m.current.Root()
}

// Close stops the active watch, if any.
func (m *implManager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return nil
	}
	err := m.current.Close()
	m.current = nil
	m.metrics.WatchStopped()
	return err
}
