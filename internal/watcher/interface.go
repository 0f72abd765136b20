package watcher

import "context"

// Watcher is one recursive subscription on a directory tree.
type Watcher interface {
	Root() string
	Close() error
}

// Manager owns the single process-wide watch. Starting a new watch
// replaces the previous one.
type Manager interface {
	Start(ctx context.Context, root string, notify Notifier) error
	Root() string
	Close() error
}

// Notifier is called once per native filesystem event under the watched tree.
// It runs on the watcher goroutine and must not block.
type Notifier func()
