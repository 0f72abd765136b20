package app

import (
	"github.com/nguyentantai21042004/pixdir/internal/config"
	"github.com/nguyentantai21042004/pixdir/internal/imagefs"
	"github.com/nguyentantai21042004/pixdir/internal/logger"
	"github.com/nguyentantai21042004/pixdir/internal/metrics"
	"github.com/nguyentantai21042004/pixdir/internal/storage"
	"github.com/nguyentantai21042004/pixdir/internal/watcher"
)

type implCommands struct {
	cfg        *config.Config
	enumerator imagefs.Enumerator
	watches    watcher.Manager
	storage    storage.Resolver
	emitter    Emitter
	logger     logger.Logger
	metrics    *metrics.Metrics
}

// Deps groups the components behind the command surface.
type Deps struct {
	Enumerator imagefs.Enumerator
	Watches    watcher.Manager
	Storage    storage.Resolver
	Emitter    Emitter
	Logger     logger.Logger
	Metrics    *metrics.Metrics
}

// New creates a new Commands instance
func New(cfg *config.Config, deps Deps) Commands {
	return &implCommands{
		cfg:        cfg,
		enumerator: deps.Enumerator,
		watches:    deps.Watches,
		storage:    deps.Storage,
		emitter:    deps.Emitter,
		logger:     deps.Logger,
		metrics:    deps.Metrics,
	}
}
