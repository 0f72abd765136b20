package main

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	pixapp "github.com/nguyentantai21042004/pixdir/internal/app"
	"github.com/nguyentantai21042004/pixdir/internal/config"
	"github.com/nguyentantai21042004/pixdir/internal/imagefs"
	"github.com/nguyentantai21042004/pixdir/internal/logger"
	"github.com/nguyentantai21042004/pixdir/internal/storage"
	"github.com/nguyentantai21042004/pixdir/internal/watcher"
)

func newBoundApp(t *testing.T) *App {
	t.Helper()
	cfg := config.Default()
	cfg.Storage.DataDir = filepath.Join(t.TempDir(), "data")
	log := logger.Nop()
	watches := watcher.NewManager(log, nil)
	t.Cleanup(func() { watches.Close() })

	app := NewApp(cfg.UI.Surface, log)
	app.bind(pixapp.New(cfg, pixapp.Deps{
		Enumerator: imagefs.New(log),
		Watches:    watches,
		Storage:    storage.New(cfg, log),
		Emitter:    windowEmitter{app: app},
		Logger:     log,
	}), watches)
	return app
}

func TestEmitBeforeStartupIsNoop(t *testing.T) {
	app := NewApp("main", logger.Nop())
	// Must not reach the Wails runtime without a startup context.
	windowEmitter{app: app}.EmitTo("main", "directory-changed")
}

type startupKey struct{}

func TestContextFallsBackBeforeStartup(t *testing.T) {
	app := NewApp("main", logger.Nop())
	if got := app.context(); got != context.Background() {
		t.Errorf("context() = %v, want Background", got)
	}

	ctx := context.WithValue(context.Background(), startupKey{}, "started")
	app.ctx.Store(&ctx)
	if got := app.context(); got != ctx {
		t.Errorf("context() = %v, want stored startup context", got)
	}
}

func TestBoundMethodsRejectEmptyPath(t *testing.T) {
	app := newBoundApp(t)
	// A valid working directory must not stand in for the missing path.
	chdir(t, t.TempDir())

	if _, err := app.GetImages(""); !errors.Is(err, imagefs.ErrRootInaccessible) {
		t.Errorf("GetImages(\"\") error = %v, want ErrRootInaccessible", err)
	}
	if err := app.WatchDirectory(""); !errors.Is(err, watcher.ErrWatchStart) {
		t.Errorf("WatchDirectory(\"\") error = %v, want ErrWatchStart", err)
	}
}
