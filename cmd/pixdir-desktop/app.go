package main

import (
	"context"
	"sync/atomic"

	pixapp "github.com/nguyentantai21042004/pixdir/internal/app"
	"github.com/nguyentantai21042004/pixdir/internal/imagefs"
	"github.com/nguyentantai21042004/pixdir/internal/logger"
	"github.com/nguyentantai21042004/pixdir/internal/watcher"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// App is bound into the webview. Its exported methods are the commands the
// frontend calls.
type App struct {
	ctx      atomic.Pointer[context.Context]
	surface  string
	commands pixapp.Commands
	watches  watcher.Manager
	logger   logger.Logger
}

func NewApp(surface string, log logger.Logger) *App {
	return &App{
		surface: surface,
		logger:  log,
	}
}

// bind attaches the command surface once it has been built with a as its emitter.
func (a *App) bind(commands pixapp.Commands, watches watcher.Manager) {
	a.commands = commands
	a.watches = watches
}

func (a *App) startup(ctx context.Context) {
	a.ctx.Store(&ctx)
	if _, err := a.commands.GetAppImageDir(ctx); err != nil {
		a.logger.Error(ctx, "Failed to prepare image directory: %v", err)
	}
}

func (a *App) shutdown(ctx context.Context) {
	if err := a.watches.Close(); err != nil {
		a.logger.Warn(ctx, "Failed to stop watch: %v", err)
	}
}

func (a *App) context() context.Context {
	if ctx := a.ctx.Load(); ctx != nil {
		return *ctx
	}
	return context.Background()
}

// windowEmitter forwards change notifications to the webview. It is kept off
// App so the frontend cannot call it.
type windowEmitter struct {
	app *App
}

// EmitTo emits event to the single window when surface names it.
func (e windowEmitter) EmitTo(surface, event string) {
	a := e.app
	ctx := a.ctx.Load()
	if ctx == nil {
		return
	}
	if surface != a.surface {
		a.logger.Debug(*ctx, "No window for surface %s, dropping %s", surface, event)
		return
	}
	runtime.EventsEmit(*ctx, event)
}

func (a *App) GetImages(path string) ([]imagefs.ImageFile, error) {
	return a.commands.GetImages(a.context(), path)
}

func (a *App) WatchDirectory(path string) error {
	return a.commands.WatchDirectory(a.context(), path)
}

func (a *App) GetAppImageDir() (string, error) {
	return a.commands.GetAppImageDir(a.context())
}
