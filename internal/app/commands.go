package app

import (
	"context"

	"github.com/nguyentantai21042004/pixdir/internal/imagefs"
)

// GetImages lists the images under path.
func (a *implCommands) GetImages(ctx context.Context, path string) ([]imagefs.ImageFile, error) {
	images, err := a.enumerator.List(ctx, path)
	a.metrics.ObserveList(len(images), err)
	if err != nil {
		a.logger.Error(ctx, "Failed to list images in %s: %v", path, err)
		return nil, err
	}

	a.logger.Info(ctx, "Found %d images in %s", len(images), path)
	return images, nil
}

// WatchDirectory replaces the active watch with one on path. Every change
// under path emits the configured event to the configured UI surface.
func (a *implCommands) WatchDirectory(ctx context.Context, path string) error {
	surface := a.cfg.UI.Surface
	event := a.cfg.UI.ChangedEvent

	notify := func() {
		a.emitter.EmitTo(surface, event)
	}

	// The watch outlives the request that started it.
	if err := a.watches.Start(context.WithoutCancel(ctx), path, notify); err != nil {
		a.logger.Error(ctx, "Failed to watch %s: %v", path, err)
		return err
	}

	a.logger.Info(ctx, "Watching %s, notifying %q on %q", path, surface, event)
	return nil
}

// GetAppImageDir returns the writable application image directory.
func (a *implCommands) GetAppImageDir(ctx context.Context) (string, error) {
	return a.storage.ImageDir(ctx)
}
