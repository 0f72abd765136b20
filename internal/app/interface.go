package app

import (
	"context"
	"encoding/json"

	"github.com/nguyentantai21042004/pixdir/internal/imagefs"
)

// Commands are the operations the UI layer can invoke.
type Commands interface {
	GetImages(ctx context.Context, path string) ([]imagefs.ImageFile, error)
	WatchDirectory(ctx context.Context, path string) error
	GetAppImageDir(ctx context.Context) (string, error)

	// Dispatch runs a command by its wire name with JSON-encoded arguments.
	Dispatch(ctx context.Context, command string, args json.RawMessage) (interface{}, error)
}

// Emitter delivers a payload-free event to a named UI surface. It must not block.
type Emitter interface {
	EmitTo(surface, event string)
}
