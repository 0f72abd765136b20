package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

const (
	CommandGetImages      = "get_images"
	CommandWatchDirectory = "watch_directory"
	CommandGetAppImageDir = "get_app_image_dir"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidArgs    = errors.New("invalid arguments")
)

type pathArgs struct {
	Path string `json:"path"`
}

// Dispatch decodes args for command and runs it.
func (a *implCommands) Dispatch(ctx context.Context, command string, args json.RawMessage) (interface{}, error) {
	switch command {
	case CommandGetImages:
		path, err := decodePath(args)
		if err != nil {
			return nil, err
		}
		return a.GetImages(ctx, path)

	case CommandWatchDirectory:
		path, err := decodePath(args)
		if err != nil {
			return nil, err
		}
		return nil, a.WatchDirectory(ctx, path)

	case CommandGetAppImageDir:
		return a.GetAppImageDir(ctx)

	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownCommand, command)
	}
}

func decodePath(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", fmt.Errorf("%w: missing required key path", ErrInvalidArgs)
	}

	var args pathArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}
	if args.Path == "" {
		return "", fmt.Errorf("%w: missing required key path", ErrInvalidArgs)
	}
	return args.Path, nil
}
