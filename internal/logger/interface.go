package logger

import (
	"context"
	"io"
)

// Logger is the printf-style logger shared by every package.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
}

// Options configures a Logger beyond its level.
type Options struct {
	Level  string
	Format string
	Prefix string
	Output io.Writer
}
