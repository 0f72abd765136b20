package storage

import "context"

// Resolver locates the application-private image directory.
type Resolver interface {
	// ImageDir returns the absolute path of a directory that exists and is
	// writable, creating it on first use.
	ImageDir(ctx context.Context) (string, error)
}
