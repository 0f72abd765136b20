package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	ErrDataDirUnresolved = errors.New("cannot determine application data directory")
	ErrCreateDir         = errors.New("cannot create image directory")
	ErrNotWritable       = errors.New("image directory is not writable")
)

const probeFileName = "test_write_permission.tmp"

// ImageDir resolves <app data dir>/<image dir name>, creates it if needed and
// verifies it is writable with a probe file. A probe that cannot be removed
// is only logged: the write already proved the directory writable.
func (r *implResolver) ImageDir(ctx context.Context) (string, error) {
	base, err := r.appDataDir()
	if err != nil {
		r.logger.Error(ctx, "Failed to resolve application data directory: %v", err)
		return "", fmt.Errorf("%w: %w", ErrDataDirUnresolved, err)
	}
	r.logger.Debug(ctx, "Application data directory: %s", base)

	imageDir := filepath.Join(base, r.imageDirName)

	if err := os.MkdirAll(imageDir, 0755); err != nil {
		r.logger.Error(ctx, "Failed to create image directory %s: %v", imageDir, err)
		return "", fmt.Errorf("%w: %w", ErrCreateDir, err)
	}

	probe := filepath.Join(imageDir, probeFileName)
	if err := os.WriteFile(probe, []byte("test"), 0644); err != nil {
		r.logger.Error(ctx, "Image directory %s is not writable: %v", imageDir, err)
		return "", fmt.Errorf("%w: %w", ErrNotWritable, err)
	}
	if err := r.removeFile(probe); err != nil {
		r.logger.Warn(ctx, "Failed to remove probe file %s: %v", probe, err)
	}

	r.logger.Info(ctx, "Image directory ready: %s", imageDir)
	return imageDir, nil
}

func (r *implResolver) appDataDir() (string, error) {
	if r.dataDir != "" {
		return filepath.Abs(r.dataDir)
	}

	root, err := r.userDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, r.identifier), nil
}
