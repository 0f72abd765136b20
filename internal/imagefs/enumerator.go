package imagefs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrRootInaccessible is returned when the listed root cannot be opened.
var ErrRootInaccessible = errors.New("root path inaccessible")

var imageExtensions = []string{".jpg", ".jpeg", ".png"}

// IsImage reports whether name ends in a supported image extension, ignoring case.
func IsImage(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// List walks root recursively and returns every regular image file under it.
// Entries that cannot be read are skipped; only an unopenable root is an error.
func (e *implEnumerator) List(ctx context.Context, root string) ([]ImageFile, error) {
	if root == "" {
		return nil, fmt.Errorf("%w: empty path", ErrRootInaccessible)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRootInaccessible, root, err)
	}

	walkRoot, err := openRoot(absRoot)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRootInaccessible, err)
	}

	images := make([]ImageFile, 0)
	skipped := 0

	err = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			skipped++
			e.logger.Debug(ctx, "Skipping unreadable entry %s: %v", path, err)
			if d != nil && d.IsDir() && path != walkRoot {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() || !IsImage(d.Name()) {
			return nil
		}

		if !e.isRegular(ctx, path, d) {
			return nil
		}

		images = append(images, ImageFile{
			Path: path,
			Name: d.Name(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", absRoot, err)
	}

	e.logger.Debug(ctx, "Listed %d images under %s (%d entries skipped)", len(images), absRoot, skipped)
	return images, nil
}

// openRoot checks that root is an openable directory and returns the path to walk.
func openRoot(root string) (string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", root)
	}

	f, err := os.Open(root)
	if err != nil {
		return "", err
	}
	f.Close()

	// WalkDir does not descend into a symlinked root unless it ends in a separator.
	linfo, err := os.Lstat(root)
	if err == nil && linfo.Mode()&fs.ModeSymlink != 0 {
		return root + string(filepath.Separator), nil
	}
	return root, nil
}

// isRegular resolves symlinks so only links to regular files are listed.
func (e *implEnumerator) isRegular(ctx context.Context, path string, d fs.DirEntry) bool {
	if d.Type()&fs.ModeSymlink == 0 {
		return d.Type().IsRegular()
	}

	info, err := os.Stat(path)
	if err != nil {
		e.logger.Debug(ctx, "Skipping broken symlink %s: %v", path, err)
		return false
	}
	return info.Mode().IsRegular()
}
