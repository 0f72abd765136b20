package imagefs

import "context"

// ImageFile is one image found under a listed root.
type ImageFile struct {
	Path string `json:"path"`
	Name string `json:"name"`
}

// Enumerator lists image files under a directory tree.
type Enumerator interface {
	List(ctx context.Context, root string) ([]ImageFile, error)
}
