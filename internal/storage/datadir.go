package storage

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
)

// UserDataDir returns the per-user root for application data as resolved by
// the XDG base directory layout: $XDG_DATA_HOME or ~/.local/share on unix,
// ~/Library/Application Support on macOS and %LOCALAPPDATA% on Windows.
func UserDataDir() (string, error) {
	dir := xdg.DataHome
	if dir == "" {
		return "", errors.New("user data directory is not defined")
	}
	if !filepath.IsAbs(dir) {
		return "", fmt.Errorf("user data directory is relative: %s", dir)
	}
	return dir, nil
}
