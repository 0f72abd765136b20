package storage

import (
	"os"

	"github.com/nguyentantai21042004/pixdir/internal/config"
	"github.com/nguyentantai21042004/pixdir/internal/logger"
)

type implResolver struct {
	identifier   string
	dataDir      string
	imageDirName string
	logger       logger.Logger

	userDataDir func() (string, error)
	removeFile  func(string) error
}

// New creates a new Resolver instance
func New(cfg *config.Config, log logger.Logger) Resolver {
	return &implResolver{
		identifier:   cfg.App.Identifier,
		dataDir:      cfg.Storage.DataDir,
		imageDirName: cfg.Storage.ImageDirName,
		logger:       log,
		userDataDir:  UserDataDir,
		removeFile:   os.Remove,
	}
}
