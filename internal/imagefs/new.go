package imagefs

import (
	"github.com/nguyentantai21042004/pixdir/internal/logger"
)

type implEnumerator struct {
	logger logger.Logger
}

// New creates a new Enumerator instance
func New(log logger.Logger) Enumerator {
	return &implEnumerator{
		logger: log,
	}
}
