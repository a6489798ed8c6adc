package cli

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the CLI package's logger instance.
// It uses a no-op logger by default; --verbose installs a real one.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the CLI package's logger.
// This must be called before any loading or conversion work.
func SetLogger(l *zap.Logger) {
	logger = l
}
