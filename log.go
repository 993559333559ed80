package scrollscene

import (
	"log/slog"
	"sync/atomic"
)

var pkgLogger atomic.Pointer[slog.Logger]

// SetLogger sets the logger used by the package. Passing nil restores slog.Default().
func SetLogger(logger *slog.Logger) {
	pkgLogger.Store(logger)
}

// Logger returns the logger set with SetLogger, falling back to slog.Default().
func Logger() *slog.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}
	return slog.Default()
}
