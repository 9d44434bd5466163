package taskrt

import (
	"sync"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// Logger is the logger type used throughout this package: an alias for
// *logiface.Logger[*stumpy.Event], the type of the package default and of
// any logger passed to SetLogger or WithLogger.
type Logger = *logiface.Logger[*stumpy.Event]

var (
	globalLogger struct {
		sync.RWMutex
		l Logger
	}
)

func init() {
	SetLogger(nil)
}

// SetLogger sets the package-wide logger used by the supervisor to report
// task lifecycle events (task started, task joined, task panicked, task
// abandoned at close); nothing else is logged. A nil logger disables
// logging (the default).
func SetLogger(l Logger) {
	globalLogger.Lock()
	defer globalLogger.Unlock()
	if l == nil {
		l = stumpy.L.New(stumpy.L.WithLevel(logiface.LevelDisabled))
	}
	globalLogger.l = l
}

func getLogger() Logger {
	globalLogger.RLock()
	defer globalLogger.RUnlock()
	return globalLogger.l
}
