package whatwgurl

import "sync"

// Logger receives debug diagnostics from the parser and the setters.
// *logutil.ComponentLogger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
}

type discardLogger struct{}

func (discardLogger) Debug(string, ...any) {}

var (
	logMu  sync.RWMutex
	logger Logger = discardLogger{}
)

// SetLogger installs l as the diagnostics sink. A nil l discards diagnostics.
// This function is safe for concurrent use.
func SetLogger(l Logger) {
	logMu.Lock()
	defer logMu.Unlock()
	if l == nil {
		l = discardLogger{}
	}
	logger = l
}

func debug(msg string, args ...any) {
	logMu.RLock()
	l := logger
	logMu.RUnlock()
	l.Debug(msg, args...)
}
