package cardtable

import (
	"log"
	"os"
)

// NewLogger returns the default logger: stderr, "[cardtable] " prefix.
func NewLogger() *log.Logger {
	return log.New(os.Stderr, "[cardtable] ", log.LstdFlags)
}

// debugLogger prints only when enabled. A nil Logger discards everything.
type debugLogger struct {
	Logger  *log.Logger
	enabled bool
}

// errorf always prints.
func (d *debugLogger) errorf(format string, args ...any) {
	if d == nil || d.Logger == nil {
		return
	}
	d.Logger.Printf("error: "+format, args...)
}

// debugf prints only in debug mode.
func (d *debugLogger) debugf(format string, args ...any) {
	if d == nil || d.Logger == nil || !d.enabled {
		return
	}
	d.Logger.Printf(format, args...)
}
