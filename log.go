package nerf

import (
	"os"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "nerf",
	Level:  log.InfoLevel,
})

// Logger returns the logger used for layout diagnostics and timing.
// Diagnostics are logged at debug level.
func Logger() *log.Logger {
	return logger
}

// SetLogger replaces the package logger. A nil logger is ignored.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}
