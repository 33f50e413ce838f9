package ui

import (
	"io"
	"os"

	"github.com/pterm/pterm"
)

var logger = pterm.DefaultLogger.WithLevel(pterm.LogLevelInfo).WithWriter(os.Stderr)

// Logger returns the shared structured logger
func Logger() *pterm.Logger {
	return logger
}

// SetDebug toggles debug level logging
func SetDebug(debug bool) {
	level := pterm.LogLevelInfo
	if debug {
		level = pterm.LogLevelDebug
	}
	logger = logger.WithLevel(level)
}

// SetLogOutput redirects log output, mostly for tests and the TUI, which
// owns the terminal while it runs
func SetLogOutput(w io.Writer) {
	logger = logger.WithWriter(w)
}
