// Package logging configures the shared stderr logger.
package logging

import (
	"os"

	"github.com/charmbracelet/log"
)

var root = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Level:           log.WarnLevel,
})

// New returns a logger for the named component. Components share the
// root level so --debug applies everywhere at once.
func New(component string) *log.Logger {
	return root.WithPrefix(component)
}

// SetDebug switches the root logger between warn (default) and debug.
func SetDebug(debug bool) {
	if debug {
		root.SetLevel(log.DebugLevel)
	} else {
		root.SetLevel(log.WarnLevel)
	}
}
