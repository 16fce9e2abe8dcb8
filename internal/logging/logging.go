// Package logging provides the process-wide logger for the CLI layer.
// The storage core itself stays quiet and reports through error returns.
package logging

import (
	"fmt"
	"os"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. Callers should use the helper functions
// below.
var L = clog.New(os.Stderr)

// SetLevel adjusts verbosity from a config string. Unknown or empty values
// leave the logger at warn.
func SetLevel(level string) {
	if level == "" {
		L.SetLevel(clog.WarnLevel)
		return
	}
	lvl, err := clog.ParseLevel(level)
	if err != nil {
		L.SetLevel(clog.WarnLevel)
		return
	}
	L.SetLevel(lvl)
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...any) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...any) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...any) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...any) {
	L.Error(fmt.Sprintf(format, v...))
}
