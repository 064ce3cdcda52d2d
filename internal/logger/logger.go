// Package logger provides verbose logging for the IDMS console.
// When verbose mode is enabled via the --verbose flag, debug messages
// are written to stderr (or the configured output) to help users follow
// the upload lifecycle.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	charmlog "github.com/charmbracelet/log"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	base              = newCharmLogger(os.Stderr)
)

func newCharmLogger(w io.Writer) *charmlog.Logger {
	l := charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: false,
		Level:           charmlog.DebugLevel,
	})
	l.SetFormatter(charmlog.TextFormatter)
	return l
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing and for the TUI,
// which must not write to the terminal it draws on.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	base = newCharmLogger(w)
}

// Output returns the current output writer.
func Output() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return output
}

// Debug logs a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		base.Debug(fmt.Sprintf(format, args...))
	}
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Info logs an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		base.Info(fmt.Sprintf(format, args...))
	}
}

// Warn logs a warning if verbose mode is enabled.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		base.Warn(fmt.Sprintf(format, args...))
	}
}

// With returns a structured logger carrying the given key-value pairs.
// It writes only when verbose mode is enabled at call time.
func With(keyvals ...any) *Fields {
	return &Fields{keyvals: keyvals}
}

// Fields is a set of key-value pairs attached to log lines.
type Fields struct {
	keyvals []any
}

// Debug logs msg with the attached fields if verbose mode is enabled.
func (f *Fields) Debug(msg string, keyvals ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		base.Debug(msg, append(append([]any{}, f.keyvals...), keyvals...)...)
	}
}

// Warn logs msg with the attached fields if verbose mode is enabled.
func (f *Fields) Warn(msg string, keyvals ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		base.Warn(msg, append(append([]any{}, f.keyvals...), keyvals...)...)
	}
}
