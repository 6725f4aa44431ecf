// Package rtlog defines the logging seam the renderer and CLI driver
// write progress and diagnostics through, so a caller embedding the
// renderer can redirect or silence it without touching render code.
package rtlog

import (
	"io"
	"log"
)

// Logger is the minimal printf-style sink the renderer depends on.
type Logger interface {
	Printf(format string, args ...interface{})
}

// StdLogger adapts the standard library's *log.Logger to Logger.
type StdLogger struct {
	l *log.Logger
}

// New returns a Logger writing to w with a timestamp prefix, in the
// same style as log.Default but directed at an arbitrary writer.
func New(w io.Writer) *StdLogger {
	return &StdLogger{l: log.New(w, "", log.LstdFlags)}
}

func (s *StdLogger) Printf(format string, args ...interface{}) {
	s.l.Printf(format, args...)
}

// Discard silently drops every message, for callers that render
// without wanting progress output (library use, tests).
type discard struct{}

func (discard) Printf(string, ...interface{}) {}

// Discard is the shared no-op Logger.
var Discard Logger = discard{}
