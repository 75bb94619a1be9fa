// Package renderlog defines the small logging seam the CLI writes
// render progress through, grounded on the teacher's
// core.Logger / renderer.DefaultLogger pair (pkg/core/interfaces.go,
// pkg/renderer/progressive.go), backed here by the standard log.Logger
// instead of a bare fmt.Printf wrapper.
package renderlog

import (
	"log"
	"os"
)

// Logger is the logging seam the renderer writes progress through.
type Logger interface {
	Printf(format string, args ...interface{})
}

// StdLogger implements Logger on top of the standard library's
// log.Logger, writing to stderr with a time-stamped prefix.
type StdLogger struct {
	l *log.Logger
}

// NewDefaultLogger creates the renderer's default logger.
func NewDefaultLogger() Logger {
	return &StdLogger{l: log.New(os.Stderr, "", log.LstdFlags)}
}

// Printf implements Logger.
func (s *StdLogger) Printf(format string, args ...interface{}) {
	s.l.Printf(format, args...)
}
