package calculation

import (
	"io"
	"log"
)

// Logger is a minimal logging interface for the tax engines. The host
// payroll application injects its own implementation; the default is a
// no-op so library callers pay nothing for unobserved logs.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// StdLogger writes leveled lines through the standard library logger.
// The CLI uses it on stderr.
type StdLogger struct {
	l *log.Logger
}

// NewStdLogger creates a StdLogger writing to out.
func NewStdLogger(out io.Writer) *StdLogger {
	return &StdLogger{l: log.New(out, "", log.LstdFlags)}
}

func (s *StdLogger) Debugf(format string, args ...any) { s.l.Printf("DEBUG "+format, args...) }
func (s *StdLogger) Infof(format string, args ...any)  { s.l.Printf("INFO  "+format, args...) }
func (s *StdLogger) Warnf(format string, args ...any)  { s.l.Printf("WARN  "+format, args...) }
func (s *StdLogger) Errorf(format string, args ...any) { s.l.Printf("ERROR "+format, args...) }
