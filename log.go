package compacttrie

import "github.com/rs/zerolog"

// Logger receives build-time diagnostics from the label compressor. It is
// never on the query path - Contains and Suggest never log.
type Logger interface {
	Debugf(format string, args ...any)
}

// NoopLogger discards every message. It is the default Logger used by
// Build when no WithLogger option is supplied.
type NoopLogger struct{}

// Debugf implements Logger.
func (NoopLogger) Debugf(string, ...any) {}

// ZerologLogger adapts a zerolog.Logger to the Logger interface, emitting
// compressor progress as structured debug events.
type ZerologLogger struct {
	zl zerolog.Logger
}

// NewZerologLogger wraps zl for use as a build-time Logger.
func NewZerologLogger(zl zerolog.Logger) ZerologLogger {
	return ZerologLogger{zl: zl}
}

// Debugf implements Logger.
func (l ZerologLogger) Debugf(format string, args ...any) {
	l.zl.Debug().Msgf(format, args...)
}
