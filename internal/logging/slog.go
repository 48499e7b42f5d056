package logging

import (
	"context"
	"log/slog"
)

// SlogLogger adapts a *slog.Logger to the Logger interface. It is the only
// implementation the application ships; tests typically wrap a handler that
// writes to io.Discard.
type SlogLogger struct {
	log *slog.Logger
}

// NewSlogLogger wraps an already-configured slog logger.
func NewSlogLogger(log *slog.Logger) *SlogLogger {
	return &SlogLogger{log: log}
}

func (s *SlogLogger) Debug(ctx context.Context, msg string, args ...any) {
	s.log.DebugContext(ctx, msg, args...)
}

func (s *SlogLogger) Info(ctx context.Context, msg string, args ...any) {
	s.log.InfoContext(ctx, msg, args...)
}

func (s *SlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	s.log.WarnContext(ctx, msg, args...)
}

func (s *SlogLogger) Error(ctx context.Context, msg string, args ...any) {
	s.log.ErrorContext(ctx, msg, args...)
}

// With returns a child logger carrying the given key–value pairs on every
// record it emits.
func (s *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{log: s.log.With(args...)}
}
