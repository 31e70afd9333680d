package emendapi

import (
	"context"
	"log/slog"
)

// Logger is the interface emendapi uses for structured logging. It is
// deliberately minimal so callers can plug in log/slog or a thin adapter
// over whatever logging library their program already uses.
type Logger interface {
	Debug(msg string, attrs ...any)
	Info(msg string, attrs ...any)
	Warn(msg string, attrs ...any)
	Error(msg string, attrs ...any)

	// With returns a new Logger with the given attributes prepended to
	// every log call it makes.
	With(attrs ...any) Logger
}

// NopLogger discards everything. It is the default when no logger is
// configured via WithLogger.
type NopLogger struct{}

func (NopLogger) Debug(_ string, _ ...any) {}
func (NopLogger) Info(_ string, _ ...any)  {}
func (NopLogger) Warn(_ string, _ ...any)  {}
func (NopLogger) Error(_ string, _ ...any) {}
func (n NopLogger) With(_ ...any) Logger   { return n }

var _ Logger = NopLogger{}

// SlogAdapter wraps a *slog.Logger to implement Logger.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter wraps logger. A nil logger falls back to slog.Default().
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

func (s *SlogAdapter) Debug(msg string, attrs ...any) { s.logger.Debug(msg, attrs...) }
func (s *SlogAdapter) Info(msg string, attrs ...any)  { s.logger.Info(msg, attrs...) }
func (s *SlogAdapter) Warn(msg string, attrs ...any)  { s.logger.Warn(msg, attrs...) }
func (s *SlogAdapter) Error(msg string, attrs ...any) { s.logger.Error(msg, attrs...) }

func (s *SlogAdapter) With(attrs ...any) Logger {
	return &SlogAdapter{logger: s.logger.With(attrs...)}
}

var _ Logger = (*SlogAdapter)(nil)

// ContextLogger wraps a Logger to carry a context.Context alongside it, so
// callers threading a request- or job-scoped context through Convert/
// Downgrade can recover it from the logger they configured rather than
// plumbing a second parameter everywhere.
type ContextLogger struct {
	logger Logger
	ctx    context.Context
}

// NewContextLogger pairs logger with ctx. A nil logger is treated as
// NopLogger{}.
func NewContextLogger(logger Logger, ctx context.Context) *ContextLogger {
	if logger == nil {
		logger = NopLogger{}
	}
	return &ContextLogger{logger: logger, ctx: ctx}
}

func (c *ContextLogger) Debug(msg string, attrs ...any) { c.logger.Debug(msg, attrs...) }
func (c *ContextLogger) Info(msg string, attrs ...any)  { c.logger.Info(msg, attrs...) }
func (c *ContextLogger) Warn(msg string, attrs ...any)  { c.logger.Warn(msg, attrs...) }
func (c *ContextLogger) Error(msg string, attrs ...any) { c.logger.Error(msg, attrs...) }

func (c *ContextLogger) With(attrs ...any) Logger {
	return &ContextLogger{logger: c.logger.With(attrs...), ctx: c.ctx}
}

// Context returns the context associated with this logger.
func (c *ContextLogger) Context() context.Context {
	return c.ctx
}

var _ Logger = (*ContextLogger)(nil)
