// Package logging exposes the structured logger used by the HTTP server.
package logging

import "context"

// Logger is the minimal structured logging contract.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	WithContext(ctx context.Context) Logger
}

// FieldsLogger is implemented by loggers that carry structured fields.
type FieldsLogger interface {
	WithFields(fields map[string]any) Logger
}

// Provider returns named loggers.
type Provider interface {
	GetLogger(name string) Logger
}

// ModuleLogger returns the named logger tagged with a module field, or a
// no-op logger when provider is nil.
func ModuleLogger(provider Provider, module string) Logger {
	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}
	if fieldsLogger, ok := logger.(FieldsLogger); ok && module != "" {
		return fieldsLogger.WithFields(map[string]any{"module": module})
	}
	return logger
}

// NoOp returns a logger that discards every entry.
func NoOp() Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) Logger {
	return n
}
