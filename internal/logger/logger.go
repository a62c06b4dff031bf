// Package logger configura o slog da aplicação: JSON no stdout e, com
// OpenTelemetry habilitado, também a ponte otelslog para o LoggerProvider global.
package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "app-busca-rescore"

// New cria o logger da aplicação. Com enableOTel, os registros também vão
// para o LoggerProvider global configurado em observability.Init.
func New(level string, enableOTel bool) *slog.Logger {
	if enableOTel {
		return NewWithProvider(level, global.GetLoggerProvider())
	}
	return slog.New(newStdoutHandler(level))
}

// NewWithProvider cria um logger que escreve JSON no stdout e encaminha
// cada registro ao provider informado pela ponte otelslog
func NewWithProvider(level string, provider otellog.LoggerProvider) *slog.Logger {
	return slog.New(&MultiHandler{handlers: []slog.Handler{
		newStdoutHandler(level),
		otelslog.NewHandler(serviceName, otelslog.WithLoggerProvider(provider)),
	}})
}

func newStdoutHandler(level string) slog.Handler {
	return NewTraceContextHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: ParseLevel(level)}),
	)
}

// ParseLevel converte LOG_LEVEL em slog.Level (default: info)
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// MultiHandler envia cada registro para vários handlers
type MultiHandler struct {
	handlers []slog.Handler
}

func (h *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, r.Level) {
			_ = handler.Handle(ctx, r.Clone())
		}
	}
	return nil
}

func (h *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithAttrs(attrs)
	}
	return &MultiHandler{handlers: handlers}
}

func (h *MultiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithGroup(name)
	}
	return &MultiHandler{handlers: handlers}
}

// TraceContextHandler adiciona trace_id e span_id aos registros quando há span no contexto
type TraceContextHandler struct {
	slog.Handler
}

// NewTraceContextHandler envolve um handler existente
func NewTraceContextHandler(h slog.Handler) *TraceContextHandler {
	return &TraceContextHandler{Handler: h}
}

func (h *TraceContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		r.AddAttrs(
			slog.String("trace_id", sc.TraceID().String()),
			slog.String("span_id", sc.SpanID().String()),
		)
	}
	return h.Handler.Handle(ctx, r)
}

func (h *TraceContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TraceContextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *TraceContextHandler) WithGroup(name string) slog.Handler {
	return &TraceContextHandler{Handler: h.Handler.WithGroup(name)}
}
