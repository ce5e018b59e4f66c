// Package observability builds the process logger and tracer provider and
// carries the request logger through contexts.
package observability

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerOption adjusts NewLogger.
type LoggerOption func(*loggerOptions)

type loggerOptions struct {
	out     zapcore.WriteSyncer
	service string
	console bool
}

// WithOutput sends entries to w instead of stdout.
func WithOutput(w io.Writer) LoggerOption {
	return func(o *loggerOptions) {
		o.out = zapcore.AddSync(w)
	}
}

// WithService tags every entry with the service name.
func WithService(name string) LoggerOption {
	return func(o *loggerOptions) {
		o.service = name
	}
}

// WithConsole switches to the human-readable encoder used on developer machines.
func WithConsole() LoggerOption {
	return func(o *loggerOptions) {
		o.console = true
	}
}

// NewLogger builds the process logger. JSON entries use severity, timestamp and
// message keys so the log collector maps levels. Unknown level names fall back to info.
func NewLogger(levelName string, opts ...LoggerOption) *zap.Logger {
	o := loggerOptions{out: zapcore.Lock(os.Stdout)}
	for _, opt := range opts {
		opt(&o)
	}

	level, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(levelName)))
	if err != nil || strings.TrimSpace(levelName) == "" {
		level = zapcore.InfoLevel
	}

	encCfg := zapcore.EncoderConfig{
		MessageKey:     "message",
		TimeKey:        "timestamp",
		LevelKey:       "severity",
		CallerKey:      "caller",
		StacktraceKey:  "stacktrace",
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
	}
	var enc zapcore.Encoder
	if o.console {
		encCfg.EncodeTime = zapcore.TimeEncoderOfLayout(time.TimeOnly)
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	logger := zap.New(zapcore.NewCore(enc, o.out, level),
		zap.AddCaller(),
		zap.ErrorOutput(zapcore.Lock(os.Stderr)),
	)
	if o.service != "" {
		logger = logger.With(zap.String("service", o.service))
	}
	return logger
}

type ctxKey struct{}

// WithLogger stores the request logger.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the request logger, or a no-op logger outside a request.
func FromContext(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*zap.Logger); ok && l != nil {
		return l
	}
	return zap.NewNop()
}
