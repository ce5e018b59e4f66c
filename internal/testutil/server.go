package testutil

import (
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"hypertech.group/hypersystem-web/internal/config"
	"hypertech.group/hypersystem-web/internal/httpserver"
	"hypertech.group/hypersystem-web/internal/leads"
)

// ServerOption customises the HTTP server configuration for tests.
type ServerOption func(*httpserver.Config)

// WithLeadSink replaces the default log sink.
func WithLeadSink(sink leads.Sink) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.LeadSink = sink
	}
}

// WithTrailingSlash toggles the canonical trailing slash.
func WithTrailingSlash(enabled bool) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.App.Site.TrailingSlash = enabled
	}
}

// WithLogger routes request logs to logger.
func WithLogger(logger *zap.Logger) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Logger = logger
	}
}

// WithTracing instruments the handler with tp and p instead of the otel globals.
func WithTracing(tp trace.TracerProvider, p propagation.TextMapPropagator) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.TracerProvider = tp
		cfg.Propagator = p
	}
}

// TestConfig is the configuration NewServer starts from: defaults, no process env.
func TestConfig(t testing.TB) config.Config {
	t.Helper()
	cfg, err := config.Load(config.WithoutSystemEnv(), config.WithEnvFile(""))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	return cfg
}

// NewServer constructs an httptest server running the site HTTP stack with sensible defaults.
func NewServer(t testing.TB, opts ...ServerOption) *httptest.Server {
	t.Helper()

	cfg := httpserver.Config{
		App:      TestConfig(t),
		LeadSink: &leads.MemorySink{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	h, err := httpserver.NewHandler(cfg)
	if err != nil {
		t.Fatalf("build handler: %v", err)
	}
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}
