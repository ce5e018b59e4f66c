package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"hypertech.group/hypersystem-web/internal/locale"
)

const (
	defaultEnvFile        = ".env"
	defaultAddr           = ":8080"
	defaultBaseURL        = "https://hypersystem.tw"
	defaultEnvironment    = "local"
	defaultLogLevel       = "info"
	defaultReadTimeout    = 10 * time.Second
	defaultWriteTimeout   = 15 * time.Second
	defaultIdleTimeout    = 60 * time.Second
	defaultRequestTimeout = 30 * time.Second
	defaultServiceName    = "hypersystem-web"
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server    ServerConfig
	Site      SiteConfig
	Templates TemplateConfig
	Analytics AnalyticsConfig
	Log       LogConfig
	Tracing   TracingConfig
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Addr           string
	Environment    string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	RequestTimeout time.Duration
}

// SiteConfig holds public URL and routing preferences.
type SiteConfig struct {
	BaseURL       string
	DefaultLocale locale.Locale
	TrailingSlash bool
}

// TemplateConfig controls template loading.
type TemplateConfig struct {
	Dev bool
	Dir string
}

// AnalyticsConfig carries optional tag manager identifiers.
type AnalyticsConfig struct {
	GAMeasurementID string
	GTMContainerID  string
}

// LogConfig selects the zap level.
type LogConfig struct {
	Level string
}

// TracingConfig controls the OpenTelemetry tracer provider. Spans are only
// exported when OTLPEndpoint is set.
type TracingConfig struct {
	ServiceName  string
	OTLPEndpoint string
	SampleRatio  float64
}

// SecureCookies reports whether cookies should carry the Secure flag.
func (c Config) SecureCookies() bool {
	return c.Server.Environment == "prod"
}

// ValidationError is returned when configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises how configuration is loaded.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the dotenv file path. An empty path disables dotenv loading.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap supplies explicit values that take precedence over the environment.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv ignores the process environment.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load resolves configuration from explicit values, the process environment and
// an optional .env file, in that order of precedence.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	dotEnvValues, err := loadDotEnv(options.envFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		if options.envMap != nil {
			if value, ok := options.envMap[key]; ok {
				return value, true
			}
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		if value, ok := dotEnvValues[key]; ok {
			return value, true
		}
		return "", false
	}

	p := parser{lookup: lookup}
	cfg := Config{
		Server: ServerConfig{
			Addr:           addrFrom(lookup),
			Environment:    strings.ToLower(p.string("HYPER_WEB_ENV", defaultEnvironment)),
			ReadTimeout:    p.duration("HYPER_WEB_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout:   p.duration("HYPER_WEB_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:    p.duration("HYPER_WEB_IDLE_TIMEOUT", defaultIdleTimeout),
			RequestTimeout: p.duration("HYPER_WEB_REQUEST_TIMEOUT", defaultRequestTimeout),
		},
		Site: SiteConfig{
			BaseURL:       strings.TrimRight(p.string("HYPER_WEB_BASE_URL", defaultBaseURL), "/"),
			DefaultLocale: p.locale("HYPER_WEB_DEFAULT_LOCALE", locale.Default),
			TrailingSlash: p.bool("HYPER_WEB_TRAILING_SLASH", true),
		},
		Templates: TemplateConfig{
			Dev: p.bool("HYPER_WEB_DEV", false),
			Dir: p.string("HYPER_WEB_TEMPLATES_DIR", "templates"),
		},
		Analytics: AnalyticsConfig{
			GAMeasurementID: p.string("HYPER_WEB_GA_MEASUREMENT_ID", ""),
			GTMContainerID:  p.string("HYPER_WEB_GTM_CONTAINER_ID", ""),
		},
		Log: LogConfig{
			Level: strings.ToLower(p.string("LOG_LEVEL", defaultLogLevel)),
		},
		Tracing: TracingConfig{
			ServiceName:  p.string("OTEL_SERVICE_NAME", defaultServiceName),
			OTLPEndpoint: p.string("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			SampleRatio:  p.float("OTEL_SAMPLING_RATIO", 1),
		},
	}

	if err := validateConfig(cfg, p.invalid); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func addrFrom(lookup func(string) (string, bool)) string {
	if value, ok := lookup("HYPER_WEB_ADDR"); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	if port, ok := lookup("PORT"); ok && strings.TrimSpace(port) != "" {
		return ":" + strings.TrimSpace(port)
	}
	return defaultAddr
}

func validateConfig(cfg Config, invalid []string) error {
	fields := append([]string(nil), invalid...)

	if u, err := url.Parse(cfg.Site.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		fields = append(fields, "HYPER_WEB_BASE_URL")
	}
	switch cfg.Server.Environment {
	case "local", "dev", "stg", "prod":
	default:
		fields = append(fields, "HYPER_WEB_ENV")
	}
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		fields = append(fields, "LOG_LEVEL")
	}
	if r := cfg.Tracing.SampleRatio; (r < 0 || r > 1) && !contains(fields, "OTEL_SAMPLING_RATIO") {
		fields = append(fields, "OTEL_SAMPLING_RATIO")
	}
	for name, d := range map[string]time.Duration{
		"HYPER_WEB_READ_TIMEOUT":    cfg.Server.ReadTimeout,
		"HYPER_WEB_WRITE_TIMEOUT":   cfg.Server.WriteTimeout,
		"HYPER_WEB_IDLE_TIMEOUT":    cfg.Server.IdleTimeout,
		"HYPER_WEB_REQUEST_TIMEOUT": cfg.Server.RequestTimeout,
	} {
		if d <= 0 && !contains(fields, name) {
			fields = append(fields, name)
		}
	}

	if len(fields) == 0 {
		return nil
	}
	sort.Strings(fields)
	return &ValidationError{fields: fields}
}

func loadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return values, nil
}

// parser reads typed values and remembers keys whose raw value could not be parsed.
type parser struct {
	lookup  func(string) (string, bool)
	invalid []string
}

func (p *parser) string(key, fallback string) string {
	if value, ok := p.lookup(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func (p *parser) duration(key string, fallback time.Duration) time.Duration {
	value, ok := p.lookup(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		p.invalid = append(p.invalid, key)
		return fallback
	}
	return d
}

func (p *parser) float(key string, fallback float64) float64 {
	value, ok := p.lookup(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		p.invalid = append(p.invalid, key)
		return fallback
	}
	return f
}

func (p *parser) bool(key string, fallback bool) bool {
	value, ok := p.lookup(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	}
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	p.invalid = append(p.invalid, key)
	return fallback
}

func (p *parser) locale(key string, fallback locale.Locale) locale.Locale {
	value, ok := p.lookup(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}
	l, err := locale.Parse(strings.TrimSpace(value))
	if err != nil {
		p.invalid = append(p.invalid, key)
		return fallback
	}
	return l
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
