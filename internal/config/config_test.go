package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"hypertech.group/hypersystem-web/internal/locale"
)

func TestLoadWithDefaults(t *testing.T) {
	cfg, err := Load(WithEnvMap(map[string]string{}), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %s", cfg.Server.Addr)
	}
	if cfg.Server.ReadTimeout != defaultReadTimeout {
		t.Errorf("unexpected read timeout: %s", cfg.Server.ReadTimeout)
	}
	if cfg.Server.RequestTimeout != 30*time.Second {
		t.Errorf("unexpected request timeout: %s", cfg.Server.RequestTimeout)
	}
	if cfg.Site.BaseURL != "https://hypersystem.tw" {
		t.Errorf("unexpected base url: %s", cfg.Site.BaseURL)
	}
	if cfg.Site.DefaultLocale != locale.ZhTW {
		t.Errorf("expected default locale zh-TW, got %s", cfg.Site.DefaultLocale)
	}
	if !cfg.Site.TrailingSlash {
		t.Error("expected trailing slash to default to true")
	}
	if cfg.Templates.Dev {
		t.Error("expected dev templates to be off by default")
	}
	if cfg.SecureCookies() {
		t.Error("expected insecure cookies in local environment")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("unexpected log level: %s", cfg.Log.Level)
	}
}

func TestLoadWithOverrides(t *testing.T) {
	env := map[string]string{
		"HYPER_WEB_ADDR":              "127.0.0.1:9000",
		"HYPER_WEB_BASE_URL":          "https://example.test/",
		"HYPER_WEB_DEFAULT_LOCALE":    "ja",
		"HYPER_WEB_TRAILING_SLASH":    "false",
		"HYPER_WEB_DEV":               "1",
		"HYPER_WEB_ENV":               "PROD",
		"HYPER_WEB_READ_TIMEOUT":      "3s",
		"HYPER_WEB_GA_MEASUREMENT_ID": "G-TEST",
		"LOG_LEVEL":                   "debug",
	}

	cfg, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("unexpected addr: %s", cfg.Server.Addr)
	}
	if cfg.Site.BaseURL != "https://example.test" {
		t.Errorf("expected trailing slash trimmed, got %s", cfg.Site.BaseURL)
	}
	if cfg.Site.DefaultLocale != locale.Ja {
		t.Errorf("unexpected default locale: %s", cfg.Site.DefaultLocale)
	}
	if cfg.Site.TrailingSlash {
		t.Error("expected trailing slash disabled")
	}
	if !cfg.Templates.Dev {
		t.Error("expected dev templates enabled")
	}
	if !cfg.SecureCookies() {
		t.Error("expected secure cookies in prod")
	}
	if cfg.Server.ReadTimeout != 3*time.Second {
		t.Errorf("unexpected read timeout: %s", cfg.Server.ReadTimeout)
	}
	if cfg.Analytics.GAMeasurementID != "G-TEST" {
		t.Errorf("unexpected GA id: %s", cfg.Analytics.GAMeasurementID)
	}
}

func TestLoadFallsBackToPort(t *testing.T) {
	cfg, err := Load(WithEnvMap(map[string]string{"PORT": "7070"}), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Addr != ":7070" {
		t.Errorf("expected :7070, got %s", cfg.Server.Addr)
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "HYPER_WEB_BASE_URL=https://dotenv.test\nHYPER_WEB_DEFAULT_LOCALE=en\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := Load(
		WithEnvMap(map[string]string{"HYPER_WEB_DEFAULT_LOCALE": "zh-CN"}),
		WithoutSystemEnv(),
		WithEnvFile(path),
	)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Site.BaseURL != "https://dotenv.test" {
		t.Errorf("expected base url from dotenv, got %s", cfg.Site.BaseURL)
	}
	if cfg.Site.DefaultLocale != locale.ZhCN {
		t.Errorf("expected explicit map to win over dotenv, got %s", cfg.Site.DefaultLocale)
	}
}

func TestLoadMissingDotEnvIsIgnored(t *testing.T) {
	_, err := Load(WithoutSystemEnv(), WithEnvFile(filepath.Join(t.TempDir(), "missing.env")))
	if err != nil {
		t.Fatalf("expected missing dotenv to be ignored, got %v", err)
	}
}

func TestLoadValidationErrors(t *testing.T) {
	env := map[string]string{
		"HYPER_WEB_BASE_URL":       "not a url",
		"HYPER_WEB_DEFAULT_LOCALE": "fr",
		"HYPER_WEB_TRAILING_SLASH": "maybe",
		"HYPER_WEB_READ_TIMEOUT":   "soon",
		"HYPER_WEB_ENV":            "moon",
		"LOG_LEVEL":                "loud",
	}

	_, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	if err == nil {
		t.Fatal("expected validation error")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}

	want := map[string]bool{
		"HYPER_WEB_BASE_URL":       true,
		"HYPER_WEB_DEFAULT_LOCALE": true,
		"HYPER_WEB_TRAILING_SLASH": true,
		"HYPER_WEB_READ_TIMEOUT":   true,
		"HYPER_WEB_ENV":            true,
		"LOG_LEVEL":                true,
	}
	got := vErr.Fields()
	if len(got) != len(want) {
		t.Fatalf("unexpected fields: %v", got)
	}
	for _, f := range got {
		if !want[f] {
			t.Errorf("unexpected field %s", f)
		}
	}
}

func TestLoadTracing(t *testing.T) {
	cfg, err := Load(WithEnvMap(map[string]string{}), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Tracing.OTLPEndpoint != "" || cfg.Tracing.SampleRatio != 1 || cfg.Tracing.ServiceName != "hypersystem-web" {
		t.Errorf("unexpected tracing defaults: %+v", cfg.Tracing)
	}

	cfg, err = Load(WithEnvMap(map[string]string{
		"OTEL_EXPORTER_OTLP_ENDPOINT": "collector:4317",
		"OTEL_SAMPLING_RATIO":         "0.25",
	}), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Tracing.OTLPEndpoint != "collector:4317" || cfg.Tracing.SampleRatio != 0.25 {
		t.Errorf("unexpected tracing overrides: %+v", cfg.Tracing)
	}

	for _, ratio := range []string{"often", "1.5", "-0.1"} {
		_, err := Load(WithEnvMap(map[string]string{"OTEL_SAMPLING_RATIO": ratio}), WithoutSystemEnv(), WithEnvFile(""))
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("ratio %q: expected ValidationError, got %v", ratio, err)
		}
		if got := vErr.Fields(); len(got) != 1 || got[0] != "OTEL_SAMPLING_RATIO" {
			t.Errorf("ratio %q: unexpected fields %v", ratio, got)
		}
	}
}
