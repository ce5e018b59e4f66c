package middleware

import (
	"context"

	"hypertech.group/hypersystem-web/internal/locale"
)

// context keys are unexported to avoid collisions
type ctxKey string

const (
	ctxKeyRequestID ctxKey = "req_id"
	ctxKeyHTMX      ctxKey = "htmx"
	ctxKeyLocale    ctxKey = "locale"
	ctxKeyCSRF      ctxKey = "csrf"
)

// WithRequestID stores request id in context
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, id)
}

// RequestID gets request id from context
func RequestID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxKeyRequestID).(string)
	return v, ok
}

// WithLocale stores the route locale
func WithLocale(ctx context.Context, l locale.Locale) context.Context {
	return context.WithValue(ctx, ctxKeyLocale, l)
}

// Locale returns the route locale, or the default when the request is not under a locale prefix
func Locale(ctx context.Context) locale.Locale {
	if v, ok := ctx.Value(ctxKeyLocale).(locale.Locale); ok && v != "" {
		return v
	}
	return locale.Default
}

// WithCSRFToken exposes the token to templates
func WithCSRFToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, ctxKeyCSRF, token)
}

// CSRFToken returns the token issued for this request
func CSRFToken(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyCSRF).(string)
	return v
}
