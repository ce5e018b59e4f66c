package middleware

import (
	"net/http"
	"strings"
	"time"

	chiMid "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"hypertech.group/hypersystem-web/internal/observability"
)

// Logger emits one structured zap entry per request and stores a request-scoped
// logger in the context for handlers.
func Logger(base *zap.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rid := chiMid.GetReqID(r.Context())
			logger := base.With(zap.String("request_id", rid))
			if sc := trace.SpanContextFromContext(r.Context()); sc.HasTraceID() {
				logger = logger.With(zap.String("trace_id", sc.TraceID().String()))
			}
			ctx := observability.WithLogger(WithRequestID(r.Context(), rid), logger)

			rw := NewResponseRecorder(w)
			r = r.WithContext(ctx)
			next.ServeHTTP(rw, r)

			fields := []zap.Field{
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rw.Status()),
				zap.Int("bytes", rw.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("remote_ip", clientIP(r)),
				zap.Bool("htmx", IsHTMX(r.Context())),
			}
			// set by RouteLocale
			if l := rw.Header().Get("Content-Language"); l != "" {
				fields = append(fields, zap.String("locale", l))
			}
			switch {
			case rw.Status() >= http.StatusInternalServerError:
				logger.Error("request", fields...)
			case rw.Status() >= http.StatusBadRequest:
				logger.Warn("request", fields...)
			default:
				logger.Info("request", fields...)
			}
		})
	}
}

func clientIP(r *http.Request) string {
	// the last X-Forwarded-For entry is the one appended by our load balancer
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		p := strings.Split(xff, ",")
		return strings.TrimSpace(p[len(p)-1])
	}
	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		return xrip
	}
	host := r.RemoteAddr
	if i := strings.LastIndex(host, ":"); i != -1 {
		return host[:i]
	}
	return host
}
