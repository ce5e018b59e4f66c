package middleware

import (
	"context"
	"net/http"
	"strings"
)

// HTMXInfo captures request metadata from HX-* headers.
type HTMXInfo struct {
	IsHTMX         bool
	CurrentURL     string
	Target         string
	HistoryRestore bool
}

// HTMX marks requests coming from htmx so handlers/middlewares can adapt responses
func HTMX(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info := HTMXInfo{
			IsHTMX:         strings.EqualFold(r.Header.Get("HX-Request"), "true"),
			CurrentURL:     r.Header.Get("HX-Current-URL"),
			Target:         r.Header.Get("HX-Target"),
			HistoryRestore: strings.EqualFold(r.Header.Get("HX-History-Restore-Request"), "true"),
		}
		ctx := context.WithValue(r.Context(), ctxKeyHTMX, info)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// HTMXInfoFromContext retrieves HTMX metadata; returns zero value if absent.
func HTMXInfoFromContext(ctx context.Context) HTMXInfo {
	v, _ := ctx.Value(ctxKeyHTMX).(HTMXInfo)
	return v
}

// IsHTMX returns whether this is an htmx request
func IsHTMX(ctx context.Context) bool {
	return HTMXInfoFromContext(ctx).IsHTMX
}

// RequireHTMX returns 404 for direct navigation to fragment routes.
func RequireHTMX(notFound http.Handler) func(http.Handler) http.Handler {
	if notFound == nil {
		notFound = http.NotFoundHandler()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !IsHTMX(r.Context()) {
				notFound.ServeHTTP(w, r)
				return
			}
			w.Header().Add("Vary", "HX-Request")
			next.ServeHTTP(w, r)
		})
	}
}
