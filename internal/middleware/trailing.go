package middleware

import (
	"net/http"
	"strings"
)

// TrailingSlash redirects page GETs to the canonical form: with a trailing slash when
// enabled, without one otherwise. Fragment routes are left alone.
func TrailingSlash(enabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}
			p := r.URL.Path
			if p == "/" || strings.Contains(p, "/_fragments") {
				next.ServeHTTP(w, r)
				return
			}
			target := ""
			switch {
			case enabled && !strings.HasSuffix(p, "/"):
				target = p + "/"
			case !enabled && strings.HasSuffix(p, "/"):
				target = strings.TrimRight(p, "/")
			}
			if target == "" {
				next.ServeHTTP(w, r)
				return
			}
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}
			http.Redirect(w, r, target, http.StatusMovedPermanently)
		})
	}
}
