package middleware

import (
	"io"
	"net/http"

	"hypertech.group/hypersystem-web/internal/locale"
)

// MessageFunc returns the user-facing text of a rejection in l.
type MessageFunc func(l locale.Locale) string

// writeRejection refuses the request with a plain-text message in the route
// locale. htmx callers keep their current markup; site.js shows the message.
func writeRejection(w http.ResponseWriter, r *http.Request, code int, msg MessageFunc) {
	text := http.StatusText(code)
	if msg != nil {
		if m := msg(Locale(r.Context())); m != "" {
			text = m
		}
	}
	h := w.Header()
	h.Set("Content-Type", "text/plain; charset=utf-8")
	h.Set("X-Content-Type-Options", "nosniff")
	h.Set("Cache-Control", "no-store")
	if IsHTMX(r.Context()) {
		h.Set("HX-Reswap", "none")
	}
	w.WriteHeader(code)
	_, _ = io.WriteString(w, text)
}
