package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hypertech.group/hypersystem-web/internal/locale"
)

// PreferenceCookie remembers the last locale a visitor browsed.
const PreferenceCookie = "hl"

// RouteLocale validates the {locale} URL parameter. Unsupported codes are handed to
// notFound; supported ones are stored in the context and surfaced as Content-Language.
func RouteLocale(notFound http.Handler, secure bool) func(http.Handler) http.Handler {
	if notFound == nil {
		notFound = http.NotFoundHandler()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			code := chi.URLParam(r, "locale")
			if !locale.IsSupported(code) {
				notFound.ServeHTTP(w, r)
				return
			}
			l := locale.Locale(code)
			w.Header().Set("Content-Language", l.HTMLLang())
			if c, err := r.Cookie(PreferenceCookie); err != nil || c.Value != code {
				http.SetCookie(w, &http.Cookie{
					Name:     PreferenceCookie,
					Value:    code,
					Path:     "/",
					MaxAge:   365 * 24 * 60 * 60,
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}
			next.ServeHTTP(w, r.WithContext(WithLocale(r.Context(), l)))
		})
	}
}

// PreferredLocale picks the locale for an unprefixed request: the preference cookie
// first, then Accept-Language, then the fallback.
func PreferredLocale(r *http.Request, fallback locale.Locale) locale.Locale {
	if c, err := r.Cookie(PreferenceCookie); err == nil && locale.IsSupported(c.Value) {
		return locale.Locale(c.Value)
	}
	if r.Header.Get("Accept-Language") == "" {
		return fallback
	}
	return locale.Negotiate(r.Header.Get("Accept-Language"))
}

// VaryLocale sets Vary header for Accept-Language on dynamic responses
func VaryLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Accept-Language")
		next.ServeHTTP(w, r)
	})
}
