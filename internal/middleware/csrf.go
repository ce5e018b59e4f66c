package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"time"
)

const (
	csrfCookieName = "csrf_token"
	csrfHeaderName = "X-CSRF-Token"
	csrfFormField  = "csrf_token"
)

// CSRF issues a double-submit cookie and verifies that modifying requests echo it
// in the X-CSRF-Token header or the csrf_token form field. Rejections are 403 with
// the text from forbidden.
func CSRF(secure bool, forbidden MessageFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ""
			if c, err := r.Cookie(csrfCookieName); err == nil && len(c.Value) == 32 {
				token = c.Value
			}

			if !isSafeMethod(r.Method) {
				sent := r.Header.Get(csrfHeaderName)
				if sent == "" {
					sent = r.PostFormValue(csrfFormField)
				}
				if token == "" || sent == "" || subtle.ConstantTimeCompare([]byte(sent), []byte(token)) != 1 {
					writeRejection(w, r, http.StatusForbidden, forbidden)
					return
				}
			}

			if token == "" {
				token = newCSRFToken()
				http.SetCookie(w, &http.Cookie{
					Name:     csrfCookieName,
					Value:    token,
					Path:     "/",
					HttpOnly: false,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
					Expires:  time.Now().Add(24 * time.Hour),
				})
			}

			next.ServeHTTP(w, r.WithContext(WithCSRFToken(r.Context(), token)))
		})
	}
}

func newCSRFToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func isSafeMethod(m string) bool {
	switch m {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	default:
		return false
	}
}
