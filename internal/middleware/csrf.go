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
	csrfHeader     = "X-CSRF-Token"
	// CSRFField is the form field carrying the token on HTML form posts.
	CSRFField = "csrf_token"
)

// CSRF issues a double-submit cookie tied to the session token and rejects unsafe
// requests whose header or form token does not match both. Rejections go to onFail.
func (s *Sessions) CSRF(onFail http.HandlerFunc) func(http.Handler) http.Handler {
	if onFail == nil {
		onFail = func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "invalid CSRF token", http.StatusForbidden)
		}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sd := GetSession(r)
			token := sd.CSRFToken
			if token == "" {
				token = newCSRFToken()
				sd.CSRFToken = token
				sd.MarkDirty()
			}

			cookie, err := r.Cookie(csrfCookieName)
			if err != nil || cookie.Value != token {
				http.SetCookie(w, &http.Cookie{
					Name:     csrfCookieName,
					Value:    token,
					Path:     "/",
					Secure:   s.secure,
					SameSite: http.SameSiteLaxMode,
					Expires:  time.Now().Add(24 * time.Hour),
				})
			}

			if !isSafeMethod(r.Method) {
				sent := r.Header.Get(csrfHeader)
				if sent == "" {
					sent = r.PostFormValue(CSRFField)
				}
				if !tokensMatch(sent, token) || err != nil || !tokensMatch(cookie.Value, token) {
					onFail(w, r)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// CSRFToken returns the token to embed in forms rendered for r.
func CSRFToken(r *http.Request) string {
	return GetSession(r).CSRFToken
}

func tokensMatch(a, b string) bool {
	return a != "" && subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
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
