package middleware

import (
	"net/http"
	"strings"
	"time"

	"seothon.dev/web/internal/i18n"
)

const localeCookieName = "hl"

// Locale resolves the request language: ?hl= override, then session, then the hl
// cookie, then Accept-Language, then the bundle fallback. Overrides persist to the
// session and cookie.
func Locale(bundle *i18n.Bundle) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sd := GetSession(r)
			lang := ""
			if q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("hl"))); q != "" && bundle.IsSupported(q) {
				lang = q
				http.SetCookie(w, &http.Cookie{
					Name:     localeCookieName,
					Value:    q,
					Path:     "/",
					SameSite: http.SameSiteLaxMode,
					Expires:  time.Now().Add(365 * 24 * time.Hour),
				})
			} else if bundle.IsSupported(sd.Locale) {
				lang = sd.Locale
			} else if c, err := r.Cookie(localeCookieName); err == nil && bundle.IsSupported(strings.ToLower(c.Value)) {
				lang = strings.ToLower(c.Value)
			} else {
				lang = bundle.Resolve(r.Header.Get("Accept-Language"))
			}
			if sd.ID != "" && sd.Locale != lang {
				sd.Locale = lang
				sd.MarkDirty()
			}

			w.Header().Add("Vary", "Accept-Language")
			w.Header().Set("Content-Language", lang)
			next.ServeHTTP(w, r.WithContext(WithLang(r.Context(), lang)))
		})
	}
}

// Lang returns the locale resolved for r, or "en" when Locale did not run.
func Lang(r *http.Request) string {
	if l := LangFromContext(r.Context()); l != "" {
		return l
	}
	return "en"
}
