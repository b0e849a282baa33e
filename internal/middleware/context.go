package middleware

import "context"

// context keys are unexported to avoid collisions
type ctxKey string

const (
	ctxKeySession ctxKey = "session"
	ctxKeyLang    ctxKey = "lang"
)

// WithLang stores the resolved locale in ctx.
func WithLang(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, ctxKeyLang, lang)
}

// LangFromContext returns the locale resolved for the request, or "".
func LangFromContext(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyLang).(string)
	return v
}
