package tenant

import (
	"context"
)

type contextKey string

// codeKey carries the current request's CA code. The value lives on the
// request-scoped context, never in a process global, so two in-flight requests
// for different firms can share workers without leaking context into each
// other. A fresh context per request means "no tenant" is the default on every
// path, including panics.
const codeKey contextKey = "ca_code"

// WithCode returns a context carrying the firm's CA code. An empty code is not
// stored; the result behaves as an anonymous context.
func WithCode(ctx context.Context, code string) context.Context {
	if code == "" {
		return ctx
	}
	return context.WithValue(ctx, codeKey, code)
}

// CodeFromContext returns the CA code on the context, if any. Absence is a
// valid state (anonymous requests, firm signup), not an error.
func CodeFromContext(ctx context.Context) (string, bool) {
	code, ok := ctx.Value(codeKey).(string)
	if !ok || code == "" {
		return "", false
	}
	return code, true
}
