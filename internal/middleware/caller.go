package middleware

import (
	"context"
	"net/http"
	"strings"
)

type callerContextKey struct{}

// CallerHeader carries the caller's ledger address on every request.
const CallerHeader = "X-Caller-Address"

// Caller extracts the caller address into the request context. Requests
// without an address still pass through; handlers that need an identity
// reject them individually.
func Caller(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		addr := strings.TrimSpace(r.Header.Get(CallerHeader))
		if addr != "" {
			r = r.WithContext(context.WithValue(r.Context(), callerContextKey{}, addr))
		}
		next.ServeHTTP(w, r)
	})
}

// CallerFromContext returns the caller address stored in the context.
func CallerFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(callerContextKey{}).(string); ok {
		return v
	}
	return ""
}
