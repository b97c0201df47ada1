package middleware

import (
	"context"
	"net/http"
	"strings"
)

const (
	// MethodOverrideParam is the query parameter HTML forms use to tunnel
	// PUT and DELETE through POST.
	MethodOverrideParam = "_method"

	// HeaderMethodOverride is the header equivalent for script clients.
	HeaderMethodOverride = "X-HTTP-Method-Override"
)

type originalMethodKey struct{}

var overridableMethods = map[string]struct{}{
	http.MethodPut:    {},
	http.MethodPatch:  {},
	http.MethodDelete: {},
}

// MethodOverride wraps next so that a POST carrying ?_method=PUT (or the
// X-HTTP-Method-Override header) is routed as that method. It has to wrap
// the gin engine itself, since gin picks the route tree by method before
// any gin middleware runs. Unknown values and non-POST requests pass
// through untouched.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			next.ServeHTTP(w, r)
			return
		}

		method := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get(MethodOverrideParam)))
		if method == "" {
			method = strings.ToUpper(strings.TrimSpace(r.Header.Get(HeaderMethodOverride)))
		}

		if _, ok := overridableMethods[method]; !ok {
			next.ServeHTTP(w, r)
			return
		}

		r = r.WithContext(context.WithValue(r.Context(), originalMethodKey{}, r.Method))
		r.Method = method

		next.ServeHTTP(w, r)
	})
}

// OriginalMethod returns the method the client actually sent, which
// differs from r.Method only after an override.
func OriginalMethod(r *http.Request) string {
	if m, ok := r.Context().Value(originalMethodKey{}).(string); ok {
		return m
	}

	return r.Method
}
