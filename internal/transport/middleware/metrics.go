package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

type httpObserver interface {
	ObserveHTTP(method, route string, status int, elapsed time.Duration)
}

// Metrics reports every request to observer, labelled by the chi route
// pattern so that path parameters do not explode label cardinality.
func Metrics(observer httpObserver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			observer.ObserveHTTP(r.Method, routePattern(r), sw.status, time.Since(start))
		})
	}
}

// routePattern returns the chi pattern matched so far, or "unmatched".
func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
