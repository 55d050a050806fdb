// Package middleware holds the HTTP middleware mounted by the REST router:
// request ids, panic recovery, access logs, CORS, metrics, rate limiting
// and token authentication.
package middleware

import "net/http"

// Middleware wraps an http.Handler. Stacks are composed with chi's Use and
// With.
type Middleware func(http.Handler) http.Handler
