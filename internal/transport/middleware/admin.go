package middleware

import (
	"net/http"

	"github.com/heartmarshall/gamecatalog-backend/pkg/ctxutil"
)

// RequireAuth rejects anonymous requests with 401.
func RequireAuth() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
				writeError(w, r, http.StatusUnauthorized, "authentication required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin rejects anonymous requests with 401 and non-admin users
// with 403.
func RequireAdmin() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
				writeError(w, r, http.StatusUnauthorized, "authentication required")
				return
			}
			if !ctxutil.IsAdminCtx(r.Context()) {
				writeError(w, r, http.StatusForbidden, "admin access required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
