package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
)

type panicObserver interface {
	ObservePanic(route string)
}

// Recovery turns a handler panic into a 500 with the usual error envelope.
// The panic is logged with its stack and, when observer is non-nil,
// counted against the matched route. http.ErrAbortHandler is re-raised so
// net/http can drop the connection as the handler asked.
func Recovery(logger *slog.Logger, observer panicObserver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				route := routePattern(r)
				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("error", fmt.Sprint(rec)),
					slog.String("method", r.Method),
					slog.String("route", route),
					slog.String("stack", string(debug.Stack())),
				)
				if observer != nil {
					observer.ObservePanic(route)
				}
				writeError(w, r, http.StatusInternalServerError, "internal server error")
			}()
			next.ServeHTTP(w, r)
		})
	}
}
