package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/heartmarshall/gamecatalog-backend/pkg/ctxutil"
)

type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// writeError writes the API error envelope. The request id is included
// when RequestID ran earlier in the chain.
func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorBody{ //nolint:errcheck
		Error:     msg,
		RequestID: ctxutil.RequestIDFromCtx(r.Context()),
	})
}
