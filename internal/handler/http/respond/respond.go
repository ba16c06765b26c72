// Package respond writes JSON for the operational endpoints and keeps
// tokens and credentials out of logged errors.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// JSON writes v with status code. A nil v writes headers only.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode json response",
			slog.Int("status", code),
			slog.String("error", SanitizeError(err)))
	}
}
