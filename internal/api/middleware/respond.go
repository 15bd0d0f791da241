package middleware

import (
	"encoding/json"
	"net/http"
)

// respondError writes a JSON error payload matching the handlers' response
// shape, so middleware rejections look the same as application errors to
// clients.
func respondError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
