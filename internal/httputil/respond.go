package httputil

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// MaxBodySize caps JSON request bodies.
const MaxBodySize = 1 << 20

type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func Error(w http.ResponseWriter, message string, code int) {
	JSON(w, code, ErrorResponse{Error: message, Code: code})
}

// DecodeJSON reads a size-limited JSON body into v.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	return json.NewDecoder(r.Body).Decode(v)
}
