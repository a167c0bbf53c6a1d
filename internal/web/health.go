package web

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"Wirefill/internal/httputil"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// Health reports liveness and, when notes are enabled, whether the notes
// store answers. A nil store means notes are disabled.
func Health(store Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			httputil.JSON(w, http.StatusOK, map[string]string{"status": "ok", "notes": "disabled"})
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			slog.Warn("Notes store ping failed", "error", err)
			httputil.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded", "notes": "unavailable"})
			return
		}
		httputil.JSON(w, http.StatusOK, map[string]string{"status": "ok", "notes": "ok"})
	}
}
