package httphandler

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// GET v1/healthz (200 OK, 503 Service unavailable)

// A Pinger reports whether a dependency is reachable.
type Pinger interface {
	PingContext(context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func RegisterHealth(mux *http.ServeMux, db Pinger) {
	h := HealthHandler{db}
	mux.HandleFunc("GET /v1/healthz", h.GetHealth)
}

func (h HealthHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	const op = "HealthHandler.GetHealth"
	log := slog.With("op", op)

	ctx, cancel := context.WithTimeout(r.Context(), time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		log.Error("database is unavailable", "err", err)
		writeJSON(w, log, http.StatusServiceUnavailable,
			map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, log, http.StatusOK, map[string]string{"status": "ok"})
}
