package httpserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/clientmeta/pkg/logger"
)

// Health status values written by HealthCheckHandler.
const (
	StatusOK       = "OK"
	StatusNotReady = "NOT_READY"
)

// HealthCheckHandler returns a handler answering {"status":"OK"} with 200.
// When dependency checks are supplied they run on every call; the first
// failure turns the answer into {"status":"NOT_READY"} with 503.
func HealthCheckHandler(log *slog.Logger, checks ...func(context.Context) error) http.HandlerFunc {
	if log == nil {
		log = logger.Discard()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		status, code := StatusOK, http.StatusOK
		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed", logger.Error(err), logger.Component("healthcheck"))
				status, code = StatusNotReady, http.StatusServiceUnavailable
				break
			}
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": status})
	}
}
