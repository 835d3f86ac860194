package handlers

import (
	"net/http"
	"time"

	"github.com/bengobox/keeds-app/internal/clock"
	"github.com/bengobox/keeds-app/internal/httpapi"
)

// Health responds with basic service status.
func Health(serviceName string, c clock.Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpapi.JSON(w, http.StatusOK, map[string]any{
			"status":  "ok",
			"service": serviceName,
			"time":    c.Now().UTC().Format(time.RFC3339),
		})
	}
}
