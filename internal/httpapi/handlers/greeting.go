package handlers

import (
	"bytes"
	"net/http"

	"github.com/bengobox/keeds-app/internal/clock"
	"github.com/bengobox/keeds-app/internal/greeting"
	"github.com/bengobox/keeds-app/internal/httpapi"
	"go.uber.org/zap"
)

// GreetingHandler serves the welcome page.
type GreetingHandler struct {
	clock  clock.Clock
	logger *zap.Logger
}

// NewGreetingHandler creates a new instance.
func NewGreetingHandler(c clock.Clock, logger *zap.Logger) *GreetingHandler {
	return &GreetingHandler{clock: c, logger: logger}
}

// Home renders the greeting with the current server time. Query, headers and body are ignored.
func (h *GreetingHandler) Home(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := greeting.Render(&buf, h.clock.Now()); err != nil {
		h.logger.Error("failed to render greeting", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	httpapi.HTML(w, http.StatusOK, buf.Bytes())
}
