package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/sapphire-arches/mccraft/application/dispatcher"
	"github.com/sapphire-arches/mccraft/application/render"
)

// ViewHandler serves the derived visual tree
type ViewHandler struct {
	dispatcher *dispatcher.Dispatcher
	logger     *zap.Logger
}

// NewViewHandler creates a new view handler
func NewViewHandler(d *dispatcher.Dispatcher, logger *zap.Logger) *ViewHandler {
	return &ViewHandler{
		dispatcher: d,
		logger:     logger,
	}
}

// GetView handles GET /view
// The view is re-derived in full from the current model on every request.
func (h *ViewHandler) GetView(w http.ResponseWriter, r *http.Request) {
	model, err := h.dispatcher.Snapshot(r.Context())
	if err != nil {
		h.respondError(w, http.StatusServiceUnavailable, "Dispatcher unavailable")
		return
	}

	h.respondJSON(w, http.StatusOK, render.Render(model))
}

func (h *ViewHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *ViewHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]interface{}{
		"error":   true,
		"message": message,
		"code":    status,
	})
}
