package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/sapphire-arches/mccraft/application/dispatcher"
)

// GraphHandler handles debug-graph HTTP requests
type GraphHandler struct {
	dispatcher *dispatcher.Dispatcher
	logger     *zap.Logger
}

// NewGraphHandler creates a new graph handler
func NewGraphHandler(d *dispatcher.Dispatcher, logger *zap.Logger) *GraphHandler {
	return &GraphHandler{
		dispatcher: d,
		logger:     logger,
	}
}

// CreateRandomNode handles POST /graph/nodes
// It schedules a node draw; the node materializes once the draw resolves.
func (h *GraphHandler) CreateRandomNode(w http.ResponseWriter, r *http.Request) {
	h.dispatcher.Post(dispatcher.RequestRandomNode{})
	h.respondJSON(w, http.StatusAccepted, map[string]interface{}{
		"message": "node draw scheduled",
	})
}

// CreateRandomLink handles POST /graph/edges
func (h *GraphHandler) CreateRandomLink(w http.ResponseWriter, r *http.Request) {
	h.dispatcher.Post(dispatcher.RequestRandomLink{})
	h.respondJSON(w, http.StatusAccepted, map[string]interface{}{
		"message": "link draw scheduled",
	})
}

// GetGraph handles GET /graph
func (h *GraphHandler) GetGraph(w http.ResponseWriter, r *http.Request) {
	model, err := h.dispatcher.Snapshot(r.Context())
	if err != nil {
		h.respondError(w, http.StatusServiceUnavailable, "Dispatcher unavailable")
		return
	}
	h.respondJSON(w, http.StatusOK, model.Graph)
}

func (h *GraphHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *GraphHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]interface{}{
		"error":   true,
		"message": message,
		"code":    status,
	})
}
