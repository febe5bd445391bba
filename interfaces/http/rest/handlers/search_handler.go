package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/sapphire-arches/mccraft/application/dispatcher"
	"github.com/sapphire-arches/mccraft/domain/catalog"
)

var validate = validator.New()

// SearchHandler handles item-search HTTP requests
type SearchHandler struct {
	dispatcher *dispatcher.Dispatcher
	logger     *zap.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(d *dispatcher.Dispatcher, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		dispatcher: d,
		logger:     logger,
	}
}

// Search handles GET /search?q=<term>
// The term is forwarded to the dispatch loop; results appear in the view
// once the catalog responds. Terms shorter than the search minimum clear
// the result list without a network call.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")

	h.dispatcher.Post(dispatcher.SearchTermChanged{Term: term})

	h.respondJSON(w, http.StatusAccepted, map[string]interface{}{
		"term":       term,
		"searchable": catalog.Searchable(term),
	})
}

// SelectItemRequest represents the request body for selecting a result tile.
// ID is a pointer so the catalog's item id 0 survives the required check.
type SelectItemRequest struct {
	ID          *int   `json:"id" validate:"required"`
	DisplayName string `json:"displayName" validate:"required"`
	ExternalID  string `json:"externalId" validate:"required"`
	Type        string `json:"type" validate:"omitempty,oneof=stack_item fluid unknown"`
}

// SelectItem handles POST /selection
func (h *SearchHandler) SelectItem(w http.ResponseWriter, r *http.Request) {
	var req SelectItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	h.dispatcher.Post(dispatcher.ItemSelected{Item: catalog.Item{
		ID:          *req.ID,
		DisplayName: req.DisplayName,
		ExternalID:  req.ExternalID,
		Type:        catalog.ItemType(req.Type),
	}})

	h.respondJSON(w, http.StatusAccepted, map[string]interface{}{
		"message": "selection recorded",
	})
}

func (h *SearchHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *SearchHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]interface{}{
		"error":   true,
		"message": message,
		"code":    status,
	})
}
