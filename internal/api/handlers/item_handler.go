package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/Mouad22Hakimi/lost-and-found-platform/internal/auth"
	"github.com/Mouad22Hakimi/lost-and-found-platform/internal/models"
	"github.com/Mouad22Hakimi/lost-and-found-platform/internal/services"
)

// ItemHandler handles HTTP requests for the item board.
type ItemHandler struct {
	service services.ItemServiceProvider
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(service services.ItemServiceProvider) *ItemHandler {
	return &ItemHandler{service: service}
}

// List handles browsing/searching the shared board. Public.
// Query params: type, category ("all" matches everything), search.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	criteria := services.SearchCriteria{
		Type:     models.ItemType(r.URL.Query().Get("type")),
		Category: r.URL.Query().Get("category"),
		Text:     r.URL.Query().Get("search"),
	}

	items, err := h.service.Search(r.Context(), criteria)
	if err != nil {
		log.Error().Err(err).Msg("Failed to search items")
		respondError(w, err)
		return
	}
	if items == nil {
		items = []models.Item{}
	}

	respondJSON(w, http.StatusOK, items)
}

// Get handles retrieving a single item by ID. Public.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	item, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

// Create handles reporting a new lost or found item.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, map[string]string{"message": "Not authenticated"})
		return
	}

	var input services.ItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
		return
	}

	item, err := h.service.Create(r.Context(), userID, input)
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("Failed to create item")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, item)
}

// Update handles an owner editing their item.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, map[string]string{"message": "Not authenticated"})
		return
	}

	id := chi.URLParam(r, "id")
	var patch services.ItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
		return
	}

	item, err := h.service.Update(r.Context(), id, userID, patch)
	if err != nil {
		log.Warn().Err(err).Str("item_id", id).Str("user_id", userID).Msg("Failed to update item")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, item)
}

// Delete handles an owner removing their item.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, map[string]string{"message": "Not authenticated"})
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), id, userID); err != nil {
		log.Warn().Err(err).Str("item_id", id).Str("user_id", userID).Msg("Failed to delete item")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Item removed"})
}

// ListMine handles listing the authenticated user's own items.
func (h *ItemHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, map[string]string{"message": "Not authenticated"})
		return
	}

	items, err := h.service.ListByOwner(r.Context(), userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to list user items")
		respondError(w, err)
		return
	}
	if items == nil {
		items = []models.Item{}
	}

	respondJSON(w, http.StatusOK, items)
}
