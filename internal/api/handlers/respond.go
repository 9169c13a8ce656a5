package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/Mouad22Hakimi/lost-and-found-platform/internal/services"
)

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Error().Err(err).Msg("Failed to encode response")
		}
	}
}

// respondError translates a service failure into an HTTP error response.
func respondError(w http.ResponseWriter, err error) {
	var validationErr *services.ValidationError

	switch {
	case errors.As(err, &validationErr):
		respondJSON(w, http.StatusBadRequest, map[string]string{"message": validationErr.Error()})
	case errors.Is(err, services.ErrEmailTaken):
		respondJSON(w, http.StatusBadRequest, map[string]string{"message": "User already exists"})
	case errors.Is(err, services.ErrInvalidCredentials):
		respondJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
	case errors.Is(err, services.ErrUnauthorized):
		respondJSON(w, http.StatusUnauthorized, map[string]string{"message": "Not authorized"})
	case errors.Is(err, services.ErrNotFound):
		respondJSON(w, http.StatusNotFound, map[string]string{"message": "Item not found"})
	default:
		log.Error().Err(err).Msg("Request failed")
		respondJSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
	}
}
