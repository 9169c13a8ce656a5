package handlers

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Mouad22Hakimi/lost-and-found-platform/internal/auth"
	"github.com/Mouad22Hakimi/lost-and-found-platform/internal/services"
)

// UserHandler handles HTTP requests for registration and login.
type UserHandler struct {
	service   services.UserServiceProvider
	jwtSecret string
	tokenTTL  time.Duration
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserServiceProvider, jwtSecret string, tokenTTL time.Duration) *UserHandler {
	return &UserHandler{service: service, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// RegisterPayload defines the structure for registration requests.
type RegisterPayload struct {
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	StudentID string `json:"studentId"`
	Password  string `json:"password"`
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles new user registration and signs the user in.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload RegisterPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
		return
	}

	user, err := h.service.Register(r.Context(), payload.FullName, payload.Email, payload.StudentID, payload.Password)
	if err != nil {
		log.Warn().Err(err).Str("email", payload.Email).Msg("Failed to register user")
		respondError(w, err)
		return
	}

	token, err := auth.GenerateToken(h.jwtSecret, h.tokenTTL, user)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to generate JWT")
		respondJSON(w, http.StatusInternalServerError, map[string]string{"message": "Failed to generate token"})
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"token": token,
		"user":  user,
	})
}

// Login handles user authentication and JWT generation.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
		return
	}

	user, err := h.service.Authenticate(r.Context(), payload.Email, payload.Password)
	if err != nil {
		log.Warn().Err(err).Str("email", payload.Email).Msg("Failed authentication attempt")
		respondError(w, err)
		return
	}

	token, err := auth.GenerateToken(h.jwtSecret, h.tokenTTL, user)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to generate JWT")
		respondJSON(w, http.StatusInternalServerError, map[string]string{"message": "Failed to generate token"})
		return
	}

	// Set Secure flag based on environment.
	isProd := os.Getenv("APP_ENV") == "production"

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Expires:  time.Now().Add(h.tokenTTL),
		HttpOnly: true,
		Secure:   isProd,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
	})

	respondJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  user,
	})
}

// GetMe retrieves the currently authenticated user from the token.
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve user claims from context")
		respondJSON(w, http.StatusInternalServerError, map[string]string{"message": "Could not retrieve user from token"})
		return
	}

	user, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("User from token not found")
		respondJSON(w, http.StatusNotFound, map[string]string{"message": "User not found"})
		return
	}

	respondJSON(w, http.StatusOK, user)
}
