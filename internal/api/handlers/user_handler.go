package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/forestshield/forestshield-be/internal/auth"
	"github.com/forestshield/forestshield-be/internal/services"
)

// UserHandler handles HTTP requests for user management.
type UserHandler struct {
	service      services.UserServiceProvider
	tokenManager *auth.Manager
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserServiceProvider, tokenManager *auth.Manager) *UserHandler {
	return &UserHandler{service: service, tokenManager: tokenManager}
}

// RegisterPayload defines the structure for registration requests.
type RegisterPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles new user registration.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload RegisterPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.service.CreateUser(r.Context(), payload.Name, payload.Email, payload.Password, payload.Role)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields),
			errors.Is(err, services.ErrInvalidRole),
			errors.Is(err, services.ErrEmailTaken):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			log.Error().Err(err).Str("email", payload.Email).Msg("Failed to register user")
			respondError(w, http.StatusInternalServerError, "failed to register user")
		}
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"message": "user created",
		"user":    user,
	})
}

// List handles retrieving all users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list users")
		respondError(w, http.StatusInternalServerError, "failed to list users")
		return
	}

	respondJSON(w, http.StatusOK, users)
}

// Login handles user authentication and JWT generation.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Email == "" || payload.Password == "" {
		respondError(w, http.StatusBadRequest, "missing credentials")
		return
	}

	user, err := h.service.AuthenticateUser(r.Context(), payload.Email, payload.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			respondError(w, http.StatusNotFound, "user not found")
		case errors.Is(err, services.ErrInvalidCredentials):
			log.Warn().Str("email", payload.Email).Msg("Failed authentication attempt")
			respondError(w, http.StatusBadRequest, "incorrect password")
		default:
			log.Error().Err(err).Str("email", payload.Email).Msg("Failed to authenticate user")
			respondError(w, http.StatusInternalServerError, "failed to log in")
		}
		return
	}

	token, err := h.tokenManager.Generate(user)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to generate JWT")
		respondError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"message": "login successful",
		"user":    user,
		"token":   token,
	})
}
