package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"storepulse/internal/application"
	"storepulse/internal/domain"
)

// AuthHandler serves tenant signup and login.
type AuthHandler struct {
	auth    *application.AuthService
	logger  zerolog.Logger
	devMode bool
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth *application.AuthService, logger zerolog.Logger, devMode bool) *AuthHandler {
	return &AuthHandler{
		auth:    auth,
		logger:  logger,
		devMode: devMode,
	}
}

// Signup handles POST /auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var input application.SignupInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err, h.devMode)
		return
	}

	tenant, err := h.auth.Signup(r.Context(), input)
	if err != nil {
		h.logger.Error().Err(err).Str("email", input.Email).Msg("Signup failed")
		writeError(w, http.StatusInternalServerError, "failed to register tenant", err, h.devMode)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Tenant registered",
		"tenant":  tenant,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err, h.devMode)
		return
	}

	token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, domain.ErrTenantNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Tenant not found"})
		return
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
		return
	case err != nil:
		h.logger.Error().Err(err).Str("email", req.Email).Msg("Login failed")
		writeError(w, http.StatusInternalServerError, "failed to log in", err, h.devMode)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
