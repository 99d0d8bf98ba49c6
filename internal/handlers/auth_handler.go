package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/solo-mizan/goru-club/internal/auth"
)

type AuthHandler struct {
	JWTManager *auth.JWTManager
}

func NewAuthHandler(jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{JWTManager: jwtManager}
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login exchanges the shared admin secret for a session token
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMsg(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.JWTManager.Login(req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			respondMsg(w, http.StatusUnauthorized, "Invalid credentials")
		case errors.Is(err, auth.ErrNotConfigured):
			respondMsg(w, http.StatusServiceUnavailable, "Admin access is not configured")
		default:
			respondError(w, err)
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}
