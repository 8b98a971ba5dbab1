package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"recipeblog/internal/models"
	"recipeblog/internal/repository"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string          `json:"token"`
	User  *models.Session `json:"user"`
}

// Login authenticates against both identity tables: admins first, then
// regular users. The error is the same whichever part failed.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Username and password are required", http.StatusBadRequest)
		return
	}

	session, token, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidCredentials) {
			WriteError(w, "Invalid username or password", http.StatusUnauthorized)
			return
		}
		log.Printf("failed to log in %q: %v", req.Username, err)
		WriteError(w, "Server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, AuthResponse{Token: token, User: session}, http.StatusOK)
}

// GoogleOAuth exchanges a verified Google id token for a session, creating a
// passwordless user record on first sign-in.
func (h *Handlers) GoogleOAuth(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDToken string `json:"idToken" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "idToken required", http.StatusBadRequest)
		return
	}

	session, token, err := h.AuthService.OAuthLogin(r.Context(), req.IDToken)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidCredentials) {
			WriteError(w, "Invalid OAuth token", http.StatusUnauthorized)
			return
		}
		log.Printf("failed oauth sign-in: %v", err)
		WriteError(w, "Server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, AuthResponse{Token: token, User: session}, http.StatusOK)
}
