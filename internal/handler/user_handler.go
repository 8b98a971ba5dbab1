package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"recipeblog/internal/models"
	"recipeblog/internal/repository"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterResponse struct {
	OK   bool         `json:"ok"`
	User *models.User `json:"user"`
}

// RegisterUser is the public signup endpoint for regular accounts. Admins
// are never created here; see cmd/setupadmin.
func (h *Handlers) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Username and password are required", http.StatusBadRequest)
		return
	}

	user, err := h.UserService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			WriteError(w, "Username already taken", http.StatusConflict)
			return
		}
		log.Printf("failed to register user: %v", err)
		WriteError(w, "Server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, RegisterResponse{OK: true, User: user}, http.StatusOK)
}
