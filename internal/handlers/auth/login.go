package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"roam/internal/store"
	"roam/internal/utils"
)

type LoginHandler struct {
	Store        store.Store
	JWTSecret    string
	TokenTTLDays int
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ServeHTTP handles POST /auth/login
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid request body"})
		return
	}

	// Unknown email and wrong password produce the same response so the
	// endpoint cannot be used to probe which emails are registered.
	user, err := h.Store.GetUserByEmail(r.Context(), req.Email)
	if errors.Is(err, store.ErrNotFound) {
		utils.JSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Invalid credentials"})
		return
	} else if err != nil {
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}

	if !utils.CheckPassword(req.Password, user.PasswordHash) {
		utils.JSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Invalid credentials"})
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, h.JWTSecret, h.TokenTTLDays)
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to generate token"})
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Login successful",
		Data:    AuthResponse{Token: token, User: user},
	})
}
