package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"roam/internal/models"
	"roam/internal/store"
	"roam/internal/utils"
)

type RegisterHandler struct {
	Store        store.Store
	JWTSecret    string
	TokenTTLDays int
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// ServeHTTP handles POST /auth/register
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid request body"})
		return
	}
	if req.Email == "" || req.Password == "" {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "email and password are required"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to hash password"})
		return
	}

	user := &models.User{
		ID:             uuid.NewString(),
		Email:          req.Email,
		PasswordHash:   hash,
		Name:           req.Name,
		Subscription:   models.TierFree,
		LikesRemaining: 5,
		CreatedAt:      time.Now().UTC(),
	}
	if err := h.Store.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Email already registered"})
			return
		}
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to create user"})
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, h.JWTSecret, h.TokenTTLDays)
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to generate token"})
		return
	}

	utils.JSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "User registered",
		Data:    AuthResponse{Token: token, User: user},
	})
}
