package profile

import (
	"encoding/json"
	"net/http"

	"roam/internal/middleware"
	"roam/internal/models"
	profilesvc "roam/internal/profile"
	"roam/internal/utils"
)

type UpdateHandler struct {
	Directory *profilesvc.Directory
}

// ServeHTTP handles PUT /profile
func (h *UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFrom(r.Context())
	if !ok {
		utils.JSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "unauthorized"})
		return
	}

	var upd models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid request body"})
		return
	}

	updated, err := h.Directory.Update(r.Context(), u.ID, upd)
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to update profile"})
		return
	}
	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Profile updated", Data: updated})
}
