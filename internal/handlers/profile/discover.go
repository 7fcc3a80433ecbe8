package profile

import (
	"net/http"

	"roam/internal/middleware"
	profilesvc "roam/internal/profile"
	"roam/internal/utils"
)

type DiscoverHandler struct {
	Directory *profilesvc.Directory
}

// ServeHTTP handles GET /profiles/discover
func (h *DiscoverHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFrom(r.Context())
	if !ok {
		utils.JSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "unauthorized"})
		return
	}

	candidates, err := h.Directory.Discover(r.Context(), u.ID)
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to load profiles"})
		return
	}
	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Data: candidates})
}
