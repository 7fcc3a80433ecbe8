package matches

import (
	"net/http"

	"roam/internal/match"
	"roam/internal/middleware"
	"roam/internal/utils"
)

type ListHandler struct {
	Engine *match.Engine
}

// ServeHTTP handles GET /matches
func (h *ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFrom(r.Context())
	if !ok {
		utils.JSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "unauthorized"})
		return
	}

	entries, err := h.Engine.ListMatches(r.Context(), u.ID)
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to load matches"})
		return
	}
	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Data: entries})
}
