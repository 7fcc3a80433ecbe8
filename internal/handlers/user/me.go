package user

import (
	"net/http"

	"roam/internal/middleware"
	"roam/internal/utils"
)

type MeHandler struct{}

// ServeHTTP handles GET /auth/me
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFrom(r.Context())
	if !ok {
		utils.JSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "unauthorized"})
		return
	}
	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Data: u})
}
