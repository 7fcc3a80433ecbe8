package swipe

import (
	"encoding/json"
	"net/http"

	"roam/internal/match"
	"roam/internal/middleware"
	"roam/internal/models"
	"roam/internal/store"
	"roam/internal/utils"
	"roam/internal/ws"
)

type SwipeHandler struct {
	Engine *match.Engine
	Store  store.Store
	Hub    *ws.Hub
}

type SwipeRequest struct {
	TargetUserID string `json:"targetUserId"`
	Direction    string `json:"direction"`
}

type SwipeResponse struct {
	Match bool `json:"match"`
}

// ServeHTTP handles POST /swipe
func (h *SwipeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFrom(r.Context())
	if !ok {
		utils.JSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "unauthorized"})
		return
	}

	var req SwipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid request body"})
		return
	}
	if req.TargetUserID == "" || req.TargetUserID == u.ID {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "invalid target user"})
		return
	}
	if req.Direction != models.SwipeLeft && req.Direction != models.SwipeRight {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "direction must be left or right"})
		return
	}

	matched, created, err := h.Engine.RecordSwipe(r.Context(), u.ID, req.TargetUserID, req.Direction)
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to record swipe"})
		return
	}

	// Push live notifications only for the call that actually created the
	// match record, so each side hears about it once.
	if created != nil && h.Hub != nil {
		if other, err := h.Store.GetUserByID(r.Context(), req.TargetUserID); err == nil {
			h.Hub.NotifyMatch(u.ID, created.ID, other)
			h.Hub.NotifyMatch(other.ID, created.ID, u)
		}
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Data: SwipeResponse{Match: matched}})
}
