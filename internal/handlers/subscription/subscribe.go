package subscription

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"roam/internal/middleware"
	subsvc "roam/internal/subscription"
	"roam/internal/utils"
)

type SubscribeHandler struct {
	Ledger *subsvc.Ledger
}

type SubscribeResponse struct {
	Success bool   `json:"success"`
	Plan    string `json:"plan"`
}

// ServeHTTP handles POST /subscribe/{planId}
func (h *SubscribeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFrom(r.Context())
	if !ok {
		utils.JSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "unauthorized"})
		return
	}

	planID := chi.URLParam(r, "planId")
	plan, err := h.Ledger.Subscribe(r.Context(), u.ID, planID)
	if errors.Is(err, subsvc.ErrInvalidPlan) {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid plan"})
		return
	} else if err != nil {
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to update subscription"})
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Subscribed",
		Data:    SubscribeResponse{Success: true, Plan: plan.ID},
	})
}
