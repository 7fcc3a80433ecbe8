package subscription

import (
	"net/http"

	subsvc "roam/internal/subscription"
	"roam/internal/utils"
)

type PlansHandler struct {
	Ledger *subsvc.Ledger
}

// ServeHTTP handles GET /subscriptions
func (h *PlansHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Data: h.Ledger.Plans()})
}
