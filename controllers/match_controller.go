package controllers

import (
	"net/http"

	"flare_server/middleware"
	"flare_server/services"
	"flare_server/utils"
)

// MatchController handles listing the authenticated user's matches.
type MatchController struct {
	Matches *services.MatchService
}

// NewMatchController creates a new MatchController instance
func NewMatchController(matches *services.MatchService) *MatchController {
	return &MatchController{Matches: matches}
}

// GetCurrentMatches lists the caller's matches with counterpart summaries.
func (mc *MatchController) GetCurrentMatches(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	matches, err := mc.Matches.GetCurrentMatches(r.Context(), userID)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   len(matches),
		"data":    matches,
	})
}
