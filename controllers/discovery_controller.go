package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"flare_server/middleware"
	"flare_server/services"
	"flare_server/utils"
)

// DiscoveryController handles candidate discovery and swipe recording.
type DiscoveryController struct {
	Discovery *services.DiscoveryService
	Swipes    *services.SwipeService
}

// NewDiscoveryController creates a new DiscoveryController instance
func NewDiscoveryController(discovery *services.DiscoveryService, swipes *services.SwipeService) *DiscoveryController {
	return &DiscoveryController{Discovery: discovery, Swipes: swipes}
}

// GetPotentialMatches returns the authenticated user's candidate list.
func (dc *DiscoveryController) GetPotentialMatches(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	candidates, err := dc.Discovery.GetCandidates(r.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.WriteError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   len(candidates),
		"data":    candidates,
	})
}

// RecordSwipe records the authenticated user's decision about a candidate
// and reports whether it completed a match.
func (dc *DiscoveryController) RecordSwipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var request struct {
		SwipeeID  string `json:"swipeeId"`
		Direction string `json:"direction"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if request.SwipeeID == "" || request.Direction == "" {
		utils.WriteError(w, http.StatusBadRequest, "swipeeId and direction are required")
		return
	}

	swipe, match, err := dc.Swipes.RecordSwipe(r.Context(), userID, request.SwipeeID, request.Direction)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadySwiped):
			utils.WriteError(w, http.StatusBadRequest, "Already swiped on this user")
		case errors.Is(err, services.ErrInvalidDirection), errors.Is(err, services.ErrValidation):
			utils.WriteError(w, http.StatusBadRequest, err.Error())
		default:
			utils.WriteError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	data := map[string]interface{}{
		"swipe":   swipe,
		"isMatch": match != nil,
	}
	if match != nil {
		data["match"] = match
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    data,
	})
}
