package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"flare_server/middleware"
	"flare_server/services"
	"flare_server/utils"
)

// UserProfileController handles the authenticated user's own profile.
type UserProfileController struct {
	Users *services.UserProfileService
}

// NewUserProfileController creates a new UserProfileController instance
func NewUserProfileController(users *services.UserProfileService) *UserProfileController {
	return &UserProfileController{Users: users}
}

// GetMe returns the caller's profile.
func (uc *UserProfileController) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	profile, err := uc.Users.GetUserProfile(r.Context(), userID)
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
		"data":    profile,
	})
}

// UpdateMe applies a partial update to the caller's profile. The typed
// patch rejects fields outside the updatable set and validates values
// before anything reaches storage.
func (uc *UserProfileController) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	var update services.ProfileUpdate
	if err := decoder.Decode(&update); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	profile, err := uc.Users.UpdateUserProfile(r.Context(), userID, update)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    profile,
	})
}

// DeleteMe removes the caller's profile.
func (uc *UserProfileController) DeleteMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := uc.Users.DeleteUserProfile(r.Context(), userID); err != nil {
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Profile deleted successfully",
	})
}
