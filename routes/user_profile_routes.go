package routes

import (
	"flare_server/controllers"
	"flare_server/middleware"
	"flare_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserProfileRoutes sets up routes for the authenticated user's profile under /api/users
func RegisterUserProfileRoutes(r *mux.Router, userProfileService *services.UserProfileService, signingKey []byte) {
	controller := controllers.NewUserProfileController(userProfileService)

	userRouter := r.PathPrefix("/api/users").Subrouter()
	userRouter.Use(middleware.Auth(signingKey))

	userRouter.HandleFunc("/me", controller.GetMe).Methods("GET")
	userRouter.HandleFunc("/me", controller.UpdateMe).Methods("PUT")
	userRouter.HandleFunc("/me", controller.DeleteMe).Methods("DELETE")
}
