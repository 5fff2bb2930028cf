package routes

import (
	"flare_server/controllers"
	"flare_server/middleware"
	"flare_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up routes for listing matches under /api/matches
func RegisterMatchRoutes(r *mux.Router, matchService *services.MatchService, signingKey []byte) {
	controller := controllers.NewMatchController(matchService)

	matchRouter := r.PathPrefix("/api/matches").Subrouter()
	matchRouter.Use(middleware.Auth(signingKey))

	matchRouter.HandleFunc("", controller.GetCurrentMatches).Methods("GET")
}
