package routes

import (
	"flare_server/controllers"
	"flare_server/middleware"
	"flare_server/services"

	"github.com/gorilla/mux"
)

// RegisterDiscoveryRoutes sets up routes for candidate discovery and swiping under /api/discovery
func RegisterDiscoveryRoutes(r *mux.Router, discoveryService *services.DiscoveryService, swipeService *services.SwipeService, signingKey []byte) {
	controller := controllers.NewDiscoveryController(discoveryService, swipeService)

	discoveryRouter := r.PathPrefix("/api/discovery").Subrouter()
	discoveryRouter.Use(middleware.Auth(signingKey))

	discoveryRouter.HandleFunc("/potential", controller.GetPotentialMatches).Methods("GET")
	discoveryRouter.HandleFunc("/swipe", controller.RecordSwipe).Methods("POST")
}
