package routes

import (
	"flare_server/controllers"
	"flare_server/middleware"
	"flare_server/services"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up routes for message history and sending under /api/messages
func RegisterChatRoutes(r *mux.Router, chatService *services.ChatService, matchService *services.MatchService, signingKey []byte) {
	controller := controllers.NewChatController(chatService, matchService)

	chatRouter := r.PathPrefix("/api/messages").Subrouter()
	chatRouter.Use(middleware.Auth(signingKey))

	chatRouter.HandleFunc("", controller.SendMessage).Methods("POST")
	chatRouter.HandleFunc("/{matchId}", controller.GetMessages).Methods("GET")
	chatRouter.HandleFunc("/{matchId}/read", controller.MarkRead).Methods("POST")
}
