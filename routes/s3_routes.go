package routes

import (
	"flare_server/controllers"
	"flare_server/middleware"
	"flare_server/services"

	"github.com/gorilla/mux"
)

// RegisterS3Routes sets up routes for presigned photo uploads under /api/photos
func RegisterS3Routes(r *mux.Router, s3Service *services.S3Service, signingKey []byte) {
	controller := controllers.NewS3Controller(s3Service)

	s3Router := r.PathPrefix("/api/photos").Subrouter()
	s3Router.Use(middleware.Auth(signingKey))

	s3Router.HandleFunc("/upload-url", controller.GetUploadURL).Methods("POST")
}
