package main

import (
	"encoding/json"
	"fmt"
	"net/http"

	"flare_server/config"
	"flare_server/routes"
	"flare_server/services"
	"flare_server/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg, err := config.Load()
	if err != nil {
		zap.L().Fatal("failed to load configuration", zap.Error(err))
	}

	// Initialize DynamoDB client and service
	zap.L().Info("initializing DynamoDB client")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}

	// Initialize services
	userProfileService := &services.UserProfileService{Dynamo: dynamoService}
	swipeLedgerService := &services.SwipeLedgerService{Dynamo: dynamoService}
	matchService := &services.MatchService{Dynamo: dynamoService, Users: userProfileService}
	chatService := &services.ChatService{Dynamo: dynamoService}
	s3Service := services.NewS3Service(cfg.AWSRegion, cfg.S3Bucket)

	registry := socket.NewRegistry()
	notificationService := &services.NotificationService{
		Registry: registry,
		Users:    userProfileService,
	}

	swipeService := &services.SwipeService{
		Swipes:   swipeLedgerService,
		Matches:  matchService,
		Notifier: notificationService,
	}
	discoveryService := &services.DiscoveryService{
		Users:  userProfileService,
		Swipes: swipeLedgerService,
	}
	authService := &services.AuthService{
		Users:      userProfileService,
		SigningKey: []byte(cfg.JWTSecret),
		TokenTTL:   cfg.TokenTTL,
	}

	// Initialize the Socket.IO server
	socketServer := socket.NewSocketServer(registry, chatService, matchService)
	go func() {
		if err := socketServer.Serve(); err != nil {
			zap.L().Fatal("socket server failed", zap.Error(err))
		}
	}()
	defer socketServer.Close()

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Flare")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	}).Methods("GET")

	r.Handle("/socket.io/", socketServer)

	// Register routes
	signingKey := []byte(cfg.JWTSecret)
	routes.RegisterAuthRoutes(r, authService)
	routes.RegisterDiscoveryRoutes(r, discoveryService, swipeService, signingKey)
	routes.RegisterUserProfileRoutes(r, userProfileService, signingKey)
	routes.RegisterMatchRoutes(r, matchService, signingKey)
	routes.RegisterChatRoutes(r, chatService, matchService, signingKey)
	routes.RegisterS3Routes(r, s3Service, signingKey)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	zap.L().Info("starting server", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, corsHandler); err != nil {
		zap.L().Fatal("server exited", zap.Error(err))
	}
}
