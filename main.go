// File: homematch/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homematch/config"
	"homematch/database"
	listingRepoPkg "homematch/database/repository/listing"
	"homematch/handlers"
	"homematch/middleware"
	"homematch/routes"
	"homematch/services/assistant"
	"homematch/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitChatStateCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	listingRepo := listingRepoPkg.NewMongoListingRepo()

	// Services.
	convStore := assistant.NewRedisConversationStore(utils.GetChatStateClient(), 30*time.Minute)
	assistantService := &assistant.DefaultAssistantService{
		Engine:      assistant.NewEngine(),
		Store:       convStore,
		ListingRepo: listingRepo,
		CacheClient: utils.GetCacheClient(),
	}

	// Handlers.
	assistantHandler := handlers.NewAssistantHandler(assistantService)
	listingHandler := handlers.NewListingHandler(listingRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ChatHandler:         assistantHandler.ChatHandler,
		MoreResultsHandler:  assistantHandler.MoreResultsHandler,
		ResetSessionHandler: assistantHandler.ResetSessionHandler,

		GetListingsHandler:    listingHandler.GetListingsHandler,
		GetListingByIDHandler: listingHandler.GetListingByIDHandler,
		CreateListingHandler:  listingHandler.CreateListingHandler,
		DeleteListingHandler:  listingHandler.DeleteListingHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background health checks for /health.
	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient(), utils.GetChatStateClient()}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
