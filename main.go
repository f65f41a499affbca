// File: chime/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chime/config"
	"chime/database"
	notificationRepoPkg "chime/database/repository/notification"
	userRepoPkg "chime/database/repository/user"
	"chime/handlers"
	"chime/middleware"
	"chime/routes"
	"chime/services/notification"
	"chime/services/realtime"
	"chime/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	notifRepo := notificationRepoPkg.NewMongoNotificationRepo()

	// shared state: the one place live connections are tracked.
	hub := realtime.NewHub(logger)

	// services.
	notificationService, err := notification.NewDefaultNotificationService(userRepo, notifRepo, hub, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	sessionStore := utils.NewRedisSessionStore(utils.GetSessionCacheClient())
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	streamHandler := handlers.NewStreamHandler(hub, config.AppConfig.StreamBufferSize)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Sessions: sessionStore,

		CreateNotificationHandler: notificationHandler.CreateNotificationHandler,
		ListNotificationsHandler:  notificationHandler.ListNotificationsHandler,

		StreamNotificationsHandler: streamHandler.StreamNotificationsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
