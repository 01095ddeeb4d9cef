package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"prohub/internal/db"
	"prohub/internal/middleware"
	"prohub/internal/router"
	"prohub/internal/services"
	"prohub/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		utils.LogInfo("No .env file found, using system env vars")
	}

	// Initialize Database
	db.Init()

	// Start the background warning-expiry sweep
	sweeper := services.GetSweepService()

	// Initialize Gin
	r := gin.New()
	r.Use(gin.Recovery())

	// Setup Sessions
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}
	store := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("prohub_session", store))

	// Middleware
	r.Use(middleware.LoadUser())

	// Routes
	router.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}
	go func() {
		utils.LogInfo("ProHub server starting on :" + port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.LogError(err, "Server exited")
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	utils.LogInfo("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.LogError(err, "Server shutdown failed")
	}

	// Let in-flight inbox writes land before the process exits.
	sweeper.Stop()
	services.WaitForNotifications()
}
