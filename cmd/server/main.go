package main

import (
	"context"
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/bloggerhub/backend/internal/router"
	"github.com/bloggerhub/backend/pkg/config"
	"github.com/bloggerhub/backend/pkg/firebase"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connections
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.CloseDB() // Ensure database connections are closed when main exits

	// Initialize Firebase when credentials are configured; the
	// firebase-login route reports unavailable otherwise
	var firebaseAuthClient *auth.Client
	if cfg.FirebaseCredentialsPath != "" {
		ctx := context.Background()
		firebaseApp, err := firebase.InitFirebase(ctx, cfg.FirebaseCredentialsPath)
		if err != nil {
			log.Fatalf("Failed to initialize Firebase: %v", err)
		}
		firebaseAuthClient = firebaseApp.AuthClient
	} else {
		log.Println("Firebase credentials not configured, firebase-login disabled.")
	}

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Postgres, db.Mongo, firebaseAuthClient, cfg)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
