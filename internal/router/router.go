package router

import (
	"crypto/subtle"
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/bloggerhub/backend/internal/handlers"
	"github.com/bloggerhub/backend/internal/middleware"
	"github.com/bloggerhub/backend/internal/models"
	"github.com/bloggerhub/backend/internal/repositories"
	"github.com/bloggerhub/backend/internal/services"
	"github.com/bloggerhub/backend/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, mgClient *mongo.Client, firebaseAuthClient *auth.Client, cfg *config.Config) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.Blog{},
		&models.Post{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	mongoDB := mgClient.Database(cfg.MongoDBName)
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	blogRepo := repositories.NewPostgresBlogRepository(pgdb)
	postRepo := repositories.NewPostgresPostRepository(pgdb)
	commentRepo := repositories.NewMongoCommentRepository(mongoDB)
	commentLikeRepo := repositories.NewMongoCommentLikeRepository(mongoDB)
	postLikeRepo := repositories.NewMongoPostLikeRepository(mongoDB)

	// --- Initialize Services ---
	commentQueries := services.NewCommentQueries(commentRepo, commentLikeRepo, postRepo)
	blogQueries := services.NewBlogQueries(blogRepo)
	postQueries := services.NewPostQueries(postRepo, postLikeRepo)
	commentService := services.NewCommentService(commentRepo, postRepo)
	likeService := services.NewLikeService(commentRepo, commentLikeRepo)
	postLikeService := services.NewPostLikeService(postRepo, postLikeRepo)
	moderationService := services.NewModerationService(userRepo, commentRepo, commentLikeRepo, postRepo, postLikeRepo)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, firebaseAuthClient)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Public read routes (viewer identity is optional) ---
	public := e.Group("/api/v1")
	public.Use(middleware.ViewerMiddleware())

	blogHandler := handlers.NewBlogHandler(blogQueries, postQueries, commentQueries, blogRepo, postRepo)
	blogHandler.RegisterPublicRoutes(public)

	postHandler := handlers.NewPostHandler(postQueries, postLikeService)
	postHandler.RegisterPublicRoutes(public)

	commentHandler := handlers.NewCommentHandler(commentQueries, commentService, likeService, userRepo)
	commentHandler.RegisterPublicRoutes(public)
	log.Println("Public read routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware())
	log.Println("JWT authentication middleware applied to /api/v1 group.")

	userHandler := handlers.NewUserHandler(userRepo)
	userHandler.RegisterProfileRoutes(api)

	commentHandler.RegisterCommentRoutes(api)
	postHandler.RegisterPostRoutes(api)
	log.Println("Comment and post reaction routes configured.")

	blogger := e.Group("/api/v1/blogger")
	blogger.Use(middleware.JWTAuthMiddleware())
	blogHandler.RegisterBloggerRoutes(blogger)
	log.Println("Blogger routes configured.")

	// --- Moderation routes (basic auth) ---
	sa := e.Group("/api/v1/sa")
	sa.Use(eMiddleware.BasicAuth(func(login, password string, c echo.Context) (bool, error) {
		loginOK := subtle.ConstantTimeCompare([]byte(login), []byte(cfg.AdminLogin)) == 1
		passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(cfg.AdminPassword)) == 1
		return loginOK && passwordOK, nil
	}))
	adminHandler := handlers.NewAdminHandler(moderationService)
	adminHandler.RegisterAdminRoutes(sa)
	log.Println("Moderation routes configured.")

	log.Println("All routes configured.")
}
