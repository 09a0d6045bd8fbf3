package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/mtakagi/notes-api/internal/auth"
	"github.com/mtakagi/notes-api/internal/config"
	"github.com/mtakagi/notes-api/internal/database"
	"github.com/mtakagi/notes-api/internal/handlers"
	"github.com/mtakagi/notes-api/internal/middleware"
	"github.com/mtakagi/notes-api/internal/repository"
	"github.com/mtakagi/notes-api/internal/services"
)

func main() {
	// Load .env if present, then configuration
	_ = godotenv.Load()
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories and services
	userRepo := repository.NewUserRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	tokens := auth.NewTokenManager([]byte(cfg.JWTSecret), time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	authService := services.NewAuthService(userRepo, tokens)
	noteService := services.NewNoteService(noteRepo)
	userService := services.NewUserService(userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	noteHandler := handlers.NewNoteHandler(noteService)
	userHandler := handlers.NewUserHandler(userService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Notes API is running",
		})
	})

	// Login (HTTP basic auth, returns a signed token)
	r.GET("/login", authHandler.Login)

	// Note routes (public)
	notes := r.Group("/note")
	{
		notes.GET("/", noteHandler.ListNotes)
		notes.GET("/:key", noteHandler.GetNote)
		notes.POST("/:key", noteHandler.CreateNote)
		notes.PATCH("/:key", noteHandler.UpdateNote)
		notes.DELETE("/:key", noteHandler.DeleteNote)
	}

	// User routes (creation is public, the rest requires a token)
	users := r.Group("/user")
	{
		users.POST("/", userHandler.CreateUser)

		protected := users.Group("")
		protected.Use(middleware.RequireAuth(authService))
		{
			protected.GET("/", userHandler.ListUsers)
			protected.GET("/:id", userHandler.GetUser)
			protected.DELETE("/:id", userHandler.DeleteUser)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
