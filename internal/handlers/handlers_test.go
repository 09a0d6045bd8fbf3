package handlers

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mtakagi/notes-api/internal/auth"
	"github.com/mtakagi/notes-api/internal/middleware"
	"github.com/mtakagi/notes-api/internal/models"
	"github.com/mtakagi/notes-api/internal/repository"
	"github.com/mtakagi/notes-api/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	tokens      *auth.TokenManager
	authService *services.AuthService
	noteService *services.NoteService
	userService *services.UserService
}

func setupTestEnv(t *testing.T) testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Note{},
	)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	tokens := auth.NewTokenManager([]byte("test-secret"), 30*time.Minute)
	authService := services.NewAuthService(userRepo, tokens)
	noteService := services.NewNoteService(noteRepo)
	userService := services.NewUserService(userRepo)

	authHandler := NewAuthHandler(authService)
	noteHandler := NewNoteHandler(noteService)
	userHandler := NewUserHandler(userService)

	r := gin.New()
	r.GET("/login", authHandler.Login)

	notes := r.Group("/note")
	{
		notes.GET("/", noteHandler.ListNotes)
		notes.GET("/:key", noteHandler.GetNote)
		notes.POST("/:key", noteHandler.CreateNote)
		notes.PATCH("/:key", noteHandler.UpdateNote)
		notes.DELETE("/:key", noteHandler.DeleteNote)
	}

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

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return testEnv{
		db:          db,
		router:      r,
		tokens:      tokens,
		authService: authService,
		noteService: noteService,
		userService: userService,
	}
}

func createTestUser(t *testing.T, env testEnv, username, password string) *models.User {
	t.Helper()

	user, err := env.userService.Create(services.CreateInput{
		Username: username,
		Password: password,
	})
	require.NoError(t, err)
	return user
}
