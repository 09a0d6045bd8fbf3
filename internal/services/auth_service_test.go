package services

import (
	"testing"
	"time"

	"github.com/mtakagi/notes-api/internal/auth"
	"github.com/mtakagi/notes-api/internal/models"
	"github.com/mtakagi/notes-api/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthService(t *testing.T) (*AuthService, *UserService) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Note{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	userRepo := repository.NewUserRepository(db)
	tokens := auth.NewTokenManager([]byte("test-secret"), 30*time.Minute)

	return NewAuthService(userRepo, tokens), NewUserService(userRepo)
}

func TestAuthService_LoginAndAuthenticate(t *testing.T) {
	authSvc, userSvc := setupAuthService(t)

	user, err := userSvc.Create(CreateInput{Username: "alice", Password: "pw123"})
	require.NoError(t, err)

	token, err := authSvc.Login("alice", "pw123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	resolved, err := authSvc.Authenticate(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, resolved.ID)
	require.Equal(t, "alice", resolved.Username)
}

func TestAuthService_LoginInvalidCredentials(t *testing.T) {
	authSvc, userSvc := setupAuthService(t)

	_, err := userSvc.Create(CreateInput{Username: "alice", Password: "pw123"})
	require.NoError(t, err)

	_, err = authSvc.Login("alice", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = authSvc.Login("nobody", "pw123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_AuthenticateInvalidToken(t *testing.T) {
	authSvc, _ := setupAuthService(t)

	_, err := authSvc.Authenticate("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_AuthenticateDeletedUser(t *testing.T) {
	authSvc, userSvc := setupAuthService(t)

	user, err := userSvc.Create(CreateInput{Username: "alice", Password: "pw123"})
	require.NoError(t, err)

	token, err := authSvc.Login("alice", "pw123")
	require.NoError(t, err)

	require.NoError(t, userSvc.Delete(user.ID))

	_, err = authSvc.Authenticate(token)
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
