package services

import (
	"errors"
	"fmt"

	"github.com/mtakagi/notes-api/internal/auth"
	"github.com/mtakagi/notes-api/internal/models"
	"github.com/mtakagi/notes-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("token is invalid or expired")
	ErrFailedToIssueToken = errors.New("failed to issue token")
)

// AuthService handles login and token verification.
type AuthService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Login verifies credentials and issues a signed, time-limited token.
func (s *AuthService) Login(username, password string) (string, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return "", ErrFailedToIssueToken
	}

	return token, nil
}

// Authenticate resolves a presented token to the user it was issued for.
// A token that outlives its account fails here, since the user row is
// re-read on every request.
func (s *AuthService) Authenticate(tokenStr string) (*models.User, error) {
	claims, err := s.tokens.Parse(tokenStr)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}
