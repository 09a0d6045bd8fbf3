package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/mtakagi/notes-api/internal/constants"
	apierrors "github.com/mtakagi/notes-api/internal/errors"
	"github.com/mtakagi/notes-api/internal/models"
	"github.com/mtakagi/notes-api/internal/services"
)

// RequireAuth validates the x-access-token header and resolves it to the
// calling user. Missing, invalid and expired tokens all answer 401.
func RequireAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.GetHeader(constants.TokenHeader)
		if tokenStr == "" {
			apierrors.Unauthorized(c, "Token is missing")
			c.Abort()
			return
		}

		user, err := authService.Authenticate(tokenStr)
		if err != nil {
			apierrors.Unauthorized(c, "Token is invalid")
			c.Abort()
			return
		}

		// Store the resolved identity for handlers downstream
		c.Set(constants.ContextKeyUserID, user.ID)
		c.Set(constants.ContextKeyUser, user)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	id, ok := userID.(uint64)
	if !ok {
		return 0, false
	}
	return id, true
}

// GetCurrentUser retrieves the resolved user record from context
func GetCurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return nil, false
	}

	user, ok := value.(*models.User)
	if !ok {
		return nil, false
	}
	return user, true
}
