package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"it-short.backend/internal/domain/entities"
	"it-short.backend/internal/interfaces/http/response"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// TokenHeader is the legacy bare token header
	TokenHeader = "token"
	// PrincipalKey is the context key for the authenticated user
	PrincipalKey = "principal"
)

// Authenticator resolves a bearer token to a live user
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entities.SystemUser, error)
}

// AuthMiddleware re-verifies the bearer token against the user directory
// on every request and stores the resolved principal in the context.
func AuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := auth.Authenticate(c.Request.Context(), ExtractToken(c))
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(PrincipalKey, user)
		c.Next()
	}
}

// ExtractToken pulls the token from the Authorization header, falling
// back to the bare token header used by existing clients.
func ExtractToken(c *gin.Context) string {
	authHeader := c.GetHeader(AuthorizationHeader)
	if strings.HasPrefix(authHeader, BearerPrefix) {
		return strings.TrimPrefix(authHeader, BearerPrefix)
	}
	return c.GetHeader(TokenHeader)
}

// CurrentUser gets the authenticated principal from the context
func CurrentUser(c *gin.Context) (*entities.SystemUser, bool) {
	val, exists := c.Get(PrincipalKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*entities.SystemUser)
	return user, ok
}
