package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerrors "fitpulse.backend/internal/domain/errors"
	"fitpulse.backend/internal/interfaces/http/response"
	"fitpulse.backend/pkg/jwt"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// UserIDKey is the context key for the authenticated user id
	UserIDKey = "userId"
)

// AuthMiddleware verifies the bearer token and stores the subject user id in
// the request context
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header is required")
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			abortUnauthorized(c, "Invalid authorization format. Use: Bearer <token>")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			response.Error(c, tokenAppError(err))
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	response.ErrorWithError(c, http.StatusUnauthorized, domainerrors.CodeUnauthorized, message)
	c.Abort()
}

// tokenAppError converts a verification failure into the 401 the client
// sees; an expired token carries ErrTokenExpired so callers can tell the
// two cases apart.
func tokenAppError(err error) *domainerrors.AppError {
	if errors.Is(err, jwt.ErrExpiredToken) {
		return domainerrors.NewAppError(http.StatusUnauthorized, domainerrors.CodeUnauthorized, "Token has expired", domainerrors.ErrTokenExpired)
	}
	return domainerrors.Unauthorized("Invalid token")
}

// GetUserID gets the authenticated user id from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	val, exists := c.Get(UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := val.(uuid.UUID)
	return userID, ok
}
