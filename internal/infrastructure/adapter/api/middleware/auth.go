package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	domainerr "github.com/skyair-rewards/loyalty-engine/internal/domain/error"
	authport "github.com/skyair-rewards/loyalty-engine/internal/domain/port/auth"
	coreport "github.com/skyair-rewards/loyalty-engine/internal/domain/port/core"
	"github.com/skyair-rewards/loyalty-engine/internal/infrastructure/adapter/api/dto"
)

// UserIDKey is the gin context key under which the authenticated user ID is stored
const UserIDKey = "authUserID"

// RequireAuth middleware verifies the bearer token and stores the
// authenticated user ID in the request context
func RequireAuth(tokens authport.TokenService, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidCredentials),
				Message: "Missing authorization header",
			})
			return
		}

		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidCredentials),
				Message: "Invalid authorization header",
			})
			return
		}

		userID, err := tokens.Verify(token)
		if err != nil {
			logger.Warn("Rejected request with invalid token", map[string]any{
				"path":      c.Request.URL.Path,
				"client_ip": c.ClientIP(),
				"error":     err.Error(),
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidCredentials),
				Message: "Invalid or expired token",
			})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// AuthenticatedUserID returns the user ID stored by RequireAuth
func AuthenticatedUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
