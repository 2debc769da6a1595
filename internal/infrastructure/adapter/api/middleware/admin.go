package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	domainerr "github.com/skyair-rewards/loyalty-engine/internal/domain/error"
	coreport "github.com/skyair-rewards/loyalty-engine/internal/domain/port/core"
	"github.com/skyair-rewards/loyalty-engine/internal/domain/port/usecase"
	"github.com/skyair-rewards/loyalty-engine/internal/infrastructure/adapter/api/dto"
)

// RequireAdmin restricts a route to members whose email appears in the
// configured admin list. It runs after RequireAuth and resolves the
// authenticated member to compare emails; an empty list denies everyone.
func RequireAdmin(users usecase.UserUseCase, adminEmails []string, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := AuthenticatedUserID(c)

		user, err := users.GetUser(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Code:    domainerr.CodeForbidden,
				Message: domainerr.ErrForbidden.Error(),
			})
			return
		}

		for _, email := range adminEmails {
			if strings.EqualFold(strings.TrimSpace(email), user.Email) {
				c.Next()
				return
			}
		}

		logger.Warn("Member denied access to back-office route", map[string]any{
			"user_id": userID,
			"path":    c.Request.URL.Path,
		})
		c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
			Code:    domainerr.CodeForbidden,
			Message: domainerr.ErrForbidden.Error(),
		})
	}
}
