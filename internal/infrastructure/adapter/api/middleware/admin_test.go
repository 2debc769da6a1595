package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/skyair-rewards/loyalty-engine/internal/domain/entity"
	domainerr "github.com/skyair-rewards/loyalty-engine/internal/domain/error"
	"github.com/skyair-rewards/loyalty-engine/internal/infrastructure/adapter/api/dto"
	coremocks "github.com/skyair-rewards/loyalty-engine/mocks/port/core"
	usecasemocks "github.com/skyair-rewards/loyalty-engine/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// adminRouter builds a router where the session is already established
// for the given member and the target route sits behind RequireAdmin.
func adminRouter(users *usecasemocks.MockUserUseCase, adminEmails []string, logger *coremocks.MockLogger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/back-office",
		func(c *gin.Context) { c.Set(UserIDKey, "u-1") },
		RequireAdmin(users, adminEmails, logger),
		func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"reached": true}) },
	)
	return router
}

func TestRequireAdmin(t *testing.T) {
	member := &entity.User{ID: "u-1", Email: "carla@example.com"}

	t.Run("Listed admin reaches the handler", func(t *testing.T) {
		users := usecasemocks.NewMockUserUseCase(t)
		logger := coremocks.NewMockLogger(t)
		users.EXPECT().GetUser(mock.Anything, "u-1").Return(member, nil).Once()

		router := adminRouter(users, []string{"Carla@Example.com"}, logger)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/back-office", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Member outside the list is refused", func(t *testing.T) {
		users := usecasemocks.NewMockUserUseCase(t)
		logger := coremocks.NewMockLogger(t)
		users.EXPECT().GetUser(mock.Anything, "u-1").Return(member, nil).Once()
		logger.EXPECT().Warn("Member denied access to back-office route", map[string]any{
			"user_id": "u-1",
			"path":    "/back-office",
		}).Once()

		router := adminRouter(users, []string{"ops@skyair.example"}, logger)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/back-office", nil))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		var body dto.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, domainerr.CodeForbidden, body.Code)
	})

	t.Run("Empty admin list refuses everyone", func(t *testing.T) {
		users := usecasemocks.NewMockUserUseCase(t)
		logger := coremocks.NewMockLogger(t)
		users.EXPECT().GetUser(mock.Anything, "u-1").Return(member, nil).Once()
		logger.EXPECT().Warn("Member denied access to back-office route", mock.Anything).Once()

		router := adminRouter(users, nil, logger)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/back-office", nil))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Unresolvable session is refused", func(t *testing.T) {
		users := usecasemocks.NewMockUserUseCase(t)
		logger := coremocks.NewMockLogger(t)
		users.EXPECT().GetUser(mock.Anything, "u-1").Return(nil, domainerr.ErrUserNotFound).Once()

		router := adminRouter(users, []string{"carla@example.com"}, logger)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/back-office", nil))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
