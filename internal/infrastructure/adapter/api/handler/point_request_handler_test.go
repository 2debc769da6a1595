package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skyair-rewards/loyalty-engine/internal/domain/entity"
	domainerr "github.com/skyair-rewards/loyalty-engine/internal/domain/error"
	"github.com/skyair-rewards/loyalty-engine/internal/domain/port/usecase"
	"github.com/skyair-rewards/loyalty-engine/internal/infrastructure/adapter/api/dto"
	"github.com/skyair-rewards/loyalty-engine/internal/infrastructure/adapter/api/middleware"
	coremocks "github.com/skyair-rewards/loyalty-engine/mocks/port/core"
	usecasemocks "github.com/skyair-rewards/loyalty-engine/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pointRequestRouter mounts the handler behind a stub session for the
// given member, mirroring the production route layout.
func pointRequestRouter(ledger usecase.LedgerUseCase, logger *coremocks.MockLogger, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPointRequestHandler(ledger, logger)
	router := gin.New()
	router.Use(func(c *gin.Context) { c.Set(middleware.UserIDKey, userID) })
	router.POST("/api/point-requests", h.Create)
	router.GET("/api/point-requests/:id", h.GetByID)
	router.POST("/api/point-requests/:id/resolve", h.Resolve)
	return router
}

func TestPointRequestHandlerResolve(t *testing.T) {
	resolvedAt := time.Date(2024, 5, 11, 10, 0, 0, 0, time.UTC)

	t.Run("Approval decision returns the resolved request", func(t *testing.T) {
		ledger := usecasemocks.NewMockLedgerUseCase(t)
		logger := coremocks.NewMockLogger(t)

		resolved := &entity.PointRequest{
			ID:            "pr-1",
			UserID:        "u-1",
			FlightNumber:  "SA1234",
			Status:        entity.StatusApproved,
			PointsAwarded: 1500,
			UpdatedAt:     resolvedAt,
		}
		ledger.EXPECT().
			ResolveRequest(mock.Anything, "pr-1", usecase.DecisionApprove, 1500).
			Return(resolved, nil).Once()

		router := pointRequestRouter(ledger, logger, "admin-1")
		rec := httptest.NewRecorder()
		body := `{"decision":"approve","pointsToAward":1500}`
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/point-requests/pr-1/resolve", strings.NewReader(body)))

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp dto.PointRequestResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "approved", resp.Status)
		assert.Equal(t, 1500, resp.PointsAwarded)
	})

	t.Run("Already resolved request maps to a conflict", func(t *testing.T) {
		ledger := usecasemocks.NewMockLedgerUseCase(t)
		logger := coremocks.NewMockLogger(t)

		ledger.EXPECT().
			ResolveRequest(mock.Anything, "pr-1", usecase.DecisionReject, 0).
			Return(nil, domainerr.NewRequestStateError("pr-1", "approved")).Once()

		router := pointRequestRouter(ledger, logger, "admin-1")
		rec := httptest.NewRecorder()
		body := `{"decision":"reject"}`
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/point-requests/pr-1/resolve", strings.NewReader(body)))

		assert.Equal(t, http.StatusConflict, rec.Code)
		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, domainerr.CodeRequestResolved, resp.Code)
	})

	t.Run("Unknown decision never reaches the service", func(t *testing.T) {
		ledger := usecasemocks.NewMockLedgerUseCase(t)
		logger := coremocks.NewMockLogger(t)

		router := pointRequestRouter(ledger, logger, "admin-1")
		rec := httptest.NewRecorder()
		body := `{"decision":"defer"}`
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/point-requests/pr-1/resolve", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPointRequestHandlerCreate(t *testing.T) {
	t.Run("Submission is attributed to the session member", func(t *testing.T) {
		ledger := usecasemocks.NewMockLedgerUseCase(t)
		logger := coremocks.NewMockLogger(t)

		created := &entity.PointRequest{
			ID:               "pr-9",
			UserID:           "u-1",
			FlightNumber:     "SA1234",
			DepartureAirport: "JFK",
			ArrivalAirport:   "LHR",
			DepartureDate:    "2024-05-01",
			Status:           entity.StatusPending,
		}
		ledger.EXPECT().
			SubmitRequest(mock.Anything, "u-1", usecase.SubmitInput{
				FlightNumber:     "SA1234",
				DepartureAirport: "JFK",
				ArrivalAirport:   "LHR",
				DepartureDate:    "2024-05-01",
			}).
			Return(created, nil).Once()

		router := pointRequestRouter(ledger, logger, "u-1")
		rec := httptest.NewRecorder()
		body := `{"flightNumber":"SA1234","departureAirport":"JFK","arrivalAirport":"LHR","departureDate":"2024-05-01"}`
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/point-requests", strings.NewReader(body)))

		assert.Equal(t, http.StatusCreated, rec.Code)
		var resp dto.PointRequestResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "pending", resp.Status)
		assert.Equal(t, "u-1", resp.UserID)
	})

	t.Run("Validation failure from the service surfaces as bad request", func(t *testing.T) {
		ledger := usecasemocks.NewMockLedgerUseCase(t)
		logger := coremocks.NewMockLogger(t)

		ledger.EXPECT().
			SubmitRequest(mock.Anything, "u-1", mock.Anything).
			Return(nil, domainerr.NewValidationError("departureAirport", "unknown airport code")).Once()

		router := pointRequestRouter(ledger, logger, "u-1")
		rec := httptest.NewRecorder()
		body := `{"flightNumber":"SA1234","departureAirport":"XXX","arrivalAirport":"LHR","departureDate":"2024-05-01"}`
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/point-requests", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Another member's request stays hidden", func(t *testing.T) {
		ledger := usecasemocks.NewMockLedgerUseCase(t)
		logger := coremocks.NewMockLogger(t)

		foreign := &entity.PointRequest{ID: "pr-2", UserID: "u-2", Status: entity.StatusPending}
		ledger.EXPECT().
			GetRequestByID(mock.Anything, "pr-2").
			Return(foreign, nil).Once()

		router := pointRequestRouter(ledger, logger, "u-1")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/point-requests/pr-2", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
