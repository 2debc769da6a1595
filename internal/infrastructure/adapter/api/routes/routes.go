package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	authport "github.com/skyair-rewards/loyalty-engine/internal/domain/port/auth"
	coreport "github.com/skyair-rewards/loyalty-engine/internal/domain/port/core"
	"github.com/skyair-rewards/loyalty-engine/internal/domain/port/usecase"
	"github.com/skyair-rewards/loyalty-engine/internal/infrastructure/adapter/api/handler"
	"github.com/skyair-rewards/loyalty-engine/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	pointRequestHandler *handler.PointRequestHandler,
	ledgerHandler *handler.LedgerHandler,
	profileHandler *handler.ProfileHandler,
	tokens authport.TokenService,
	users usecase.UserUseCase,
	adminEmails []string,
	logger coreport.Logger,
) {
	requireAdmin := middleware.RequireAdmin(users, adminEmails, logger)

	// Public auth routes
	authRoutes := router.Group("/api/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.GET("/user", middleware.RequireAuth(tokens, logger), authHandler.CurrentUser)
	}

	// Everything else requires a session
	api := router.Group("/api")
	api.Use(middleware.RequireAuth(tokens, logger))
	{
		api.GET("/point-requests", pointRequestHandler.List)
		api.POST("/point-requests", pointRequestHandler.Create)
		api.GET("/point-requests/:id", pointRequestHandler.GetByID)
		api.POST("/point-requests/:id/resolve", requireAdmin, pointRequestHandler.Resolve)

		api.GET("/balance", ledgerHandler.Balance)
		api.GET("/point-history", ledgerHandler.History)
		api.POST("/redemptions", ledgerHandler.Redeem)
		api.POST("/bonuses", requireAdmin, ledgerHandler.AwardBonus)

		api.PATCH("/profile", profileHandler.Update)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}

// SetupOperationalRoutes registers the health and metrics endpoints
func SetupOperationalRoutes(router *gin.Engine, registry *prometheus.Registry) {
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
}
