package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ledgerUseCase "github.com/skyair-rewards/loyalty-engine/internal/domain/usecase/ledger"
	userUseCase "github.com/skyair-rewards/loyalty-engine/internal/domain/usecase/user"

	"github.com/skyair-rewards/loyalty-engine/internal/infrastructure/adapter/api/handler"
	"github.com/skyair-rewards/loyalty-engine/internal/infrastructure/adapter/api/routes"
	authAdapter "github.com/skyair-rewards/loyalty-engine/internal/infrastructure/adapter/auth"
	"github.com/skyair-rewards/loyalty-engine/internal/infrastructure/adapter/database"
	"github.com/skyair-rewards/loyalty-engine/internal/infrastructure/adapter/database/migration"
	"github.com/skyair-rewards/loyalty-engine/internal/infrastructure/adapter/identity"
	"github.com/skyair-rewards/loyalty-engine/internal/infrastructure/adapter/logger"
	"github.com/skyair-rewards/loyalty-engine/internal/infrastructure/adapter/metrics"
	"github.com/skyair-rewards/loyalty-engine/internal/infrastructure/adapter/repository"
	timeProvider "github.com/skyair-rewards/loyalty-engine/internal/infrastructure/adapter/time"
	"github.com/skyair-rewards/loyalty-engine/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer func() { _ = appLogger.Flush() }()

	// Setup database configuration
	dbConfig := &database.Config{
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	conn, err := database.NewConnection(dbConfig)
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() { _ = conn.Close() }()

	// Run migrations
	migrationMgr := migration.NewMigrationManager(conn.DB, appLogger)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(conn.DB, tp, appLogger)
	requestRepo := repository.NewPointRequestRepository(conn.DB, tp, appLogger)
	historyRepo := repository.NewPointHistoryRepository(conn.DB, appLogger)

	// Unit of work (transaction manager)
	uow := database.NewUnitOfWork(conn.DB, appLogger, tp)

	// Identity and auth adapters
	ids := identity.NewUUIDGenerator()
	hasher := authAdapter.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens, err := authAdapter.NewJWTTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, tp)
	if err != nil {
		appLogger.Error("Failed to initialize token service", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Metrics registry with the standard process and Go collectors
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder := metrics.NewPrometheusRecorder(registry)

	// Initialize use cases
	userUseCaseImpl := userUseCase.NewUserUseCase(userRepo, hasher, ids, tp, appLogger)
	ledgerUseCaseImpl := ledgerUseCase.NewService(
		uow,
		userRepo,
		requestRepo,
		historyRepo,
		ids,
		tp,
		appLogger,
		recorder,
	)

	// Initialize API handlers
	authHandler := handler.NewAuthHandler(userUseCaseImpl, tokens, appLogger)
	pointRequestHandler := handler.NewPointRequestHandler(ledgerUseCaseImpl, appLogger)
	ledgerHandler := handler.NewLedgerHandler(ledgerUseCaseImpl, appLogger)
	profileHandler := handler.NewProfileHandler(userUseCaseImpl, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(
		router,
		authHandler,
		pointRequestHandler,
		ledgerHandler,
		profileHandler,
		tokens,
		userUseCaseImpl,
		cfg.Auth.AdminEmails,
		appLogger,
	)
	routes.SetupOperationalRoutes(router, registry)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	// Create a deadline to wait for
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Shutdown the server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}

	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate database configuration
	if cfg.Database.Host == "" {
		if cfg.Environment == config.Production && os.Getenv("LE_DB_HOST") == "" {
			missingConfigs = append(missingConfigs, "database.host (or LE_DB_HOST environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.host")
		}
	}

	if cfg.Database.Port == "" {
		if cfg.Environment == config.Production && os.Getenv("LE_DB_PORT") == "" {
			missingConfigs = append(missingConfigs, "database.port (or LE_DB_PORT environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.port")
		}
	}

	if cfg.Database.Username == "" {
		if cfg.Environment == config.Production && os.Getenv("LE_DB_USERNAME") == "" {
			missingConfigs = append(missingConfigs, "database.username (or LE_DB_USERNAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.username")
		}
	}

	if cfg.Database.Password == "" {
		if cfg.Environment == config.Production && os.Getenv("LE_DB_PASSWORD") == "" {
			missingConfigs = append(missingConfigs, "database.password (or LE_DB_PASSWORD environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.password")
		}
	}

	if cfg.Database.Database == "" {
		if cfg.Environment == config.Production && os.Getenv("LE_DB_NAME") == "" {
			missingConfigs = append(missingConfigs, "database.database (or LE_DB_NAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.database")
		}
	}

	// Validate auth configuration
	if cfg.Auth.JWTSecret == "" {
		if cfg.Environment == config.Production && os.Getenv("LE_AUTH_JWT_SECRET") == "" {
			missingConfigs = append(missingConfigs, "auth.jwtSecret (or LE_AUTH_JWT_SECRET environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "auth.jwtSecret")
		}
	}

	if cfg.Auth.TokenTTL == 0 {
		missingConfigs = append(missingConfigs, "auth.tokenTTL")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	// Return error with list of missing configurations
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	return nil
}
