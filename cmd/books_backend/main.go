package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"

	"github.com/SscSPs/books_core/internal/adapters/cache"
	"github.com/SscSPs/books_core/internal/adapters/ratesapi"
	portssvc "github.com/SscSPs/books_core/internal/core/ports/services"
	"github.com/SscSPs/books_core/internal/core/services"
	"github.com/SscSPs/books_core/internal/dto"
	"github.com/SscSPs/books_core/internal/handlers"
	"github.com/SscSPs/books_core/internal/middleware"
	"github.com/SscSPs/books_core/internal/platform/config"
	"github.com/SscSPs/books_core/internal/repositories/database/pgsql"
	"github.com/SscSPs/books_core/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := dto.RegisterValidators(); err != nil {
		logger.Error("Failed to register request validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	serviceContainer := newServiceContainer(cfg, dbPool, logger)

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, rateLimiter)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newServiceContainer wires repositories, the rate cache and the optional remote rate provider.
func newServiceContainer(cfg *config.Config, dbPool *pgxpool.Pool, logger *slog.Logger) *portssvc.ServiceContainer {
	repos := pgsql.NewRepositoryProvider(dbPool)

	switch cfg.ExchangeRateCache {
	case config.RateCachePostgres:
		repos.RateCache = pgsql.NewKVCacheRepository(dbPool)
	default:
		repos.RateCache = cache.NewDefaultMemoryStore()
	}
	logger.Info("Exchange rate cache selected", slog.String("cache", cfg.ExchangeRateCache))

	var provider portssvc.RateProvider
	if cfg.ExchangeRateOnline {
		provider = ratesapi.NewClient(cfg.ExchangeRateAPIURL, cfg.ExchangeRateTimeout)
		logger.Info("Remote exchange rates enabled", slog.String("url", cfg.ExchangeRateAPIURL))
	} else {
		logger.Info("Remote exchange rates disabled, rates resolve to 1")
	}

	return services.NewServiceContainer(cfg, repos, provider)
}

// runMigrations applies all pending "up" migrations from ./migrations.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	// Using pgx/v5/stdlib driver to be compatible with the main pool
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	sourceErr, dbErr := m.Close()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return upErr
	}
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
