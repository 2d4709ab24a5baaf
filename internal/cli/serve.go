package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/SscSPs/factory_ops_app/internal/adapters/blobstore"
	"github.com/SscSPs/factory_ops_app/internal/adapters/events"
	"github.com/SscSPs/factory_ops_app/internal/adapters/export"
	"github.com/SscSPs/factory_ops_app/internal/core/ports"
	"github.com/SscSPs/factory_ops_app/internal/core/services"
	"github.com/SscSPs/factory_ops_app/internal/handlers"
	"github.com/SscSPs/factory_ops_app/internal/middleware"
	"github.com/SscSPs/factory_ops_app/internal/platform/config"
	"github.com/SscSPs/factory_ops_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/factory_ops_app/pkg/database"
)

const shutdownTimeout = 10 * time.Second

// NewServeCommand creates the `serve` command: migrate up, then run the HTTP API.
func NewServeCommand() *cobra.Command {
	var skipMigrations bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			cfg, err := loadConfig(logger)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, logger, cfg, !skipMigrations)
		},
	}
	cmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "do not apply pending migrations on startup")
	return cmd
}

func serve(ctx context.Context, logger *slog.Logger, cfg *config.Config, migrateFirst bool) error {
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		return err
	}
	defer database.ClosePgxPool(logger, dbPool)
	logger.Info("Database connection pool established.")

	if migrateFirst {
		logger.Info("Running database migrations...")
		if err := database.RunMigrations(logger, cfg.DatabaseURL, cfg.MigrationsPath, database.MigrateUp); err != nil {
			logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
			return err
		}
	}

	redisClient, err := database.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		// Rate limiting degrades to per-process counters.
		logger.Warn("Redis unavailable, using in-memory rate limiting", slog.String("error", err.Error()))
	}
	defer database.CloseRedisClient(logger, redisClient)

	publisher, closePublisher := newEventPublisher(logger, cfg)
	defer closePublisher()

	blobs, blobDir, err := newBlobStore(ctx, cfg)
	if err != nil {
		logger.Error("Failed to initialize blob store", slog.String("error", err.Error()))
		return err
	}

	loginLimiter, err := middleware.NewLimiter(cfg.LoginRateLimit, redisClient)
	if err != nil {
		logger.Error("Failed to initialize login rate limiter", slog.String("error", err.Error()))
		return err
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos, blobs, publisher)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		return err
	}
	handlers.RegisterRoutes(r, cfg, serviceContainer, handlers.RouteDeps{
		LoginLimiter: loginLimiter,
		Exports:      export.DefaultRegistry(),
		BlobDir:      blobDir,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			return err
		}
		return nil
	case <-ctx.Done():
		logger.Info("Shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

// newEventPublisher connects to RabbitMQ when configured. Events are
// best-effort, so a broker that cannot be reached disables them.
func newEventPublisher(logger *slog.Logger, cfg *config.Config) (ports.EventPublisher, func()) {
	if cfg.RabbitMQURL == "" {
		return events.NoopPublisher{}, func() {}
	}
	pub, err := events.NewAMQPPublisher(cfg.RabbitMQURL, events.DefaultExchange)
	if err != nil {
		logger.Warn("RabbitMQ unavailable, domain events disabled", slog.String("error", err.Error()))
		return events.NoopPublisher{}, func() {}
	}
	logger.Info("Publishing domain events", slog.String("exchange", events.DefaultExchange))
	return pub, func() {
		if err := pub.Close(); err != nil {
			logger.Error("Failed to close RabbitMQ publisher", slog.String("error", err.Error()))
		}
	}
}

// newBlobStore returns the configured store and, for the local backend, the
// directory to serve under /blobs.
func newBlobStore(ctx context.Context, cfg *config.Config) (ports.BlobStore, string, error) {
	if cfg.BlobBackend == config.BlobBackendGCS {
		store, err := blobstore.NewGCSStore(ctx, cfg.GCSBucket, cfg.GCSCredentialsFile)
		if err != nil {
			return nil, "", err
		}
		return store, "", nil
	}
	store, err := blobstore.NewLocalStore(cfg.BlobLocalDir, cfg.BlobPublicBaseURL)
	if err != nil {
		return nil, "", err
	}
	return store, store.Dir(), nil
}
