package handlers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"

	"github.com/SscSPs/factory_ops_app/cmd/docs"
	"github.com/SscSPs/factory_ops_app/internal/core/ports"
	portssvc "github.com/SscSPs/factory_ops_app/internal/core/ports/services"
	"github.com/SscSPs/factory_ops_app/internal/middleware"
	"github.com/SscSPs/factory_ops_app/internal/platform/config"
)

// ExportLookup resolves an export adapter by format name.
type ExportLookup interface {
	Lookup(format string) (ports.ExportAdapter, error)
}

// RouteDeps carries the infrastructure the routes need beyond the services.
type RouteDeps struct {
	// LoginLimiter throttles the public login routes. Nil disables throttling.
	LoginLimiter *limiter.Limiter
	Exports      ExportLookup
	// BlobDir is served under /blobs when photos are kept on local disk.
	BlobDir string
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps RouteDeps,
) {
	r.Use(cors.New(corsConfig(cfg)))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	if deps.BlobDir != "" {
		r.Static("/blobs", deps.BlobDir)
	}

	setupAPIV1Routes(r, cfg, services, deps)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowHeaders = append(c.AllowHeaders, "Authorization", "X-Request-ID")
	c.ExposeHeaders = []string{"Content-Disposition", "X-Request-ID"}
	c.MaxAge = 12 * time.Hour
	if len(cfg.CORSAllowedOrigins) == 0 || (len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORSAllowedOrigins
	}
	return c
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps RouteDeps,
) {
	v1 := r.Group("/api/v1")

	var loginGuard []gin.HandlerFunc
	if deps.LoginLimiter != nil {
		loginGuard = append(loginGuard, middleware.RateLimit(deps.LoginLimiter))
	}
	authRequired := middleware.AuthMiddleware(cfg.JWTSecret, services.Identity)

	registerAuthRoutes(v1, authRequired, loginGuard, services.Identity, services.Token)

	protected := v1.Group("", authRequired)
	registerManagerRoutes(protected, services.Identity)
	registerFactoryRoutes(protected, services.Factory)
	registerWorkerRoutes(protected, services.Worker)
	registerDailyLogRoutes(protected, services.DailyLog)
	registerReportingRoutes(protected, services.Reporting, deps.Exports)
	registerDashboardRoutes(protected, services.Dashboard)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
