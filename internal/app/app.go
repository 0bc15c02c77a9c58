package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/civicteams/server/cmd/server/docs" // swagger docs
	"github.com/civicteams/server/internal/infra/config"
	"github.com/civicteams/server/internal/shared/database"
	"github.com/civicteams/server/internal/utils/middleware"
)

// App is the assembled HTTP service.
type App struct {
	deps    *Dependencies
	router  *gin.Engine
	cleanup func()
}

// New creates a new application instance.
func New(cfg *config.Config) (*App, error) {
	deps, cleanup, err := InitializeDependencies(cfg)
	if err != nil {
		return nil, fmt.Errorf("init dependencies: %w", err)
	}

	a := &App{deps: deps, cleanup: cleanup}
	a.router = a.setupRouter()
	return a, nil
}

// Router returns the HTTP handler.
func (a *App) Router() *gin.Engine {
	return a.router
}

// Logger returns the application logger.
func (a *App) Logger() *zap.Logger {
	return a.deps.Logger
}

// Migrate creates or updates the database schema. It is a no-op for the
// memory driver.
func (a *App) Migrate() error {
	if a.deps.Stores.DB == nil {
		return nil
	}
	return database.Migrate(a.deps.Stores.DB, a.deps.Logger)
}

// Stop waits for background work and releases resources.
func (a *App) Stop() {
	if a.cleanup != nil {
		a.cleanup()
	}
	_ = a.deps.Logger.Sync()
}

// setupRouter creates and configures the Gin router.
func (a *App) setupRouter() *gin.Engine {
	cfg := a.deps.Config
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	cors := middleware.DefaultCORSConfig()
	if len(cfg.Server.AllowedOrigins) > 0 {
		cors.AllowOrigins = cfg.Server.AllowedOrigins
	}

	r.Use(middleware.Recovery(a.deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(a.deps.Logger))
	r.Use(middleware.CORS(cors))
	r.Use(middleware.Metrics(a.deps.Metrics))

	r.GET("/health", a.health)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(a.deps.Registry, promhttp.HandlerOpts{})))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.OptionalAuth(a.deps.TokenValidator))
	if cfg.RateLimit.Enabled {
		api.Use(middleware.RateLimit(a.deps.RateLimiter, middleware.RateLimitConfig{
			Limit:     cfg.RateLimit.Requests,
			Window:    cfg.RateLimit.Window,
			SkipFunc:  readOnly,
			OnLimited: func(*gin.Context) { a.deps.Metrics.RecordRateLimited() },
			Logger:    a.deps.Logger,
		}))
	}

	requireUser := middleware.RequireUser()
	idempotency := middleware.Idempotency(a.deps.IdempotencyStore, middleware.IdempotencyConfig{
		Logger: a.deps.Logger,
	})

	a.deps.UserHandler.RegisterRoutes(api)
	a.deps.IssueHandler.RegisterRoutes(api, []gin.HandlerFunc{idempotency}, []gin.HandlerFunc{requireUser})
	a.deps.TeamHandler.RegisterRoutes(api, requireUser)
	a.deps.InvitationHandler.RegisterRoutes(api, requireUser)
	a.deps.BusinessHandler.RegisterRoutes(api, requireUser)

	return r
}

// readOnly exempts safe methods from rate limiting.
func readOnly(c *gin.Context) bool {
	switch c.Request.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

// health reports whether the store and cache are reachable.
func (a *App) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	checks := gin.H{}
	healthy := true

	if db := a.deps.Stores.DB; db != nil {
		checks["database"] = "ok"
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			checks["database"] = "unavailable"
			healthy = false
		}
	} else {
		checks["database"] = "memory"
	}

	if a.deps.Redis != nil {
		checks["redis"] = "ok"
		if err := a.deps.Redis.Ping(ctx).Err(); err != nil {
			checks["redis"] = "unavailable"
			healthy = false
		}
	}

	status, code := "ok", http.StatusOK
	if !healthy {
		status, code = "degraded", http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"status": status, "checks": checks})
}
