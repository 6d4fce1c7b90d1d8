// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging/redaction, panic recovery, metrics,
// CORS, security headers, idempotency, and rate limiting.
//
// Every failure path (handlers, fallbacks, recovery, rate limiting,
// idempotency validation) answers with the same apperr.Envelope JSON.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"path"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/tbourn/go-career-backend/internal/apperr"
	"github.com/tbourn/go-career-backend/internal/config"
	_ "github.com/tbourn/go-career-backend/internal/docs"
	"github.com/tbourn/go-career-backend/internal/http/handlers"
	"github.com/tbourn/go-career-backend/internal/http/middleware"
	"github.com/tbourn/go-career-backend/internal/repo"
	"github.com/tbourn/go-career-backend/internal/services"
)

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine and mounts the public API under cfg.APIBasePath.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. RedactingLogger: structured logs with PII scrubbing
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Metrics
//  7. Idempotency validator (before rate limiter to allow bypass on replay)
//  8. Rate limiter (per client IP and read/write class, bypass on replay)
//  9. CORS and Security headers
//  10. Gzip (not for /metrics)
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging with redaction
	r.Use(middleware.RedactingLogger(middleware.RedactOptions{
		MaskHeaders: []string{"X-API-Key"},
	}))

	// 4) Panic recovery to the GEN-ERR-000 envelope
	r.Use(middleware.Recovery())

	// 5) Global body size limit
	r.Use(middleware.BodyLimit(cfg.MaxBodyBytes))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) Idempotency validation (before rate limiting)
	r.Use(middleware.IdempotencyValidator(
		middleware.IdempotencyOptions{
			Scope:  idempotencyScope(cfg.APIBasePath),
			MaxLen: 200,
		},
		idempotencyLookup(db),
	))

	// 8) Token buckets per client IP, reads and writes apart
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByClientIPAndClass())
	r.Use(rl.Handler())

	// 9) CORS posture: allow all when no origins are configured
	r.Use(cors.New(corsConfig(cfg.CORS.AllowedOrigins)))

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		EnablePolicy: true,
		DocsPrefix:   "/swagger/",
	}))

	// 10) Response compression
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		middleware.Fail(c, apperr.RouteNotFound(c.Request.Method, c.Request.URL.Path))
	})
	r.NoMethod(func(c *gin.Context) {
		middleware.Fail(c, apperr.MethodNotAllowed(c.Request.Method, c.Request.URL.Path))
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Dependency injection: services ← repo/db
	shim := repoShim{}
	docSvc := services.NewDocumentService(db, shim)
	if cfg.IdempotencyTTL > 0 {
		docSvc.IdempotencyTTL = cfg.IdempotencyTTL
	}
	orgSvc := services.NewOrganizationService(db, shim)
	orgSvc.NameLocale = language.English

	h := handlers.New(handlers.Services{
		Users:         services.NewUserService(db, shim),
		Profiles:      services.NewProfileService(db, shim),
		Links:         services.NewLinksService(db, shim),
		Documents:     docSvc,
		Organizations: orgSvc,
		Jobs:          services.NewJobService(db, shim),
	})

	// Public API
	api := groupWithPrefix(r, cfg.APIBasePath)
	{
		// Users
		api.POST("/user/create", h.CreateUser)
		api.GET("/user/:id", h.GetUser)
		api.GET("/user/github/:github_username", h.GetUserByGitHub)
		api.DELETE("/user/:id", h.DeleteUser)

		// Profiles and links
		api.POST("/profile/create", h.CreateProfile)
		api.GET("/profile/:id", h.GetProfile)
		api.GET("/profile/user/:user_id", h.GetProfileByUser)
		api.POST("/links/create", h.CreateLinks)
		api.GET("/links/user/:user_id", h.GetLinksByUser)

		// Documents
		api.POST("/document/create", h.CreateDocument)
		api.GET("/document/:id", h.GetDocument)
		api.PUT("/document/:id", h.UpdateDocument)
		api.DELETE("/document/:id", h.DeleteDocument)
		api.GET("/document/user/:github_username", h.ListDocuments)

		// Organizations and jobs
		api.POST("/organization/create", h.CreateOrganization)
		api.GET("/organization/:id", h.GetOrganization)
		api.POST("/job/create", h.CreateJob)
		api.GET("/job/:id", h.GetJob)
		api.GET("/job/organization/:organization_id", h.ListJobs)
		api.DELETE("/job/:id", h.DeleteJob)
	}
}

// idempotencyScope maps requests to the idempotency scope they may replay.
// Only document creation is replayable.
func idempotencyScope(base string) func(*gin.Context) string {
	createDocument := path.Join("/", base, "/document/create")
	return func(c *gin.Context) string {
		if c.Request.Method == http.MethodPost && c.Request.URL.Path == createDocument {
			return services.ScopeDocumentCreate
		}
		return ""
	}
}

// idempotencyLookup reports stored, unexpired records. Not found is a miss;
// storage failures are returned for the validator to log.
func idempotencyLookup(db *gorm.DB) middleware.IdempotencyLookup {
	return func(ctx context.Context, scope, key string, now time.Time) (bool, error) {
		_, err := repo.GetIdempotency(ctx, db, scope, key, now)
		switch {
		case err == nil:
			return true, nil
		case errors.Is(err, repo.ErrNotFound):
			return false, nil
		default:
			return false, err
		}
	}
}

// corsConfig builds the gin-contrib/cors settings. Credentials are only
// allowed with an explicit origin list.
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderIdempotencyKey},
		ExposeHeaders: []string{"X-Request-ID", "Content-Length", "ETag", "Idempotency-Replayed"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
