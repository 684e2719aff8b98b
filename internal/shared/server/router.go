package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cv-builder/internal/drafts"
	"cv-builder/internal/resumes"
	"cv-builder/internal/services/health"
	"cv-builder/internal/shared/config"
	"cv-builder/internal/shared/metrics"
	"cv-builder/internal/shared/server/middleware"
	"cv-builder/internal/shared/server/respond"
	"cv-builder/internal/shared/telemetry"
	"cv-builder/resume/render"
)

const (
	rateGroupEdit    = "EDIT"
	rateGroupImport  = "IMPORT"
	rateGroupPreview = "PREVIEW"
)

// RouterDeps carries the handlers and shared services the router mounts.
type RouterDeps struct {
	Config        config.Config
	Health        *health.Service
	Registry      *render.Registry
	ResumeHandler *resumes.Handler
	DraftHandler  *drafts.Handler
	RateLimiter   *middleware.RateLimiter
}

var publicPaths = []string{
	"/api/v1/health",
	"/api/v1/metrics",
	"/api/v1/templates",
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Identity(publicPaths...),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules:    rateLimitRules,
			GroupFor: rateGroupFor,
			Limiter:  deps.RateLimiter,
		}),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		if deps.Health == nil {
			respond.JSON(c, http.StatusOK, gin.H{"ok": true})
			return
		}
		status := deps.Health.Status(c.Request.Context())
		code := http.StatusOK
		if !status.OK {
			code = http.StatusServiceUnavailable
		}
		respond.JSON(c, code, status)
	})
	api.GET("/metrics", metrics.Handler())
	api.GET("/templates", templatesHandler(deps.Registry))
	registerMeRoutes(api)

	if deps.ResumeHandler != nil {
		deps.ResumeHandler.RegisterRoutes(api)
	}
	if deps.DraftHandler != nil {
		deps.DraftHandler.RegisterRoutes(api)
	}

	return r
}

var rateLimitRules = map[string]middleware.RateLimitRule{
	rateGroupEdit:    {Rate: 20, Burst: 40},
	rateGroupImport:  {Rate: 0.2, Burst: 3},
	rateGroupPreview: {Rate: 10, Burst: 20},
	"DEFAULT":        {Rate: 10, Burst: 30},
}

// rateGroupFor buckets requests by route. Editing is chatty, imports call
// the extraction service and are expensive.
func rateGroupFor(c *gin.Context) string {
	switch c.FullPath() {
	case "/api/v1/drafts/:id/actions":
		return rateGroupEdit
	case "/api/v1/drafts/import", "/api/v1/drafts/import/pdf":
		return rateGroupImport
	case "/api/v1/drafts/:id/preview", "/api/v1/resumes/:id/preview":
		return rateGroupPreview
	case "/api/v1/health", "/api/v1/metrics":
		return "UNLIMITED"
	}
	return ""
}

func templatesHandler(registry *render.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := registry.Catalog()
		if err != nil {
			telemetry.Error("templates.catalog_failed", map[string]any{"error": err.Error()})
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load template catalog", nil)
			return
		}
		respond.OK(c, gin.H{
			"templates": entries,
			"default":   registry.DefaultID(),
		})
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
