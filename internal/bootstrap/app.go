package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"cv-builder/internal/drafts"
	"cv-builder/internal/importer"
	"cv-builder/internal/previews"
	"cv-builder/internal/resumes"
	"cv-builder/internal/services/health"
	"cv-builder/internal/shared/config"
	"cv-builder/internal/shared/server"
	"cv-builder/internal/shared/server/middleware"
	"cv-builder/internal/shared/storage/db"
	"cv-builder/resume/render"
)

// App holds shared dependencies.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	DB              *sql.DB
	Registry        *render.Registry
	ResumesRepo     resumes.Repo
	ResumesService  *resumes.Service
	DraftStore      *drafts.Store
	DraftsService   *drafts.Service
	PreviewsService *previews.Service
	ResumeHandler   *resumes.Handler
	DraftHandler    *drafts.Handler
	Health          *health.Service
	RateLimiter     *middleware.RateLimiter
}

// Build prepares shared dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:   cfg,
		DB:       sqlDB,
		Registry: render.NewDefaultRegistry(render.WithDefault(cfg.DefaultTemplate)),
	}
	if err := buildServices(app); err != nil {
		return nil, err
	}

	var pinger health.Pinger
	if sqlDB != nil {
		pinger = sqlDB
	}
	app.Health = health.NewService(pinger, app.Registry.IDs)

	app.RateLimiter = middleware.NewRateLimiter(nil)
	app.Router = server.NewRouter(server.RouterDeps{
		Config:        app.Config,
		Health:        app.Health,
		Registry:      app.Registry,
		ResumeHandler: app.ResumeHandler,
		DraftHandler:  app.DraftHandler,
		RateLimiter:   app.RateLimiter,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local", "test":
		return true
	default:
		return false
	}
}

func buildServices(app *App) error {
	var resumeRepo resumes.Repo
	if app.DB != nil {
		resumeRepo = &resumes.PGRepo{DB: app.DB}
	} else {
		resumeRepo = resumes.NewMemoryRepo()
	}

	extractor, err := buildExtractor(app.Config)
	if err != nil {
		return err
	}

	resumeSvc := &resumes.Service{Repo: resumeRepo}
	draftStore := drafts.NewStore(app.Config.DraftTTL)
	draftSvc := &drafts.Service{
		Store:     draftStore,
		Resumes:   resumeSvc,
		Extractor: extractor,
	}
	previewSvc := previews.NewService(app.Registry)

	app.ResumesRepo = resumeRepo
	app.ResumesService = resumeSvc
	app.DraftStore = draftStore
	app.DraftsService = draftSvc
	app.PreviewsService = previewSvc
	app.ResumeHandler = resumes.NewHandler(resumeSvc, previewSvc)
	app.DraftHandler = drafts.NewHandler(draftSvc, previewSvc, app.Config.MaxImportBytes)
	return nil
}

func buildExtractor(cfg config.Config) (importer.Extractor, error) {
	if strings.TrimSpace(cfg.ExtractorURL) == "" {
		log.Printf("bootstrap: EXTRACTOR_URL empty; PDF import disabled")
		return importer.Unavailable{}, nil
	}
	ex, err := importer.NewHTTPExtractor(cfg.ExtractorURL, cfg.ExtractorAPIKey, cfg.ExtractorTimeout)
	if err != nil {
		return nil, fmt.Errorf("build extractor: %w", err)
	}
	return ex, nil
}
