package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/komfort-city/site-backend/docs"
	"github.com/komfort-city/site-backend/internal/api/handler"
	"github.com/komfort-city/site-backend/internal/api/middleware"
	"github.com/komfort-city/site-backend/internal/core/domain"
	"github.com/komfort-city/site-backend/internal/core/ports"
	"github.com/komfort-city/site-backend/internal/core/service"
	mongodb "github.com/komfort-city/site-backend/internal/infrastructure/db/mongo"
	redisdb "github.com/komfort-city/site-backend/internal/infrastructure/db/redis"
	"github.com/komfort-city/site-backend/internal/infrastructure/http/handlers"
	"github.com/komfort-city/site-backend/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; content caching is then disabled and the readiness probe
// reports redis as disabled.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, files ports.FileStore, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("komfort"))

	// --- Dependencies ---
	var cache ports.ContentCache
	if rdb != nil {
		cache = redisdb.NewContentCache(rdb, cfg.Redis.CacheTTL, log)
	}

	authRepo := mongodb.NewAuthRepository(db)
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(authRepo, tokens, log)
	authHandler := handler.NewAuthHandler(authService)
	authMW := middleware.Auth(tokens, authRepo)

	leadService := service.NewLeadService(mongodb.NewLeadRepository(db), mongodb.NewCensus(db), log)
	leadHandler := handler.NewLeadHandler(leadService)

	mediaService := service.NewMediaService(mongodb.NewMediaRepository(db), files, log)
	mediaHandler := handler.NewMediaHandler(mediaService)

	siteHandler := handler.NewSiteHandler(mongodb.NewSiteRepository(db), cache)

	// --- Auth routes ---
	e.POST("/api/admin/login", authHandler.Login)
	e.POST("/api/admin/logout", authHandler.Logout, authMW)
	e.GET("/api/admin/me", authHandler.Me, authMW)
	e.POST("/api/admin/change-password", authHandler.ChangePassword, authMW)

	// --- Content routes, one family per type ---
	registerContent[domain.Service, domain.ServicePatch](e, db, cache, authMW, mongodb.Services, "services", "Service")
	registerContent[domain.Sector, domain.SectorPatch](e, db, cache, authMW, mongodb.Sectors, "sectors", "Sector")
	registerContent[domain.Advantage, domain.AdvantagePatch](e, db, cache, authMW, mongodb.Advantages, "advantages", "Advantage")
	registerContent[domain.Solution, domain.SolutionPatch](e, db, cache, authMW, mongodb.Solutions, "solutions", "Solution")
	registerContent[domain.Project, domain.ProjectPatch](e, db, cache, authMW, mongodb.Projects, "projects", "Project")
	registerContent[domain.FAQ, domain.FAQPatch](e, db, cache, authMW, mongodb.FAQs, "faq", "FAQ")

	// --- Site information ---
	e.GET("/api/site-info", siteHandler.Get)
	e.PUT("/api/site-info", siteHandler.Update, authMW)

	// --- Leads ---
	e.POST("/api/contact-form", leadHandler.Submit)
	e.GET("/api/leads", leadHandler.List, authMW)
	e.GET("/api/leads/stats", leadHandler.Stats, authMW)
	e.GET("/api/leads/:id", leadHandler.Get, authMW)
	e.PUT("/api/leads/:id/status", leadHandler.UpdateStatus, authMW)
	e.GET("/api/dashboard/stats", leadHandler.Dashboard, authMW)

	// --- Media ---
	e.POST("/api/upload/image", mediaHandler.Upload, authMW)
	e.POST("/api/upload/bulk", mediaHandler.UploadBulk, authMW)
	e.GET("/api/media", mediaHandler.List, authMW)
	e.GET("/api/media/:filename", mediaHandler.Serve)
	e.DELETE("/api/media/:filename", mediaHandler.Delete, authMW)

	// --- Operational endpoints ---
	healthHandler := handlers.NewHealthHandler()
	readyHandler := handlers.NewReadinessHandler(db, rdb)
	e.GET("/api/health", healthHandler.Liveness)
	e.GET("/api/health/ready", readyHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// registerContent wires the standard route family for one content type:
// public list, admin list, and admin create/get/update/delete.
func registerContent[T any, P ports.Patch](
	e *echo.Echo,
	db *mongo.Database,
	cache ports.ContentCache,
	authMW echo.MiddlewareFunc,
	spec mongodb.CollectionSpec,
	path, label string,
) {
	repo := mongodb.NewContentStore[T](db, spec)
	h := handler.NewContentHandler[T, P](repo, cache, spec.Name, label)

	e.GET("/api/"+path, h.ListPublic)
	e.GET("/api/admin/"+path, h.ListAll, authMW)
	e.POST("/api/"+path, h.Create, authMW)
	e.GET("/api/"+path+"/:id", h.Get, authMW)
	e.PUT("/api/"+path+"/:id", h.Update, authMW)
	e.DELETE("/api/"+path+"/:id", h.Delete, authMW)
}
