package server

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pecheck/internal/background"
	"pecheck/internal/db"
	"pecheck/internal/handlers"
	"pecheck/internal/handlers/api"
	"pecheck/internal/registry"
)

// Deps are the components routes are wired to. DB may be nil.
type Deps struct {
	Client *background.Client
	Store  *registry.Store
	Source registry.Source
	DB     *db.DB
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(d Deps) {
	// Initialize handlers
	popupHandler := handlers.NewPopupHandler(d.Client, s.Cfg)
	probeHandler := handlers.NewProbeHandler(d.Store, d.DB)
	checkHandler := api.NewCheckHandler(d.Client)
	analyzeHandler := api.NewAnalyzeHandler(d.Client)
	reloadHandler := api.NewReloadHandler(d.Store, d.Source)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Popup
	s.App.Get("/", func(c fiber.Ctx) error {
		return c.Redirect().To("/popup")
	})
	s.App.Get("/popup", popupHandler.Show)
	s.App.Post("/popup", popupHandler.Analyze)

	// JSON API
	v1 := s.App.Group("/api/v1")
	v1.Get("/check", checkHandler.Check)
	v1.Get("/database", checkHandler.Database)
	v1.Post("/analyze", analyzeHandler.Analyze)
	v1.Post("/page-info", analyzeHandler.PageInfo)
	v1.Post("/message", checkHandler.Message)

	// Admin
	s.App.Post("/admin/reload", reloadHandler.Reload)
}
