package handlers

import (
	"github.com/gofiber/fiber/v3"

	"pecheck/internal/db"
	"pecheck/internal/registry"
)

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	store *registry.Store
	db    *db.DB
}

// NewProbeHandler creates a new probe handler. database may be nil when
// Postgres is not configured.
func NewProbeHandler(store *registry.Store, database *db.DB) *ProbeHandler {
	return &ProbeHandler{store: store, db: database}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// Returns 200 OK once a database snapshot is installed and Postgres, when
// configured, is reachable.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if !h.store.Loaded() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "error",
			"error":  "PE database not loaded",
		})
	}

	if h.db != nil {
		if err := h.db.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "error",
				"error":  "database unavailable",
			})
		}
	}

	return c.JSON(fiber.Map{
		"status":  "ok",
		"entries": h.store.Current().Len(),
	})
}
