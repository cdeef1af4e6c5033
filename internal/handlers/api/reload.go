package api

import (
	"github.com/gofiber/fiber/v3"

	"pecheck/internal/models"
	"pecheck/internal/registry"
)

// ReloadHandler reloads the PE database on demand.
type ReloadHandler struct {
	store  *registry.Store
	source registry.Source
}

// NewReloadHandler creates a new API reload handler.
func NewReloadHandler(store *registry.Store, source registry.Source) *ReloadHandler {
	return &ReloadHandler{store: store, source: source}
}

// Reload refetches the configured source. A failed fetch still answers 200:
// the fallback database is installed and reported.
func (h *ReloadHandler) Reload(c fiber.Ctx) error {
	err := h.store.Reload(c.Context(), h.source)
	st := h.store.Status()

	resp := models.ReloadResponse{
		Source:   st.Source,
		Entries:  st.Entries,
		Fallback: st.Fallback,
		LoadedAt: st.LoadedAt,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	return jsonSuccess(c, resp)
}
