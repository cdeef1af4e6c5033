package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"pecheck/internal/config"
	"pecheck/internal/popup"
)

// PopupHandler renders the popup for a page.
type PopupHandler struct {
	background popup.Background
	cfg        *config.Config
}

// NewPopupHandler creates a new popup handler.
func NewPopupHandler(background popup.Background, cfg *config.Config) *PopupHandler {
	return &PopupHandler{background: background, cfg: cfg}
}

// Show renders the popup for the url query parameter, or an empty form.
func (h *PopupHandler) Show(c fiber.Ctx) error {
	pageURL := strings.TrimSpace(c.Query("url"))
	if pageURL == "" {
		return h.render(c, "", nil)
	}

	view := popup.Analyze(c.Context(), h.background, pageURL, "")
	return h.render(c, pageURL, &view)
}

// Analyze renders the popup for a submitted url and optional page HTML.
func (h *PopupHandler) Analyze(c fiber.Ctx) error {
	pageURL := strings.TrimSpace(c.FormValue("url"))
	if pageURL == "" {
		return fiber.NewError(fiber.StatusBadRequest, "url is required")
	}

	view := popup.Analyze(c.Context(), h.background, pageURL, c.FormValue("html"))
	return h.render(c, pageURL, &view)
}

func (h *PopupHandler) render(c fiber.Ctx, pageURL string, view *popup.View) error {
	return c.Render("popup", MergeBranding(fiber.Map{
		"Title": "Ownership",
		"URL":   pageURL,
		"View":  view,
	}, h.cfg))
}
