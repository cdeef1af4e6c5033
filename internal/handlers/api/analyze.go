package api

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"pecheck/internal/models"
	"pecheck/internal/popup"
	"pecheck/internal/signals"
	"pecheck/internal/validation"
)

// AnalyzeHandler runs the popup flow and page extraction via JSON API.
type AnalyzeHandler struct {
	background popup.Background
}

// NewAnalyzeHandler creates a new API analyze handler.
func NewAnalyzeHandler(background popup.Background) *AnalyzeHandler {
	return &AnalyzeHandler{background: background}
}

// Analyze returns the popup view for a page.
func (h *AnalyzeHandler) Analyze(c fiber.Ctx) error {
	var req models.AnalyzeRequest
	if err := c.Bind().Body(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.URL) == "" {
		return jsonError(c, fiber.StatusBadRequest, "url is required")
	}

	view := popup.Analyze(c.Context(), h.background, strings.TrimSpace(req.URL), req.HTML)
	return jsonSuccess(c, view)
}

// PageInfo extracts page signals from submitted HTML.
func (h *AnalyzeHandler) PageInfo(c fiber.Ctx) error {
	var req models.AnalyzeRequest
	if err := c.Bind().Body(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if valid, msg := validation.ValidateURL(req.URL); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}
	if strings.TrimSpace(req.HTML) == "" {
		return jsonError(c, fiber.StatusBadRequest, "html is required")
	}

	info, err := signals.ExtractHTML(strings.NewReader(req.HTML), req.URL)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "failed to parse html")
	}

	return jsonSuccess(c, info)
}
