package api

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"pecheck/internal/background"
	"pecheck/internal/matcher"
	"pecheck/internal/messaging"
	"pecheck/internal/models"
	"pecheck/internal/popup"
)

// CheckHandler answers domain checks and database dumps through the
// background channel.
type CheckHandler struct {
	client *background.Client
}

// NewCheckHandler creates a new API check handler.
func NewCheckHandler(client *background.Client) *CheckHandler {
	return &CheckHandler{client: client}
}

// Check returns the record matching the domain query parameter, if any.
func (h *CheckHandler) Check(c fiber.Ctx) error {
	domain := strings.TrimSpace(c.Query("domain"))
	if domain == "" {
		return jsonError(c, fiber.StatusBadRequest, "domain is required")
	}

	rec, err := h.client.CheckDomain(c.Context(), domain)
	if err != nil {
		return messageError(c, err)
	}

	return jsonSuccess(c, models.CheckResponse{
		Domain:  matcher.Normalize(domain),
		PEOwned: rec != nil,
		Record:  rec,
	})
}

// Database returns the full PE database in insertion order.
func (h *CheckHandler) Database(c fiber.Ctx) error {
	database, err := h.client.PEDatabase(c.Context())
	if err != nil {
		return messageError(c, err)
	}
	return jsonSuccess(c, database)
}

// messageRequest is a wire message plus the page a getPageInfo targets.
type messageRequest struct {
	messaging.Message
	URL  string `json:"url,omitempty"`
	HTML string `json:"html,omitempty"`
}

// Message delivers a generic cross-context message. checkDomain and
// getPEDatabase go to the background; getPageInfo goes to a page context
// built from the submitted url and html.
func (h *CheckHandler) Message(c fiber.Ctx) error {
	var req messageRequest
	if err := c.Bind().Body(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	msg, err := messaging.Decode(req.Message)
	if err != nil {
		return messageError(c, err)
	}

	var resp messaging.Response
	if _, ok := msg.(messaging.GetPageInfo); ok {
		tab, done := popup.NewTab(c.Context(), req.URL, req.HTML)
		defer done()
		page, err := popup.PageInfo(c.Context(), tab)
		if err != nil {
			return messageError(c, err)
		}
		resp.Page = page
	} else {
		resp, err = h.client.Send(c.Context(), msg)
		if err != nil {
			return messageError(c, err)
		}
	}

	switch msg.(type) {
	case messaging.CheckDomain:
		return jsonSuccess(c, resp.Record)
	case messaging.GetPEDatabase:
		return jsonSuccess(c, resp.Database)
	default:
		return jsonSuccess(c, resp.Page)
	}
}
