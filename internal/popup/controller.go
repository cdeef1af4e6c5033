// Package popup orchestrates one popup open: find the active tab, ask its
// page for signals, resolve a company name, ask the background for a
// domain match, and produce the view to render.
package popup

import (
	"context"
	"errors"
	"log/slog"

	"pecheck/internal/messaging"
	"pecheck/internal/models"
	"pecheck/internal/naming"
	"pecheck/internal/validation"
)

// Tab is a browser tab as seen by the popup. Page is the tab's page context;
// it is nil when no page context is reachable.
type Tab struct {
	ID   string
	URL  string
	Page *messaging.Channel
}

// Tabs resolves the active tab.
type Tabs interface {
	ActiveTab(ctx context.Context) (Tab, error)
}

// TabsFunc adapts a function to Tabs.
type TabsFunc func(ctx context.Context) (Tab, error)

func (f TabsFunc) ActiveTab(ctx context.Context) (Tab, error) {
	return f(ctx)
}

// ActiveTab returns a Tabs that always reports tab.
func ActiveTab(tab Tab) Tabs {
	return TabsFunc(func(context.Context) (Tab, error) { return tab, nil })
}

// Background is the part of the background context the popup talks to.
type Background interface {
	CheckDomain(ctx context.Context, domain string) (*models.PEOwnershipRecord, error)
}

// Controller runs popup opens. It holds no per-open state.
type Controller struct {
	tabs       Tabs
	background Background
}

// NewController creates a popup controller.
func NewController(tabs Tabs, background Background) *Controller {
	return &Controller{tabs: tabs, background: background}
}

// Open runs the popup sequence once and returns its terminal view.
func (c *Controller) Open(ctx context.Context) View {
	view := newView()

	tab, err := c.tabs.ActiveTab(ctx)
	if err != nil {
		slog.Error("error checking site", "session", view.SessionID, "error", err)
		return view.failed()
	}

	domain, err := validation.DomainFromURL(tab.URL)
	if err != nil {
		return view.unanalyzable()
	}

	name := c.companyName(ctx, tab, domain)

	rec, err := c.background.CheckDomain(ctx, domain)
	if err != nil {
		slog.Error("error checking site", "session", view.SessionID, "domain", domain, "error", err)
		return view.failed()
	}

	return view.results(domain, name, rec)
}

// companyName asks the tab's page context for signals. Any failure falls
// back to a name derived from the tab's domain.
func (c *Controller) companyName(ctx context.Context, tab Tab, domain string) string {
	page, err := PageInfo(ctx, tab)
	if err != nil {
		slog.Debug("could not extract from page, using domain", "domain", domain, "error", err)
		return naming.FromDomain(domain)
	}
	return naming.Resolve(page, domain)
}

// PageInfo sends getPageInfo to the tab's page context.
func PageInfo(ctx context.Context, tab Tab) (*models.PageSignals, error) {
	if tab.Page == nil {
		return nil, messaging.ErrNoPageContext
	}
	resp, err := tab.Page.Send(ctx, messaging.GetPageInfo{})
	if err != nil {
		return nil, err
	}
	if resp.Page == nil {
		return nil, errors.Join(messaging.ErrNoPageContext, messaging.ErrMissingPayload)
	}
	return resp.Page, nil
}
