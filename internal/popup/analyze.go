package popup

import (
	"context"
	"log/slog"
	"strings"

	"pecheck/internal/messaging"
	"pecheck/internal/signals"
	"pecheck/internal/validation"
)

// NewTab builds the active tab for a URL and optional page HTML. A page
// context is attached only for http(s) pages whose HTML was supplied; the
// returned func shuts it down.
func NewTab(ctx context.Context, pageURL, html string) (Tab, func()) {
	tab := Tab{URL: pageURL}
	if strings.TrimSpace(html) == "" {
		return tab, func() {}
	}
	if valid, _ := validation.ValidateURL(pageURL); !valid {
		return tab, func() {}
	}

	page, err := signals.NewPage(strings.NewReader(html), pageURL)
	if err != nil {
		slog.Debug("could not parse page html", "url", pageURL, "error", err)
		return tab, func() {}
	}

	ctx, cancel := context.WithCancel(ctx)
	ch := messaging.Listen(ctx, page)
	tab.Page = ch
	return tab, func() {
		ch.Close()
		cancel()
	}
}

// Analyze runs one popup open for pageURL and html against background.
func Analyze(ctx context.Context, background Background, pageURL, html string) View {
	tab, done := NewTab(ctx, pageURL, html)
	defer done()
	return NewController(ActiveTab(tab), background).Open(ctx)
}
