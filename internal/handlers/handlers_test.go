package handlers

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/template/html/v3"

	"pecheck/internal/background"
	"pecheck/internal/config"
	"pecheck/internal/matcher"
	"pecheck/internal/registry"
	"pecheck/views"
)

func newTestApp(t *testing.T, store *registry.Store) *fiber.App {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	cfg := &config.Config{SiteTitle: "PE Checker", SiteFooter: "test footer"}
	client := background.NewService(store, matcher.ModeSubstring).Start(ctx)
	t.Cleanup(client.Close)

	app := fiber.New(fiber.Config{
		Views:       html.NewFileSystem(http.FS(views.FS), ".html"),
		ViewsLayout: "layouts/main",
	})

	popupHandler := NewPopupHandler(client, cfg)
	probeHandler := NewProbeHandler(store, nil)
	app.Get("/popup", popupHandler.Show)
	app.Post("/popup", popupHandler.Analyze)
	app.Get("/healthz", probeHandler.Liveness)
	app.Get("/readyz", probeHandler.Readiness)
	return app
}

func loadedStore(t *testing.T) *registry.Store {
	t.Helper()
	store := registry.NewStore()
	if err := store.Load(context.Background(), registry.BundledSource{}); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return store
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestPopupHandler_Show(t *testing.T) {
	app := newTestApp(t, loadedStore(t))

	tests := []struct {
		name     string
		target   string
		contains []string
	}{
		{
			name:     "empty form",
			target:   "/popup",
			contains: []string{`id="analyze"`, "test footer"},
		},
		{
			name:     "pe owned",
			target:   "/popup?url=" + url.QueryEscape("https://www.petsmart.com/dog"),
			contains: []string{"Petsmart", "pe-owned", "Private Equity Owned", "BC Partners", "2015"},
		},
		{
			name:     "not found",
			target:   "/popup?url=" + url.QueryEscape("https://example.org/"),
			contains: []string{"not-pe-owned", "Not in PE Database", "current records"},
		},
		{
			name:     "unanalyzable",
			target:   "/popup?url=about:blank",
			contains: []string{`data-state="unanalyzable"`, "Unable to analyze this page."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest("GET", tt.target, nil)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != 200 {
				t.Fatalf("status = %d, want 200", resp.StatusCode)
			}
			got := body(t, resp)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("body missing %q", want)
				}
			}
		})
	}
}

func TestPopupHandler_Analyze(t *testing.T) {
	app := newTestApp(t, loadedStore(t))

	form := url.Values{
		"url":  {"https://www.zendesk.com/"},
		"html": {`<html><head><title>Zendesk: Customer Service Software</title><meta property="og:site_name" content="Zendesk"></head></html>`},
	}
	req, _ := http.NewRequest("POST", "/popup", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	got := body(t, resp)
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d: %s", resp.StatusCode, got)
	}
	for _, want := range []string{`<p class="company">Zendesk</p>`, "Hellman", "pe-owned"} {
		if !strings.Contains(got, want) {
			t.Errorf("body missing %q", want)
		}
	}

	req, _ = http.NewRequest("POST", "/popup", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("missing url: status = %d, want 400", resp.StatusCode)
	}
}

func TestProbeHandler(t *testing.T) {
	store := registry.NewStore()
	app := newTestApp(t, store)

	req, _ := http.NewRequest("GET", "/healthz", nil)
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != 200 {
		t.Fatalf("healthz: %v, %v", resp, err)
	}

	req, _ = http.NewRequest("GET", "/readyz", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusServiceUnavailable {
		t.Errorf("readyz before load: status = %d, want 503", resp.StatusCode)
	}

	if err := store.Load(context.Background(), registry.BundledSource{}); err != nil {
		t.Fatal(err)
	}
	req, _ = http.NewRequest("GET", "/readyz", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("readyz after load: status = %d, want 200", resp.StatusCode)
	}
}

func TestMergeBranding(t *testing.T) {
	cfg := &config.Config{SiteTitle: "Title", SiteFooter: "Footer"}
	data := MergeBranding(fiber.Map{"Title": "Page"}, cfg)
	if data["SiteTitle"] != "Title" || data["SiteFooter"] != "Footer" || data["Title"] != "Page" {
		t.Errorf("MergeBranding() = %v", data)
	}
}
