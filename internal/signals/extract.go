// Package signals extracts company-identifying text from a rendered page.
package signals

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"pecheck/internal/models"
)

// Extract reads the page signals from doc. Missing elements yield empty
// fields; extraction never fails.
func Extract(doc *goquery.Document, pageURL string) models.PageSignals {
	return models.PageSignals{
		Domain:          Hostname(pageURL),
		Title:           collapse(doc.Find("title").First().Text()),
		H1:              strings.TrimSpace(doc.Find("h1").First().Text()),
		MetaTitle:       siteName(doc),
		MetaDescription: Truncate(metaContent(doc, `meta[name="description"]`), models.MaxSignalTextLength),
		FooterText:      Truncate(strings.TrimSpace(doc.Find("footer").First().Text()), models.MaxSignalTextLength),
		HeaderText:      Truncate(strings.TrimSpace(doc.Find("header").First().Text()), models.MaxSignalTextLength),
		URL:             pageURL,
	}
}

// ExtractHTML parses an HTML document and extracts its signals.
func ExtractHTML(r io.Reader, pageURL string) (models.PageSignals, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return models.PageSignals{}, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return Extract(doc, pageURL), nil
}

// Hostname returns the lowercased host of pageURL without a leading "www.".
func Hostname(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}

// Truncate cuts s to at most n characters without splitting a rune.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// siteName prefers og:site_name and falls back to application-name.
func siteName(doc *goquery.Document) string {
	if name := metaContent(doc, `meta[property="og:site_name"]`); name != "" {
		return name
	}
	return metaContent(doc, `meta[name="application-name"]`)
}

func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(content)
}

// collapse mirrors document.title: whitespace runs become one space, ends trimmed.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
