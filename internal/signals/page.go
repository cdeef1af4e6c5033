package signals

import (
	"context"
	"io"

	"github.com/PuerkitoBio/goquery"

	"pecheck/internal/messaging"
)

// Page is the page context of one tab: it holds the parsed document and
// answers getPageInfo requests with freshly extracted signals.
type Page struct {
	doc *goquery.Document
	url string
}

// NewPage parses the page HTML served at pageURL.
func NewPage(r io.Reader, pageURL string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return &Page{doc: doc, url: pageURL}, nil
}

// Handle implements messaging.Handler. Only getPageInfo is answered here.
func (p *Page) Handle(ctx context.Context, req messaging.Request) (messaging.Response, error) {
	if _, ok := req.(messaging.GetPageInfo); !ok {
		return messaging.Response{}, messaging.ErrUnhandled
	}
	info := Extract(p.doc, p.url)
	return messaging.Response{Page: &info}, nil
}
