package models

// MaxSignalTextLength caps the description, footer, and header signals.
const MaxSignalTextLength = 200

// PageSignals holds the text signals extracted from a visited page.
// Produced fresh per page-info request, never persisted.
type PageSignals struct {
	Domain          string `json:"domain"`
	Title           string `json:"title"`
	H1              string `json:"h1"`
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
	FooterText      string `json:"footerText"`
	HeaderText      string `json:"headerText"`
	URL             string `json:"url"`
}
