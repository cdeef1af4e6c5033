// Package naming picks a display name for the company behind a page.
package naming

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"pecheck/internal/models"
)

// Unknown is shown when no name can be derived.
const Unknown = "Unknown"

// maxTitleLength is the exclusive upper bound for a cleaned title to count
// as a company name.
const maxTitleLength = 50

var (
	homeSuffix   = regexp.MustCompile(`(?i)\s*[-|•]\s*(Home|Welcome|Official Site|Website).*$`)
	anySeparator = regexp.MustCompile(`\s*[-|•]\s*.*$`)
	knownTLD     = regexp.MustCompile(`(?i)\.(com|org|net|edu|gov|co\.uk|co|io|ai|ly)$`)
	wordSplitter = strings.NewReplacer("-", " ", "_", " ")
)

// Resolve returns the best company name for a page. Priority: the site name
// meta tag when it differs from the title, then the cleaned title, then a
// name derived from the domain. With no signals (the page context was
// unreachable) the name comes from rawDomain.
func Resolve(signals *models.PageSignals, rawDomain string) string {
	if signals == nil {
		return FromDomain(rawDomain)
	}

	if signals.MetaTitle != "" && signals.MetaTitle != signals.Title {
		return signals.MetaTitle
	}

	if signals.Title != "" {
		if name, ok := titleName(signals.Title); ok {
			return name
		}
	}

	return FromDomain(signals.Domain)
}

// CleanTitle strips a trailing "- Home"-style suffix and everything after the
// first separator (-, | or •).
func CleanTitle(title string) string {
	title = homeSuffix.ReplaceAllString(title, "")
	return anySeparator.ReplaceAllString(title, "")
}

func titleName(title string) (string, bool) {
	cleaned := CleanTitle(title)
	n := utf8.RuneCountInString(cleaned)
	if n == 0 || n >= maxTitleLength {
		return "", false
	}
	if strings.Contains(strings.ToLower(cleaned), "untitled") {
		return "", false
	}
	return strings.TrimSpace(cleaned), true
}

// FromDomain derives a name from a domain: "my-cool-shop.io" becomes
// "My Cool Shop".
func FromDomain(domain string) string {
	if domain == "" {
		return Unknown
	}

	name := knownTLD.ReplaceAllString(domain, "")
	name, _, _ = strings.Cut(name, ".")
	name = wordSplitter.Replace(name)

	words := strings.Split(name, " ")
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

// capitalize uppercases the first rune of w and lowercases the rest, so
// "24hour" stays "24hour" and "PETCO" becomes "Petco".
func capitalize(w string) string {
	if w == "" {
		return w
	}
	_, size := utf8.DecodeRuneInString(w)
	return cases.Upper(language.Und).String(w[:size]) + cases.Lower(language.Und).String(w[size:])
}
