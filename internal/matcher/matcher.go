// Package matcher maps a visited domain to a PE database record.
package matcher

import (
	"fmt"
	"strings"

	"pecheck/internal/models"
	"pecheck/internal/registry"
)

// Mode selects the policy of the final, fuzzy matching pass.
type Mode string

const (
	// ModeSubstring matches when the key contains the domain or the domain
	// contains the key minus ".com". It accepts unrelated domains that share
	// a substring with a key (e.g. "subwaysurfers.com" matches "subway.com").
	ModeSubstring Mode = "substring"

	// ModeLabel only matches on label boundaries.
	ModeLabel Mode = "label"
)

// ParseMode parses a MATCH_MODE value. The empty string selects ModeSubstring.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeSubstring:
		return ModeSubstring, nil
	case ModeLabel:
		return ModeLabel, nil
	default:
		return "", fmt.Errorf("unknown match mode %q", s)
	}
}

// Normalize trims and lowercases the domain and strips a single leading "www.".
func Normalize(domain string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(domain)), "www.")
}

// Match returns the record for domain using the substring policy.
func Match(database *registry.Database, domain string) *models.PEOwnershipRecord {
	return MatchMode(database, domain, ModeSubstring)
}

// MatchMode returns the first record matching domain, or nil. In order:
// exact key, explicit record domain, then the mode's fuzzy pass. Ties go to
// the entry that comes first in the database.
func MatchMode(database *registry.Database, domain string, mode Mode) *models.PEOwnershipRecord {
	if database == nil {
		return nil
	}

	clean := Normalize(domain)
	if clean == "" {
		return nil
	}

	if rec, ok := database.Get(clean); ok {
		return &rec
	}

	entries := database.Entries()

	for _, e := range entries {
		if e.Record.HasDomain() && Normalize(e.Record.Domain) == clean {
			rec := e.Record
			return &rec
		}
	}

	fuzzy := substringMatch
	if mode == ModeLabel {
		fuzzy = labelMatch
	}
	for _, e := range entries {
		if fuzzy(e.Key, clean) {
			rec := e.Record
			return &rec
		}
	}

	return nil
}

func substringMatch(key, clean string) bool {
	return strings.Contains(key, clean) || strings.Contains(clean, strings.Replace(key, ".com", "", 1))
}

// labelMatch accepts subdomains of a key ("shop.petco.com" for "petco.com")
// and partial keys naming the registrable label ("dunkin" for "dunkin.ca").
func labelMatch(key, clean string) bool {
	if key == "" {
		return false
	}
	if clean == key || strings.HasSuffix(clean, "."+key) {
		return true
	}
	if strings.Contains(key, ".") {
		return false
	}
	return firstLabel(clean) == key
}

func firstLabel(domain string) string {
	label, _, _ := strings.Cut(domain, ".")
	return label
}
