package validation

import (
	"errors"
	"net/url"
	"strings"
)

// ErrNoDomain is returned when a URL has no usable hostname.
var ErrNoDomain = errors.New("URL has no domain")

// DomainFromURL returns the hostname of rawURL without a leading "www.".
// URLs without a host (about:blank, relative paths, garbage) yield ErrNoDomain.
func DomainFromURL(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", ErrNoDomain
	}
	host := strings.ToLower(u.Hostname())
	domain := strings.TrimPrefix(host, "www.")
	if domain == "" {
		return "", ErrNoDomain
	}
	return domain, nil
}

// ValidateURL checks if a URL is valid and uses an allowed scheme (http/https only).
// Only such pages get a page context; others (chrome://, file://, data:) are
// analysed from their domain alone.
func ValidateURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}
