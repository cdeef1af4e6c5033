package validation

import (
	"errors"
	"testing"
)

func TestDomainFromURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{"plain https", "https://petco.com/dogs", "petco.com", false},
		{"www stripped", "https://www.petco.com", "petco.com", false},
		{"case folded", "HTTPS://WWW.Petco.COM/", "petco.com", false},
		{"subdomain kept", "https://shop.petco.com", "shop.petco.com", false},
		{"port dropped", "http://localhost:3000/x", "localhost", false},
		{"inner www kept", "https://awww.example.com", "awww.example.com", false},
		{"browser page", "chrome://extensions", "extensions", false},
		{"surrounding whitespace", "  https://petco.com  ", "petco.com", false},
		{"empty", "", "", true},
		{"about blank", "about:blank", "", true},
		{"relative path", "/path/only", "", true},
		{"bad escape", "http://%zz", "", true},
		{"www only", "https://www.", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DomainFromURL(tt.url)
			if tt.wantErr {
				if !errors.Is(err, ErrNoDomain) {
					t.Errorf("DomainFromURL(%q) error = %v, want ErrNoDomain", tt.url, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DomainFromURL(%q) error = %v", tt.url, err)
			}
			if got != tt.want {
				t.Errorf("DomainFromURL(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		valid   bool
		wantMsg string
	}{
		{"valid https", "https://example.com", true, ""},
		{"valid http", "http://example.com", true, ""},
		{"valid with path", "https://example.com/path/to/page", true, ""},
		{"valid with port", "https://example.com:8080", true, ""},
		{"empty string", "", false, "URL is required"},
		{"javascript scheme", "javascript:alert(1)", false, "URL must use http:// or https:// scheme"},
		{"chrome scheme", "chrome://extensions", false, "URL must use http:// or https:// scheme"},
		{"file scheme", "file:///etc/passwd", false, "URL must use http:// or https:// scheme"},
		{"no scheme", "example.com", false, "URL must use http:// or https:// scheme"},
		{"uppercase scheme", "HTTPS://example.com", true, ""},
		{"scheme only", "https://", false, "URL must have a valid host"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := ValidateURL(tt.url)
			if valid != tt.valid {
				t.Errorf("ValidateURL(%q) valid = %v, want %v", tt.url, valid, tt.valid)
			}
			if !valid && msg != tt.wantMsg {
				t.Errorf("ValidateURL(%q) msg = %q, want %q", tt.url, msg, tt.wantMsg)
			}
		})
	}
}
