package models

import "testing"

func TestPEOwnershipRecord_HasDomain(t *testing.T) {
	tests := []struct {
		name     string
		domain   string
		expected bool
	}{
		{"explicit domain", "dunkindonuts.com", true},
		{"empty domain", "", false},
		{"whitespace only", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &PEOwnershipRecord{Company: "Test", Domain: tt.domain}
			if got := r.HasDomain(); got != tt.expected {
				t.Errorf("HasDomain() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestOutcomeConstants(t *testing.T) {
	if OutcomeMatched != "matched" {
		t.Errorf("OutcomeMatched = %q, want %q", OutcomeMatched, "matched")
	}
	if OutcomeNotFound != "not_found" {
		t.Errorf("OutcomeNotFound = %q, want %q", OutcomeNotFound, "not_found")
	}
	if MaxSignalTextLength != 200 {
		t.Errorf("MaxSignalTextLength = %d, want 200", MaxSignalTextLength)
	}
}
