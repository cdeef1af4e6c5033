package models

import "time"

// Domain lookup outcome constants
const (
	OutcomeMatched  = "matched"
	OutcomeNotFound = "not_found"
)

// DomainLookup represents a per-domain check count by outcome.
type DomainLookup struct {
	Domain     string
	Outcome    string
	Count      int64
	LastSeenAt time.Time
}
