package models

import "time"

// AnalyzeRequest is the body accepted by the analyze and page-info endpoints.
// HTML is the rendered page; without it the page context is unreachable.
type AnalyzeRequest struct {
	URL  string `json:"url" form:"url"`
	HTML string `json:"html,omitempty" form:"html"`
}

// CheckResponse contains the result of a domain check.
type CheckResponse struct {
	Domain  string             `json:"domain"`
	PEOwned bool               `json:"pe_owned"`
	Record  *PEOwnershipRecord `json:"record"`
}

// ReloadResponse reports the outcome of a database reload.
type ReloadResponse struct {
	Source   string    `json:"source"`
	Entries  int       `json:"entries"`
	Fallback bool      `json:"fallback"`
	Error    string    `json:"error,omitempty"`
	LoadedAt time.Time `json:"loaded_at"`
}
