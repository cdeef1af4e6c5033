package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PEOwnershipRecord describes a company owned by a private-equity firm.
// Field names follow the bundled pe_database.json schema.
type PEOwnershipRecord struct {
	Company string `json:"company" yaml:"company"`
	Owner   string `json:"owner" yaml:"owner"`
	Year    string `json:"year" yaml:"year"`
	Source  string `json:"source" yaml:"source"`
	Domain  string `json:"domain,omitempty" yaml:"domain,omitempty"` // Optional canonical domain when the key is partial
}

// HasDomain returns true if the record carries an explicit domain.
func (r *PEOwnershipRecord) HasDomain() bool {
	return strings.TrimSpace(r.Domain) != ""
}

// Company is a persisted PE database row.
// Position preserves the insertion order of the source file so that
// substring matching breaks ties the same way for every source.
type Company struct {
	ID        uuid.UUID         `json:"id"`
	Key       string            `json:"key"`
	Position  int               `json:"position"`
	Record    PEOwnershipRecord `json:"record"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
