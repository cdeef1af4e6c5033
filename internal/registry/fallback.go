package registry

import "pecheck/internal/models"

// Fallback returns the minimal built-in database installed when a load fails.
func Fallback() *Database {
	return New([]Entry{{
		Key: "petco.com",
		Record: models.PEOwnershipRecord{
			Company: "Petco",
			Owner:   "CVC Capital Partners & CPP Investments",
			Year:    "2020",
			Source:  "Fallback",
		},
	}})
}
