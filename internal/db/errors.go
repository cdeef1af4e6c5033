package db

import "errors"

// Domain-level database error sentinels.
var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrEmptyKey        = errors.New("company key is required")
)
