// Package data bundles the PE ownership database shipped with the service.
package data

import _ "embed"

// PEDatabase is the bundled pe_database.json resource.
//
//go:embed pe_database.json
var PEDatabase []byte
