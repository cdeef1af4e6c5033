package registry

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"pecheck/internal/models"
)

// ErrNotObject is returned when the database document is not a JSON object.
var ErrNotObject = errors.New("PE database must be a JSON object")

// Parse decodes a `{ key: { company, owner, year, source, domain? } }`
// document, keeping the key order of the document. Any malformed record
// fails the whole parse.
func Parse(data []byte) (*Database, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to read database: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, ErrNotObject
	}

	var entries []Entry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to read key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}

		var rec models.PEOwnershipRecord
		if err := dec.Decode(&rec); err != nil {
			return nil, fmt.Errorf("failed to decode record %q: %w", key, err)
		}
		entries = append(entries, Entry{Key: key, Record: rec})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("failed to read database: %w", err)
	}
	if dec.More() {
		return nil, errors.New("unexpected data after database object")
	}

	return New(entries), nil
}
