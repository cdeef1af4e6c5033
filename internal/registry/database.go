// Package registry holds the in-memory PE ownership database: an immutable
// snapshot keyed by normalised domain, the sources it is loaded from, and the
// store that swaps snapshots atomically.
package registry

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"

	"pecheck/internal/models"
)

// Entry is one key/record pair of the database, in source order.
type Entry struct {
	Key    string                   `json:"key" yaml:"key"`
	Record models.PEOwnershipRecord `json:"record" yaml:",inline"`
}

// Database is an immutable snapshot of the PE database.
// Keys are normalised and iterate in insertion order.
type Database struct {
	keys    []string
	records map[string]models.PEOwnershipRecord
}

// NormalizeKey lowercases a key and strips a single leading "www.".
func NormalizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	return strings.TrimPrefix(key, "www.")
}

// New builds a snapshot from entries. Keys and record domains are
// normalised; entries whose key normalises to "" are dropped. A repeated key
// keeps its first position and takes the later record.
func New(entries []Entry) *Database {
	d := &Database{
		keys:    make([]string, 0, len(entries)),
		records: make(map[string]models.PEOwnershipRecord, len(entries)),
	}
	for _, e := range entries {
		key := NormalizeKey(e.Key)
		if key == "" {
			slog.Warn("skipping PE database entry with empty key", "key", e.Key, "company", e.Record.Company)
			continue
		}
		rec := e.Record
		rec.Domain = NormalizeKey(rec.Domain)
		if _, exists := d.records[key]; !exists {
			d.keys = append(d.keys, key)
		}
		d.records[key] = rec
	}
	return d
}

// Empty returns a database with no entries.
func Empty() *Database {
	return New(nil)
}

// Lookup normalises key and returns the record stored under it.
func (d *Database) Lookup(key string) (models.PEOwnershipRecord, bool) {
	return d.Get(NormalizeKey(key))
}

// Get returns the record stored under key exactly as given.
func (d *Database) Get(key string) (models.PEOwnershipRecord, bool) {
	r, ok := d.records[key]
	return r, ok
}

// Len returns the number of entries.
func (d *Database) Len() int {
	return len(d.keys)
}

// Keys returns the keys in insertion order.
func (d *Database) Keys() []string {
	return append([]string(nil), d.keys...)
}

// Entries returns a copy of all entries in insertion order.
func (d *Database) Entries() []Entry {
	entries := make([]Entry, len(d.keys))
	for i, k := range d.keys {
		entries[i] = Entry{Key: k, Record: d.records[k]}
	}
	return entries
}

// With returns a new snapshot with extra entries applied on top.
// Existing keys are replaced in place; new keys are appended.
func (d *Database) With(extra []Entry) *Database {
	if len(extra) == 0 {
		return d
	}
	return New(append(d.Entries(), extra...))
}

// MarshalJSON encodes the database as a JSON object in insertion order,
// matching the bundled file's schema.
func (d *Database) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		rec, err := json.Marshal(d.records[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(rec)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
