package registry

import (
	"context"
	"errors"
	"fmt"
	"os"

	"pecheck/data"
	"pecheck/internal/db"
	"pecheck/internal/models"
)

// Source produces a complete database snapshot.
type Source interface {
	Name() string
	Fetch(ctx context.Context) (*Database, error)
}

// Source kinds accepted by SourceFor.
const (
	KindBundled  = "bundled"
	KindFile     = "file"
	KindPostgres = "postgres"
)

// ErrUnknownSource is returned by SourceFor for an unrecognised kind.
var ErrUnknownSource = errors.New("unknown PE database source")

// SourceFor selects a source by kind. The postgres kind needs a database.
func SourceFor(kind, path string, database *db.DB) (Source, error) {
	switch kind {
	case "", KindBundled:
		return BundledSource{}, nil
	case KindFile:
		if path == "" {
			return nil, fmt.Errorf("%w: file source needs a path", ErrUnknownSource)
		}
		return FileSource{Path: path}, nil
	case KindPostgres:
		if database == nil {
			return nil, fmt.Errorf("%w: postgres source needs DATABASE_URL", ErrUnknownSource)
		}
		return PostgresSource{DB: database}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, kind)
	}
}

// BundledSource reads the pe_database.json resource embedded in the binary.
type BundledSource struct{}

func (BundledSource) Name() string { return "bundled" }

func (BundledSource) Fetch(ctx context.Context) (*Database, error) {
	return Parse(data.PEDatabase)
}

// FileSource reads a pe_database.json file from disk.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string { return "file:" + s.Path }

func (s FileSource) Fetch(ctx context.Context) (*Database, error) {
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.Path, err)
	}
	return Parse(raw)
}

// PostgresSource reads the pe_companies table in position order.
type PostgresSource struct {
	DB *db.DB
}

func (s PostgresSource) Name() string { return "postgres" }

func (s PostgresSource) Fetch(ctx context.Context) (*Database, error) {
	companies, err := s.DB.ListCompanies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return FromCompanies(companies), nil
}

// FromCompanies builds a snapshot from persisted rows, already ordered.
func FromCompanies(companies []models.Company) *Database {
	entries := make([]Entry, len(companies))
	for i, c := range companies {
		entries[i] = Entry{Key: c.Key, Record: c.Record}
	}
	return New(entries)
}

// ToCompanies converts a snapshot into rows for ReplaceCompanies.
func ToCompanies(d *Database) []models.Company {
	entries := d.Entries()
	companies := make([]models.Company, len(entries))
	for i, e := range entries {
		companies[i] = models.Company{Key: e.Key, Position: i, Record: e.Record}
	}
	return companies
}
