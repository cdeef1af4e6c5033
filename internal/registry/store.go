package registry

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"sync/atomic"
	"time"

	"pecheck/internal/metrics"
)

// ErrNilDatabase is returned by a source that produced no snapshot.
var ErrNilDatabase = errors.New("source returned no database")

// Status describes the most recent load.
type Status struct {
	Source   string
	Entries  int
	Fallback bool
	Err      error
	LoadedAt time.Time
}

// Store holds the process-wide database snapshot. Reads never block; a load
// replaces the whole snapshot or, on failure, installs Fallback().
type Store struct {
	current   atomic.Pointer[Database]
	status    atomic.Pointer[Status]
	overrides []Entry
}

// NewStore creates a store holding the empty database. Overrides are applied
// on top of every successfully fetched snapshot.
func NewStore(overrides ...Entry) *Store {
	s := &Store{overrides: overrides}
	s.current.Store(Empty())
	return s
}

// Current returns the active snapshot. Before the first load this is the
// empty database.
func (s *Store) Current() *Database {
	return s.current.Load()
}

// Loaded returns true once any load, successful or not, has completed.
func (s *Store) Loaded() bool {
	return s.status.Load() != nil
}

// Status returns the outcome of the most recent load.
func (s *Store) Status() Status {
	if st := s.status.Load(); st != nil {
		return *st
	}
	return Status{}
}

// Load fetches a snapshot from src and installs it. On failure the error is
// logged, the fallback database is installed, and the error is returned.
func (s *Store) Load(ctx context.Context, src Source) error {
	database, err := src.Fetch(ctx)
	if err == nil && database == nil {
		err = ErrNilDatabase
	}
	if err != nil {
		slog.Error("failed to load PE database", "source", src.Name(), "error", err)
		fallback := Fallback()
		s.install(fallback, Status{Source: src.Name(), Entries: fallback.Len(), Fallback: true, Err: err})
		metrics.RecordDatabaseLoad(metrics.LoadFallback, fallback.Len())
		return err
	}

	database = database.With(s.overrides)
	s.install(database, Status{Source: src.Name(), Entries: database.Len()})
	metrics.RecordDatabaseLoad(metrics.LoadOK, database.Len())
	log.Printf("Loaded %d PE companies from %s database", database.Len(), src.Name())
	return nil
}

// Reload is Load under the name used by the reload job and admin endpoint.
func (s *Store) Reload(ctx context.Context, src Source) error {
	return s.Load(ctx, src)
}

func (s *Store) install(database *Database, st Status) {
	st.LoadedAt = time.Now()
	s.current.Store(database)
	s.status.Store(&st)
}
