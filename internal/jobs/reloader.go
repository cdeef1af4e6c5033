package jobs

import (
	"context"
	"log"
	"time"

	"pecheck/internal/registry"
)

// Reloader periodically reloads the PE database from its source.
type Reloader struct {
	store    *registry.Store
	source   registry.Source
	interval time.Duration
}

// NewReloader creates a new reloader.
func NewReloader(store *registry.Store, source registry.Source, interval time.Duration) *Reloader {
	return &Reloader{
		store:    store,
		source:   source,
		interval: interval,
	}
}

// Start begins the reload loop. The initial load is the caller's job.
func (r *Reloader) Start(ctx context.Context) {
	if r.interval <= 0 {
		return
	}

	log.Printf("Database reloader started (source: %s, interval: %v)", r.source.Name(), r.interval)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Database reloader stopped")
			return
		case <-ticker.C:
			r.reload(ctx)
		}
	}
}

func (r *Reloader) reload(ctx context.Context) {
	if err := r.store.Reload(ctx, r.source); err != nil {
		log.Printf("Database reloader: reload from %s failed, serving fallback: %v", r.source.Name(), err)
	}
}
