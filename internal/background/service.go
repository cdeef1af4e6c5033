// Package background is the long-lived context that owns the PE database and
// answers domain checks for popups.
package background

import (
	"context"

	"pecheck/internal/matcher"
	"pecheck/internal/messaging"
	"pecheck/internal/metrics"
	"pecheck/internal/models"
	"pecheck/internal/registry"
)

// Service answers checkDomain and getPEDatabase requests against the
// current database snapshot.
type Service struct {
	store *registry.Store
	mode  matcher.Mode
}

// NewService creates a background service over store.
func NewService(store *registry.Store, mode matcher.Mode) *Service {
	return &Service{store: store, mode: mode}
}

// Store returns the database store.
func (s *Service) Store() *registry.Store {
	return s.store
}

// CheckDomain matches domain against the current snapshot. A nil record is
// the normal "not PE-owned" answer.
func (s *Service) CheckDomain(domain string) *models.PEOwnershipRecord {
	rec := matcher.MatchMode(s.store.Current(), domain, s.mode)

	outcome := models.OutcomeNotFound
	if rec != nil {
		outcome = models.OutcomeMatched
	}
	metrics.RecordDomainCheck(matcher.Normalize(domain), outcome)

	return rec
}

// Handle implements messaging.Handler.
func (s *Service) Handle(ctx context.Context, req messaging.Request) (messaging.Response, error) {
	switch r := req.(type) {
	case messaging.CheckDomain:
		return messaging.Response{Record: s.CheckDomain(r.Domain)}, nil
	case messaging.GetPEDatabase:
		return messaging.Response{Database: s.store.Current()}, nil
	default:
		return messaging.Response{}, messaging.ErrUnhandled
	}
}

// Start serves the service on a new channel until ctx ends and returns a
// client bound to it.
func (s *Service) Start(ctx context.Context) *Client {
	return NewClient(messaging.Listen(ctx, s))
}
