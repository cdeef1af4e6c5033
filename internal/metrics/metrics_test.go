package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"pecheck/internal/models"
)

func TestRecordDomainCheck_CountsByOutcome(t *testing.T) {
	before := testutil.ToFloat64(domainChecks.WithLabelValues(models.OutcomeMatched))

	RecordDomainCheck("petco.com", models.OutcomeMatched)
	RecordDomainCheck("petco.com", models.OutcomeMatched)

	after := testutil.ToFloat64(domainChecks.WithLabelValues(models.OutcomeMatched))
	if after-before != 2 {
		t.Errorf("matched counter grew by %v, want 2", after-before)
	}
}

func TestRecordDatabaseLoad(t *testing.T) {
	before := testutil.ToFloat64(databaseLoads.WithLabelValues(LoadFallback))

	RecordDatabaseLoad(LoadFallback, 1)

	if got := testutil.ToFloat64(databaseLoads.WithLabelValues(LoadFallback)) - before; got != 1 {
		t.Errorf("fallback loads grew by %v, want 1", got)
	}
	if got := testutil.ToFloat64(databaseEntries); got != 1 {
		t.Errorf("database entries = %v, want 1", got)
	}
}

func TestPersisted(t *testing.T) {
	tests := []struct {
		name    string
		domain  string
		outcome string
		want    bool
	}{
		{"matched domain", "petco.com", models.OutcomeMatched, true},
		{"miss is not persisted", "random-1234.example", models.OutcomeNotFound, false},
		{"empty domain", "", models.OutcomeMatched, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := persisted(tt.domain, tt.outcome); got != tt.want {
				t.Errorf("persisted(%q, %q) = %v, want %v", tt.domain, tt.outcome, got, tt.want)
			}
		})
	}
}

func TestRecordDomainCheck_CountsMisses(t *testing.T) {
	before := testutil.ToFloat64(domainChecks.WithLabelValues(models.OutcomeNotFound))

	RecordDomainCheck("random-1234.example", models.OutcomeNotFound)

	if got := testutil.ToFloat64(domainChecks.WithLabelValues(models.OutcomeNotFound)) - before; got != 1 {
		t.Errorf("not_found counter grew by %v, want 1", got)
	}
}
