package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"pecheck/internal/db"
	"pecheck/internal/models"
)

// Database load result labels
const (
	LoadOK       = "ok"
	LoadFallback = "fallback"
)

var (
	domainLookupDesc = prometheus.NewDesc(
		"pecheck_domain_lookups_total",
		"Total persisted lookup count of matched domains",
		[]string{"domain", "outcome"},
		nil,
	)

	domainChecks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pecheck_domain_checks_total",
		Help: "Domain checks served since process start, by outcome",
	}, []string{"outcome"})

	databaseEntries = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "pecheck_database_entries",
		Help: "Number of entries in the active PE database snapshot",
	})

	databaseLoads = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pecheck_database_loads_total",
		Help: "PE database loads by result",
	}, []string{"result"})
)

// DomainCollector is a custom Prometheus collector that reads domain lookup
// counts from the database on each scrape.
type DomainCollector struct {
	db *db.DB
}

// Describe sends the metric descriptor to the channel.
func (c *DomainCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- domainLookupDesc
}

// Collect queries the database for all domain lookups and emits them as counters.
func (c *DomainCollector) Collect(ch chan<- prometheus.Metric) {
	lookups, err := c.db.GetAllDomainLookups(context.Background())
	if err != nil {
		slog.Error("failed to collect domain lookup metrics", "error", err)
		return
	}
	for _, l := range lookups {
		ch <- prometheus.MustNewConstMetric(
			domainLookupDesc,
			prometheus.CounterValue,
			float64(l.Count),
			l.Domain,
			l.Outcome,
		)
	}
}

// Recorder provides async domain lookup recording.
type Recorder struct {
	db *db.DB
}

var (
	recorder *Recorder
	initOnce sync.Once
)

// Init registers the collectors. database may be nil, in which case only the
// in-process counters are exported. Must be called once at startup.
func Init(database *db.DB) {
	initOnce.Do(func() {
		prometheus.MustRegister(domainChecks, databaseEntries, databaseLoads)
		if database != nil {
			recorder = &Recorder{db: database}
			prometheus.MustRegister(&DomainCollector{db: database})
		}
	})
}

// RecordDomainCheck counts a domain check and, when Postgres is configured,
// asynchronously persists matched domains. Misses are only counted: their
// domains are caller-supplied and unbounded.
func RecordDomainCheck(domain, outcome string) {
	domainChecks.WithLabelValues(outcome).Inc()
	if recorder == nil || !persisted(domain, outcome) {
		return
	}
	go func() {
		if err := recorder.db.IncrementDomainLookup(context.Background(), domain, outcome); err != nil {
			slog.Error("failed to record domain lookup", "domain", domain, "outcome", outcome, "error", err)
		}
	}()
}

// persisted reports whether a check becomes a domain_lookups row and so a
// domain label value. Only database keys can match, which bounds both.
func persisted(domain, outcome string) bool {
	return domain != "" && outcome == models.OutcomeMatched
}

// RecordDatabaseLoad records a load attempt and the size of the snapshot it installed.
func RecordDatabaseLoad(result string, entries int) {
	databaseLoads.WithLabelValues(result).Inc()
	databaseEntries.Set(float64(entries))
}
