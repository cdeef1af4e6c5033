package db

import (
	"context"

	"pecheck/internal/models"
)

// IncrementDomainLookup upserts a domain check count by outcome.
func (d *DB) IncrementDomainLookup(ctx context.Context, domain, outcome string) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO domain_lookups (domain, outcome, count, last_seen_at)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (domain, outcome) DO UPDATE
		SET count = domain_lookups.count + 1, last_seen_at = NOW()
	`, domain, outcome)
	return err
}

// GetAllDomainLookups returns all domain lookup rows for metrics export.
func (d *DB) GetAllDomainLookups(ctx context.Context) ([]models.DomainLookup, error) {
	rows, err := d.Pool.Query(ctx, `SELECT domain, outcome, count, last_seen_at FROM domain_lookups`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lookups []models.DomainLookup
	for rows.Next() {
		var l models.DomainLookup
		if err := rows.Scan(&l.Domain, &l.Outcome, &l.Count, &l.LastSeenAt); err != nil {
			return nil, err
		}
		lookups = append(lookups, l)
	}
	return lookups, rows.Err()
}
