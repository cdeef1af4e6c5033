package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"pecheck/internal/models"
)

const companyColumns = `id, key, position, company, owner, year, source, domain, created_at, updated_at`

func scanCompany(row pgx.Row, c *models.Company) error {
	return row.Scan(
		&c.ID, &c.Key, &c.Position,
		&c.Record.Company, &c.Record.Owner, &c.Record.Year, &c.Record.Source, &c.Record.Domain,
		&c.CreatedAt, &c.UpdatedAt,
	)
}

// ListCompanies returns every PE company in insertion order.
func (d *DB) ListCompanies(ctx context.Context) ([]models.Company, error) {
	rows, err := d.Pool.Query(ctx, `SELECT `+companyColumns+` FROM pe_companies ORDER BY position ASC, key ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []models.Company
	for rows.Next() {
		var c models.Company
		if err := scanCompany(rows, &c); err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

// GetCompanyByKey retrieves a single company by its database key.
func (d *DB) GetCompanyByKey(ctx context.Context, key string) (*models.Company, error) {
	var c models.Company
	err := scanCompany(d.Pool.QueryRow(ctx, `SELECT `+companyColumns+` FROM pe_companies WHERE key = $1`, key), &c)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrCompanyNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpsertCompany inserts a company or updates the record stored under its key.
// New keys are appended after the current last position.
func (d *DB) UpsertCompany(ctx context.Context, c *models.Company) error {
	if c.Key == "" {
		return ErrEmptyKey
	}

	query := `
		INSERT INTO pe_companies (key, position, company, owner, year, source, domain)
		VALUES ($1, (SELECT COALESCE(MAX(position), -1) + 1 FROM pe_companies), $2, $3, $4, $5, $6)
		ON CONFLICT (key) DO UPDATE SET
			company = EXCLUDED.company,
			owner = EXCLUDED.owner,
			year = EXCLUDED.year,
			source = EXCLUDED.source,
			domain = EXCLUDED.domain,
			updated_at = NOW()
		RETURNING ` + companyColumns
	return scanCompany(d.Pool.QueryRow(ctx, query,
		c.Key, c.Record.Company, c.Record.Owner, c.Record.Year, c.Record.Source, c.Record.Domain,
	), c)
}

// ReplaceCompanies swaps the whole table for the given ordered set in one
// transaction, so readers never observe a half-imported database.
func (d *DB) ReplaceCompanies(ctx context.Context, companies []models.Company) error {
	tx, err := d.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM pe_companies`); err != nil {
		return fmt.Errorf("failed to clear companies: %w", err)
	}

	query := `
		INSERT INTO pe_companies (key, position, company, owner, year, source, domain)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for i, c := range companies {
		if c.Key == "" {
			return ErrEmptyKey
		}
		if _, err := tx.Exec(ctx, query,
			c.Key, i, c.Record.Company, c.Record.Owner, c.Record.Year, c.Record.Source, c.Record.Domain,
		); err != nil {
			return fmt.Errorf("failed to insert company %s: %w", c.Key, err)
		}
	}

	return tx.Commit(ctx)
}

// DeleteCompany removes a company by key.
func (d *DB) DeleteCompany(ctx context.Context, key string) error {
	tag, err := d.Pool.Exec(ctx, `DELETE FROM pe_companies WHERE key = $1`, key)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCompanyNotFound
	}
	return nil
}
