// Package testutil provides test utilities and helpers.
package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"pecheck/internal/db"
	"pecheck/internal/models"
)

// TestDB creates a test database connection and returns a cleanup function.
// Tests are skipped unless TEST_DATABASE_URL is set.
func TestDB(t *testing.T) (*db.DB, func()) {
	t.Helper()

	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("Skipping integration test: TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	database, err := db.New(ctx, connString)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// Run migrations
	if err := database.RunMigrations(connString); err != nil {
		database.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	cleanupTestData(ctx, database.Pool)

	cleanup := func() {
		// Clean up test data
		cleanupTestData(ctx, database.Pool)
		database.Close()
	}

	return database, cleanup
}

// cleanupTestData removes all test data from the database.
func cleanupTestData(ctx context.Context, pool *pgxpool.Pool) {
	pool.Exec(ctx, "DELETE FROM domain_lookups")
	pool.Exec(ctx, "DELETE FROM pe_companies")
}

// CreateTestCompany upserts a company row and returns it.
func CreateTestCompany(t *testing.T, database *db.DB, key string, rec models.PEOwnershipRecord) *models.Company {
	t.Helper()

	company := &models.Company{Key: key, Record: rec}
	if err := database.UpsertCompany(context.Background(), company); err != nil {
		t.Fatalf("failed to create test company: %v", err)
	}
	return company
}
