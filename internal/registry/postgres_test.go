package registry_test

import (
	"context"
	"testing"

	"pecheck/internal/models"
	"pecheck/internal/registry"
	"pecheck/internal/testutil"
)

func TestPostgresSource_Fetch(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()

	testutil.CreateTestCompany(t, database, "zendesk.com", models.PEOwnershipRecord{Company: "Zendesk", Owner: "Hellman & Friedman", Year: "2022", Source: "Wikipedia"})
	testutil.CreateTestCompany(t, database, "petco.com", models.PEOwnershipRecord{Company: "Petco", Owner: "CVC", Year: "2020", Source: "Wikipedia"})

	store := registry.NewStore()
	if err := store.Load(context.Background(), registry.PostgresSource{DB: database}); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	keys := store.Current().Keys()
	if len(keys) != 2 || keys[0] != "zendesk.com" || keys[1] != "petco.com" {
		t.Errorf("Keys() = %v, want [zendesk.com petco.com]", keys)
	}
}

func TestPostgresSource_ImportRoundTrip(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()

	ctx := context.Background()
	bundled, err := registry.BundledSource{}.Fetch(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if err := database.ReplaceCompanies(ctx, registry.ToCompanies(bundled)); err != nil {
		t.Fatalf("ReplaceCompanies() error = %v", err)
	}

	got, err := registry.PostgresSource{DB: database}.Fetch(ctx)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if got.Len() != bundled.Len() {
		t.Fatalf("Len() = %d, want %d", got.Len(), bundled.Len())
	}
	for i, k := range bundled.Keys() {
		if got.Keys()[i] != k {
			t.Errorf("key %d = %q, want %q", i, got.Keys()[i], k)
		}
	}
}
