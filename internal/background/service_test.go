package background

import (
	"context"
	"errors"
	"testing"

	"pecheck/internal/matcher"
	"pecheck/internal/messaging"
	"pecheck/internal/registry"
)

func loadedService(t *testing.T, mode matcher.Mode) *Service {
	t.Helper()
	store := registry.NewStore()
	if err := store.Load(context.Background(), registry.BundledSource{}); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return NewService(store, mode)
}

func TestClient_CheckDomain(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := loadedService(t, matcher.ModeSubstring).Start(ctx)
	defer client.Close()

	rec, err := client.CheckDomain(ctx, "www.petco.com")
	if err != nil {
		t.Fatalf("CheckDomain() error = %v", err)
	}
	if rec == nil || rec.Company != "Petco" {
		t.Fatalf("CheckDomain(www.petco.com) = %+v", rec)
	}

	rec, err = client.CheckDomain(ctx, "example-not-listed.com")
	if err != nil {
		t.Fatalf("CheckDomain() error = %v", err)
	}
	if rec != nil {
		t.Errorf("CheckDomain(example-not-listed.com) = %+v, want nil", rec)
	}

	rec, err = client.CheckDomain(ctx, "")
	if err != nil || rec != nil {
		t.Errorf("CheckDomain(\"\") = %+v, %v; want nil, nil", rec, err)
	}
}

func TestClient_PEDatabase(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := loadedService(t, matcher.ModeSubstring)
	client := svc.Start(ctx)
	defer client.Close()

	db, err := client.PEDatabase(ctx)
	if err != nil {
		t.Fatalf("PEDatabase() error = %v", err)
	}
	if db.Len() != svc.Store().Current().Len() {
		t.Errorf("Len() = %d, want %d", db.Len(), svc.Store().Current().Len())
	}
}

func TestService_CheckDomainBeforeLoad(t *testing.T) {
	svc := NewService(registry.NewStore(), matcher.ModeSubstring)
	if rec := svc.CheckDomain("petco.com"); rec != nil {
		t.Errorf("CheckDomain() before load = %+v, want nil", rec)
	}
}

func TestService_LabelMode(t *testing.T) {
	sub := loadedService(t, matcher.ModeSubstring)
	label := loadedService(t, matcher.ModeLabel)

	if rec := sub.CheckDomain("subwaysurfers.com"); rec == nil {
		t.Error("substring mode should match subwaysurfers.com")
	}
	if rec := label.CheckDomain("subwaysurfers.com"); rec != nil {
		t.Errorf("label mode matched subwaysurfers.com: %+v", rec)
	}
}

func TestService_HandleRejectsPageRequests(t *testing.T) {
	svc := loadedService(t, matcher.ModeSubstring)
	if _, err := svc.Handle(context.Background(), messaging.GetPageInfo{}); !errors.Is(err, messaging.ErrUnhandled) {
		t.Errorf("Handle(GetPageInfo) error = %v, want ErrUnhandled", err)
	}
}
