package store

import (
	"context"
	"testing"

	"github.com/bledarhoxha/prona/internal/db"
)

func TestGetJWTSecretStable(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	first, err := GetJWTSecret(ctx, database)
	if err != nil {
		t.Fatalf("GetJWTSecret: %v", err)
	}
	if first == "" {
		t.Fatal("expected generated secret")
	}

	second, err := GetJWTSecret(ctx, database)
	if err != nil {
		t.Fatalf("GetJWTSecret: %v", err)
	}
	if second != first {
		t.Error("expected the same secret on repeated calls")
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	got, err := GetSetting(ctx, database, "contact_email", "info@example.com")
	if err != nil {
		t.Fatalf("GetSetting: %v", err)
	}
	if got != "info@example.com" {
		t.Errorf("expected fallback, got %q", got)
	}

	if err := SetSetting(ctx, database, "contact_email", "hello@example.com"); err != nil {
		t.Fatalf("SetSetting: %v", err)
	}
	got, _ = GetSetting(ctx, database, "contact_email", "info@example.com")
	if got != "hello@example.com" {
		t.Errorf("expected stored value, got %q", got)
	}

	// Overwrite.
	SetSetting(ctx, database, "contact_email", "team@example.com")
	got, _ = GetSetting(ctx, database, "contact_email", "")
	if got != "team@example.com" {
		t.Errorf("expected overwritten value, got %q", got)
	}
}
